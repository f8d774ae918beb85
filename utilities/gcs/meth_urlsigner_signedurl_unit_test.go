// Copyright 2015 Google Cloud Platform Book ISBN - 978-1-4842-1005-5
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gcs

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"net/url"
	"strconv"
	"testing"
	"time"
)

const testGoogleAccessID = "lunchmates@earth-is-a-strange-place.iam.gserviceaccount.com"

func makeTestURLSigner(t *testing.T) (*URLSigner, *rsa.PrivateKey) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey %v", err)
	}
	privateKeyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	})
	urlSigner, err := NewURLSigner(testGoogleAccessID, privateKeyPEM)
	if err != nil {
		t.Fatalf("NewURLSigner %v", err)
	}
	return urlSigner, privateKey
}

func TestUnitStringToSign(t *testing.T) {
	want := "PUT\n7Qdih1MuhjZehB6Sv8UNjA==\ntext/plain\n1435923480\n/lunchmates_document_dropbox/hello_world.txt"
	got := StringToSign("PUT", "7Qdih1MuhjZehB6Sv8UNjA==", "text/plain", 1435923480, "/lunchmates_document_dropbox/hello_world.txt")
	if got != want {
		t.Errorf("Want stringToSign '%s' got '%s'", want, got)
	}
	// GET requests leave the md5 and content type lines empty
	want = "GET\n\n\n1435923480\n/lunchmates_document_dropbox/hello_world.txt"
	got = StringToSign("GET", "", "", 1435923480, "/lunchmates_document_dropbox/hello_world.txt")
	if got != want {
		t.Errorf("Want stringToSign '%s' got '%s'", want, got)
	}
}

func TestUnitSignedURL(t *testing.T) {
	urlSigner, privateKey := makeTestURLSigner(t)
	resource := "/lunchmates_document_dropbox/hello_world.txt"
	contentMD5 := ContentMD5([]byte("Hello World!"))
	contentType := "text/plain"
	expires := time.Now().Add(12 * time.Hour)

	signedURL, err := urlSigner.SignedURL("PUT", resource, contentMD5, contentType, expires)
	if err != nil {
		t.Fatalf("SignedURL %v", err)
	}

	parsedURL, err := url.Parse(signedURL)
	if err != nil {
		t.Fatalf("url.Parse %v", err)
	}
	if parsedURL.Scheme != "https" {
		t.Errorf("Want scheme 'https' got '%s'", parsedURL.Scheme)
	}
	if parsedURL.Host != "storage.googleapis.com" {
		t.Errorf("Want host 'storage.googleapis.com' got '%s'", parsedURL.Host)
	}
	if parsedURL.Path != resource {
		t.Errorf("Want path '%s' got '%s'", resource, parsedURL.Path)
	}
	queryValues := parsedURL.Query()
	if queryValues.Get("GoogleAccessId") != testGoogleAccessID {
		t.Errorf("Want GoogleAccessId '%s' got '%s'", testGoogleAccessID, queryValues.Get("GoogleAccessId"))
	}
	expiresEpoch, err := strconv.ParseInt(queryValues.Get("Expires"), 10, 64)
	if err != nil {
		t.Fatalf("Expires is not an epoch '%s'", queryValues.Get("Expires"))
	}
	if expiresEpoch != expires.Unix() {
		t.Errorf("Want Expires '%d' got '%d'", expires.Unix(), expiresEpoch)
	}

	signatureBytes, err := base64.StdEncoding.DecodeString(queryValues.Get("Signature"))
	if err != nil {
		t.Fatalf("Signature is not base64 %v", err)
	}
	hashed := sha256.Sum256([]byte(StringToSign("PUT", contentMD5, contentType, expiresEpoch, resource)))
	err = rsa.VerifyPKCS1v15(&privateKey.PublicKey, crypto.SHA256, hashed[:], signatureBytes)
	if err != nil {
		t.Errorf("Signature does not verify %v", err)
	}
}

func TestUnitSignedURLIsDeterministic(t *testing.T) {
	urlSigner, _ := makeTestURLSigner(t)
	expires := time.Unix(1435923480, 0)
	first, err := urlSigner.SignedURL("GET", "/lunchmates_document_dropbox/hello_world.txt", "", "", expires)
	if err != nil {
		t.Fatalf("SignedURL %v", err)
	}
	second, err := urlSigner.SignedURL("GET", "/lunchmates_document_dropbox/hello_world.txt", "", "", expires)
	if err != nil {
		t.Fatalf("SignedURL %v", err)
	}
	if first != second {
		t.Errorf("Want identical URLs for identical requests got '%s' and '%s'", first, second)
	}
}

func TestUnitContentMD5(t *testing.T) {
	// Digest of the walkthrough demo body
	want := "7Qdih1MuhjZehB6Sv8UNjA=="
	got := ContentMD5([]byte("Hello World!"))
	if got != want {
		t.Errorf("Want contentMD5 '%s' got '%s'", want, got)
	}
}
