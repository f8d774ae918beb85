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
	"encoding/base64"
	"fmt"
	"net/url"
	"time"
)

// StringToSign assemble the canonical request representation covered by the signature
// Resource is the path part of the URL, like /bucketName/objectName
// ContentMD5 and contentType may be empty, their lines stay in place anyway
func StringToSign(verb string, contentMD5 string, contentType string, expires int64, resource string) string {
	return fmt.Sprintf("%s\n%s\n%s\n%d\n%s", verb, contentMD5, contentType, expires, resource)
}

// SignedURL build a URL granting the bearer a time limited access to one object
// The signature is RSA-SHA256 over the canonical string, base64 encoded
func (urlSigner *URLSigner) SignedURL(verb string, resource string, contentMD5 string, contentType string, expires time.Time) (signedURL string, err error) {
	expiresEpoch := expires.Unix()
	stringToSign := StringToSign(verb, contentMD5, contentType, expiresEpoch, resource)
	hashed := sha256.Sum256([]byte(stringToSign))
	signatureBytes, err := rsa.SignPKCS1v15(rand.Reader, urlSigner.PrivateKey, crypto.SHA256, hashed[:])
	if err != nil {
		return "", fmt.Errorf("rsa.SignPKCS1v15 %v", err)
	}
	signature := base64.StdEncoding.EncodeToString(signatureBytes)
	signedURL = fmt.Sprintf("%s%s?GoogleAccessId=%s&Expires=%d&Signature=%s",
		StorageEndpoint,
		resource,
		url.QueryEscape(urlSigner.GoogleAccessID),
		expiresEpoch,
		url.QueryEscape(signature))
	return signedURL, nil
}
