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

package aut

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"
)

func TestUnitGetJWTConfig(t *testing.T) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey %v", err)
	}
	pkcs8Bytes, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		t.Fatalf("x509.MarshalPKCS8PrivateKey %v", err)
	}
	privateKeyPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: pkcs8Bytes})

	clientEmail := "lunchmates@earth-is-a-strange-place.iam.gserviceaccount.com"
	keyJSONdata, err := json.Marshal(map[string]string{
		"type":         "service_account",
		"client_email": clientEmail,
		"private_key":  string(privateKeyPEM),
		"token_uri":    "https://oauth2.googleapis.com/token",
	})
	if err != nil {
		t.Fatalf("json.Marshal %v", err)
	}
	keyJSONFilePath := filepath.Join(t.TempDir(), "key.json")
	err = ioutil.WriteFile(keyJSONFilePath, keyJSONdata, 0600)
	if err != nil {
		t.Fatalf("ioutil.WriteFile %v", err)
	}

	scopes := []string{"https://www.googleapis.com/auth/devstorage.read_only"}
	jwtConfig, err := GetJWTConfig(keyJSONFilePath, scopes)
	if err != nil {
		t.Fatalf("GetJWTConfig %v", err)
	}
	if jwtConfig.Email != clientEmail {
		t.Errorf("Want email '%s' got '%s'", clientEmail, jwtConfig.Email)
	}
	if string(jwtConfig.PrivateKey) != string(privateKeyPEM) {
		t.Errorf("Want the private key carried over verbatim")
	}
	if len(jwtConfig.Scopes) != 1 || jwtConfig.Scopes[0] != scopes[0] {
		t.Errorf("Want scopes '%v' got '%v'", scopes, jwtConfig.Scopes)
	}
}

func TestUnitGetJWTConfigMissingFile(t *testing.T) {
	_, err := GetJWTConfig(filepath.Join(t.TempDir(), "absent.json"), nil)
	if err == nil {
		t.Errorf("Want error on missing key file got nil")
	}
	if !strings.Contains(err.Error(), "no such file") {
		t.Errorf("Want a file error got '%v'", err)
	}
}
