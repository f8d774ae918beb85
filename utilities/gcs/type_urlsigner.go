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
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

// StorageEndpoint to be used in signed URLs
const StorageEndpoint = "https://storage.googleapis.com"

// URLSigner signs Google Cloud Storage URLs with a service account RSA private key
// GoogleAccessID is the service account client email
type URLSigner struct {
	GoogleAccessID string
	PrivateKey     *rsa.PrivateKey
}

// NewURLSigner create a URLSigner from a client email and a PEM encoded private key
// Accepts PKCS1 blocks and the PKCS8 blocks found in service account JSON key files
func NewURLSigner(googleAccessID string, privateKeyPEM []byte) (urlSigner *URLSigner, err error) {
	block, _ := pem.Decode(privateKeyPEM)
	if block == nil {
		return nil, fmt.Errorf("pem.Decode no PEM block found")
	}
	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		parsedKey, errPKCS8 := x509.ParsePKCS8PrivateKey(block.Bytes)
		if errPKCS8 != nil {
			return nil, fmt.Errorf("x509.ParsePKCS1PrivateKey %v x509.ParsePKCS8PrivateKey %v", err, errPKCS8)
		}
		rsaKey, ok := parsedKey.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("private key is not an RSA key")
		}
		privateKey = rsaKey
	}
	return &URLSigner{GoogleAccessID: googleAccessID, PrivateKey: privateKey}, nil
}
