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
	"fmt"
	"io/ioutil"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
)

// GetJWTConfig build a JWT config from a service account JSON key file
// The config carries the client email and the private key, used for signing
func GetJWTConfig(keyJSONFilePath string, scopes []string) (jwtConfig *jwt.Config, err error) {
	keyJSONdata, err := ioutil.ReadFile(keyJSONFilePath)
	if err != nil {
		return jwtConfig, fmt.Errorf("ioutil.ReadFile(keyJSONFilePath) %v", err)
	}
	jwtConfig, err = google.JWTConfigFromJSON(keyJSONdata, scopes...)
	if err != nil {
		return jwtConfig, fmt.Errorf("google.JWTConfigFromJSON: %v", err)
	}
	return jwtConfig, nil
}
