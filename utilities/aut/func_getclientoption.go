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
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

// GetClientOption build a clientOption carrying application credentials
// An empty keyJSONFilePath falls back on Application Default Credentials, so
// the same code runs on a workstation with a downloaded key and on App Engine
// or Compute Engine with the built in service account
func GetClientOption(ctx context.Context, keyJSONFilePath string, scopes []string) (clientOption option.ClientOption, err error) {
	if keyJSONFilePath == "" {
		credentials, err := google.FindDefaultCredentials(ctx, scopes...)
		if err != nil {
			return clientOption, fmt.Errorf("google.FindDefaultCredentials %v", err)
		}
		return option.WithCredentials(credentials), nil
	}
	jwtConfig, err := GetJWTConfig(keyJSONFilePath, scopes)
	if err != nil {
		return clientOption, err
	}
	httpClient := jwtConfig.Client(ctx)
	// Use client option as <api>.New(httpClient) constructors are deprecated
	clientOption = option.WithHTTPClient(httpClient)
	return clientOption, nil
}
