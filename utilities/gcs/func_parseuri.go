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
	"fmt"
	"strings"
)

// URIPrefix for Google Cloud Storage URIs
const URIPrefix = "gs://"

// ParseURI splits a gs://bucketName/objectName URI into bucket name and object name
func ParseURI(uri string) (bucketName string, objectName string, err error) {
	if !strings.HasPrefix(uri, URIPrefix) {
		return "", "", fmt.Errorf("not a %s URI '%s'", URIPrefix, uri)
	}
	parts := strings.SplitN(strings.TrimPrefix(uri, URIPrefix), "/", 2)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("missing bucket or object name '%s'", uri)
	}
	return parts[0], parts[1], nil
}
