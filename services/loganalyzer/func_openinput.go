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

package loganalyzer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"

	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/gcs"
)

// openInput opens the log lines to analyze, from a local file or a GCS object
func openInput(global *Global, inputURI string) (readCloser io.ReadCloser, err error) {
	if strings.HasPrefix(inputURI, gcs.URIPrefix) {
		bucketName, objectName, err := gcs.ParseURI(inputURI)
		if err != nil {
			return nil, err
		}
		if global.storageClient == nil {
			global.storageClient, err = storage.NewClient(global.ctx)
			if err != nil {
				return nil, fmt.Errorf("storage.NewClient %v", err)
			}
		}
		storageObjectReader, err := global.storageClient.Bucket(bucketName).Object(objectName).NewReader(global.ctx)
		if err != nil {
			return nil, fmt.Errorf("storageObject.NewReader %s %v", inputURI, err)
		}
		return storageObjectReader, nil
	}
	file, err := os.Open(inputURI)
	if err != nil {
		return nil, fmt.Errorf("os.Open %s %v", inputURI, err)
	}
	return file, nil
}
