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

package signedurls

import (
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"strings"

	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/gcs"
)

// signedPut uploads the content through a signed PUT url
// The headers must match the values covered by the signature
func signedPut(signedPutURL string, content string, contentType string) (err error) {
	request, err := http.NewRequest(http.MethodPut, signedPutURL, strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("http.NewRequest %v", err)
	}
	request.Header.Set("Content-Type", contentType)
	request.Header.Set("Content-Length", fmt.Sprintf("%d", len(content)))
	request.Header.Set("Content-MD5", gcs.ContentMD5([]byte(content)))

	response, err := http.DefaultClient.Do(request)
	if err != nil {
		return fmt.Errorf("http.DefaultClient.Do %v", err)
	}
	defer response.Body.Close()
	body, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("ioutil.ReadAll %v", err)
	}
	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("Error %d - %s", response.StatusCode, string(body))
	}
	log.Println("Put file successfully.")
	return nil
}
