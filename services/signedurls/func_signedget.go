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
)

// signedGet reads the object back through a signed GET url and prints its content
func signedGet(signedGetURL string) (err error) {
	response, err := http.Get(signedGetURL)
	if err != nil {
		return fmt.Errorf("http.Get %v", err)
	}
	defer response.Body.Close()
	body, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("ioutil.ReadAll %v", err)
	}
	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("Error %d - %s", response.StatusCode, string(body))
	}
	log.Printf("Read contents of file:\n%s", string(body))
	return nil
}
