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

package ffo

import (
	"fmt"
	"io/ioutil"

	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/str"
	"gopkg.in/yaml.v2"
)

// MarshalYAMLWrite marshal a value to YAML and write it to a given path, disclaimer on top
func MarshalYAMLWrite(path string, v interface{}) (err error) {
	bytes, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("yaml.Marshal %v", err)
	}
	err = ioutil.WriteFile(path, append([]byte(str.YAMLDisclaimer), bytes...), 0644)
	if err != nil {
		return fmt.Errorf("ioutil.WriteFile %s %v", path, err)
	}
	return nil
}
