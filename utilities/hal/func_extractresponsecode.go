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

package hal

import "regexp"

// responseCodePattern matches the status that follows the protocol marker of
// a common log format request line, like `"GET / HTTP/1.1" 200`
// Only the 2xx to 5xx classes are considered response codes
var responseCodePattern = regexp.MustCompile(`HTTP[0-9./]{2,6}" ([2345][0-9][0-9])`)

// ExtractResponseCode returns the first HTTP response code of a log line
// Lines without one return ok false and are to be skipped silently
func ExtractResponseCode(line string) (code string, ok bool) {
	groups := responseCodePattern.FindStringSubmatch(line)
	if groups == nil {
		return "", false
	}
	return groups[1], true
}
