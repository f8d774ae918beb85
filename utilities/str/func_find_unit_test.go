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

package str

import (
	"testing"
)

func TestUnitFind(t *testing.T) {
	var testCases = []struct {
		name       string
		slice      []string
		val        string
		shouldPass bool
	}{
		{
			name: "findResponseCodeInSlice",
			slice: []string{
				"200", "404", "503",
			},
			val:        "404",
			shouldPass: true,
		},
		{
			name: "doNotFindResponseCodeInSlice",
			slice: []string{
				"200", "404", "503",
			},
			val:        "302",
			shouldPass: false,
		},
		{
			name:       "doNotFindInEmptySlice",
			slice:      []string{},
			val:        "200",
			shouldPass: false,
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := Find(tc.slice, tc.val)
			if tc.shouldPass != result {
				t.Errorf("Want %v got %v for value '%s' in slice %v", tc.shouldPass, result, tc.val, tc.slice)
			}
		})
	}
}
