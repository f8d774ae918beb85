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

package deploy

import (
	"testing"

	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/str"
)

func TestUnitGetRequiredAPIList(t *testing.T) {
	var testCases = []struct {
		name        string
		wantAPIName string
	}{
		{"bigquery", "bigquery.googleapis.com"},
		{"cloudscheduler", "cloudscheduler.googleapis.com"},
		{"firestore", "firestore.googleapis.com"},
		{"logging", "logging.googleapis.com"},
		{"pubsub", "pubsub.googleapis.com"},
	}

	apiList := GetRequiredAPIList()
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if !str.Find(apiList, tc.wantAPIName) {
				t.Errorf("Want API '%s' in the required API list and is missing", tc.wantAPIName)
			}
		})
	}
}
