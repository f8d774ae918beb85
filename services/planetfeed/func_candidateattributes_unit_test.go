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

package planetfeed

import (
	"testing"
)

func TestUnitCandidateAttributes(t *testing.T) {
	candidates := candidateAttributes()
	if len(candidates) != 2 {
		t.Fatalf("Want 2 candidates have %d", len(candidates))
	}
	wantNames := []string{"KOI-3284.01", "KOI-4742.01"}
	wantKeys := []string{"timestamp", "candidate_name", "right_ascension", "declination", "telescope"}
	for i, attributes := range candidates {
		if attributes["candidate_name"] != wantNames[i] {
			t.Errorf("Want candidate_name '%s' have '%s'", wantNames[i], attributes["candidate_name"])
		}
		for _, key := range wantKeys {
			if attributes[key] == "" {
				t.Errorf("Candidate %s misses the %s attribute", wantNames[i], key)
			}
		}
	}
}
