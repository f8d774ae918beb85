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

const candidateData = "Kepler: Add another potentially habitable planet to my list!"

// candidateAttributes returns the attribute maps for the two Kepler objects of interest used by the walkthrough
func candidateAttributes() []map[string]string {
	return []map[string]string{
		{
			"timestamp":       "1749099512",
			"candidate_name":  "KOI-3284.01",
			"right_ascension": "18h 46m 35s",
			"declination":     "+41deg 57m 3.93s",
			"telescope":       "Kepler",
		},
		{
			"timestamp":       "1749096501",
			"candidate_name":  "KOI-4742.01",
			"right_ascension": "19h 01m 27.98s",
			"declination":     "+39deg 16m 48.30s",
			"telescope":       "Kepler",
		},
	}
}
