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

import "sort"

// TopCodes returns the up to n most common response codes, most common first
// Equal counts are ordered by code ascending so the result does not depend on
// the map iteration order
func TopCodes(counts map[string]uint64, n int) (topCodes []CodeCount) {
	if n <= 0 {
		return nil
	}
	topCodes = make([]CodeCount, 0, len(counts))
	for code, count := range counts {
		topCodes = append(topCodes, CodeCount{Code: code, Count: count})
	}
	sort.Slice(topCodes, func(i, j int) bool {
		if topCodes[i].Count != topCodes[j].Count {
			return topCodes[i].Count > topCodes[j].Count
		}
		return topCodes[i].Code < topCodes[j].Code
	})
	if len(topCodes) > n {
		topCodes = topCodes[:n]
	}
	return topCodes
}
