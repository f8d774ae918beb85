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

// Counter accumulates response code counts line by line
// The zero value is not usable, get one with NewCounter
type Counter struct {
	counts map[string]uint64
}

// NewCounter returns an empty counter
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]uint64)}
}

// AddLine extracts the response code of one log line and counts it
// Lines without a response code leave the counter unchanged
func (counter *Counter) AddLine(line string) {
	code, ok := ExtractResponseCode(line)
	if !ok {
		return
	}
	counter.counts[code]++
}

// AddCode counts one already extracted response code
func (counter *Counter) AddCode(code string) {
	counter.counts[code]++
}

// Counts returns the accumulated counts, one entry per distinct code
func (counter *Counter) Counts() map[string]uint64 {
	return counter.counts
}

// CountResponseCodes counts a slice of extracted response codes
func CountResponseCodes(codes []string) map[string]uint64 {
	counter := NewCounter()
	for _, code := range codes {
		counter.AddCode(code)
	}
	return counter.Counts()
}
