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

import (
	"bufio"
	"fmt"
	"io"
)

// Analyze streams the log lines of a reader through extract and count, then
// ranks the up to topN most common response codes
// scannerBufferSizeKiloBytes bounds the longest accepted log line
func Analyze(reader io.Reader, topN int, scannerBufferSizeKiloBytes int64) (topCodes []CodeCount, err error) {
	counter := NewCounter()
	scanner := bufio.NewScanner(reader)
	scannerBufferSize := int(scannerBufferSizeKiloBytes) * 1024
	scanner.Buffer(make([]byte, scannerBufferSize), scannerBufferSize)
	for scanner.Scan() {
		counter.AddLine(scanner.Text())
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Err %v", err)
	}
	return TopCodes(counter.Counts(), topN), nil
}
