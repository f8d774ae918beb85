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
	"testing"
)

func TestUnitExtractResponseCode(t *testing.T) {
	var testCases = []struct {
		name     string
		line     string
		wantCode string
		wantOk   bool
	}{
		{
			name:     "http11Status200",
			line:     `127.0.0.1 - - [20/May/2015:21:05:01 +0000] "GET / HTTP/1.1" 200 2930`,
			wantCode: "200",
			wantOk:   true,
		},
		{
			name:     "http10Status404",
			line:     `"GET /lunch/nearby HTTP/1.0" 404 512`,
			wantCode: "404",
			wantOk:   true,
		},
		{
			name:     "http2Status503",
			line:     `"POST /meetings HTTP/2" 503 0`,
			wantCode: "503",
			wantOk:   true,
		},
		{
			name:     "status3xx",
			line:     `"GET /old HTTP/1.1" 301 -`,
			wantCode: "301",
			wantOk:   true,
		},
		{
			name:   "noQuoteAfterProtocol",
			line:   `GET / HTTP/1.1 200`,
			wantOk: false,
		},
		{
			name:   "informationalClassIsNotExtracted",
			line:   `"GET / HTTP/1.1" 101 0`,
			wantOk: false,
		},
		{
			name:   "sixHundredClassIsNotExtracted",
			line:   `"GET / HTTP/1.1" 600 0`,
			wantOk: false,
		},
		{
			name:   "emptyLine",
			line:   "",
			wantOk: false,
		},
		{
			name:   "lineWithoutRequest",
			line:   `time="2015-05-20" level=info msg="healthcheck ok"`,
			wantOk: false,
		},
		{
			name:     "firstOfTwoStatusesWins",
			line:     `"GET /a HTTP/1.1" 200 12 "GET /b HTTP/1.1" 404 7`,
			wantCode: "200",
			wantOk:   true,
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			code, ok := ExtractResponseCode(tc.line)
			if tc.wantOk != ok {
				t.Errorf("Want ok %v got %v for line '%s'", tc.wantOk, ok, tc.line)
			}
			if tc.wantOk && tc.wantCode != code {
				t.Errorf("Want code '%s' got '%s' for line '%s'", tc.wantCode, code, tc.line)
			}
		})
	}
}
