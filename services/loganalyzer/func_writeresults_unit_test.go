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

package loganalyzer

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/hal"
)

func TestUnitFormatLines(t *testing.T) {
	var testCases = []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "rankedResults",
			lines: []string{"200|5", "404|2", "500|1"},
			want:  "200|5\n404|2\n500|1\n",
		},
		{
			name:  "singleResult",
			lines: []string{"200|1"},
			want:  "200|1\n",
		},
		{
			name:  "noResult",
			lines: nil,
			want:  "",
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := formatLines(tc.lines)
			if got != tc.want {
				t.Errorf("Want '%s' got '%s'", tc.want, got)
			}
		})
	}
}

func TestUnitWriteResultsLocalFile(t *testing.T) {
	global := &Global{}
	topCodes := []hal.CodeCount{
		{Code: "200", Count: 2},
		{Code: "404", Count: 1},
	}
	lines := hal.FormatResults(topCodes)
	outputPath := filepath.Join(t.TempDir(), "results.txt")

	err := writeResults(global, "run1", "access.log", outputPath, topCodes, lines)
	if err != nil {
		t.Fatalf("Want no error got '%v'", err)
	}
	written, err := ioutil.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Want a results file got '%v'", err)
	}
	want := "200|2\n404|1\n"
	if string(written) != want {
		t.Errorf("Want '%s' got '%s'", want, string(written))
	}
}

func TestUnitWriteResultsRejectsMalformedBigqueryURI(t *testing.T) {
	var testCases = []struct {
		name      string
		outputURI string
	}{
		{
			name:      "missingTableName",
			outputURI: "bq://lunchmates",
		},
		{
			name:      "emptyTableName",
			outputURI: "bq://lunchmates.",
		},
		{
			name:      "emptyDatasetName",
			outputURI: "bq://.results",
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			global := &Global{}
			err := writeResults(global, "run1", "access.log", tc.outputURI, nil, nil)
			if err == nil {
				t.Errorf("Want an error on '%s' got none", tc.outputURI)
			}
		})
	}
}
