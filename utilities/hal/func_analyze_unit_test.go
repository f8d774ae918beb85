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
	"reflect"
	"strings"
	"testing"
)

func TestUnitAnalyze(t *testing.T) {
	input := strings.Join([]string{
		`GET / HTTP/1.1" 200`,
		`GET /x HTTP/1.1" 200`,
		`GET /y HTTP/1.1" 404`,
	}, "\n")

	topCodes, err := Analyze(strings.NewReader(input), 5, 64)
	if err != nil {
		t.Fatalf("hal.Analyze %v", err)
	}
	want := []string{"200|2", "404|1"}
	got := FormatResults(topCodes)
	if !reflect.DeepEqual(want, got) {
		t.Errorf("Want results %v got %v", want, got)
	}
}

// Two runs over the same input render byte identical results
func TestUnitAnalyzeIsIdempotent(t *testing.T) {
	input := strings.Join([]string{
		`"GET / HTTP/1.1" 200 2930`,
		`"GET /lunch HTTP/1.1" 404 0`,
		`"GET / HTTP/1.1" 200 2930`,
		`"POST /mates HTTP/1.1" 503 0`,
		`"GET /favicon.ico HTTP/1.1" 404 0`,
		`no status here`,
		`"PUT /profile HTTP/1.1" 204 0`,
		`"GET /about HTTP/1.1" 304 0`,
		`"GET /terms HTTP/1.1" 301 0`,
	}, "\n")

	firstTopCodes, err := Analyze(strings.NewReader(input), 5, 64)
	if err != nil {
		t.Fatalf("hal.Analyze %v", err)
	}
	secondTopCodes, err := Analyze(strings.NewReader(input), 5, 64)
	if err != nil {
		t.Fatalf("hal.Analyze %v", err)
	}
	first := strings.Join(FormatResults(firstTopCodes), "\n")
	second := strings.Join(FormatResults(secondTopCodes), "\n")
	if first != second {
		t.Errorf("Want identical renderings over reruns, got '%s' then '%s'", first, second)
	}
	if len(firstTopCodes) != 5 {
		t.Errorf("Want 5 ranked codes from 6 distinct got %d", len(firstTopCodes))
	}
}

func TestUnitAnalyzeReportsOverlongLines(t *testing.T) {
	longLine := strings.Repeat("x", 4*1024)
	_, err := Analyze(strings.NewReader(longLine), 5, 1)
	if err == nil {
		t.Errorf("Want an error on a line longer than the scanner buffer, got nil")
	} else if !strings.Contains(err.Error(), "token too long") {
		t.Errorf("Want a 'token too long' error got '%v'", err)
	}
}
