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

package signedurls

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUnitSignedGet(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Want method 'GET' have '%s'", r.Method)
		}
		fmt.Fprint(w, demoContent)
	}))
	defer testServer.Close()

	err := signedGet(testServer.URL)
	if err != nil {
		t.Fatalf("signedGet %v", err)
	}
}

func TestUnitSignedGetErrorStatus(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("No such object"))
	}))
	defer testServer.Close()

	err := signedGet(testServer.URL)
	if err == nil {
		t.Fatal("Want an error on status 404 have nil")
	}
	if !strings.Contains(err.Error(), "Error 404") {
		t.Errorf("Want the status code in '%v'", err)
	}
}
