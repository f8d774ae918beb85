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
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUnitSignedPut(t *testing.T) {
	var gotMethod, gotContentType, gotContentMD5, gotBody string
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotContentMD5 = r.Header.Get("Content-MD5")
		body, err := ioutil.ReadAll(r.Body)
		if err != nil {
			t.Errorf("ioutil.ReadAll %v", err)
		}
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer testServer.Close()

	err := signedPut(testServer.URL, demoContent, demoContentType)
	if err != nil {
		t.Fatalf("signedPut %v", err)
	}
	if gotMethod != http.MethodPut {
		t.Errorf("Want method 'PUT' have '%s'", gotMethod)
	}
	if gotContentType != "text/plain" {
		t.Errorf("Want Content-Type 'text/plain' have '%s'", gotContentType)
	}
	if gotContentMD5 != "7Qdih1MuhjZehB6Sv8UNjA==" {
		t.Errorf("Want Content-MD5 '7Qdih1MuhjZehB6Sv8UNjA==' have '%s'", gotContentMD5)
	}
	if gotBody != "Hello World!" {
		t.Errorf("Want body 'Hello World!' have '%s'", gotBody)
	}
}

func TestUnitSignedPutErrorStatus(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("SignatureDoesNotMatch"))
	}))
	defer testServer.Close()

	err := signedPut(testServer.URL, demoContent, demoContentType)
	if err == nil {
		t.Fatal("Want an error on status 403 have nil")
	}
	if !strings.Contains(err.Error(), "Error 403") {
		t.Errorf("Want the status code in '%v'", err)
	}
	if !strings.Contains(err.Error(), "SignatureDoesNotMatch") {
		t.Errorf("Want the response content in '%v'", err)
	}
}
