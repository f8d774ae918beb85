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

package gcs

import "testing"

func TestUnitParseURI(t *testing.T) {
	var testCases = []struct {
		name           string
		uri            string
		wantBucketName string
		wantObjectName string
		wantError      bool
	}{
		{
			name:           "defaultInput",
			uri:            "gs://lunchmates_logs/access.log",
			wantBucketName: "lunchmates_logs",
			wantObjectName: "access.log",
		},
		{
			name:           "nestedObjectName",
			uri:            "gs://lunchmates_logs/output/results.txt",
			wantBucketName: "lunchmates_logs",
			wantObjectName: "output/results.txt",
		},
		{
			name:      "localPath",
			uri:       "/var/log/access.log",
			wantError: true,
		},
		{
			name:      "bucketOnly",
			uri:       "gs://lunchmates_logs",
			wantError: true,
		},
		{
			name:      "emptyObjectName",
			uri:       "gs://lunchmates_logs/",
			wantError: true,
		},
		{
			name:      "emptyBucketName",
			uri:       "gs:///access.log",
			wantError: true,
		},
		{
			name:      "empty",
			uri:       "",
			wantError: true,
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			bucketName, objectName, err := ParseURI(tc.uri)
			if tc.wantError {
				if err == nil {
					t.Errorf("Want error got bucket '%s' object '%s'", bucketName, objectName)
				}
				return
			}
			if err != nil {
				t.Errorf("Want no error got '%v'", err)
				return
			}
			if bucketName != tc.wantBucketName {
				t.Errorf("Want bucket name '%s' got '%s'", tc.wantBucketName, bucketName)
			}
			if objectName != tc.wantObjectName {
				t.Errorf("Want object name '%s' got '%s'", tc.wantObjectName, objectName)
			}
		})
	}
}
