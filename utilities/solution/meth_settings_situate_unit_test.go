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

package solution

import (
	"log"
	"strconv"
	"testing"

	"gopkg.in/yaml.v2"
)

func TestUnitSituate(t *testing.T) {
	type testcases []struct {
		Name        string
		Settings    Settings
		Environment string
		Want        map[string]string
	}
	var testCases testcases

	yamlBytes := []byte(`---
- name: set1
  settings:
    hosting:
      projectIDs:
        dev: lunchmates-dev
        prd: earth-is-a-strange-place
      gcs:
        buckets:
          logs:
            names:
              dev: lunchmates_logs_dev
              prd: lunchmates_logs
          documentDropbox:
            names:
              dev: lunchmates_document_dropbox_dev
              prd: lunchmates_document_dropbox
  environment: prd
  want:
    projectID: earth-is-a-strange-place
    logsBucketName: lunchmates_logs
    documentDropboxBucketName: lunchmates_document_dropbox
    inputURI: gs://lunchmates_logs/access.log
    outputURI: gs://lunchmates_logs/output/results.txt
    ackDeadlineSeconds: 30
    logsDeleteAgeInDays: 365
    documentDropboxDeleteAgeInDays: 30
    topN: 5
    maxRequestAgeSeconds: 3600
    schedulerJobName: daily-log-analysis
- name: set2
  settings:
    hosting:
      pubsub:
        ackDeadlineSeconds: 120
      gcs:
        buckets:
          logs:
            deleteAgeInDays: 7
    logAnalyzer:
      inputURI: /var/log/access.log
      outputURI: results
      topN: 3
      maxRequestAgeSeconds: 60
      scheduler:
        jobName: hourly-log-analysis
        schedule: "0 * * * *"
  environment: dev
  want:
    ackDeadlineSeconds: 120
    logsDeleteAgeInDays: 7
    topN: 3
    maxRequestAgeSeconds: 60
    inputURI: /var/log/access.log
    outputURI: results
    schedulerJobName: hourly-log-analysis`)

	err := yaml.Unmarshal(yamlBytes, &testCases)
	if err != nil {
		log.Fatalf("Unable to unmarshal yaml test data %v", err)
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		tc.Settings.Situate(tc.Environment)
		for key, wantedValue := range tc.Want {
			key := key
			wantedValue := wantedValue
			testName := tc.Name + "-" + key
			t.Run(testName, func(t *testing.T) {
				t.Parallel()
				switch key {
				case "projectID":
					if wantedValue != tc.Settings.Hosting.ProjectID {
						t.Errorf("Want %s '%s' got '%s'", key, wantedValue, tc.Settings.Hosting.ProjectID)
					}
				case "logsBucketName":
					if wantedValue != tc.Settings.Hosting.GCS.Buckets.Logs.Name {
						t.Errorf("Want %s '%s' got '%s'", key, wantedValue, tc.Settings.Hosting.GCS.Buckets.Logs.Name)
					}
				case "documentDropboxBucketName":
					if wantedValue != tc.Settings.Hosting.GCS.Buckets.DocumentDropbox.Name {
						t.Errorf("Want %s '%s' got '%s'", key, wantedValue, tc.Settings.Hosting.GCS.Buckets.DocumentDropbox.Name)
					}
				case "inputURI":
					if wantedValue != tc.Settings.LogAnalyzer.InputURI {
						t.Errorf("Want %s '%s' got '%s'", key, wantedValue, tc.Settings.LogAnalyzer.InputURI)
					}
				case "outputURI":
					if wantedValue != tc.Settings.LogAnalyzer.OutputURI {
						t.Errorf("Want %s '%s' got '%s'", key, wantedValue, tc.Settings.LogAnalyzer.OutputURI)
					}
				case "ackDeadlineSeconds":
					wantedValueInt64, err := strconv.ParseInt(wantedValue, 10, 64)
					if err != nil {
						t.Errorf("Wanted value cannot be converted to int64 '%s'", wantedValue)
					}
					if wantedValueInt64 != tc.Settings.Hosting.Pubsub.AckDeadlineSeconds {
						t.Errorf("Want %s '%d' got '%d'", key, wantedValueInt64, tc.Settings.Hosting.Pubsub.AckDeadlineSeconds)
					}
				case "logsDeleteAgeInDays":
					wantedValueInt64, err := strconv.ParseInt(wantedValue, 10, 64)
					if err != nil {
						t.Errorf("Wanted value cannot be converted to int64 '%s'", wantedValue)
					}
					if wantedValueInt64 != tc.Settings.Hosting.GCS.Buckets.Logs.DeleteAgeInDays {
						t.Errorf("Want %s '%d' got '%d'", key, wantedValueInt64, tc.Settings.Hosting.GCS.Buckets.Logs.DeleteAgeInDays)
					}
				case "documentDropboxDeleteAgeInDays":
					wantedValueInt64, err := strconv.ParseInt(wantedValue, 10, 64)
					if err != nil {
						t.Errorf("Wanted value cannot be converted to int64 '%s'", wantedValue)
					}
					if wantedValueInt64 != tc.Settings.Hosting.GCS.Buckets.DocumentDropbox.DeleteAgeInDays {
						t.Errorf("Want %s '%d' got '%d'", key, wantedValueInt64, tc.Settings.Hosting.GCS.Buckets.DocumentDropbox.DeleteAgeInDays)
					}
				case "topN":
					wantedValueInt64, err := strconv.ParseInt(wantedValue, 10, 64)
					if err != nil {
						t.Errorf("Wanted value cannot be converted to int64 '%s'", wantedValue)
					}
					if wantedValueInt64 != tc.Settings.LogAnalyzer.TopN {
						t.Errorf("Want %s '%d' got '%d'", key, wantedValueInt64, tc.Settings.LogAnalyzer.TopN)
					}
				case "maxRequestAgeSeconds":
					wantedValueInt64, err := strconv.ParseInt(wantedValue, 10, 64)
					if err != nil {
						t.Errorf("Wanted value cannot be converted to int64 '%s'", wantedValue)
					}
					if wantedValueInt64 != tc.Settings.LogAnalyzer.MaxRequestAgeSeconds {
						t.Errorf("Want %s '%d' got '%d'", key, wantedValueInt64, tc.Settings.LogAnalyzer.MaxRequestAgeSeconds)
					}
				case "schedulerJobName":
					if wantedValue != tc.Settings.LogAnalyzer.Scheduler.JobName {
						t.Errorf("Want %s '%s' got '%s'", key, wantedValue, tc.Settings.LogAnalyzer.Scheduler.JobName)
					}
				default:
					t.Errorf("Unmanaged key '%s'", key)
				}
			})
		}
	}
}
