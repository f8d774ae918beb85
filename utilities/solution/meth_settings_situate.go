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

import "fmt"

const defaultAckDeadlineSeconds = 30
const defaultLogsDeleteAgeInDays = 365
const defaultDocumentDropboxDeleteAgeInDays = 30
const defaultViewsIntervalDays = 365
const defaultTopN = 5
const defaultMaxRequestAgeSeconds = 3600
const defaultScannerBufferSizeKiloBytes = 64
const defaultSchedulerJobName = "daily-log-analysis"
const defaultSchedule = "0 6 * * *"
const defaultLogSinkName = "request-logs-to-gcs"
const defaultLogSinkFilter = `resource.type="gae_app"`

// Situate set settings from settings based on a given situation
// Situation is the environment name (string)
// Set settings are: projectID, buckets names, then the defaults for every
// optional value left empty, including the log analyzer input and output
// URIs that are derived from the logs bucket name
func (settings *Settings) Situate(environmentName string) {
	settings.Hosting.ProjectID = settings.Hosting.ProjectIDs[environmentName]
	settings.Hosting.GCS.Buckets.Logs.Name = settings.Hosting.GCS.Buckets.Logs.Names[environmentName]
	settings.Hosting.GCS.Buckets.DocumentDropbox.Name = settings.Hosting.GCS.Buckets.DocumentDropbox.Names[environmentName]

	if settings.Hosting.Pubsub.AckDeadlineSeconds == 0 {
		settings.Hosting.Pubsub.AckDeadlineSeconds = defaultAckDeadlineSeconds
	}
	if settings.Hosting.GCS.Buckets.Logs.DeleteAgeInDays == 0 {
		settings.Hosting.GCS.Buckets.Logs.DeleteAgeInDays = defaultLogsDeleteAgeInDays
	}
	if settings.Hosting.GCS.Buckets.DocumentDropbox.DeleteAgeInDays == 0 {
		settings.Hosting.GCS.Buckets.DocumentDropbox.DeleteAgeInDays = defaultDocumentDropboxDeleteAgeInDays
	}
	if settings.Hosting.Bigquery.ViewsIntervalDays == 0 {
		settings.Hosting.Bigquery.ViewsIntervalDays = defaultViewsIntervalDays
	}
	if settings.LogAnalyzer.TopN == 0 {
		settings.LogAnalyzer.TopN = defaultTopN
	}
	if settings.LogAnalyzer.MaxRequestAgeSeconds == 0 {
		settings.LogAnalyzer.MaxRequestAgeSeconds = defaultMaxRequestAgeSeconds
	}
	if settings.LogAnalyzer.ScannerBufferSizeKiloBytes == 0 {
		settings.LogAnalyzer.ScannerBufferSizeKiloBytes = defaultScannerBufferSizeKiloBytes
	}
	if settings.LogAnalyzer.InputURI == "" {
		settings.LogAnalyzer.InputURI = fmt.Sprintf("gs://%s/access.log", settings.Hosting.GCS.Buckets.Logs.Name)
	}
	if settings.LogAnalyzer.OutputURI == "" {
		settings.LogAnalyzer.OutputURI = fmt.Sprintf("gs://%s/output/results.txt", settings.Hosting.GCS.Buckets.Logs.Name)
	}
	if settings.LogAnalyzer.Scheduler.JobName == "" {
		settings.LogAnalyzer.Scheduler.JobName = defaultSchedulerJobName
	}
	if settings.LogAnalyzer.Scheduler.Schedule == "" {
		settings.LogAnalyzer.Scheduler.Schedule = defaultSchedule
	}
	if settings.LogAnalyzer.LogSink.Name == "" {
		settings.LogAnalyzer.LogSink.Name = defaultLogSinkName
	}
	if settings.LogAnalyzer.LogSink.Filter == "" {
		settings.LogAnalyzer.LogSink.Filter = defaultLogSinkFilter
	}
}
