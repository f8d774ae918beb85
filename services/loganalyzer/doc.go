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

/*
Package loganalyzer ranks the most common HTTP response codes found in request logs

The "Extract Logs UX" pipeline streams log lines from a local file or a GCS
object, extracts the response code of each request line, counts the codes,
keeps the top ones, and writes "code|count" lines to a local file, a GCS
object, or a BigQuery table.

Scenarios

Default: run the analysis in process and block until the results are written.

-trigger: publish an analysis request on the analysis topic and return.

-worker: pull analysis requests and run one analysis per request.

-setup: deploy the prerequisites: logs bucket, request log sink, analysis
topic and subscription, BigQuery dataset and results table, scheduler job.

Implementation example

 package main
 import (
     "context"
     "log"

     "github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/services/loganalyzer"
 )
 var global loganalyzer.Global
 var ctx = context.Background()

 func init() {
     loganalyzer.Initialize(ctx, &global)
 }

 func main() {
     if err := loganalyzer.LogAnalyzer(&global); err != nil {
         log.Fatalln(err)
     }
 }

*/
package loganalyzer
