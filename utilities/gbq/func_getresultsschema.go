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

package gbq

import "cloud.google.com/go/bigquery"

// GetResultsSchema defines results table schema
func GetResultsSchema() bigquery.Schema {
	return bigquery.Schema{
		{Name: "runID", Required: true, Type: bigquery.StringFieldType, Description: "Log analysis run identifier"},
		{Name: "runTime", Required: true, Type: bigquery.TimestampFieldType, Description: "When the analysis ran"},
		{Name: "rank", Required: true, Type: bigquery.IntegerFieldType, Description: "1 is the most frequent response code"},
		{Name: "responseCode", Required: true, Type: bigquery.StringFieldType},
		{Name: "count", Required: true, Type: bigquery.IntegerFieldType},
		{Name: "input", Required: false, Type: bigquery.StringFieldType, Description: "Analyzed access log URI"},
	}
}
