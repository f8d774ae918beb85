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

package deploy

// GetRequiredAPIList returns the list of APIs the snippets call on the
// hosting project. Enabling them is a manual step done once in the console
func GetRequiredAPIList() []string {
	return []string{
		"bigquery.googleapis.com",
		"cloudscheduler.googleapis.com", // scheduler jobs need an App Engine application in the project, another one time manual step
		"firestore.googleapis.com",
		"logging.googleapis.com",
		"pubsub.googleapis.com",
		"storage-api.googleapis.com",
		"storage-component.googleapis.com"}
}
