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
Package nextbigthing Go companion code for Building Your Next Big Thing with Google Cloud Platform

Apress, ISBN 978-1-4842-1005-5. The snippets of the book reworked as one
coherent module around the LunchMates sample solution: same settings file,
same structured logging, one command line binary per service.

## What

1. loganalyzer ranks the most common HTTP response codes found in request logs
   - batch from a local file or a storage object, results to a file, an object or BigQuery
   - trigger and worker modes queue analysis requests through Pub/Sub
2. planetfeed walks through the Pub/Sub lifecycle with habitable planet candidates
   - setup, publish, pull with FireStore dedup, cleanup
3. signedurls grants time limited access to document dropbox objects
   - no authorization mechanism needed once the URL is signed
4. apiauth accesses the storage API as the application itself
   - Application Default Credentials or a service account JSON key

## Why

- The book chapters leave each snippet standing alone
- Operating them as one solution needs shared settings, logging and deployment
*/
package nextbigthing
