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
Package logging renders structured log entries

One log line = one JSON document, so that Cloud Logging parses severity and
labels when the snippets run on GCP, while the same lines stay readable on a
laptop terminal.

Use with the standard log package and log.SetFlags(0) so no prefix breaks the
JSON.
*/
package logging
