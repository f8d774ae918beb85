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
Package hal http access log analysis

The four stages of the log analyzer, as plain functions with no execution
engine behind them:

1. Extract the HTTP response code of each log line, lines without one are
skipped, not errors

2. Count occurrences per distinct response code. Counting only depends on
the multiset of observed codes, never on their order, so any partitioning of
the input yields the same counts

3. Rank the top N codes, most common first. Equal counts are ordered by code
so two runs over the same input render byte identical results

4. Format each ranked pair as code|count

`Analyze` chains the stages over a line reader.
*/
package hal
