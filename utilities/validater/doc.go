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
Package validater helps to validate struct fields

Validation rules are declared on settings structs with the `valid` tag:

- isNotZeroValue rejects empty strings, zero int64, empty slices

- isAckDeadlineSeconds rejects PubSub ack deadlines outside 10 to 600 seconds

- isCronSchedule rejects strings that are not 5 fields unix-cron

Fields tagged `valid:"-"` are skipped.
*/
package validater
