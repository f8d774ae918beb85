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
Package services structure

All service packages share a consistent structure

## Two functions and one type

### `Initialize` function

- Goal
  - Prepare what every run needs before arguments are even parsed
- Implementation
  - Is executed once, from the `init()` function of the cli binary
  - Sets the plain log format and caches the execution context
  - Cached objects and retreived settings are exposed in one global variable named `global`

### `Global` type

- A `struct` to define a global variable carrying cached clients and retreived settings, filled by the `Initialize` and dispatcher functions

### Dispatcher function

- Goal
  - Execute the operations a given service is targetted to do, described before the `package` key word
- Implementation
  - Is the one exported function named after the service, like `LogAnalyzer` or `PlanetFeed`
  - Checks the cli arguments, reads and situates the solution settings, then runs the requested scenario
  - Clients are constructed on first need and cached in the global variable, so a local run needs no credentials

*/
package services
