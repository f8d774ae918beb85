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

// SettingsFileName name of the non versioned settings file on the root of the repository
const SettingsFileName = "solution.yaml"

// DevelopmentEnvironmentName is the default environment
const DevelopmentEnvironmentName = "dev"

// ProductionEnvironmentName must be explicitly requested with the environment flag
const ProductionEnvironmentName = "prd"
