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

package planetfeed

import (
	"flag"

	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/solution"
)

// checkArguments check cli arguments and set the scenario, no flag means the full walkthrough
func checkArguments(global *Global) {
	flag.BoolVar(&global.commands.Setup, "setup", false, "create the habitable planets topic and its pull subscription")
	flag.BoolVar(&global.commands.Publish, "publish", false, "publish the two Kepler candidate messages")
	flag.BoolVar(&global.commands.Pull, "pull", false, "pull pending messages, record new candidates in FireStore, acknowledge the batch")
	flag.BoolVar(&global.commands.Cleanup, "cleanup", false, "delete the subscription, then the topic")
	flag.StringVar(&global.environment, "environment", solution.DevelopmentEnvironmentName, "Environment name")
	flag.Parse()
}
