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

package loganalyzer

import (
	"flag"
	"log"

	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/solution"
)

// checkArguments check cli arguments and set the scenario
func checkArguments(global *Global) {
	flag.BoolVar(&global.commands.Setup, "setup", false, "deploy the prerequisites: logs bucket, request log sink, analysis topic and subscription, BigQuery dataset and results table, scheduler job")
	flag.BoolVar(&global.commands.Trigger, "trigger", false, "publish an analysis request on the analysis topic and return")
	flag.BoolVar(&global.commands.Worker, "worker", false, "pull analysis requests and run one analysis per request")
	flag.StringVar(&global.environment, "environment", solution.DevelopmentEnvironmentName, "Environment name")
	flag.StringVar(&global.inputURI, "input", "", "log lines to analyze: a local path or gs://<bucket>/<object>")
	flag.StringVar(&global.outputURI, "output", "", "where to write results: a local path, gs://<bucket>/<object>, or bq://<dataset>.<table>")
	flag.Parse()

	if global.commands.Trigger && global.commands.Worker {
		log.Fatalln("Choose either trigger or worker, not both")
	}
	if global.commands.Setup && (global.commands.Trigger || global.commands.Worker) {
		log.Fatalln("Setup does not combine with trigger or worker")
	}
}
