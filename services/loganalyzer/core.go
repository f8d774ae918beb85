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
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/storage"

	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/ffo"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/logging"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/solution"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/validater"
)

// Global structure for global variables
type Global struct {
	bigqueryClient *bigquery.Client
	commands       struct {
		Setup   bool
		Trigger bool
		Worker  bool
	}
	ctx              context.Context
	environment      string
	inputURI         string
	instanceName     string
	microserviceName string
	outputURI        string
	pubsubClient     *pubsub.Client
	settings         solution.Settings
	storageClient    *storage.Client
}

// Initialize is to be executed in the init() function of the cli binary
func Initialize(ctx context.Context, global *Global) {
	log.SetFlags(0)
	global.ctx = ctx
	global.microserviceName = "loganalyzer"
}

// LogAnalyzer runs the log analyzer cli: direct analysis by default, else one of setup, trigger, worker
func LogAnalyzer(global *Global) (err error) {
	checkArguments(global)
	global.instanceName = fmt.Sprintf("%s-%s", global.microserviceName, global.environment)

	err = ffo.ReadUnmarshalYAML(solution.SettingsFileName, &global.settings)
	if err != nil {
		return fmt.Errorf("ffo.ReadUnmarshalYAML %s %v", solution.SettingsFileName, err)
	}
	global.settings.Situate(global.environment)
	err = validater.ValidateStruct(&global.settings, "solutionSettings")
	if err != nil {
		return err
	}
	if global.inputURI == "" {
		global.inputURI = global.settings.LogAnalyzer.InputURI
	}
	if global.outputURI == "" {
		global.outputURI = global.settings.LogAnalyzer.OutputURI
	}
	global.outputURI = situateOutputURI(global.outputURI)

	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          "coldstart",
		Description:      fmt.Sprintf("input %s output %s", global.inputURI, global.outputURI),
	})

	switch {
	case global.commands.Setup:
		return setup(global)
	case global.commands.Worker:
		return worker(global)
	case global.commands.Trigger:
		return trigger(global)
	default:
		return runAnalysis(global, global.inputURI, global.outputURI)
	}
}
