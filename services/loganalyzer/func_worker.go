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
	"encoding/json"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/pubsub"

	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/erm"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/logging"
)

// worker pulls analysis requests and runs one analysis per request, blocks until interrupted
func worker(global *Global) (err error) {
	if global.pubsubClient == nil {
		global.pubsubClient, err = pubsub.NewClient(global.ctx, global.settings.Hosting.ProjectID)
		if err != nil {
			return fmt.Errorf("pubsub.NewClient %v", err)
		}
	}
	subscriptionName := global.settings.Hosting.Pubsub.SubscriptionNames.LogAnalysisRequests
	subscription := global.pubsubClient.Subscription(subscriptionName)
	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          "start",
		Description:      fmt.Sprintf("worker on subscription %s", subscriptionName),
	})
	err = subscription.Receive(global.ctx, func(ctxMessage context.Context, pubSubMessage *pubsub.Message) {
		processAnalysisRequest(global, pubSubMessage)
	})
	if err != nil {
		return fmt.Errorf("subscription.Receive %v", err)
	}
	return nil
}

// processAnalysisRequest gates one message then runs the analysis
// Too old or unreadable requests are acknowledged and dropped, transient failures are nacked so the broker redelivers
func processAnalysisRequest(global *Global, pubSubMessage *pubsub.Message) {
	now := time.Now()
	d := now.Sub(pubSubMessage.PublishTime)
	log.Println(logging.Entry{
		MicroserviceName:           global.microserviceName,
		InstanceName:               global.instanceName,
		Environment:                global.environment,
		Severity:                   "NOTICE",
		Message:                    "start",
		TriggeringPubsubID:         pubSubMessage.ID,
		TriggeringPubsubTimestamp:  &pubSubMessage.PublishTime,
		TriggeringPubsubAgeSeconds: d.Seconds(),
		Now:                        &now,
	})

	if d.Seconds() > float64(global.settings.LogAnalyzer.MaxRequestAgeSeconds) {
		log.Println(logging.Entry{
			MicroserviceName:           global.microserviceName,
			InstanceName:               global.instanceName,
			Environment:                global.environment,
			Severity:                   "CRITICAL",
			Message:                    "noretry",
			Description:                "Pubsub message too old",
			TriggeringPubsubID:         pubSubMessage.ID,
			TriggeringPubsubTimestamp:  &pubSubMessage.PublishTime,
			TriggeringPubsubAgeSeconds: d.Seconds(),
			Now:                        &now,
		})
		pubSubMessage.Ack()
		return
	}

	var analysisRequest AnalysisRequest
	err := json.Unmarshal(pubSubMessage.Data, &analysisRequest)
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "noretry",
			Description:        fmt.Sprintf("json.Unmarshal(pubSubMessage.Data, &analysisRequest) %s %v", string(pubSubMessage.Data), err),
			TriggeringPubsubID: pubSubMessage.ID,
		})
		pubSubMessage.Ack()
		return
	}
	if analysisRequest.Input == "" {
		analysisRequest.Input = global.settings.LogAnalyzer.InputURI
	}
	if analysisRequest.Output == "" {
		analysisRequest.Output = global.settings.LogAnalyzer.OutputURI
	}

	err = runAnalysis(global, analysisRequest.Input, situateOutputURI(analysisRequest.Output))
	if err != nil {
		if erm.IsNotTransientElseWait(err, 10) {
			log.Println(logging.Entry{
				MicroserviceName:   global.microserviceName,
				InstanceName:       global.instanceName,
				Environment:        global.environment,
				Severity:           "CRITICAL",
				Message:            "noretry",
				Description:        fmt.Sprintf("runAnalysis %v", err),
				TriggeringPubsubID: pubSubMessage.ID,
			})
			pubSubMessage.Ack()
		} else {
			log.Println(logging.Entry{
				MicroserviceName:   global.microserviceName,
				InstanceName:       global.instanceName,
				Environment:        global.environment,
				Severity:           "CRITICAL",
				Message:            "redo_on_transient",
				Description:        fmt.Sprintf("runAnalysis %v", err),
				TriggeringPubsubID: pubSubMessage.ID,
			})
			pubSubMessage.Nack()
		}
		return
	}
	pubSubMessage.Ack()
}
