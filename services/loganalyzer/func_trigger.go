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
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"cloud.google.com/go/pubsub"

	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/gps"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/logging"
)

// trigger publishes one analysis request on the analysis topic, the worker does the analysis
func trigger(global *Global) (err error) {
	if global.pubsubClient == nil {
		global.pubsubClient, err = pubsub.NewClient(global.ctx, global.settings.Hosting.ProjectID)
		if err != nil {
			return fmt.Errorf("pubsub.NewClient %v", err)
		}
	}
	analysisRequest := AnalysisRequest{
		Input:       global.inputURI,
		Output:      global.outputURI,
		RequestTime: time.Now(),
	}
	analysisRequestJSON, err := json.Marshal(analysisRequest)
	if err != nil {
		return fmt.Errorf("json.Marshal(analysisRequest) %v", err)
	}

	topicName := global.settings.Hosting.Pubsub.TopicNames.LogAnalysisRequests
	topic := global.pubsubClient.Topic(topicName)
	var waitgroup sync.WaitGroup
	var pubSubErrNumber uint64
	var pubSubMsgNumber uint64
	publishResult := topic.Publish(global.ctx, &pubsub.Message{Data: analysisRequestJSON})
	waitgroup.Add(1)
	go gps.GetPublishCallResult(global.ctx, publishResult, &waitgroup, fmt.Sprintf("analysis request %s", global.inputURI), &pubSubErrNumber, &pubSubMsgNumber, 1)
	waitgroup.Wait()
	if pubSubErrNumber > 0 {
		return fmt.Errorf("%d error(s) publishing the analysis request on topic %s", pubSubErrNumber, topicName)
	}

	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          fmt.Sprintf("finish trigger on topic %s", topicName),
		Description:      string(analysisRequestJSON),
	})
	return nil
}
