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

package gps

import (
	"fmt"
	"log"
	"strings"

	pubsubpb "google.golang.org/genproto/googleapis/pubsub/v1"
	fmpb "google.golang.org/protobuf/types/known/fieldmaskpb"
)

// Deploy create the topic or realign its name label
func (topicDeployment *TopicDeployment) Deploy() (err error) {
	instanceName := topicDeployment.Core.InstanceName
	shortName := topicDeployment.Settings.TopicName
	topicName := fmt.Sprintf("projects/%s/topics/%s",
		topicDeployment.Core.SolutionSettings.Hosting.ProjectID,
		shortName)
	log.Printf("%s gps topic %s", instanceName, shortName)

	var getTopicRequest pubsubpb.GetTopicRequest
	getTopicRequest.Topic = topicName
	topic, err := topicDeployment.Core.Services.PubsubPublisherClient.GetTopic(topicDeployment.Core.Ctx, &getTopicRequest)
	if err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "notfound") {
			return fmt.Errorf("pubsubPublisherClient.GetTopic %v", err)
		}
		var topicToCreate pubsubpb.Topic
		topicToCreate.Name = topicName
		topicToCreate.Labels = map[string]string{"name": strings.ToLower(shortName)}
		_, err = topicDeployment.Core.Services.PubsubPublisherClient.CreateTopic(topicDeployment.Core.Ctx, &topicToCreate)
		if err != nil {
			// deal with concurent executions
			if strings.Contains(strings.ToLower(err.Error()), "alreadyexists") {
				log.Printf("%s gps topic already created by a concurent execution %s", instanceName, shortName)
				return nil
			}
			return fmt.Errorf("pubsubPublisherClient.CreateTopic %v", err)
		}
		log.Printf("%s gps topic created %s", instanceName, shortName)
		return nil
	}
	if topic.Labels["name"] == strings.ToLower(shortName) {
		log.Printf("%s gps topic found %s", instanceName, shortName)
		return nil
	}
	var topicToUpdate pubsubpb.Topic
	topicToUpdate.Name = topicName
	topicToUpdate.Labels = map[string]string{"name": strings.ToLower(shortName)}
	var updateTopicRequest pubsubpb.UpdateTopicRequest
	updateTopicRequest.Topic = &topicToUpdate
	updateTopicRequest.UpdateMask = &fmpb.FieldMask{Paths: []string{"labels"}}
	_, err = topicDeployment.Core.Services.PubsubPublisherClient.UpdateTopic(topicDeployment.Core.Ctx, &updateTopicRequest)
	if err != nil {
		return fmt.Errorf("pubsubPublisherClient.UpdateTopic %v", err)
	}
	log.Printf("%s gps topic found, label updated %s", instanceName, shortName)
	return nil
}
