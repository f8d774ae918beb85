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
	fieldmaskpb "google.golang.org/protobuf/types/known/fieldmaskpb"
)

// Deploy subscription, binding it to its topic
func (subscriptionDeployment *SubscriptionDeployment) Deploy() (err error) {
	log.Printf("%s gps subscription", subscriptionDeployment.Core.InstanceName)
	subscriptionName := fmt.Sprintf("projects/%s/subscriptions/%s",
		subscriptionDeployment.Core.SolutionSettings.Hosting.ProjectID,
		subscriptionDeployment.Settings.SubscriptionName)
	topicName := fmt.Sprintf("projects/%s/topics/%s",
		subscriptionDeployment.Core.SolutionSettings.Hosting.ProjectID,
		subscriptionDeployment.Settings.TopicName)
	var getSubscriptionRequest pubsubpb.GetSubscriptionRequest
	getSubscriptionRequest.Subscription = subscriptionName
	subscriptionNotFound := false
	ackDeadlineToBeUpdated := false
	subscription, err := subscriptionDeployment.Core.Services.PubsubSubscriberClient.GetSubscription(subscriptionDeployment.Core.Ctx, &getSubscriptionRequest)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "notfound") {
			subscriptionNotFound = true
		} else {
			return err
		}
	} else {
		if int64(subscription.AckDeadlineSeconds) != subscriptionDeployment.Settings.AckDeadlineSeconds {
			ackDeadlineToBeUpdated = true
		}
	}
	if subscriptionNotFound {
		var subscriptionToCreate pubsubpb.Subscription
		subscriptionToCreate.Name = subscriptionName
		subscriptionToCreate.Topic = topicName
		subscriptionToCreate.AckDeadlineSeconds = int32(subscriptionDeployment.Settings.AckDeadlineSeconds)
		subscriptionToCreate.Labels = map[string]string{"name": strings.ToLower(subscriptionDeployment.Settings.SubscriptionName)}
		_, err = subscriptionDeployment.Core.Services.PubsubSubscriberClient.CreateSubscription(subscriptionDeployment.Core.Ctx, &subscriptionToCreate)
		if err != nil {
			if !strings.Contains(strings.ToLower(err.Error()), "alreadyexists") {
				return err
			}
			log.Printf("%s gps try to create subscription but already exist %s", subscriptionDeployment.Core.InstanceName, subscriptionDeployment.Settings.SubscriptionName)
		}
		log.Printf("%s gps subscription created %s on topic %s", subscriptionDeployment.Core.InstanceName, subscriptionDeployment.Settings.SubscriptionName, subscriptionDeployment.Settings.TopicName)
	} else {
		if ackDeadlineToBeUpdated {
			var subscriptionToUpdate pubsubpb.Subscription
			subscriptionToUpdate.Name = subscriptionName
			subscriptionToUpdate.Topic = topicName
			subscriptionToUpdate.AckDeadlineSeconds = int32(subscriptionDeployment.Settings.AckDeadlineSeconds)
			var updateSubscriptionRequest pubsubpb.UpdateSubscriptionRequest
			updateSubscriptionRequest.Subscription = &subscriptionToUpdate
			updateSubscriptionRequest.UpdateMask = &fieldmaskpb.FieldMask{Paths: []string{"ack_deadline_seconds"}}
			_, err = subscriptionDeployment.Core.Services.PubsubSubscriberClient.UpdateSubscription(subscriptionDeployment.Core.Ctx, &updateSubscriptionRequest)
			if err != nil {
				return err
			}
			log.Printf("%s gps subscription found, ack deadline updated to %d seconds %s",
				subscriptionDeployment.Core.InstanceName,
				subscriptionDeployment.Settings.AckDeadlineSeconds,
				subscriptionDeployment.Settings.SubscriptionName)
		} else {
			log.Printf("%s gps subscription found %s", subscriptionDeployment.Core.InstanceName, subscriptionDeployment.Settings.SubscriptionName)
		}
	}
	return nil
}
