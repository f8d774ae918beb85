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
	"context"
	"fmt"
	"log"
	"regexp"

	pubsub "cloud.google.com/go/pubsub/apiv1"
	pubsubpb "google.golang.org/genproto/googleapis/pubsub/v1"
)

// CreateSubscription check if a subscription already exist, if not create it on the given topic
func CreateSubscription(ctx context.Context, pubSubSubscriberClient *pubsub.SubscriberClient, projectID string, subscriptionName string, topicName string, ackDeadlineSeconds int64) error {
	var subscriptionRequested pubsubpb.Subscription
	subscriptionRequested.Name = fmt.Sprintf("projects/%s/subscriptions/%s", projectID, subscriptionName)
	subscriptionRequested.Topic = fmt.Sprintf("projects/%s/topics/%s", projectID, topicName)
	subscriptionRequested.AckDeadlineSeconds = int32(ackDeadlineSeconds)

	subscription, err := pubSubSubscriberClient.CreateSubscription(ctx, &subscriptionRequested)
	if err != nil {
		matched, _ := regexp.Match(`.*AlreadyExists.*`, []byte(err.Error()))
		if !matched {
			return fmt.Errorf("pubSubSubscriberClient.CreateSubscription: %v", err)
		}
		log.Println("Try to create but already exist:", subscriptionName)
	} else {
		log.Println("Created subscription:", subscription.Name)
	}
	return nil
}
