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
	"log"
	"testing"
	"time"

	pubsub "cloud.google.com/go/pubsub/apiv1"
	pubsubpb "google.golang.org/genproto/googleapis/pubsub/v1"

	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/itst"
)

const testTopicName = "test-habitable-planets"
const testSubscriptionName = "test-new-habitable-planets-notifier"

func TestIntegMessageLifecycle(t *testing.T) {
	projectID := itst.GetIntegrationTestsProjectID()
	ctx := context.Background()
	pubSubPulisherClient, err := pubsub.NewPublisherClient(ctx)
	if err != nil {
		log.Fatalln(err)
	}
	pubSubSubscriberClient, err := pubsub.NewSubscriberClient(ctx)
	if err != nil {
		log.Fatalln(err)
	}
	// Clean up gefore testing
	DeleteSubscription(ctx, pubSubSubscriberClient, projectID, testSubscriptionName)
	DeleteTopic(ctx, pubSubPulisherClient, projectID, testTopicName)

	var topicList []string
	if err := CreateTopic(ctx, pubSubPulisherClient, &topicList, testTopicName, projectID); err != nil {
		t.Fatalf("CreateTopic %v", err)
	}
	if err := CreateSubscription(ctx, pubSubSubscriberClient, projectID, testSubscriptionName, testTopicName, 30); err != nil {
		t.Fatalf("CreateSubscription %v", err)
	}
	messageID, err := PublishMessage(ctx, pubSubPulisherClient, projectID, testTopicName,
		[]byte("message lifecycle test"),
		map[string]string{"candidate_name": "KOI-0000.00"})
	if err != nil {
		t.Fatalf("PublishMessage %v", err)
	}
	if messageID == "" {
		t.Error("Want a message ID have an empty string")
	}

	// A pull right after a publish may come back empty
	var receivedMessages []*pubsubpb.ReceivedMessage
	for i := 1; i < 10; i++ {
		receivedMessages, err = PullMessages(ctx, pubSubSubscriberClient, projectID, testSubscriptionName, 10)
		if err != nil {
			t.Fatalf("PullMessages %v", err)
		}
		if len(receivedMessages) > 0 {
			break
		}
		time.Sleep(time.Duration(i) * time.Second)
	}
	if len(receivedMessages) == 0 {
		t.Fatal("Want at least one received message have none")
	}
	if name := receivedMessages[0].Message.Attributes["candidate_name"]; name != "KOI-0000.00" {
		t.Errorf("Want candidate_name 'KOI-0000.00' have '%s'", name)
	}

	var ackIDs []string
	for _, receivedMessage := range receivedMessages {
		ackIDs = append(ackIDs, receivedMessage.AckId)
	}
	if err := AcknowledgeMessages(ctx, pubSubSubscriberClient, projectID, testSubscriptionName, ackIDs); err != nil {
		t.Fatalf("AcknowledgeMessages %v", err)
	}
	if err := DeleteSubscription(ctx, pubSubSubscriberClient, projectID, testSubscriptionName); err != nil {
		t.Fatalf("DeleteSubscription %v", err)
	}
	if err := DeleteTopic(ctx, pubSubPulisherClient, projectID, testTopicName); err != nil {
		t.Fatalf("DeleteTopic %v", err)
	}
}
