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
	"strings"

	pubsub "cloud.google.com/go/pubsub/apiv1"
	pubsubpb "google.golang.org/genproto/googleapis/pubsub/v1"
)

// DeleteTopic delete a topic, tolerating that it is already gone
// Delete the subscriptions bound to a topic before the topic itself
func DeleteTopic(ctx context.Context, pubSubPulisherClient *pubsub.PublisherClient, projectID string, topicName string) error {
	var deleteTopicRequest pubsubpb.DeleteTopicRequest
	deleteTopicRequest.Topic = fmt.Sprintf("projects/%s/topics/%s", projectID, topicName)

	err := pubSubPulisherClient.DeleteTopic(ctx, &deleteTopicRequest)
	if err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "notfound") {
			return fmt.Errorf("pubSubPulisherClient.DeleteTopic: %v", err)
		}
		log.Println("Try to delete but does not exist:", topicName)
		return nil
	}
	log.Println("Deleted topic:", topicName)
	return nil
}
