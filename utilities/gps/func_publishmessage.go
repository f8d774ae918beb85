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

	pubsub "cloud.google.com/go/pubsub/apiv1"
	pubsubpb "google.golang.org/genproto/googleapis/pubsub/v1"
)

// PublishMessage publish one message with attributes on a topic and return the server assigned message ID
func PublishMessage(ctx context.Context, pubSubPulisherClient *pubsub.PublisherClient, projectID string, topicName string, data []byte, attributes map[string]string) (messageID string, err error) {
	var pubsubMessage pubsubpb.PubsubMessage
	pubsubMessage.Data = data
	pubsubMessage.Attributes = attributes

	var publishRequest pubsubpb.PublishRequest
	publishRequest.Topic = fmt.Sprintf("projects/%s/topics/%s", projectID, topicName)
	publishRequest.Messages = []*pubsubpb.PubsubMessage{&pubsubMessage}

	publishResponse, err := pubSubPulisherClient.Publish(ctx, &publishRequest)
	if err != nil {
		return "", fmt.Errorf("pubSubPulisherClient.Publish: %v", err)
	}
	if len(publishResponse.MessageIds) == 0 {
		return "", fmt.Errorf("publishResponse contains no message ID")
	}
	return publishResponse.MessageIds[0], nil
}
