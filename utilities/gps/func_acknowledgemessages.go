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

// AcknowledgeMessages ack a batch of pulled messages so they are not redelivered
func AcknowledgeMessages(ctx context.Context, pubSubSubscriberClient *pubsub.SubscriberClient, projectID string, subscriptionName string, ackIDs []string) error {
	if len(ackIDs) == 0 {
		return nil
	}
	var acknowledgeRequest pubsubpb.AcknowledgeRequest
	acknowledgeRequest.Subscription = fmt.Sprintf("projects/%s/subscriptions/%s", projectID, subscriptionName)
	acknowledgeRequest.AckIds = ackIDs

	err := pubSubSubscriberClient.Acknowledge(ctx, &acknowledgeRequest)
	if err != nil {
		return fmt.Errorf("pubSubSubscriberClient.Acknowledge: %v", err)
	}
	return nil
}
