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

// PullMessages pull up to maxMessages from a subscription without waiting for the backlog to fill
func PullMessages(ctx context.Context, pubSubSubscriberClient *pubsub.SubscriberClient, projectID string, subscriptionName string, maxMessages int32) (receivedMessages []*pubsubpb.ReceivedMessage, err error) {
	var pullRequest pubsubpb.PullRequest
	pullRequest.Subscription = fmt.Sprintf("projects/%s/subscriptions/%s", projectID, subscriptionName)
	pullRequest.MaxMessages = maxMessages
	pullRequest.ReturnImmediately = true

	pullResponse, err := pubSubSubscriberClient.Pull(ctx, &pullRequest)
	if err != nil {
		return nil, fmt.Errorf("pubSubSubscriberClient.Pull: %v", err)
	}
	return pullResponse.ReceivedMessages, nil
}
