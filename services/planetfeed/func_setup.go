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

package planetfeed

import (
	"fmt"
	"log"

	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/gps"
)

// setup creates the habitable planets topic and its pull subscription
func setup(global *Global) (err error) {
	log.Println("### Setup")
	var topicList []string
	err = gps.GetTopicList(global.ctx, global.pubsubPublisherClient, global.settings.Hosting.ProjectID, &topicList)
	if err != nil {
		return fmt.Errorf("gps.GetTopicList %v", err)
	}
	err = gps.CreateTopic(global.ctx, global.pubsubPublisherClient, &topicList,
		global.settings.Hosting.Pubsub.TopicNames.HabitablePlanets,
		global.settings.Hosting.ProjectID)
	if err != nil {
		return fmt.Errorf("gps.CreateTopic %v", err)
	}
	err = gps.CreateSubscription(global.ctx, global.pubsubSubscriberClient,
		global.settings.Hosting.ProjectID,
		global.settings.Hosting.Pubsub.SubscriptionNames.NewHabitablePlanets,
		global.settings.Hosting.Pubsub.TopicNames.HabitablePlanets,
		global.settings.Hosting.Pubsub.AckDeadlineSeconds)
	if err != nil {
		return fmt.Errorf("gps.CreateSubscription %v", err)
	}
	// The real feed is published by the telescope, not by this walkthrough
	if global.settings.PlanetFeed.TelescopeServiceAccount != "" {
		topicFullName := fmt.Sprintf("projects/%s/topics/%s",
			global.settings.Hosting.ProjectID,
			global.settings.Hosting.Pubsub.TopicNames.HabitablePlanets)
		member := fmt.Sprintf("serviceAccount:%s", global.settings.PlanetFeed.TelescopeServiceAccount)
		err = gps.SetTopicRole(global.ctx, global.pubsubPublisherClient, topicFullName, member, "roles/pubsub.publisher")
		if err != nil {
			return fmt.Errorf("gps.SetTopicRole %v", err)
		}
		err = gps.CheckTopicRole(global.ctx, global.pubsubPublisherClient, topicFullName, member, "roles/pubsub.publisher")
		if err != nil {
			return fmt.Errorf("gps.CheckTopicRole %v", err)
		}
	}
	return nil
}
