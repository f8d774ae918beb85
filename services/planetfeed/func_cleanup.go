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

// cleanup deletes the subscription first, then the topic
func cleanup(global *Global) (err error) {
	log.Println("### Clean up")
	err = gps.DeleteSubscription(global.ctx, global.pubsubSubscriberClient,
		global.settings.Hosting.ProjectID,
		global.settings.Hosting.Pubsub.SubscriptionNames.NewHabitablePlanets)
	if err != nil {
		return fmt.Errorf("gps.DeleteSubscription %v", err)
	}
	err = gps.DeleteTopic(global.ctx, global.pubsubPublisherClient,
		global.settings.Hosting.ProjectID,
		global.settings.Hosting.Pubsub.TopicNames.HabitablePlanets)
	if err != nil {
		return fmt.Errorf("gps.DeleteTopic %v", err)
	}
	return nil
}
