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
	"strings"

	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/gps"
)

// publish sends one message per candidate planet to the habitable planets topic
func publish(global *Global) (err error) {
	log.Println("### Publish messages")
	var messageIDs []string
	for _, attributes := range candidateAttributes() {
		messageID, err := gps.PublishMessage(global.ctx, global.pubsubPublisherClient,
			global.settings.Hosting.ProjectID,
			global.settings.Hosting.Pubsub.TopicNames.HabitablePlanets,
			[]byte(candidateData),
			attributes)
		if err != nil {
			return fmt.Errorf("gps.PublishMessage %v", err)
		}
		messageIDs = append(messageIDs, messageID)
	}
	log.Printf("Published %d new planets with ids - %s", len(messageIDs), strings.Join(messageIDs, ", "))
	return nil
}
