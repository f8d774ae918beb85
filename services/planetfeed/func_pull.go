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

	"cloud.google.com/go/firestore"

	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/gfs"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/gps"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/logging"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/str"
)

const pullMaxMessages = 10

// pull consumes pending candidate messages, records the new ones in FireStore, then acknowledges the batch
// A candidate already seen is only reported, its message is still acknowledged
func pull(global *Global) (err error) {
	log.Println("### Consume messages")
	receivedMessages, err := gps.PullMessages(global.ctx, global.pubsubSubscriberClient,
		global.settings.Hosting.ProjectID,
		global.settings.Hosting.Pubsub.SubscriptionNames.NewHabitablePlanets,
		pullMaxMessages)
	if err != nil {
		return fmt.Errorf("gps.PullMessages %v", err)
	}
	if len(receivedMessages) == 0 {
		log.Println("No pending candidate message")
		return nil
	}
	if global.firestoreClient == nil {
		global.firestoreClient, err = firestore.NewClient(global.ctx, global.settings.Hosting.ProjectID)
		if err != nil {
			return fmt.Errorf("firestore.NewClient %v", err)
		}
	}
	var ackIDs []string
	for _, receivedMessage := range receivedMessages {
		// Malformed messages are acknowledged too, else they come back forever
		ackIDs = append(ackIDs, receivedMessage.AckId)
		attributes := receivedMessage.Message.Attributes
		candidateName, ok := attributes["candidate_name"]
		if !ok {
			log.Println(logging.Entry{
				MicroserviceName:   global.microserviceName,
				InstanceName:       global.instanceName,
				Environment:        global.environment,
				Severity:           "WARNING",
				Message:            "ignored message: missing candidate_name attribute",
				Description:        str.FlattenMapStringString(attributes),
				TriggeringPubsubID: receivedMessage.Message.MessageId,
			})
			continue
		}
		log.Printf("Processing habitable planet candidate: %s %s", candidateName, str.FlattenMapStringString(attributes))
		documentPath := fmt.Sprintf("%s/%s", global.settings.Hosting.FireStore.CollectionIDs.Candidates, candidateName)
		_, found := gfs.GetDoc(global.ctx, global.firestoreClient, documentPath, 10)
		if found {
			log.Printf("Candidate already recorded: %s", candidateName)
			continue
		}
		fields := map[string]interface{}{
			"candidateName":  candidateName,
			"rightAscension": attributes["right_ascension"],
			"declination":    attributes["declination"],
			"telescope":      attributes["telescope"],
			"timestamp":      attributes["timestamp"],
			"messageID":      receivedMessage.Message.MessageId,
		}
		err = gfs.RecordCandidate(global.ctx, global.firestoreClient, documentPath, fields,
			global.microserviceName, global.instanceName, global.environment,
			receivedMessage.Message.MessageId, 10)
		if err != nil {
			return fmt.Errorf("gfs.RecordCandidate %v", err)
		}
	}
	err = gps.AcknowledgeMessages(global.ctx, global.pubsubSubscriberClient,
		global.settings.Hosting.ProjectID,
		global.settings.Hosting.Pubsub.SubscriptionNames.NewHabitablePlanets,
		ackIDs)
	if err != nil {
		return fmt.Errorf("gps.AcknowledgeMessages %v", err)
	}
	log.Printf("Acknowledged %d messages", len(ackIDs))
	return nil
}
