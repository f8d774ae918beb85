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

package gfs

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/logging"
)

// RecordCandidate record a pulled candidate document in firestore
// Set the document when new, update its fields when pulled again
func RecordCandidate(ctx context.Context,
	firestoreClient *firestore.Client,
	documentPath string,
	fields map[string]interface{},
	microserviceName string,
	instanceName string,
	environment string,
	pubSubID string,
	retriesNumber time.Duration) (err error) {
	var i time.Duration
	for i = 0; i < retriesNumber; i++ {
		_, err = firestoreClient.Doc(documentPath).Get(ctx)
		if err != nil {
			if strings.Contains(strings.ToLower(strings.Replace(err.Error(), " ", "", -1)), "notfound") {
				_, err = firestoreClient.Doc(documentPath).Set(ctx, fields)
				if err != nil {
					log.Println(logging.Entry{
						MicroserviceName:   microserviceName,
						InstanceName:       instanceName,
						Environment:        environment,
						Severity:           "WARNING",
						Message:            "recordCandidate cannot set firestore doc",
						Description:        fmt.Sprintf("iteration %d firestoreClient.Doc(documentPath).Set %s %v", i, documentPath, err),
						TriggeringPubsubID: pubSubID,
					})
					time.Sleep(i * 100 * time.Millisecond)
				} else {
					log.Println(logging.Entry{
						MicroserviceName:   microserviceName,
						InstanceName:       instanceName,
						Environment:        environment,
						Severity:           "INFO",
						Message:            fmt.Sprintf("candidate recorded %s", documentPath),
						TriggeringPubsubID: pubSubID,
					})
					return nil
				}
			} else {
				log.Println(logging.Entry{
					MicroserviceName:   microserviceName,
					InstanceName:       instanceName,
					Environment:        environment,
					Severity:           "WARNING",
					Message:            "recordCandidate cannot get firestore doc",
					Description:        fmt.Sprintf("iteration %d firestoreClient.Doc(documentPath).Get %s %v", i, documentPath, err),
					TriggeringPubsubID: pubSubID,
				})
				time.Sleep(i * 100 * time.Millisecond)
			}
		} else {
			updates := make([]firestore.Update, 0, len(fields))
			for path, value := range fields {
				updates = append(updates, firestore.Update{
					Path:  path,
					Value: value,
				})
			}
			_, err = firestoreClient.Doc(documentPath).Update(ctx, updates)
			if err != nil {
				log.Println(logging.Entry{
					MicroserviceName:   microserviceName,
					InstanceName:       instanceName,
					Environment:        environment,
					Severity:           "WARNING",
					Message:            "recordCandidate cannot update firestore doc",
					Description:        fmt.Sprintf("iteration %d firestoreClient.Doc(documentPath).Update %s %v", i, documentPath, err),
					TriggeringPubsubID: pubSubID,
				})
				time.Sleep(i * 100 * time.Millisecond)
			} else {
				log.Println(logging.Entry{
					MicroserviceName:   microserviceName,
					InstanceName:       instanceName,
					Environment:        environment,
					Severity:           "INFO",
					Message:            fmt.Sprintf("candidate updated %s", documentPath),
					TriggeringPubsubID: pubSubID,
				})
				return nil
			}
		}
	}
	return err
}
