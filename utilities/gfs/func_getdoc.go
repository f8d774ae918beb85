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

// GetDoc fetch a document snapshot with retries, reporting whether the document exists
func GetDoc(ctx context.Context,
	firestoreClient *firestore.Client,
	documentPath string,
	retriesNumber time.Duration) (*firestore.DocumentSnapshot, bool) {
	var documentSnap *firestore.DocumentSnapshot
	var err error
	var i time.Duration
	for i = 0; i < retriesNumber; i++ {
		documentSnap, err = firestoreClient.Doc(documentPath).Get(ctx)
		if err != nil {
			// Not found is a result, only transients are retried
			if strings.Contains(strings.ToLower(err.Error()), "notfound") {
				log.Println(logging.Entry{
					Severity:    "WARNING",
					Message:     "no_found_in_cache",
					Description: documentPath,
				})
				return documentSnap, false
			}
			log.Println(logging.Entry{
				Severity:    "CRITICAL",
				Message:     "redo_on_transient",
				Description: fmt.Sprintf("iteration %d firestoreClient.Doc(%s).Get %v", i, documentPath, err),
			})
			time.Sleep(i * 100 * time.Millisecond)
		} else {
			return documentSnap, documentSnap.Exists()
		}
	}
	return documentSnap, false
}
