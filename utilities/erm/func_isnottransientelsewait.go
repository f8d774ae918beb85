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

package erm

import (
	"log"
	"strings"
	"time"
)

// IsNotTransientElseWait check if the error is a 5xx, when it is wait so the caller may retry
func IsNotTransientElseWait(err error, waitSec time.Duration) (isNotTransient bool) {
	errorMessage := err.Error()
	transientErrors := []string{"500", "501", "502", "503", "504", "505", "506", "507", "508", "510", "511"}
	for _, transientError := range transientErrors {
		if strings.Contains(errorMessage, transientError) {
			log.Printf("Transient error, wait %d sec and retry %s", waitSec, errorMessage)
			time.Sleep(waitSec * time.Second)
			return false
		}
	}
	return true
}
