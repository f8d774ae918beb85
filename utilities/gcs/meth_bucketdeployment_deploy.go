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

package gcs

import (
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/storage"
)

// Deploy create the bucket or realign its labels, delete lifecycle and access mode
func (bucketDeployment *BucketDeployment) Deploy() (err error) {
	instanceName := bucketDeployment.Core.InstanceName
	bucketName := bucketDeployment.Settings.BucketName
	deleteAgeInDays := bucketDeployment.Settings.DeleteAgeInDays
	log.Printf("%s gcs bucket %s desired delete age %d days", instanceName, bucketName, deleteAgeInDays)

	var uniformBucketLevelAccess storage.UniformBucketLevelAccess
	uniformBucketLevelAccess.Enabled = true

	bucket := bucketDeployment.Core.Services.StorageClient.Bucket(bucketName)
	retreivedAttrs, err := bucket.Attrs(bucketDeployment.Core.Ctx)
	if err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "doesn't exist") {
			return fmt.Errorf("bucket.Attrs %v", err)
		}
		var bucketAttrs storage.BucketAttrs
		bucketAttrs.Location = bucketDeployment.Core.SolutionSettings.Hosting.Region
		bucketAttrs.StorageClass = "STANDARD"
		bucketAttrs.Labels = map[string]string{"name": strings.ToLower(bucketName)}
		rules, _ := alignDeleteRule(nil, deleteAgeInDays)
		bucketAttrs.Lifecycle = storage.Lifecycle{Rules: rules}
		bucketAttrs.UniformBucketLevelAccess = uniformBucketLevelAccess

		err = bucket.Create(bucketDeployment.Core.Ctx, bucketDeployment.Core.SolutionSettings.Hosting.ProjectID, &bucketAttrs)
		if err != nil {
			return fmt.Errorf("bucket.Create %v", err)
		}
		log.Printf("%s gcs bucket created %s", instanceName, bucketName)
		return nil
	}
	log.Printf("%s gcs bucket found %s", instanceName, retreivedAttrs.Name)

	var bucketAttrsToUpdate storage.BucketAttrsToUpdate
	toBeUpdated := false
	if retreivedAttrs.Labels["name"] != strings.ToLower(bucketName) {
		bucketAttrsToUpdate.SetLabel("name", strings.ToLower(bucketName))
		log.Printf("%s gcs bucket %s label to be updated", instanceName, bucketName)
		toBeUpdated = true
	}
	if rules, changed := alignDeleteRule(retreivedAttrs.Lifecycle.Rules, deleteAgeInDays); changed {
		bucketAttrsToUpdate.Lifecycle = &storage.Lifecycle{Rules: rules}
		log.Printf("%s gcs bucket %s delete lifecycle rule to be aligned on age %d days", instanceName, bucketName, deleteAgeInDays)
		toBeUpdated = true
	}
	if !retreivedAttrs.UniformBucketLevelAccess.Enabled {
		bucketAttrsToUpdate.UniformBucketLevelAccess = &uniformBucketLevelAccess
		log.Printf("%s gcs bucket %s uniform bucket level access to be enabled", instanceName, bucketName)
		toBeUpdated = true
	}
	if toBeUpdated {
		retreivedAttrs, err = bucket.Update(bucketDeployment.Core.Ctx, bucketAttrsToUpdate)
		if err != nil {
			return fmt.Errorf("bucket.Update %v", err)
		}
		log.Printf("%s gcs bucket %s attributes have been updated", instanceName, retreivedAttrs.Name)
	}
	return nil
}

// alignDeleteRule make sure the rules carry a delete on age rule with the wanted age
// Multiple delete rules may coexist, all of them are aligned, other rules are untouched
func alignDeleteRule(rules []storage.LifecycleRule, ageInDays int64) (aligned []storage.LifecycleRule, changed bool) {
	aligned = rules
	found := false
	for i, rule := range aligned {
		if rule.Action.Type != "Delete" {
			continue
		}
		found = true
		if rule.Condition.AgeInDays != ageInDays {
			aligned[i].Condition.AgeInDays = ageInDays
			changed = true
		}
	}
	if !found {
		var deleteRule storage.LifecycleRule
		deleteRule.Action.Type = "Delete"
		deleteRule.Condition.AgeInDays = ageInDays
		aligned = append(aligned, deleteRule)
		changed = true
	}
	return aligned, changed
}
