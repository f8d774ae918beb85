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
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/iam"
	"cloud.google.com/go/storage"
)

// SetBucketRole check if a member already holds a role on a bucket, if not grant it
func SetBucketRole(ctx context.Context, storageClient *storage.Client, bucketName string, member string, role iam.RoleName) (err error) {
	iamHandle := storageClient.Bucket(bucketName).IAM()
	policy, err := iamHandle.Policy(ctx)
	if err != nil {
		return fmt.Errorf("iamHandle.Policy %v", err)
	}

	if policy.HasRole(member, role) {
		log.Printf("%s already has role %s on bucket %s", member, role, bucketName)
		return nil
	}
	policy.Add(member, role)
	err = iamHandle.SetPolicy(ctx, policy)
	if err != nil {
		return fmt.Errorf("iamHandle.SetPolicy %v", err)
	}
	log.Printf("Granted role %s to %s on bucket %s", role, member, bucketName)
	return nil
}
