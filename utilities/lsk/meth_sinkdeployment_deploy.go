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

package lsk

import (
	"fmt"
	"log"
	"strings"

	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/gcs"

	"cloud.google.com/go/logging/logadmin"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

// Deploy get-create-update the sink exporting request logs to the logs bucket
func (sinkDeployment *SinkDeployment) Deploy() (err error) {
	log.Printf("%s lsk log sink", sinkDeployment.Core.InstanceName)
	creds, err := google.FindDefaultCredentials(sinkDeployment.Core.Ctx, "https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		return fmt.Errorf("google.FindDefaultCredentials %v", err)
	}
	logAdminClient, err := logadmin.NewClient(
		sinkDeployment.Core.Ctx,
		fmt.Sprintf("projects/%s", sinkDeployment.Core.SolutionSettings.Hosting.ProjectID),
		option.WithCredentials(creds))
	if err != nil {
		return fmt.Errorf("logadmin.NewClient %v", err)
	}

	var sink logadmin.Sink
	sink.ID = sinkDeployment.Settings.SinkName
	sink.Destination = fmt.Sprintf("storage.googleapis.com/%s", sinkDeployment.Settings.BucketName)
	sink.Filter = sinkDeployment.Settings.Filter
	sink.IncludeChildren = false

	var sinkRetreived *logadmin.Sink
	sinkFound := true
	// GET
	sinkRetreived, err = logAdminClient.Sink(sinkDeployment.Core.Ctx, sink.ID)

	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "notfound") {
			sinkFound = false
		} else {
			return fmt.Errorf("logAdminClient.Sink %v", err)
		}
	}

	if sinkFound {
		log.Printf("%s lsk found sink %s writer identity %s", sinkDeployment.Core.InstanceName, sinkRetreived.ID, sinkRetreived.WriterIdentity)
		toUpdate := false
		if sinkRetreived.Destination != sink.Destination {
			toUpdate = true
		}
		if sinkRetreived.Filter != sink.Filter {
			toUpdate = true
		}
		if sinkRetreived.IncludeChildren != sink.IncludeChildren {
			toUpdate = true
		}
		if toUpdate {
			sinkRetreived, err = logAdminClient.UpdateSink(sinkDeployment.Core.Ctx, &sink)
			if err != nil {
				return fmt.Errorf("logAdminClient.UpdateSink %v", err)
			}
			log.Printf("%s lsk updated sink %s writer identity %s", sinkDeployment.Core.InstanceName, sinkRetreived.ID, sinkRetreived.WriterIdentity)
		}
	} else {
		sinkRetreived, err = logAdminClient.CreateSink(sinkDeployment.Core.Ctx, &sink)
		if err != nil {
			return fmt.Errorf("logAdminClient.CreateSink %v", err)
		}
		log.Printf("%s lsk created sink %s writer identity %s", sinkDeployment.Core.InstanceName, sinkRetreived.ID, sinkRetreived.WriterIdentity)
	}

	// The sink writer identity needs to create objects in the logs bucket
	err = gcs.SetBucketRole(sinkDeployment.Core.Ctx,
		sinkDeployment.Core.Services.StorageClient,
		sinkDeployment.Settings.BucketName,
		sinkRetreived.WriterIdentity,
		"roles/storage.objectCreator")
	if err != nil {
		return fmt.Errorf("gcs.SetBucketRole %v", err)
	}

	err = logAdminClient.Close()
	if err != nil {
		return fmt.Errorf("logAdminClient.Close %v", err)
	}
	return nil
}
