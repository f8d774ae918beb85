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

package loganalyzer

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/bigquery"
	pubsub "cloud.google.com/go/pubsub/apiv1"
	scheduler "cloud.google.com/go/scheduler/apiv1"
	"cloud.google.com/go/storage"

	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/deploy"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/gbq"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/gcs"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/gps"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/logging"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/lsk"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/sch"
)

// setup deploys the analyzer prerequisites, in dependency order, each deployment is idempotent
func setup(global *Global) (err error) {
	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "INFO",
		Message:          "check the required apis are enabled",
		Description:      strings.Join(deploy.GetRequiredAPIList(), " "),
	})

	var core deploy.Core
	core.Ctx = global.ctx
	core.EnvironmentName = global.environment
	core.ServiceName = global.microserviceName
	core.InstanceName = global.instanceName
	core.SolutionSettings = global.settings

	core.Services.StorageClient, err = storage.NewClient(global.ctx)
	if err != nil {
		return fmt.Errorf("storage.NewClient %v", err)
	}
	core.Services.PubsubPublisherClient, err = pubsub.NewPublisherClient(global.ctx)
	if err != nil {
		return fmt.Errorf("pubsub.NewPublisherClient %v", err)
	}
	core.Services.PubsubSubscriberClient, err = pubsub.NewSubscriberClient(global.ctx)
	if err != nil {
		return fmt.Errorf("pubsub.NewSubscriberClient %v", err)
	}
	core.Services.BigqueryClient, err = bigquery.NewClient(global.ctx, core.SolutionSettings.Hosting.ProjectID)
	if err != nil {
		return fmt.Errorf("bigquery.NewClient %v", err)
	}
	core.Services.CloudSchedulerClient, err = scheduler.NewCloudSchedulerClient(global.ctx)
	if err != nil {
		return fmt.Errorf("scheduler.NewCloudSchedulerClient %v", err)
	}

	bucketDeployment := gcs.NewBucketDeployment()
	bucketDeployment.Core = &core
	bucketDeployment.Settings.BucketName = core.SolutionSettings.Hosting.GCS.Buckets.Logs.Name
	bucketDeployment.Settings.DeleteAgeInDays = core.SolutionSettings.Hosting.GCS.Buckets.Logs.DeleteAgeInDays
	if err = bucketDeployment.Deploy(); err != nil {
		return err
	}

	sinkDeployment := lsk.NewSinkDeployment()
	sinkDeployment.Core = &core
	sinkDeployment.Settings.SinkName = core.SolutionSettings.LogAnalyzer.LogSink.Name
	sinkDeployment.Settings.BucketName = core.SolutionSettings.Hosting.GCS.Buckets.Logs.Name
	sinkDeployment.Settings.Filter = core.SolutionSettings.LogAnalyzer.LogSink.Filter
	if err = sinkDeployment.Deploy(); err != nil {
		return err
	}

	topicDeployment := gps.NewTopicDeployment()
	topicDeployment.Core = &core
	topicDeployment.Settings.TopicName = core.SolutionSettings.Hosting.Pubsub.TopicNames.LogAnalysisRequests
	if err = topicDeployment.Deploy(); err != nil {
		return err
	}

	subscriptionDeployment := gps.NewSubscriptionDeployment()
	subscriptionDeployment.Core = &core
	subscriptionDeployment.Settings.SubscriptionName = core.SolutionSettings.Hosting.Pubsub.SubscriptionNames.LogAnalysisRequests
	subscriptionDeployment.Settings.TopicName = core.SolutionSettings.Hosting.Pubsub.TopicNames.LogAnalysisRequests
	subscriptionDeployment.Settings.AckDeadlineSeconds = core.SolutionSettings.Hosting.Pubsub.AckDeadlineSeconds
	if err = subscriptionDeployment.Deploy(); err != nil {
		return err
	}

	_, err = gbq.GetResults(global.ctx,
		core.Services.BigqueryClient,
		core.SolutionSettings.Hosting.Bigquery.Dataset.Location,
		core.SolutionSettings.Hosting.Bigquery.Dataset.Name,
		core.SolutionSettings.Hosting.Bigquery.ViewsIntervalDays)
	if err != nil {
		return err
	}

	// The scheduled message replays the default analysis
	scheduledRequest := AnalysisRequest{
		Input:  core.SolutionSettings.LogAnalyzer.InputURI,
		Output: core.SolutionSettings.LogAnalyzer.OutputURI,
	}
	scheduledRequestJSON, err := json.Marshal(scheduledRequest)
	if err != nil {
		return fmt.Errorf("json.Marshal(scheduledRequest) %v", err)
	}
	jobDeployment := sch.NewJobDeployment()
	jobDeployment.Core = &core
	jobDeployment.Settings.JobName = core.SolutionSettings.LogAnalyzer.Scheduler.JobName
	jobDeployment.Settings.TopicName = core.SolutionSettings.Hosting.Pubsub.TopicNames.LogAnalysisRequests
	jobDeployment.Settings.Schedule = core.SolutionSettings.LogAnalyzer.Scheduler.Schedule
	jobDeployment.Settings.MessageData = string(scheduledRequestJSON)
	if err = jobDeployment.Deploy(); err != nil {
		return err
	}

	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          "finish setup",
	})
	return nil
}
