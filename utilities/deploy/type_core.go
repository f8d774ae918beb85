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

package deploy

import (
	"context"

	"cloud.google.com/go/bigquery"
	pubsub "cloud.google.com/go/pubsub/apiv1"
	scheduler "cloud.google.com/go/scheduler/apiv1"
	"cloud.google.com/go/storage"

	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/solution"
)

// Core structure common to all deployments
type Core struct {
	SolutionSettings solution.Settings
	Ctx              context.Context `yaml:"-"`
	EnvironmentName  string
	ServiceName      string
	InstanceName     string
	Services         struct {
		BigqueryClient         *bigquery.Client                `yaml:"-"`
		CloudSchedulerClient   *scheduler.CloudSchedulerClient `yaml:"-"`
		PubsubPublisherClient  *pubsub.PublisherClient         `yaml:"-"`
		PubsubSubscriberClient *pubsub.SubscriberClient        `yaml:"-"`
		StorageClient          *storage.Client                 `yaml:"-"`
	} `yaml:"-"`
}
