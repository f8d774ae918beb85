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
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	pubsub "cloud.google.com/go/pubsub/apiv1"

	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/ffo"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/solution"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/validater"
)

// Global structure for global variables
type Global struct {
	commands struct {
		Setup   bool
		Publish bool
		Pull    bool
		Cleanup bool
	}
	ctx                    context.Context
	environment            string
	firestoreClient        *firestore.Client
	instanceName           string
	microserviceName       string
	pubsubPublisherClient  *pubsub.PublisherClient
	pubsubSubscriberClient *pubsub.SubscriberClient
	settings               solution.Settings
}

// Initialize is to be executed in the init() function of the cli binary
func Initialize(ctx context.Context, global *Global) {
	log.SetFlags(0)
	global.ctx = ctx
	global.microserviceName = "planetfeed"
}

// PlanetFeed runs the pubsub walkthrough, all phases by default, else the requested ones
func PlanetFeed(global *Global) (err error) {
	checkArguments(global)
	global.instanceName = fmt.Sprintf("%s-%s", global.microserviceName, global.environment)

	err = ffo.ReadUnmarshalYAML(solution.SettingsFileName, &global.settings)
	if err != nil {
		return fmt.Errorf("ffo.ReadUnmarshalYAML %s %v", solution.SettingsFileName, err)
	}
	global.settings.Situate(global.environment)
	err = validater.ValidateStruct(&global.settings, "solutionSettings")
	if err != nil {
		return err
	}

	global.pubsubPublisherClient, err = pubsub.NewPublisherClient(global.ctx)
	if err != nil {
		return fmt.Errorf("pubsub.NewPublisherClient %v", err)
	}
	global.pubsubSubscriberClient, err = pubsub.NewSubscriberClient(global.ctx)
	if err != nil {
		return fmt.Errorf("pubsub.NewSubscriberClient %v", err)
	}

	walkthrough := !global.commands.Setup && !global.commands.Publish && !global.commands.Pull && !global.commands.Cleanup
	if walkthrough || global.commands.Setup {
		if err = setup(global); err != nil {
			return err
		}
	}
	if walkthrough || global.commands.Publish {
		if err = publish(global); err != nil {
			return err
		}
	}
	if walkthrough || global.commands.Pull {
		if err = pull(global); err != nil {
			return err
		}
	}
	if walkthrough || global.commands.Cleanup {
		if err = cleanup(global); err != nil {
			return err
		}
	}
	return nil
}
