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

package apiauth

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"google.golang.org/api/storage/v1"

	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/aut"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/ffo"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/solution"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/validater"
)

const cloudStorageScope = "https://www.googleapis.com/auth/devstorage.read_only"

// Global structure for global variables
type Global struct {
	ctx              context.Context
	environment      string
	instanceName     string
	keyFilePath      string
	microserviceName string
	settings         solution.Settings
	storageService   *storage.Service
}

// Initialize is to be executed in the init() function of the cli binary
func Initialize(ctx context.Context, global *Global) {
	log.SetFlags(0)
	global.ctx = ctx
	global.microserviceName = "apiauth"
}

// checkArguments check cli arguments, no keyfile means Application Default Credentials
func checkArguments(global *Global) {
	flag.StringVar(&global.environment, "environment", solution.DevelopmentEnvironmentName, "Environment name")
	flag.StringVar(&global.keyFilePath, "keyfile", "", "path to a service account JSON key file, empty to use Application Default Credentials")
	flag.Parse()
}

// APIAuth lists the dropbox bucket objects as the application itself
func APIAuth(global *Global) (err error) {
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

	clientOption, err := aut.GetClientOption(global.ctx, global.keyFilePath, []string{cloudStorageScope})
	if err != nil {
		return fmt.Errorf("aut.GetClientOption %v", err)
	}
	global.storageService, err = storage.NewService(global.ctx, clientOption)
	if err != nil {
		return fmt.Errorf("storage.NewService %v", err)
	}

	objects, err := global.storageService.Objects.List(global.settings.Hosting.GCS.Buckets.DocumentDropbox.Name).Context(global.ctx).Do()
	if err != nil {
		return fmt.Errorf("storageService.Objects.List %v", err)
	}
	objectsJSON, err := json.MarshalIndent(objects, "", "    ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent %v", err)
	}
	fmt.Println(string(objectsJSON))
	return nil
}
