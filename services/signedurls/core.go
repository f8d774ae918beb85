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

package signedurls

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/aut"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/ffo"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/gcs"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/solution"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/validater"
)

const storageReadWriteScope = "https://www.googleapis.com/auth/devstorage.read_write"

const demoContent = "Hello World!"
const demoContentType = "text/plain"
const defaultExpiryMinutes = 24 * 60
const demoExpiryMinutes = 12 * 60

// Global structure for global variables
type Global struct {
	ctx              context.Context
	demo             bool
	environment      string
	expiryMinutes    int64
	instanceName     string
	keyFilePath      string
	microserviceName string
	objectName       string
	settings         solution.Settings
	urlSigner        *gcs.URLSigner
}

// Initialize is to be executed in the init() function of the cli binary
func Initialize(ctx context.Context, global *Global) {
	log.SetFlags(0)
	global.ctx = ctx
	global.microserviceName = "signedurls"
}

// checkArguments check cli arguments, the keyfile is mandatory as signing needs a private key
func checkArguments(global *Global) {
	flag.BoolVar(&global.demo, "demo", false, "upload Hello World! through the signed PUT url, read it back through the signed GET url")
	flag.StringVar(&global.environment, "environment", solution.DevelopmentEnvironmentName, "Environment name")
	flag.StringVar(&global.keyFilePath, "keyfile", "", "path to a service account JSON key file")
	flag.Int64Var(&global.expiryMinutes, "minutes", 0, "signed urls validity in minutes, defaults to one day, 12 hours with -demo")
	flag.StringVar(&global.objectName, "object", "hello_world.txt", "object name in the document dropbox bucket")
	flag.Parse()
	if global.keyFilePath == "" {
		log.Fatalln("Missing keyfile argument")
	}
	if global.expiryMinutes == 0 {
		if global.demo {
			global.expiryMinutes = demoExpiryMinutes
		} else {
			global.expiryMinutes = defaultExpiryMinutes
		}
	}
}

// SignedURLs signs a PUT and a GET url for one dropbox object, with -demo it also exercises them
func SignedURLs(global *Global) (err error) {
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

	jwtConfig, err := aut.GetJWTConfig(global.keyFilePath, []string{storageReadWriteScope})
	if err != nil {
		return fmt.Errorf("aut.GetJWTConfig %v", err)
	}
	global.urlSigner, err = gcs.NewURLSigner(jwtConfig.Email, jwtConfig.PrivateKey)
	if err != nil {
		return fmt.Errorf("gcs.NewURLSigner %v", err)
	}

	resource := fmt.Sprintf("/%s/%s", global.settings.Hosting.GCS.Buckets.DocumentDropbox.Name, global.objectName)
	expires := time.Now().Add(time.Duration(global.expiryMinutes) * time.Minute)

	signedPutURL, err := global.urlSigner.SignedURL("PUT", resource, gcs.ContentMD5([]byte(demoContent)), demoContentType, expires)
	if err != nil {
		return fmt.Errorf("urlSigner.SignedURL PUT %v", err)
	}
	signedGetURL, err := global.urlSigner.SignedURL("GET", resource, "", "", expires)
	if err != nil {
		return fmt.Errorf("urlSigner.SignedURL GET %v", err)
	}
	log.Printf("Signed PUT url: %s", signedPutURL)
	log.Printf("Signed GET url: %s", signedGetURL)

	if global.demo {
		err = signedPut(signedPutURL, demoContent, demoContentType)
		if err != nil {
			return err
		}
		err = signedGet(signedGetURL)
		if err != nil {
			return err
		}
	}
	return nil
}
