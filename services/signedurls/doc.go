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

/*
Package signedurls grants time limited access to document dropbox objects without credentials

Builds a URL signer from a service account JSON key, then signs one PUT and
one GET URL for the requested object. The bearer of a signed URL needs no
authorization mechanism once the URL is generated.

Scenarios

default: print the signed PUT and GET URLs for the object.

-demo: also upload "Hello World!" through the signed PUT URL, then read it
back through the signed GET URL. Demo URLs expire after 12 hours instead of
one day.

Implementation example

 package main
 import (
     "context"
     "log"

     "github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/services/signedurls"
 )
 var global signedurls.Global
 var ctx = context.Background()

 func init() {
     signedurls.Initialize(ctx, &global)
 }

 func main() {
     if err := signedurls.SignedURLs(&global); err != nil {
         log.Fatalln(err)
     }
 }

*/
package signedurls
