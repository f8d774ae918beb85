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
Package planetfeed walks through the pubsub lifecycle of habitable planet candidates

Each phase is runnable on its own, the default walks through all of them in
order: create the topic and its pull subscription, publish the two Kepler
candidate messages, pull pending messages and record new candidates in
FireStore, then delete the subscription and the topic.

Scenarios

-setup: create the habitable planets topic and its pull subscription.

-publish: publish the two Kepler candidate messages with their attributes.

-pull: pull pending messages, record new candidates, acknowledge the batch.

-cleanup: delete the subscription, then the topic.

Implementation example

 package main
 import (
     "context"
     "log"

     "github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/services/planetfeed"
 )
 var global planetfeed.Global
 var ctx = context.Background()

 func init() {
     planetfeed.Initialize(ctx, &global)
 }

 func main() {
     if err := planetfeed.PlanetFeed(&global); err != nil {
         log.Fatalln(err)
     }
 }

*/
package planetfeed
