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

package solution

// Settings settings common to all services / all instances
type Settings struct {
	Hosting struct {
		ProjectID  string            `yaml:"projectID,omitempty" valid:"isNotZeroValue"`
		ProjectIDs map[string]string `yaml:"projectIDs"`
		Region     string            `valid:"isNotZeroValue"`
		GCS        struct {
			Buckets struct {
				Logs struct {
					Name            string `yaml:",omitempty" valid:"isNotZeroValue"`
					Names           map[string]string
					DeleteAgeInDays int64 `yaml:"deleteAgeInDays,omitempty" valid:"isNotZeroValue"`
				}
				DocumentDropbox struct {
					Name            string `yaml:",omitempty" valid:"isNotZeroValue"`
					Names           map[string]string
					DeleteAgeInDays int64 `yaml:"deleteAgeInDays,omitempty" valid:"isNotZeroValue"`
				} `yaml:"documentDropbox"`
			}
		}
		Bigquery struct {
			Dataset struct {
				Name     string `valid:"isNotZeroValue"`
				Location string `valid:"isNotZeroValue"`
			}
			Table struct {
				Name string `valid:"isNotZeroValue"`
			}
			ViewsIntervalDays int64 `yaml:"viewsIntervalDays,omitempty" valid:"isNotZeroValue"`
		}
		Pubsub struct {
			TopicNames struct {
				LogAnalysisRequests string `yaml:"logAnalysisRequests" valid:"isNotZeroValue"`
				HabitablePlanets    string `yaml:"habitablePlanets" valid:"isNotZeroValue"`
			} `yaml:"topicNames"`
			SubscriptionNames struct {
				LogAnalysisRequests string `yaml:"logAnalysisRequests" valid:"isNotZeroValue"`
				NewHabitablePlanets string `yaml:"newHabitablePlanets" valid:"isNotZeroValue"`
			} `yaml:"subscriptionNames"`
			AckDeadlineSeconds int64 `yaml:"ackDeadlineSeconds,omitempty" valid:"isAckDeadlineSeconds"`
		}
		FireStore struct {
			CollectionIDs struct {
				Candidates string `valid:"isNotZeroValue"`
			} `yaml:"collectionIDs"`
		}
	}
	PlanetFeed struct {
		TelescopeServiceAccount string `yaml:"telescopeServiceAccount,omitempty"`
	} `yaml:"planetFeed"`
	LogAnalyzer struct {
		InputURI                   string `yaml:"inputURI,omitempty" valid:"isNotZeroValue"`
		OutputURI                  string `yaml:"outputURI,omitempty" valid:"isNotZeroValue"`
		TopN                       int64  `yaml:"topN,omitempty" valid:"isNotZeroValue"`
		MaxRequestAgeSeconds       int64  `yaml:"maxRequestAgeSeconds,omitempty" valid:"isNotZeroValue"`
		ScannerBufferSizeKiloBytes int64  `yaml:"scannerBufferSizeKiloBytes,omitempty" valid:"isNotZeroValue"`
		Scheduler                  struct {
			JobName  string `yaml:"jobName,omitempty" valid:"isNotZeroValue"`
			Schedule string `yaml:",omitempty" valid:"isCronSchedule"`
		}
		LogSink struct {
			Name   string `yaml:",omitempty" valid:"isNotZeroValue"`
			Filter string `yaml:",omitempty" valid:"isNotZeroValue"`
		} `yaml:"logSink"`
	} `yaml:"logAnalyzer"`
}
