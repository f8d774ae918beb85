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

package ffo

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestUnitReadUnmarshalYAML(t *testing.T) {
	type conf struct {
		TopicName string            `yaml:"topicName"`
		Buckets   map[string]string `yaml:"buckets"`
	}
	var c conf

	path := filepath.Join(t.TempDir(), "settings.yaml")
	err := MarshalYAMLWrite(path, conf{
		TopicName: "habitable-planets",
		Buckets: map[string]string{
			"logs": "lunchmates_logs",
		},
	})
	if err != nil {
		t.Fatalf("ffo.MarshalYAMLWrite %v", err)
	}

	err = ReadUnmarshalYAML(path, &c)
	if err != nil {
		t.Fatalf("ffo.ReadUnmarshalYAML %v", err)
	}
	if c.TopicName != "habitable-planets" {
		t.Errorf("Want topicName '%s' got '%s'", "habitable-planets", c.TopicName)
	}
	if c.Buckets["logs"] != "lunchmates_logs" {
		t.Errorf("Want bucket '%s' got '%s'", "lunchmates_logs", c.Buckets["logs"])
	}

	err = ReadUnmarshalYAML(filepath.Join(t.TempDir(), "doesnotexist.yaml"), &c)
	if err == nil {
		t.Errorf("Want an error on a missing file, got nil")
	} else if !strings.Contains(err.Error(), "no such file") {
		t.Errorf("Want a 'no such file' error got '%v'", err)
	}
}
