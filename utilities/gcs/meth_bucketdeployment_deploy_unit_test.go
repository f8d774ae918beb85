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

package gcs

import (
	"testing"

	"cloud.google.com/go/storage"
)

func TestUnitAlignDeleteRule(t *testing.T) {
	deleteRule := func(age int64) storage.LifecycleRule {
		var rule storage.LifecycleRule
		rule.Action.Type = "Delete"
		rule.Condition.AgeInDays = age
		return rule
	}
	classRule := func() storage.LifecycleRule {
		var rule storage.LifecycleRule
		rule.Action.Type = "SetStorageClass"
		rule.Action.StorageClass = "NEARLINE"
		rule.Condition.AgeInDays = 31
		return rule
	}

	var tests = []struct {
		name        string
		rules       []storage.LifecycleRule
		ageInDays   int64
		wantChanged bool
		wantLen     int
	}{
		{
			name:        "NoRuleYet",
			rules:       nil,
			ageInDays:   365,
			wantChanged: true,
			wantLen:     1,
		},
		{
			name:        "DeleteRuleAlreadyAligned",
			rules:       []storage.LifecycleRule{deleteRule(365)},
			ageInDays:   365,
			wantChanged: false,
			wantLen:     1,
		},
		{
			name:        "DeleteRuleDrifted",
			rules:       []storage.LifecycleRule{deleteRule(30)},
			ageInDays:   365,
			wantChanged: true,
			wantLen:     1,
		},
		{
			name:        "OtherRulesAreKept",
			rules:       []storage.LifecycleRule{classRule(), deleteRule(30)},
			ageInDays:   365,
			wantChanged: true,
			wantLen:     2,
		},
		{
			name:        "OnlyOtherRules",
			rules:       []storage.LifecycleRule{classRule()},
			ageInDays:   365,
			wantChanged: true,
			wantLen:     2,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			aligned, changed := alignDeleteRule(test.rules, test.ageInDays)
			if changed != test.wantChanged {
				t.Errorf("Want changed %v have %v", test.wantChanged, changed)
			}
			if len(aligned) != test.wantLen {
				t.Fatalf("Want %d rules have %d", test.wantLen, len(aligned))
			}
			for _, rule := range aligned {
				if rule.Action.Type == "Delete" && rule.Condition.AgeInDays != test.ageInDays {
					t.Errorf("Want delete age %d have %d", test.ageInDays, rule.Condition.AgeInDays)
				}
			}
		})
	}
}
