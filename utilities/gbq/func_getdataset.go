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

package gbq

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/bigquery"
)

// getDataset get the analytics dataset, creating or relabeling it when needed
func getDataset(ctx context.Context, datasetName string, location string, bigQueryClient *bigquery.Client) (dataset *bigquery.Dataset, err error) {
	dataset = bigQueryClient.Dataset(datasetName)
	datasetMetadata, err := dataset.Metadata(ctx)
	if err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "notfound") {
			return nil, fmt.Errorf("dataset.Metadata %v", err)
		}
		var datasetToCreateMetadata bigquery.DatasetMetadata
		datasetToCreateMetadata.Name = datasetName
		datasetToCreateMetadata.Location = location
		datasetToCreateMetadata.Description = "LunchMates log analysis"
		datasetToCreateMetadata.Labels = map[string]string{"name": strings.ToLower(datasetName)}

		err = dataset.Create(ctx, &datasetToCreateMetadata)
		if err != nil {
			// deal with concurent executions
			if strings.Contains(strings.ToLower(err.Error()), "already exists") {
				return dataset, nil
			}
			return nil, fmt.Errorf("dataset.Create %v", err)
		}
		log.Printf("Created dataset %s", datasetName)
		return dataset, nil
	}
	// Reads on a nil label map are fine, ok carries the miss
	value, ok := datasetMetadata.Labels["name"]
	if !ok || !strings.EqualFold(value, datasetName) {
		var datasetMetadataToUpdate bigquery.DatasetMetadataToUpdate
		datasetMetadataToUpdate.SetLabel("name", strings.ToLower(datasetName))
		_, err = dataset.Update(ctx, datasetMetadataToUpdate, "")
		if err != nil {
			return nil, fmt.Errorf("dataset.Update %v", err)
		}
		log.Printf("Updated dataset labels %s", datasetName)
	}
	return dataset, nil
}
