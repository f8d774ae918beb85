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

// createUpdateView create or realign the view exposing the latest analysis window
func createUpdateView(ctx context.Context, tableName string, dataset *bigquery.Dataset, intervalDays int64) (err error) {
	var viewName, query string
	switch tableName {
	case "results":
		viewName = "latest_results"
		query = getLatestResultsQuery(dataset.ProjectID, dataset.DatasetID, intervalDays)
	}
	table := dataset.Table(viewName)
	description := fmt.Sprintf("LunchMates log analysis - %s", viewName)
	tableMetadataRetreived, err := table.Metadata(ctx)
	if err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "notfound") {
			return fmt.Errorf("table.Metadata %v", err)
		}
		var tableMetadata bigquery.TableMetadata
		tableMetadata.Name = viewName
		tableMetadata.Description = description
		tableMetadata.Labels = map[string]string{"name": strings.ToLower(viewName)}
		tableMetadata.ViewQuery = query
		tableMetadata.UseLegacySQL = false
		err = table.Create(ctx, &tableMetadata)
		if err != nil {
			// deal with concurent executions
			if strings.Contains(strings.ToLower(err.Error()), "already exists") {
				return nil
			}
			return fmt.Errorf("table.Create %v", err)
		}
		log.Printf("Created view %s", viewName)
		return nil
	}
	log.Printf("Found view %s", tableMetadataRetreived.Name)
	needToUpdate := false
	if value, ok := tableMetadataRetreived.Labels["name"]; !ok || !strings.EqualFold(value, viewName) {
		needToUpdate = true
	}
	if tableMetadataRetreived.Description != description {
		needToUpdate = true
	}
	if tableMetadataRetreived.ViewQuery != query {
		needToUpdate = true
	}
	if tableMetadataRetreived.UseLegacySQL {
		needToUpdate = true
	}
	if needToUpdate {
		var tableMetadataToUpdate bigquery.TableMetadataToUpdate
		tableMetadataToUpdate.SetLabel("name", strings.ToLower(viewName))
		tableMetadataToUpdate.Description = description
		tableMetadataToUpdate.ViewQuery = query
		tableMetadataToUpdate.UseLegacySQL = false
		tableMetadataRetreived, err = table.Update(ctx, tableMetadataToUpdate, "")
		if err != nil {
			return fmt.Errorf("table.Update %s %v", viewName, err)
		}
		log.Printf("View updated %s", tableMetadataRetreived.Name)
	}
	return nil
}
