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
	"reflect"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
)

// getTable get a table of the analytics dataset, creating or realigning it when needed
func getTable(ctx context.Context, tableName string, dataset *bigquery.Dataset) (table *bigquery.Table, err error) {
	var schema bigquery.Schema
	switch tableName {
	case "results":
		schema = GetResultsSchema()
	}

	table = dataset.Table(tableName)
	tableMetadata, err := table.Metadata(ctx)
	if err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "notfound") {
			return nil, fmt.Errorf("table.Metadata %v", err)
		}
		var tableToCreateMetadata bigquery.TableMetadata
		tableToCreateMetadata.Name = tableName
		tableToCreateMetadata.Description = fmt.Sprintf("LunchMates log analysis - %s", tableName)
		tableToCreateMetadata.Labels = map[string]string{"name": strings.ToLower(tableName)}

		var timePartitioning bigquery.TimePartitioning
		timePartitioning.Type = "DAY"
		timePartitioning.Expiration = time.Duration(0)
		tableToCreateMetadata.TimePartitioning = &timePartitioning
		tableToCreateMetadata.Schema = schema

		err = table.Create(ctx, &tableToCreateMetadata)
		if err != nil {
			// deal with concurent executions
			if strings.Contains(strings.ToLower(err.Error()), "already exists") {
				return table, nil
			}
			return nil, fmt.Errorf("table.Create %v", err)
		}
		log.Printf("gbq created table %s", tableName)
		return table, nil
	}
	log.Printf("gbq found table %s", tableName)
	needToUpdate := false
	var tableMetadataToUpdate bigquery.TableMetadataToUpdate
	if value, ok := tableMetadata.Labels["name"]; !ok || !strings.EqualFold(value, tableName) {
		tableMetadataToUpdate.SetLabel("name", strings.ToLower(tableName))
		log.Printf("gbq need to update table labels %s", tableName)
		needToUpdate = true
	}
	// Partitioning cannot be added to an existing table, only an expiration drift is realigned
	if tableMetadata.TimePartitioning != nil && tableMetadata.TimePartitioning.Expiration != time.Duration(0) {
		var timePartitioning bigquery.TimePartitioning
		timePartitioning.Expiration = time.Duration(0)
		timePartitioning.Type = tableMetadata.TimePartitioning.Type

		tableMetadataToUpdate.TimePartitioning = &timePartitioning
		log.Printf("gbq need to update partition expiration on table %s", tableName)
		needToUpdate = true
	}
	if !reflect.DeepEqual(tableMetadata.Schema, schema) {
		tableMetadataToUpdate.Schema = schema
		log.Printf("gbq need to update schema on table %s", tableName)
		needToUpdate = true
	}
	if needToUpdate {
		tableMetadata, err = table.Update(ctx, tableMetadataToUpdate, "")
		if err != nil {
			return nil, fmt.Errorf("table.Update %v", err)
		}
		log.Printf("gbq table updated %s", tableMetadata.Name)
	}
	return table, nil
}
