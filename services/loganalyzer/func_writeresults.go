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

package loganalyzer

import (
	"fmt"
	"io/ioutil"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/storage"

	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/gbq"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/gcs"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/hal"
)

const bqURIPrefix = "bq://"

// resultRow is one ranked response code as a BigQuery row
type resultRow struct {
	RunID        string    `bigquery:"runID"`
	RunTime      time.Time `bigquery:"runTime"`
	Rank         int64     `bigquery:"rank"`
	ResponseCode string    `bigquery:"responseCode"`
	Count        int64     `bigquery:"count"`
	Input        string    `bigquery:"input"`
}

// writeResults writes the ranked results to a local file, a GCS object, or a BigQuery table
func writeResults(global *Global, runID string, inputURI string, outputURI string, topCodes []hal.CodeCount, lines []string) (err error) {
	switch {
	case strings.HasPrefix(outputURI, bqURIPrefix):
		return insertResults(global, runID, inputURI, outputURI, topCodes)
	case strings.HasPrefix(outputURI, gcs.URIPrefix):
		bucketName, objectName, err := gcs.ParseURI(outputURI)
		if err != nil {
			return err
		}
		if global.storageClient == nil {
			global.storageClient, err = storage.NewClient(global.ctx)
			if err != nil {
				return fmt.Errorf("storage.NewClient %v", err)
			}
		}
		storageObjectWriter := global.storageClient.Bucket(bucketName).Object(objectName).NewWriter(global.ctx)
		_, err = fmt.Fprint(storageObjectWriter, formatLines(lines))
		if err != nil {
			return fmt.Errorf("fmt.Fprint(storageObjectWriter) %s %v", outputURI, err)
		}
		err = storageObjectWriter.Close()
		if err != nil {
			return fmt.Errorf("storageObjectWriter.Close() %s %v", outputURI, err)
		}
		log.Printf("WRITE object: %s", outputURI)
		return nil
	default:
		err = ioutil.WriteFile(outputURI, []byte(formatLines(lines)), 0644)
		if err != nil {
			return fmt.Errorf("ioutil.WriteFile %s %v", outputURI, err)
		}
		log.Printf("WRITE file: %s", outputURI)
		return nil
	}
}

// insertResults streams the ranked rows into the results table, which -setup provisions
func insertResults(global *Global, runID string, inputURI string, outputURI string, topCodes []hal.CodeCount) (err error) {
	datasetTableNames := strings.TrimPrefix(outputURI, bqURIPrefix)
	parts := strings.SplitN(datasetTableNames, ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("Want bq://<dataset>.<table> got '%s'", outputURI)
	}
	if global.bigqueryClient == nil {
		global.bigqueryClient, err = bigquery.NewClient(global.ctx, global.settings.Hosting.ProjectID)
		if err != nil {
			return fmt.Errorf("bigquery.NewClient %v", err)
		}
	}
	table := global.bigqueryClient.Dataset(parts[0]).Table(parts[1])
	_, err = table.Metadata(global.ctx)
	if err != nil {
		return fmt.Errorf("missing table %s %v", datasetTableNames, err)
	}
	inserter := table.Inserter()
	runTime := time.Now()
	schema := gbq.GetResultsSchema()
	savers := make([]*bigquery.StructSaver, 0, len(topCodes))
	for i, codeCount := range topCodes {
		row := resultRow{
			RunID:        runID,
			RunTime:      runTime,
			Rank:         int64(i + 1),
			ResponseCode: codeCount.Code,
			Count:        int64(codeCount.Count),
			Input:        inputURI,
		}
		savers = append(savers, &bigquery.StructSaver{
			Struct:   row,
			Schema:   schema,
			InsertID: fmt.Sprintf("%s.%s", runID, codeCount.Code),
		})
	}
	if err := inserter.Put(global.ctx, savers); err != nil {
		return fmt.Errorf("inserter.Put %v", err)
	}
	log.Println("insert results ok", runID)
	return nil
}

// formatLines joins the formatted records, newline terminated, empty results give an empty write
func formatLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
