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
	"fmt"
	"strings"
)

const latestResultsQuery = `
WITH results0 AS (
    SELECT
      *
    FROM
      <results>
    WHERE
      DATE(_PARTITIONTIME) > DATE_SUB(CURRENT_DATE(), INTERVAL <intervalDays> DAY)
      OR _PARTITIONTIME IS NULL
  ),
  latest_run AS (
    SELECT
      runID,
      MAX(runTime) AS runTime
    FROM
      results0
    GROUP BY
      runID
    ORDER BY
      runTime DESC
    LIMIT
      1
  )
  SELECT
    results0.runID,
    results0.runTime,
    results0.rank,
    results0.responseCode,
    results0.count,
    results0.input
  FROM
    latest_run
    INNER JOIN results0 ON results0.runID = latest_run.runID
  ORDER BY
    results0.rank
`

func getLatestResultsQuery(projectID string, datasetName string, intervalDays int64) (query string) {
	resultsTableName := fmt.Sprintf("`%s.%s.results`", projectID, datasetName)
	query = strings.Replace(latestResultsQuery, "<results>", resultsTableName, -1)
	query = strings.Replace(query, "<intervalDays>", fmt.Sprintf("%d", intervalDays), -1)
	return query
}
