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
	"bufio"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/hal"
	"github.com/Apress/building-your-next-big-thing-w-google-cloud-platform/utilities/logging"
)

const pipelineName = "Extract Logs UX"

// runAnalysis runs the pipeline once: read, extract, count, rank, format, write
func runAnalysis(global *Global, inputURI string, outputURI string) (err error) {
	runID := fmt.Sprintf("%v", uuid.New())
	start := time.Now()

	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "INFO",
		Message:          "Read Input",
		Description:      inputURI,
		Component:        pipelineName,
		RunID:            runID,
	})
	inputReader, err := openInput(global, inputURI)
	if err != nil {
		return err
	}
	defer inputReader.Close()

	counter := hal.NewCounter()
	scanner := bufio.NewScanner(inputReader)
	scannerBufferSize := int(global.settings.LogAnalyzer.ScannerBufferSizeKiloBytes) * 1024
	scanner.Buffer(make([]byte, scannerBufferSize), scannerBufferSize)
	lineNumber := 0
	for scanner.Scan() {
		counter.AddLine(scanner.Text())
		lineNumber++
	}
	if err = scanner.Err(); err != nil {
		return fmt.Errorf("scanner.Err %s %v", inputURI, err)
	}
	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "INFO",
		Message:          "Extract Response Codes",
		Description:      fmt.Sprintf("%d lines", lineNumber),
		Component:        pipelineName,
		RunID:            runID,
	})

	counts := counter.Counts()
	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "INFO",
		Message:          "Count Response Codes",
		Description:      fmt.Sprintf("%d distinct response codes", len(counts)),
		Component:        pipelineName,
		RunID:            runID,
	})

	topCodes := hal.TopCodes(counts, int(global.settings.LogAnalyzer.TopN))
	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "INFO",
		Message:          "Get Top Codes",
		Description:      fmt.Sprintf("%d ranked response codes", len(topCodes)),
		Component:        pipelineName,
		RunID:            runID,
	})

	lines := hal.FormatResults(topCodes)
	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "INFO",
		Message:          "Format Output",
		Component:        pipelineName,
		RunID:            runID,
	})

	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "INFO",
		Message:          "Write Results",
		Description:      outputURI,
		Component:        pipelineName,
		RunID:            runID,
	})
	err = writeResults(global, runID, inputURI, outputURI, topCodes, lines)
	if err != nil {
		return err
	}

	now := time.Now()
	latency := now.Sub(start)
	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          fmt.Sprintf("finish analysis %s", outputURI),
		Component:        pipelineName,
		RunID:            runID,
		Now:              &now,
		LatencySeconds:   latency.Seconds(),
	})
	return nil
}
