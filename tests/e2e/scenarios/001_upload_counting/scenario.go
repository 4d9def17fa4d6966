package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/common/expfmt"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
const (
	batchCount      = 25 // Number of original batches
	clientsPerBatch = 4  // Clients per batch; a client never spans two batches
	articleCount    = 10 // Articles every client reads, full text then PDF
	issn            = "0001-3765"
)

// ### End - fixed configs

const header = "ip\tserverTime\tbrowserName\tbrowserVersion\tvisitId\tvisitorId\tactionId\tactionName\n"

type batchToSend struct {
	batchIndex int
	body       string
	isOriginal bool
}

// main runs the e2e scenario: 001_upload_counting
//
// It uploads batches of tab-separated access records to a running `usage-counter serve`
// (collection scl, sink.require_journal false) and waits until every batch is counted.
//
// What it tests:
//   - Batch upload via POST /batches
//   - Idempotency key handling: duplicates answer 409 and are never counted twice
//   - Asynchronous counting by the partition workers
//   - One article metric record per article and batch, all stored by the Metric Sink
//
// Expected results:
//   - batchCount uploads answer 202, every duplicate answers 409
//   - usage_counter_stream_batch_received_consumed_total{error_code=""} grows by batchCount
//   - usage_counter_sink_record_total{group="article",error_code=""} grows by batchCount*articleCount
//   - In the database every article has, for dateUTC, total and unique item requests and
//     investigations of batchCount*clientsPerBatch*2 (full text and PDF are distinct
//     contents of one session)
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the usage-counter server
	dateUTC := "2021-03-14"            // Day of the generated server times (UTC)
	parallel := 2                      // Number of concurrent upload requests
	totalDuplicates := 10              // Duplicate uploads spread round-robin over the batches
	waitTimeout := 60 * time.Second    // How long to wait for the workers to count every batch

	fmt.Println("Starting e2e scenario: 001_upload_counting")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("DATE_UTC: %s\n", dateUTC)
	fmt.Printf("BATCH_COUNT: %d\n", batchCount)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("TOTAL_DUPLICATES: %d\n", totalDuplicates)
	fmt.Println()

	consumedBefore, storedBefore, err := scrapeCounts(baseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to scrape metrics: %v\n", err)
		os.Exit(1)
	}

	batchesToSend := make([]batchToSend, 0, batchCount+totalDuplicates)
	for batchIndex := 1; batchIndex <= batchCount; batchIndex++ {
		batchesToSend = append(batchesToSend, batchToSend{
			batchIndex: batchIndex,
			body:       generateBatch(batchIndex, dateUTC),
			isOriginal: true,
		})
	}
	for i := 0; i < totalDuplicates; i++ {
		original := batchesToSend[i%batchCount]
		batchesToSend = append(batchesToSend, batchToSend{batchIndex: original.batchIndex, body: original.body})
	}

	// Send originals first so every duplicate conflicts, then the duplicates in parallel
	var accepted, conflicted, failed int64
	send := func(batches []batchToSend) {
		workerChan := make(chan struct{}, parallel)
		var wg sync.WaitGroup
		for _, batch := range batches {
			wg.Add(1)
			workerChan <- struct{}{}

			go func(b batchToSend) {
				defer wg.Done()
				defer func() { <-workerChan }()

				statusCode, err := sendBatch(baseURL, b)
				switch {
				case err != nil:
					atomic.AddInt64(&failed, 1)
					fmt.Fprintf(os.Stderr, "ERROR: Batch %d failed: %v\n", b.batchIndex, err)
				case statusCode == http.StatusAccepted:
					atomic.AddInt64(&accepted, 1)
				case statusCode == http.StatusConflict:
					atomic.AddInt64(&conflicted, 1)
				}
			}(batch)
		}
		wg.Wait()
	}
	send(batchesToSend[:batchCount])
	send(batchesToSend[batchCount:])

	fmt.Println("=== Upload statistics ===")
	fmt.Printf("Accepted request: %d\n", accepted)
	fmt.Printf("Conflicted request: %d\n", conflicted)
	fmt.Printf("Failed request: %d\n", failed)
	if failed > 0 || accepted != batchCount || conflicted != int64(totalDuplicates) {
		fmt.Fprintf(os.Stderr, "ERROR: expected %d accepted and %d conflicted uploads\n", batchCount, totalDuplicates)
		os.Exit(1)
	}

	// Wait for the workers
	deadline := time.Now().Add(waitTimeout)
	for {
		consumed, stored, err := scrapeCounts(baseURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to scrape metrics: %v\n", err)
			os.Exit(1)
		}
		if consumed-consumedBefore >= batchCount {
			fmt.Println("=== Counting statistics ===")
			fmt.Printf("Batches consumed: %.0f\n", consumed-consumedBefore)
			fmt.Printf("Article metric records stored: %.0f\n", stored-storedBefore)
			if stored-storedBefore != batchCount*articleCount {
				fmt.Fprintf(os.Stderr, "ERROR: expected %d stored article records\n", batchCount*articleCount)
				os.Exit(1)
			}
			break
		}
		if time.Now().After(deadline) {
			fmt.Fprintf(os.Stderr, "ERROR: only %.0f of %d batches counted after %s\n", consumed-consumedBefore, batchCount, waitTimeout)
			os.Exit(1)
		}
		time.Sleep(500 * time.Millisecond)
	}

	fmt.Printf("Expected per article on %s: total and unique requests %d\n", dateUTC, batchCount*clientsPerBatch*2)
	fmt.Println("Scenario completed successfully")
}

func articlePID(article int) string {
	return fmt.Sprintf("S%s2021%09d", issn, article)
}

func generateBatch(batchIndex int, dateUTC string) string {
	var b strings.Builder
	b.WriteString(header)
	for client := 0; client < clientsPerBatch; client++ {
		ip := fmt.Sprintf("10.%d.%d.1", batchIndex, client)
		visitID := batchIndex*clientsPerBatch + client + 1
		visitorID := fmt.Sprintf("%016x", visitID)
		for article := 1; article <= articleCount; article++ {
			minute := article * 2
			fmt.Fprintf(&b, "%s\t%s 10:%02d:00\tfirefox\t86.0\t%d\t%s\t%d\twww.scielo.br/scielo.php?script=sci_arttext&pid=%s\n",
				ip, dateUTC, minute, visitID, visitorID, article*2-1, articlePID(article))
			fmt.Fprintf(&b, "%s\t%s 10:%02d:40\tfirefox\t86.0\t%d\t%s\t%d\twww.scielo.br/scielo.php?script=sci_pdf&pid=%s\n",
				ip, dateUTC, minute, visitID, visitorID, article*2, articlePID(article))
		}
	}
	return b.String()
}

func sendBatch(baseURL string, batch batchToSend) (int, error) {
	// Same key for all duplicates of this batch
	idempotencyKey := fmt.Sprintf("batch%06d", batch.batchIndex)

	req, err := http.NewRequest(http.MethodPost, baseURL+"/batches?collection=scl", strings.NewReader(batch.body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/tab-separated-values")
	req.Header.Set("idempotency-key", idempotencyKey)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	// 409 Conflict is expected for duplicates
	if resp.StatusCode >= 400 && resp.StatusCode != http.StatusConflict {
		return resp.StatusCode, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return resp.StatusCode, nil
}

// scrapeCounts reads the consumed batch counter and the stored article record counter.
func scrapeCounts(baseURL string) (float64, float64, error) {
	resp, err := http.Get(baseURL + "/metrics")
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	var parser expfmt.TextParser
	families, err := parser.TextToMetricFamilies(resp.Body)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse metrics: %w", err)
	}

	sum := func(name string, want map[string]string) float64 {
		family, ok := families[name]
		if !ok {
			return 0
		}
		total := 0.0
	metrics:
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if value, ok := want[label.GetName()]; ok && value != label.GetValue() {
					continue metrics
				}
			}
			total += metric.GetCounter().GetValue()
		}
		return total
	}

	consumed := sum("usage_counter_stream_batch_received_consumed_total", map[string]string{"error_code": ""})
	stored := sum("usage_counter_sink_record_total", map[string]string{"group": "article", "error_code": ""})
	return consumed, stored, nil
}
