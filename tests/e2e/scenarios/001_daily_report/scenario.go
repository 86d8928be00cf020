package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"sync"
	"time"

	"github.com/klauspost/compress/gzip"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
const (
	totalEntries   = 40000 // parsable log lines
	garbageEntries = 1000  // lines that never match the log format
	logDate        = "20170630"
	reportDate     = "2017.06.30"
)

var urls = []string{
	"/api/v2/banner/25019354",
	"/api/1/photogenic_banners/list/?server_name=WIN7RB4",
	"/api/v2/slot/4705/groups",
	"/export/appinstall_raw/2017-06-29/",
}

// ### End - fixed configs

const lineFormat = `1.196.116.32 -  - [29/Jun/2017:03:50:22 +0300] "GET %s HTTP/1.1" 200 927 "-" "Lynx/2.8.8dev.9 libwww-FM/2.14 SSL-MM/1.4.1 GNUTLS/2.10.5" "-" "1498697422-2190034393-4708-9752759" "dc7161be3" %.3f`

type reportRow struct {
	URL     string  `json:"url"`
	Count   int     `json:"count"`
	TimeSum float64 `json:"time_sum"`
	TimeMax float64 `json:"time_max"`
}

type runResponse struct {
	Ran    bool   `json:"ran"`
	Reason string `json:"reason"`
}

var tablePattern = regexp.MustCompile(`var table = (\[.*?\]);`)

// main runs the e2e scenario: 001_daily_report
//
// It writes a deterministic gzipped access log into the analyzer's log directory,
// fires concurrent POST /runs requests against a running `log-analyzer serve`,
// then downloads the report and checks the per-URL statistics.
//
// Expected results:
//   - At most one run answers 201 Created; every other run answers 200 with reason "report_exists"
//     (the directory watcher may have produced the report first)
//   - GET /reports/2017.06.30 returns the HTML report
//   - The report has one row per URL with the generated count, time sum and max
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the log-analyzer server
	logDir := ".tmp/logs"              // must match analyzer.log_dir of the server, relative to project root
	reportDir := ".tmp/reports"        // must match analyzer.report_dir of the server, relative to project root
	parallel := 8                      // concurrent POST /runs requests
	wantCleanDirs := true              // remove previous logs and reports before running

	projectRoot, err := findProjectRoot()
	if err != nil {
		fail("%v", err)
	}
	logPath := filepath.Join(projectRoot, logDir)
	reportPath := filepath.Join(projectRoot, reportDir)

	if wantCleanDirs {
		fmt.Printf("Cleaning %s and %s\n", logPath, reportPath)
		_ = os.RemoveAll(filepath.Join(logPath, "nginx-access-ui.log-"+logDate+".gz"))
		_ = os.RemoveAll(reportPath)
	}
	if err := os.MkdirAll(logPath, 0o755); err != nil {
		fail("create log dir: %v", err)
	}

	fmt.Println("Starting e2e scenario: 001_daily_report")
	expected, err := writeLog(filepath.Join(logPath, "nginx-access-ui.log-"+logDate+".gz"))
	if err != nil {
		fail("write log: %v", err)
	}

	created, skipped := fireRuns(baseURL, parallel)
	fmt.Printf("Runs: %d created, %d skipped\n", created, skipped)
	if created > 1 {
		fail("expected at most one created run, got %d", created)
	}
	if created+skipped != parallel {
		fail("expected %d successful runs, got %d", parallel, created+skipped)
	}

	rows, err := fetchReport(baseURL)
	if err != nil {
		fail("fetch report: %v", err)
	}
	if err := verify(rows, expected); err != nil {
		fail("%v", err)
	}
	fmt.Println("Scenario passed")
}

func writeLog(path string) (map[string]reportRow, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	expected := make(map[string]reportRow, len(urls))

	for i := 0; i < totalEntries; i++ {
		url := urls[i%len(urls)]
		requestTime := float64(i%100+1) / 1000
		if _, err := fmt.Fprintf(zw, lineFormat+"\n", url, requestTime); err != nil {
			return nil, err
		}
		row := expected[url]
		row.URL = url
		row.Count++
		row.TimeSum += requestTime
		row.TimeMax = math.Max(row.TimeMax, requestTime)
		expected[url] = row

		if i%(totalEntries/garbageEntries) == 0 {
			if _, err := io.WriteString(zw, "garbage line without any known format\n"); err != nil {
				return nil, err
			}
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return expected, os.WriteFile(path, buf.Bytes(), 0o644)
}

func fireRuns(baseURL string, parallel int) (created, skipped int) {
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	client := &http.Client{Timeout: 60 * time.Second}

	for i := 0; i < parallel; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := client.Post(baseURL+"/runs", "application/json", nil)
			if err != nil {
				fmt.Fprintf(os.Stderr, "POST /runs failed: %v\n", err)
				return
			}
			defer resp.Body.Close()

			var body runResponse
			_ = json.NewDecoder(resp.Body).Decode(&body)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case resp.StatusCode == http.StatusCreated && body.Ran:
				created++
			case resp.StatusCode == http.StatusOK && body.Reason == "report_exists":
				skipped++
			default:
				fmt.Fprintf(os.Stderr, "unexpected run response: %d %+v\n", resp.StatusCode, body)
			}
		}()
	}
	wg.Wait()
	return created, skipped
}

func fetchReport(baseURL string) ([]reportRow, error) {
	resp, err := http.Get(baseURL + "/reports/" + reportDate)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET /reports/%s: status %d", reportDate, resp.StatusCode)
	}

	html, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	match := tablePattern.FindSubmatch(html)
	if match == nil {
		return nil, fmt.Errorf("report has no table data")
	}
	var rows []reportRow
	if err := json.Unmarshal(match[1], &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func verify(rows []reportRow, expected map[string]reportRow) error {
	if len(rows) != len(expected) {
		return fmt.Errorf("expected %d rows, got %d", len(expected), len(rows))
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].URL < rows[j].URL })
	for _, row := range rows {
		want, ok := expected[row.URL]
		if !ok {
			return fmt.Errorf("unexpected url %q in report", row.URL)
		}
		if row.Count != want.Count {
			return fmt.Errorf("%s: count %d, want %d", row.URL, row.Count, want.Count)
		}
		if math.Abs(row.TimeSum-want.TimeSum) > 1e-6 || math.Abs(row.TimeMax-want.TimeMax) > 1e-9 {
			return fmt.Errorf("%s: time_sum=%f time_max=%f, want %f %f", row.URL, row.TimeSum, row.TimeMax, want.TimeSum, want.TimeMax)
		}
		fmt.Printf("  %-55s count=%d time_sum=%.3f time_max=%.3f\n", row.URL, row.Count, row.TimeSum, row.TimeMax)
	}
	return nil
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod, run from the project root")
		}
		dir = parent
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}
