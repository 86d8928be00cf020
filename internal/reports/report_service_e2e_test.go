package reports

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"log-analyzer/internal/aggregators"
	"log-analyzer/internal/parsers"
	"log-analyzer/internal/rankers"
	"log-analyzer/internal/renderers"
	"log-analyzer/internal/selectors"
	"log-analyzer/internal/shared/filestorages"
	"log-analyzer/internal/stores"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fontAwesomeLine = `172.30.16.199 - - [11/Feb/2020:09:09:10 -0500] "GET /static/css/font-awesome.min.css HTTP/1.1" 304 31 "http://testinstaller/static/css/style.css" "Mozilla/5.0 (X11; Fedora; Linux x86_64; rv:70.0) Gecko/20100101 Firefox/70.0" "-" "-" "-" 31`

func newFileBackedService(t *testing.T, logDir, reportDir, prefix string, failurePercent float64) ReportService {
	t.Helper()

	fileStorage, err := filestorages.NewFileStorage(reportDir)
	require.NoError(t, err)
	renderer, err := renderers.NewHTMLRenderer("")
	require.NoError(t, err)

	return NewReportService(
		selectors.NewFileSelector(prefix),
		aggregators.NewStreamAggregator(parsers.NewLineParser()),
		rankers.NewTopNRanker(),
		renderer,
		stores.NewReportStore(fileStorage),
		Options{LogDir: logDir, ReportSize: 1000, FailurePercent: failurePercent},
	)
}

func writeGzipLog(t *testing.T, path, content string) {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestReportService_EndToEnd_GzipLog(t *testing.T) {
	t.Parallel()

	logDir := t.TempDir()
	reportDir := filepath.Join(t.TempDir(), "reports")
	writeGzipLog(t, filepath.Join(logDir, "access.log-20200212.gz"), fontAwesomeLine+"\n")
	require.NoError(t, os.WriteFile(filepath.Join(logDir, "access.log-20200211"), []byte(fontAwesomeLine+"\n"), 0o644))

	service := newFileBackedService(t, logDir, reportDir, "access.log-", 50)
	ctx := context.Background()

	result, err := service.Run(ctx)
	require.NoError(t, err)
	require.True(t, result.Ran)
	assert.Equal(t, "report-2020.02.12.html", result.ReportKey)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "/static/css/font-awesome.min.css", result.Rows[0].URL)
	assert.Equal(t, 31.0, result.Rows[0].TimeSum)
	assert.Equal(t, 100.0, result.Rows[0].CountPercent)
	assert.Equal(t, 100.0, result.Rows[0].TimePercent)

	report, err := os.ReadFile(filepath.Join(reportDir, "report-2020.02.12.html"))
	require.NoError(t, err)
	assert.Contains(t, string(report), `"url":"/static/css/font-awesome.min.css"`)
	assert.NotContains(t, string(report), renderers.TablePlaceholder)

	_, err = os.Stat(filepath.Join(reportDir, "report-2020.02.11.html"))
	assert.True(t, os.IsNotExist(err), "only the latest log is analyzed")

	second, err := service.Run(ctx)
	require.NoError(t, err)
	assert.False(t, second.Ran)
	assert.Equal(t, ReasonReportExists, second.Reason)

	unchanged, err := os.ReadFile(filepath.Join(reportDir, "report-2020.02.12.html"))
	require.NoError(t, err)
	assert.Equal(t, report, unchanged)
}

func TestReportService_EndToEnd_QualityGateLeavesNoReport(t *testing.T) {
	t.Parallel()

	logDir := t.TempDir()
	reportDir := t.TempDir()
	content := fontAwesomeLine + "\n" + strings.Repeat("garbage\n", 2)
	require.NoError(t, os.WriteFile(filepath.Join(logDir, "nginx-access-ui.log-20170630"), []byte(content), 0o644))

	service := newFileBackedService(t, logDir, reportDir, "", 50)

	result, err := service.Run(context.Background())
	requireServiceError(t, err, "RPT_1001")
	assert.Equal(t, 3, result.Stats.TotalLines)
	assert.Equal(t, 1, result.Stats.ParsedLines)

	entries, err := os.ReadDir(reportDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReportService_EndToEnd_EmptyDirectory(t *testing.T) {
	t.Parallel()

	service := newFileBackedService(t, t.TempDir(), t.TempDir(), "", 50)

	result, err := service.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Ran)
	assert.Equal(t, ReasonNoLogFile, result.Reason)
}

func TestReportService_EndToEnd_ConcurrentRuns(t *testing.T) {
	t.Parallel()

	logDir := t.TempDir()
	reportDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(logDir, "nginx-access-ui.log-20170630"), []byte(strings.Repeat(fontAwesomeLine+"\n", 100)), 0o644))

	service := newFileBackedService(t, logDir, reportDir, "", 50)

	const runs = 8
	results := make([]RunResult, runs)
	errs := make([]error, runs)
	var wg sync.WaitGroup
	for i := 0; i < runs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = service.Run(context.Background())
		}()
	}
	wg.Wait()

	ran := 0
	for i := 0; i < runs; i++ {
		require.NoError(t, errs[i])
		if results[i].Ran {
			ran++
		} else {
			assert.Equal(t, ReasonReportExists, results[i].Reason)
		}
	}
	assert.Equal(t, 1, ran)
}
