package renderers

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"log-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleRows = []models.ReportRow{
	{URL: "/api/v2/banner/25019354", Count: 4, CountPercent: 40, TimeSum: 1.56, TimePercent: 60, TimeAvg: 0.39, TimeMax: 0.704, TimeMedian: 0.39},
	{URL: "/api/1/photogenic_banners/list/?server_name=WIN7RB4", Count: 6, CountPercent: 60, TimeSum: 1.04, TimePercent: 40, TimeAvg: 0.173, TimeMax: 0.5, TimeMedian: 0.133},
}

func TestHTMLRenderer_Render_DefaultTemplate(t *testing.T) {
	t.Parallel()

	renderer, err := NewHTMLRenderer("")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, sampleRows))

	html := buf.String()
	assert.NotContains(t, html, TablePlaceholder)
	assert.Contains(t, html, `"url":"/api/v2/banner/25019354"`)
	assert.Contains(t, html, `"time_med":0.133`)
}

func TestHTMLRenderer_Render_CustomTemplate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.html")
	require.NoError(t, os.WriteFile(path, []byte("<script>var table = $table_json;</script>"), 0o644))

	renderer, err := NewHTMLRenderer(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, sampleRows))

	payload := strings.TrimSuffix(strings.TrimPrefix(buf.String(), "<script>var table = "), ";</script>")
	var decoded []models.ReportRow
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	assert.Equal(t, sampleRows, decoded)
}

func TestHTMLRenderer_Render_EmptyRowsAndEscaping(t *testing.T) {
	t.Parallel()

	renderer, err := NewHTMLRenderer("")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, nil))
	assert.Contains(t, buf.String(), "var table = [];")

	buf.Reset()
	rows := []models.ReportRow{{URL: "/</script><script>alert(1)</script>", Count: 1}}
	require.NoError(t, renderer.Render(&buf, rows))
	assert.NotContains(t, buf.String(), "</script><script>alert(1)")
}

func TestNewHTMLRenderer_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := NewHTMLRenderer(filepath.Join(dir, "missing.html"))
	assert.Error(t, err)

	noPlaceholder := filepath.Join(dir, "static.html")
	require.NoError(t, os.WriteFile(noPlaceholder, []byte("<html></html>"), 0o644))
	_, err = NewHTMLRenderer(noPlaceholder)
	assert.ErrorContains(t, err, TablePlaceholder)
}

func TestTableRenderer_Render(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewTableRenderer().Render(&buf, sampleRows))

	out := buf.String()
	assert.Contains(t, out, "/api/v2/banner/25019354")
	assert.Contains(t, out, "1.560")
	assert.Contains(t, out, "0.704")
	assert.Less(t, strings.Index(out, "/api/v2/banner/25019354"), strings.Index(out, "/api/1/photogenic_banners"))
}
