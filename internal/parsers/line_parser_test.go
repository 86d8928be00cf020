package parsers

import (
	"testing"

	"log-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
)

const lynxTail = `"-" "Lynx/2.8.8dev.9 libwww-FM/2.14 SSL-MM/1.4.1 GNUTLS/2.10.5" "-" "1498697422-2190034393-4708-9752759" "dc7161be3"`

func TestLineParser_Parse_Matches(t *testing.T) {
	t.Parallel()

	parser := NewLineParser()

	tests := []struct {
		name     string
		line     string
		expected models.ParsedLine
	}{
		{
			name:     "banner request",
			line:     `1.196.116.32 -  - [29/Jun/2017:03:50:22 +0300] "GET /api/v2/banner/25019354 HTTP/1.1" 200 927 ` + lynxTail + ` 0.390`,
			expected: models.ParsedLine{URL: "/api/v2/banner/25019354", RequestTime: 0.39},
		},
		{
			name:     "fractional time with trailing newline",
			line:     `127.0.0.1 - - [29/Jun/2017:03:50:22 +0300] "GET /index.html HTTP/1.1" 200 927 ` + lynxTail + " 0.34\n",
			expected: models.ParsedLine{URL: "/index.html", RequestTime: 0.34},
		},
		{
			name:     "time with trailing zero",
			line:     `127.0.0.1 - - [29/Jun/2017:03:50:22 +0300] "GET /index.html HTTP/1.1" 200 927 ` + lynxTail + " 34.0\r\n",
			expected: models.ParsedLine{URL: "/index.html", RequestTime: 34},
		},
		{
			name:     "zero time with HTTP/1.0",
			line:     `127.0.0.1 - - [29/Jun/2017:03:50:22 +0300] "GET /index.html HTTP/1.0" 200 927 ` + lynxTail + " 0.00",
			expected: models.ParsedLine{URL: "/index.html", RequestTime: 0},
		},
		{
			name: "dashes in every header field",
			line: `127.0.0.1 -  - [29/Jun/2017:03:50:22 +0300] "GET /export/appinstall_raw/2017-06-29/ HTTP/1.0" 200 28358 "-" ` +
				`"Mozilla/5.0 (Windows; U; Windows NT 6.0; ru; rv:1.9.0.12) Gecko/2009070611 Firefox/3.0.12 (.NET CLR 3.5.30729)" "-" "-" "-" 0.003`,
			expected: models.ParsedLine{URL: "/export/appinstall_raw/2017-06-29/", RequestTime: 0.003},
		},
		{
			name:     "integer time",
			line:     `172.30.16.199 - - [11/Feb/2020:09:09:10 -0500] "GET /static/css/font-awesome.min.css HTTP/1.1" 304 31 "http://testinstaller/static/css/style.css" "Mozilla/5.0 (X11; Fedora; Linux x86_64; rv:70.0) Gecko/20100101 Firefox/70.0" "-" "-" "-" 31`,
			expected: models.ParsedLine{URL: "/static/css/font-awesome.min.css", RequestTime: 31},
		},
		{
			name:     "time with bare decimal point",
			line:     `127.0.0.1 - - [29/Jun/2017:03:50:22 +0300] "POST /api/v2/slot/4705/groups HTTP/1.1" 200 12 ` + lynxTail + " 2.",
			expected: models.ParsedLine{URL: "/api/v2/slot/4705/groups", RequestTime: 2},
		},
		{
			name:     "lowercase method and month",
			line:     `127.0.0.1 - - [29/jun/2017:03:50:22 +0300] "get /api/1/photogenic_banners/list/?server_name=WIN7RB4 http/1.1" 200 12 ` + lynxTail + " 0.133",
			expected: models.ParsedLine{URL: "/api/1/photogenic_banners/list/?server_name=WIN7RB4", RequestTime: 0.133},
		},
		{
			name:     "request without method and protocol is kept verbatim",
			line:     `127.0.0.1 -  - [29/Jun/2017:05:07:25 +0300] "0" 400 166 "-" "-" "-" "-" "-" 0.001`,
			expected: models.ParsedLine{URL: "0", RequestTime: 0.001},
		},
		{
			name:     "request with extra tokens is kept verbatim",
			line:     `127.0.0.1 - - [29/Jun/2017:03:50:22 +0300] "GET /search?q=a b HTTP/1.1" 400 0 ` + lynxTail + " 0.010",
			expected: models.ParsedLine{URL: "GET /search?q=a b HTTP/1.1", RequestTime: 0.01},
		},
		{
			name:     "remote user and real ip set",
			line:     `10.0.0.1 admin 192.168.1.10 [29/Jun/2017:03:50:22 +0300] "HEAD /health HTTP/1.1" 200 0 ` + lynxTail + " 0.001",
			expected: models.ParsedLine{URL: "/health", RequestTime: 0.001},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			parsed, ok := parser.Parse(tt.line)
			assert.True(t, ok, "line should match the log format")
			assert.Equal(t, tt.expected.URL, parsed.URL)
			assert.InDelta(t, tt.expected.RequestTime, parsed.RequestTime, 1e-12)
		})
	}
}

func TestLineParser_Parse_NoMatch(t *testing.T) {
	t.Parallel()

	parser := NewLineParser()

	lines := map[string]string{
		"empty line":           "",
		"blank line":           "   \n",
		"garbage":              "this is not an access log line",
		"missing request time": `172.30.16.199 - - [11/Feb/2020:09:09:10 -0500] "GET /static/css/font-awesome.min.css HTTP/1.1" 304 31 "http://testinstaller/static/css/style.css" "Mozilla/5.0 (X11; Fedora; Linux x86_64; rv:70.0) Gecko/20100101 Firefox/70.0" "-"`,
		"negative request time": `127.0.0.1 - - [29/Jun/2017:03:50:22 +0300] "GET /index.html HTTP/1.1" 200 927 ` + lynxTail + " -0.5",
		"non numeric time":      `127.0.0.1 - - [29/Jun/2017:03:50:22 +0300] "GET /index.html HTTP/1.1" 200 927 ` + lynxTail + " fast",
		"malformed timestamp":   `127.0.0.1 - - [2017-06-29 03:50:22] "GET /index.html HTTP/1.1" 200 927 ` + lynxTail + " 0.1",
		"malformed status":      `127.0.0.1 - - [29/Jun/2017:03:50:22 +0300] "GET /index.html HTTP/1.1" OK 927 ` + lynxTail + " 0.1",
		"hostname instead of ip": `localhost - - [29/Jun/2017:03:50:22 +0300] "GET /index.html HTTP/1.1" 200 927 ` + lynxTail + " 0.1",
		"invalid utf8":           "\xff\xfe\xfd",
	}

	for name, line := range lines {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.NotPanics(t, func() {
				parsed, ok := parser.Parse(line)
				assert.False(t, ok)
				assert.Equal(t, models.ParsedLine{}, parsed)
			})
		})
	}
}

func TestURLFromRequest(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/index.html", urlFromRequest("GET /index.html HTTP/1.1"))
	assert.Equal(t, "0", urlFromRequest("0"))
	assert.Equal(t, "GET /index.html", urlFromRequest("GET /index.html"))
	// double spaces produce empty tokens, so the request is not a clean triple
	assert.Equal(t, "GET  /index.html HTTP/1.1", urlFromRequest("GET  /index.html HTTP/1.1"))
}
