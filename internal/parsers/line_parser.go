package parsers

import (
	"regexp"
	"strconv"
	"strings"

	"log-analyzer/internal/models"
)

// logLinePattern matches the nginx "ui_short" access log format:
//
//	log_format ui_short '$remote_addr $remote_user $http_x_real_ip [$time_local] "$request" '
//	                    '$status $body_bytes_sent "$http_referer" '
//	                    '"$http_user_agent" "$http_x_forwarded_for" "$http_X_REQUEST_ID" "$http_X_RB_USER" '
//	                    '$request_time';
//
// Example:
//
//	1.196.116.32 -  - [29/Jun/2017:03:50:22 +0300] "GET /api/v2/banner/25019354 HTTP/1.1" 200 927 "-" "Lynx/2.8.8dev.9 libwww-FM/2.14 SSL-MM/1.4.1 GNUTLS/2.10.5" "-" "1498697422-2190034393-4708-9752759" "dc7161be3" 0.390
var logLinePattern = regexp.MustCompile(`(?i)^` +
	`(?P<remote_addr>\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}) ` +
	`(?P<remote_user>-|.+) ` +
	`(?P<real_ip>-|.+) ` +
	`\[(?P<time_local>\d{2}/[a-z]{3}/\d{4}:\d{2}:\d{2}:\d{2} [+-]\d{4})\] ` +
	`"(?P<request>.+)" ` +
	`(?P<status>\d{3}) ` +
	`(?P<body_bytes_sent>\d+) ` +
	`"(?P<referer>-|.+)" ` +
	`"(?P<user_agent>-|.+)" ` +
	`"(?P<forwarded_for>-|.+)" ` +
	`"(?P<request_id>-|.+)" ` +
	`"(?P<rb_user>-|.+)" ` +
	`(?P<request_time>\d+(?:\.\d*)?)$`)

var (
	requestIndex     = logLinePattern.SubexpIndex("request")
	requestTimeIndex = logLinePattern.SubexpIndex("request_time")
)

//go:generate mockgen -source=line_parser.go -destination=./mocks/line_parser_mock.go -package=mocks
type LineParser interface {
	// Parse extracts the URL and request time from one raw log line.
	// It reports false when the line does not match the log format.
	Parse(rawLine string) (models.ParsedLine, bool)
}

type lineParser struct {
	pattern *regexp.Regexp
}

func NewLineParser() LineParser {
	return &lineParser{pattern: logLinePattern}
}

func (p *lineParser) Parse(rawLine string) (models.ParsedLine, bool) {
	match := p.pattern.FindStringSubmatch(strings.TrimRight(rawLine, "\r\n"))
	if match == nil {
		return models.ParsedLine{}, false
	}

	requestTime, err := strconv.ParseFloat(match[requestTimeIndex], 64)
	if err != nil {
		return models.ParsedLine{}, false
	}

	return models.ParsedLine{
		URL:         urlFromRequest(match[requestIndex]),
		RequestTime: requestTime,
	}, true
}

// urlFromRequest strips the method and protocol from a "METHOD URL PROTOCOL" request line.
// Anything else (e.g. a bare "0" sent by a scanner) is kept verbatim.
func urlFromRequest(request string) string {
	parts := strings.Split(request, " ")
	if len(parts) == 3 {
		return parts[1]
	}
	return request
}
