package models

import (
	"fmt"
	"time"
)

// ReportRow holds the statistics of one URL in the report table.
//
// Example JSON:
//
//	{
//	  "url": "/api/v2/banner/25019354",
//	  "count": 4,
//	  "count_perc": 0.4,
//	  "time_sum": 1.56,
//	  "time_perc": 2.1,
//	  "time_avg": 0.39,
//	  "time_max": 0.704,
//	  "time_med": 0.39
//	}
type ReportRow struct {
	URL          string  `json:"url"`
	Count        int     `json:"count"`
	CountPercent float64 `json:"count_perc"`
	TimeSum      float64 `json:"time_sum"`
	TimePercent  float64 `json:"time_perc"`
	TimeAvg      float64 `json:"time_avg"`
	TimeMax      float64 `json:"time_max"`
	TimeMedian   float64 `json:"time_med"`
}

const reportDateLayout = "2006.01.02"

// ReportKey returns the file name of the report generated for a log dated date,
// e.g. "report-2020.02.12.html".
func ReportKey(date time.Time) string {
	return fmt.Sprintf("report-%s.html", date.Format(reportDateLayout))
}

// ParseReportDate parses the date part of a report key ("2020.02.12").
func ParseReportDate(s string) (time.Time, error) {
	return time.Parse(reportDateLayout, s)
}
