package models

import (
	"iter"
	"maps"
)

// ParsedLine is the part of an access log line the analyzer keeps.
type ParsedLine struct {
	URL         string
	RequestTime float64 // seconds, never negative
}

// URLAggregate collects the request times observed for every URL, in log order.
// A URL is present only once it has at least one observation.
type URLAggregate struct {
	times map[string][]float64
}

func NewURLAggregate() *URLAggregate {
	return &URLAggregate{times: make(map[string][]float64)}
}

// Add appends one observation for line.URL.
func (a *URLAggregate) Add(line ParsedLine) {
	a.times[line.URL] = append(a.times[line.URL], line.RequestTime)
}

// Times returns the observations for url. Callers must not modify the returned slice.
func (a *URLAggregate) Times(url string) []float64 {
	return a.times[url]
}

// Len returns the number of distinct URLs.
func (a *URLAggregate) Len() int {
	return len(a.times)
}

// All iterates over every URL and its observations in unspecified order.
func (a *URLAggregate) All() iter.Seq2[string, []float64] {
	return maps.All(a.times)
}

// RunStats are the line counters accumulated while aggregating one log file.
type RunStats struct {
	TotalLines  int
	ParsedLines int
	TotalTime   float64
}

// ParsedPercent returns the share of lines that matched the log format.
// An empty file counts as 0% parsed.
func (s RunStats) ParsedPercent() float64 {
	if s.TotalLines == 0 {
		return 0
	}
	return float64(s.ParsedLines) * 100 / float64(s.TotalLines)
}
