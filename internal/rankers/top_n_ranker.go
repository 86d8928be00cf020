package rankers

import (
	"container/heap"

	"log-analyzer/internal/models"

	"github.com/montanaflynn/stats"
)

//go:generate mockgen -source=top_n_ranker.go -destination=./mocks/top_n_ranker_mock.go -package=mocks
type TopNRanker interface {
	// Rank returns report rows for the n URLs with the largest total request time,
	// ordered by total time descending. It never modifies agg.
	Rank(agg *models.URLAggregate, runStats models.RunStats, n int) []models.ReportRow
}

type topNRanker struct{}

func NewTopNRanker() TopNRanker {
	return &topNRanker{}
}

func (r *topNRanker) Rank(agg *models.URLAggregate, runStats models.RunStats, n int) []models.ReportRow {
	if n <= 0 || agg == nil || agg.Len() == 0 {
		return []models.ReportRow{}
	}

	top := make(urlSumHeap, 0, min(n, agg.Len()))
	for url, times := range agg.All() {
		sum, _ := stats.Sum(times)
		entry := urlSum{url: url, sum: sum, times: times}

		if top.Len() < n {
			heap.Push(&top, entry)
			continue
		}
		if sum > top[0].sum {
			top[0] = entry
			heap.Fix(&top, 0)
		}
	}

	rows := make([]models.ReportRow, top.Len())
	for i := len(rows) - 1; i >= 0; i-- {
		rows[i] = buildRow(heap.Pop(&top).(urlSum), runStats)
	}
	return rows
}

func buildRow(entry urlSum, runStats models.RunStats) models.ReportRow {
	count := len(entry.times)
	data := stats.Float64Data(entry.times)

	// buckets are never empty, so the stats calls below cannot fail
	avg, _ := data.Mean()
	maxTime, _ := data.Max()
	median, _ := data.Median()

	return models.ReportRow{
		URL:          entry.url,
		Count:        count,
		CountPercent: percentOf(float64(count), float64(runStats.ParsedLines)),
		TimeSum:      entry.sum,
		TimePercent:  percentOf(entry.sum, runStats.TotalTime),
		TimeAvg:      avg,
		TimeMax:      maxTime,
		TimeMedian:   median,
	}
}

func percentOf(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part * 100 / total
}

type urlSum struct {
	url   string
	sum   float64
	times []float64
}

// urlSumHeap is a min-heap on sum; its root is the smallest of the current top n.
type urlSumHeap []urlSum

func (h urlSumHeap) Len() int           { return len(h) }
func (h urlSumHeap) Less(i, j int) bool { return h[i].sum < h[j].sum }
func (h urlSumHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *urlSumHeap) Push(x any) {
	*h = append(*h, x.(urlSum))
}

func (h *urlSumHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
