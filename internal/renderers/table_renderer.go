package renderers

import (
	"fmt"
	"io"

	"log-analyzer/internal/models"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

type tableRenderer struct{}

// NewTableRenderer renders report rows as a plain-text table for terminals.
func NewTableRenderer() ReportRenderer {
	return &tableRenderer{}
}

func (r *tableRenderer) Render(w io.Writer, rows []models.ReportRow) error {
	table := tablewriter.NewWriter(w)
	table.Header("URL", "Count", "Count %", "Time sum", "Time %", "Time avg", "Time max", "Time med")

	for _, row := range rows {
		err := table.Append([]string{
			row.URL,
			humanize.Comma(int64(row.Count)),
			formatFloat(row.CountPercent),
			formatFloat(row.TimeSum),
			formatFloat(row.TimePercent),
			formatFloat(row.TimeAvg),
			formatFloat(row.TimeMax),
			formatFloat(row.TimeMedian),
		})
		if err != nil {
			return fmt.Errorf("append table row: %w", err)
		}
	}

	return table.Render()
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
