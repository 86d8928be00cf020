package renderers

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"log-analyzer/internal/models"
)

// TablePlaceholder is replaced with the JSON array of report rows.
const TablePlaceholder = "$table_json"

//go:embed templates/report.html
var defaultTemplate string

//go:generate mockgen -source=html_renderer.go -destination=./mocks/report_renderer_mock.go -package=mocks
type ReportRenderer interface {
	Render(w io.Writer, rows []models.ReportRow) error
}

type htmlRenderer struct {
	template string
}

// NewHTMLRenderer loads the report template at templatePath, falling back to the built-in
// template when templatePath is empty.
func NewHTMLRenderer(templatePath string) (ReportRenderer, error) {
	if templatePath == "" {
		return &htmlRenderer{template: defaultTemplate}, nil
	}

	content, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("read report template: %w", err)
	}
	if !strings.Contains(string(content), TablePlaceholder) {
		return nil, fmt.Errorf("report template %s has no %s placeholder", templatePath, TablePlaceholder)
	}
	return &htmlRenderer{template: string(content)}, nil
}

func (r *htmlRenderer) Render(w io.Writer, rows []models.ReportRow) error {
	if rows == nil {
		rows = []models.ReportRow{}
	}

	// json.Marshal escapes <, > and & so URLs cannot close the surrounding script tag.
	tableJSON, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshal report rows: %w", err)
	}

	_, err = io.WriteString(w, strings.ReplaceAll(r.template, TablePlaceholder, string(tableJSON)))
	return err
}
