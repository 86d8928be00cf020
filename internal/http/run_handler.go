package http

import (
	"context"
	"net/http"

	"log-analyzer/internal/reports"
	"log-analyzer/internal/shared/loggers"
)

// RunResponse is the body of POST /runs.
type RunResponse struct {
	RunID         string  `json:"runId"`
	Ran           bool    `json:"ran"`
	Reason        string  `json:"reason,omitempty"`
	ReportKey     string  `json:"reportKey,omitempty"`
	LogFile       string  `json:"logFile,omitempty"`
	TotalLines    int     `json:"totalLines"`
	ParsedLines   int     `json:"parsedLines"`
	ParsedPercent float64 `json:"parsedPercent"`
	Rows          int     `json:"rows"`
}

func newRunResponse(result reports.RunResult) RunResponse {
	resp := RunResponse{
		RunID:         result.RunID,
		Ran:           result.Ran,
		Reason:        result.Reason,
		ReportKey:     result.ReportKey,
		TotalLines:    result.Stats.TotalLines,
		ParsedLines:   result.Stats.ParsedLines,
		ParsedPercent: result.Stats.ParsedPercent(),
		Rows:          len(result.Rows),
	}
	if result.LogFile != nil {
		resp.LogFile = result.LogFile.Name()
	}
	return resp
}

// newRunHandler handles POST /runs: 201 when a report was written, 200 when the run was skipped.
func newRunHandler(reportService reports.ReportService) appHandler {
	return func(w http.ResponseWriter, r *http.Request) error {
		// the run outlives a disconnected client
		logger := loggers.Ctx(r.Context()).With().Str(loggers.FieldTrigger, "http").Logger()
		ctx := logger.WithContext(context.WithoutCancel(r.Context()))

		result, err := reportService.Run(ctx)
		if err != nil {
			return err
		}

		status := http.StatusOK
		if result.Ran {
			status = http.StatusCreated
		}
		writeJSON(w, status, newRunResponse(result))
		return nil
	}
}
