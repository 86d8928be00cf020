package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldRunID      = "run_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldLogFile       = "log_file"
	FieldReportKey     = "report_key"
	FieldTotalLines    = "total_lines"
	FieldParsedLines   = "parsed_lines"
	FieldParsedPercent = "parsed_percent"
	FieldTrigger       = "trigger"
)
