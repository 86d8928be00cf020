package reports

import (
	"fmt"

	"log-analyzer/internal/shared/svcerrors"
)

// ReportService errors
const (
	codeLogDirNotFound    = "RPT_1000"
	codeParseQuality      = "RPT_1001"
	codeReportNotFound    = "RPT_1002"
	codeInvalidReportDate = "RPT_1003"

	codeInternalLogReadFailed     = "RPT_9000"
	codeInternalRenderFailed      = "RPT_9001"
	codeInternalReportStoreFailed = "RPT_9002"
	codeInternalLogDirScanFailed  = "RPT_9003"
)

// errLogDirNotFound returns an error when the configured log directory does not exist.
func errLogDirNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeLogDirNotFound, "log directory not found", cause)
}

// errParseQuality returns an error when too few lines of the log file match the log format.
func errParseQuality(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnprocessableError(codeParseQuality, "too many unparsed lines", cause)
}

func errReportNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeReportNotFound, "report not found", cause)
}

func errInvalidReportDate(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidReportDate, "report date must be formatted as YYYY.MM.DD", cause)
}

// errInternalLogReadFailed returns an error when the log file cannot be opened, read or decompressed.
func errInternalLogReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogReadFailed, fmt.Errorf("logReadFailed: %w", cause))
}

func errInternalRenderFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRenderFailed, fmt.Errorf("renderFailed: %w", cause))
}

// errInternalReportStoreFailed returns an error when a report store operation fails.
func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}

func errInternalLogDirScanFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogDirScanFailed, fmt.Errorf("logDirScanFailed: %w", cause))
}
