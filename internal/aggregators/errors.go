package aggregators

import (
	"errors"
)

var (
	// ErrParseQuality is returned when the share of lines matching the log format is below the threshold.
	ErrParseQuality = errors.New("too many unparsed lines")
	// ErrReadFailed is returned when the log stream breaks mid-read (I/O or decompression).
	ErrReadFailed = errors.New("failed to read log file")
)
