package models

import (
	"path/filepath"
	"time"
)

// Compression identifies how a log file is encoded on disk.
type Compression string

const (
	CompressionNone Compression = ""
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
)

// CompressionFromExtension maps a filename extension (with the leading dot) to its compression.
// Unrecognised extensions are treated as plain text.
func CompressionFromExtension(ext string) Compression {
	switch ext {
	case ".gz":
		return CompressionGzip
	case ".zst":
		return CompressionZstd
	default:
		return CompressionNone
	}
}

// LogFileRef points at the log file selected for one run.
type LogFileRef struct {
	Path        string
	Date        time.Time
	Compression Compression
}

func (r LogFileRef) IsCompressed() bool {
	return r.Compression != CompressionNone
}

func (r LogFileRef) Name() string {
	return filepath.Base(r.Path)
}
