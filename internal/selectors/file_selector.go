package selectors

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"log-analyzer/internal/models"
	"log-analyzer/internal/shared/loggers"
)

const (
	DefaultLogFilePrefix = "nginx-access-ui.log-"

	logDateLayout = "20060102"
)

var ErrDirectoryNotFound = errors.New("log directory not found")

//go:generate mockgen -source=file_selector.go -destination=./mocks/file_selector_mock.go -package=mocks
type FileSelector interface {
	// FindLatest returns the newest log file in dir, judged by the date embedded in its name.
	// It returns (nil, nil) when dir holds no candidate.
	FindLatest(ctx context.Context, dir string) (*models.LogFileRef, error)
}

type fileSelector struct {
	pattern *regexp.Regexp
}

// NewFileSelector creates a selector for files named <prefix>YYYYMMDD with an optional extension,
// e.g. "nginx-access-ui.log-20170630.gz".
func NewFileSelector(prefix string) FileSelector {
	if prefix == "" {
		prefix = DefaultLogFilePrefix
	}
	return &fileSelector{
		pattern: regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `(\d{8})(\.[A-Za-z0-9]+)?$`),
	}
}

func (s *fileSelector) FindLatest(ctx context.Context, dir string) (*models.LogFileRef, error) {
	logger := loggers.Ctx(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("read log directory %s: %w", dir, err)
	}

	var latest *models.LogFileRef
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		match := s.pattern.FindStringSubmatch(name)
		if match == nil {
			logger.Debug().Str(loggers.FieldLogFile, name).Msg("skipping file not matching log name pattern")
			continue
		}

		date, err := time.Parse(logDateLayout, match[1])
		if err != nil {
			logger.Debug().Err(err).Str(loggers.FieldLogFile, name).Msg("skipping file with invalid date")
			continue
		}

		if latest == nil || date.After(latest.Date) {
			path := filepath.Join(dir, name)
			latest = &models.LogFileRef{
				Path:        path,
				Date:        date,
				Compression: models.CompressionFromExtension(Extension(path)),
			}
		}
	}

	return latest, nil
}

// Extension returns the last dot-suffix of the file name in path, including the dot.
// A name without a dot has no extension.
func Extension(path string) string {
	return filepath.Ext(filepath.Base(path))
}
