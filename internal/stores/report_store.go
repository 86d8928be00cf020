package stores

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"log-analyzer/internal/models"
	"log-analyzer/internal/shared/filestorages"
)

var (
	ErrReportAlreadyExists = errors.New("report already exists")
	ErrReportNotFound      = errors.New("report not found")
)

//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	// Exists reports whether the report for the log dated date has been written.
	Exists(ctx context.Context, date time.Time) (bool, error)
	// Put publishes the report for date. It never overwrites: if the report is already
	// there, Put returns ErrReportAlreadyExists.
	Put(ctx context.Context, date time.Time, r io.Reader) (string, error)
	Get(ctx context.Context, date time.Time) (io.ReadCloser, error)
}

type reportStore struct {
	fileStorage filestorages.FileStorage
}

func NewReportStore(fileStorage filestorages.FileStorage) ReportStore {
	return &reportStore{fileStorage: fileStorage}
}

func (s *reportStore) Exists(ctx context.Context, date time.Time) (bool, error) {
	exists, err := s.fileStorage.Exists(ctx, models.ReportKey(date))
	if err != nil {
		return false, fmt.Errorf("failed to check report: %w", err)
	}
	return exists, nil
}

func (s *reportStore) Put(ctx context.Context, date time.Time, r io.Reader) (string, error) {
	key := models.ReportKey(date)
	result, err := s.fileStorage.Put(ctx, key, r, filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return "", fmt.Errorf("%w: %s", ErrReportAlreadyExists, key)
		}
		return "", fmt.Errorf("failed to put report: %w", err)
	}
	return result.FileKey, nil
}

func (s *reportStore) Get(ctx context.Context, date time.Time) (io.ReadCloser, error) {
	key := models.ReportKey(date)
	rc, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrReportNotFound, key)
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return rc, nil
}
