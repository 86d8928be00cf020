package streams

import (
	"errors"
	"fmt"
	"io"
	"os"

	"log-analyzer/internal/models"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var ErrOpenFailed = errors.New("failed to open log file")

// OpenForRead opens the log file behind ref and transparently decodes it when it is compressed.
// Closing the returned reader closes both the decoder and the file.
func OpenForRead(ref models.LogFileRef) (io.ReadCloser, error) {
	file, err := os.Open(ref.Path)
	if err != nil {
		metricStreamOpenedTotal.WithLabelValues(string(ref.Compression), valueOpenFailed).Inc()
		return nil, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}

	rc, err := decode(file, ref.Compression)
	if err != nil {
		_ = file.Close()
		metricStreamOpenedTotal.WithLabelValues(string(ref.Compression), valueOpenFailed).Inc()
		return nil, fmt.Errorf("%w: %s: %w", ErrOpenFailed, ref.Name(), err)
	}

	metricStreamOpenedTotal.WithLabelValues(string(ref.Compression), valueOpened).Inc()
	return rc, nil
}

func decode(file *os.File, compression models.Compression) (io.ReadCloser, error) {
	switch compression {
	case models.CompressionGzip:
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, err
		}
		return &decodedFile{Reader: gz, closers: []io.Closer{gz, file}}, nil
	case models.CompressionZstd:
		dec, err := zstd.NewReader(file)
		if err != nil {
			return nil, err
		}
		zrc := dec.IOReadCloser()
		return &decodedFile{Reader: zrc, closers: []io.Closer{zrc, file}}, nil
	default:
		return file, nil
	}
}

type decodedFile struct {
	io.Reader
	closers []io.Closer
}

func (f *decodedFile) Close() error {
	var errs []error
	for _, c := range f.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
