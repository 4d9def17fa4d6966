package stores

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"usage-counter/internal/models"
)

// LogFileReader reads the records of one tab-separated log file. Files ending in .gz are
// decompressed on the fly.
//
//go:generate mockgen -source=log_file_reader.go -destination=./mocks/log_file_reader_mock.go -package=mocks
type LogFileReader interface {
	Read(ctx context.Context, path string) ([]*models.LogRecord, error)
}

type logFileReader struct{}

func NewLogFileReader() LogFileReader {
	return &logFileReader{}
}

func (r *logFileReader) Read(ctx context.Context, path string) ([]*models.LogRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	var source io.Reader = file
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip log file: %w", err)
		}
		defer gz.Close()
		source = gz
	}

	records, err := DecodeRecords(source)
	if err != nil {
		return nil, fmt.Errorf("failed to decode log file %s: %w", path, err)
	}
	return records, nil
}
