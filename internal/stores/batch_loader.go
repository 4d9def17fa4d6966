package stores

import (
	"context"
	"errors"
	"fmt"
	"time"

	"usage-counter/internal/events"
	"usage-counter/internal/models"
)

var (
	ErrUnsupportedSource   = errors.New("unsupported batch source")
	ErrLogStoreUnavailable = errors.New("log store is not configured")
)

// BatchLoader resolves a received batch event into its ordered records.
//
//go:generate mockgen -source=batch_loader.go -destination=./mocks/batch_loader_mock.go -package=mocks
type BatchLoader interface {
	Load(ctx context.Context, event *events.BatchReceivedEvent) (*models.RecordBatch, error)
	// Release drops the source of a counted batch when the source is owned by this service.
	Release(ctx context.Context, event *events.BatchReceivedEvent) error
}

type batchLoader struct {
	files    LogFileReader
	uploads  RecordBatchStore
	logStore LogStoreReader
}

// NewBatchLoader builds a loader. logStore may be nil when no log store is configured.
func NewBatchLoader(files LogFileReader, uploads RecordBatchStore, logStore LogStoreReader) BatchLoader {
	return &batchLoader{files: files, uploads: uploads, logStore: logStore}
}

func (l *batchLoader) Load(ctx context.Context, event *events.BatchReceivedEvent) (*models.RecordBatch, error) {
	switch event.SourceKind {
	case events.SourceFile:
		records, err := l.files.Read(ctx, event.Location)
		if err != nil {
			return nil, err
		}
		return newRecordBatch(event, records), nil

	case events.SourceUpload:
		batch, err := l.uploads.Get(ctx, event.Location)
		if err != nil {
			return nil, err
		}
		batch.BatchID = event.BatchID
		batch.Collection = event.Collection
		batch.Source = event.Location
		return batch, nil

	case events.SourceLogStore:
		if l.logStore == nil {
			return nil, ErrLogStoreUnavailable
		}
		day, err := time.Parse(models.DayLayout, event.Location)
		if err != nil {
			return nil, fmt.Errorf("invalid log store day %q: %w", event.Location, err)
		}
		records, err := l.logStore.ReadDay(ctx, day)
		if err != nil {
			return nil, err
		}
		return newRecordBatch(event, records), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedSource, event.SourceKind)
}

func (l *batchLoader) Release(ctx context.Context, event *events.BatchReceivedEvent) error {
	if event.SourceKind != events.SourceUpload {
		return nil
	}
	return l.uploads.Delete(ctx, event.Location)
}

func newRecordBatch(event *events.BatchReceivedEvent, records []*models.LogRecord) *models.RecordBatch {
	return &models.RecordBatch{
		BatchID:    event.BatchID,
		Collection: event.Collection,
		Source:     event.Location,
		Records:    records,
	}
}
