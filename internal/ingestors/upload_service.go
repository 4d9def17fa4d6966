package ingestors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"usage-counter/internal/events"
	"usage-counter/internal/models"
	"usage-counter/internal/shared/loggers"
	"usage-counter/internal/shared/metrics"
	"usage-counter/internal/shared/svcerrors"
	"usage-counter/internal/shared/ulid"
	"usage-counter/internal/shared/validators"
	"usage-counter/internal/stores"
	"usage-counter/internal/streams"
)

const (
	MaxBatchBytes = 8 * 1024 * 1024

	maxActionNameLen = 8192
	maxUserAgentLen  = 1024
)

// UploadResult represents the result of an accepted upload.
type UploadResult struct {
	BatchID     string
	Collection  string
	RecordCount int
}

//go:generate mockgen -source=upload_service.go -destination=./mocks/upload_service_mock.go -package=mocks
type UploadService interface {
	// UploadBatch validates a tab-separated batch, stores it and publishes it for counting.
	// An empty collection falls back to the configured one; an empty idempotency key gets a ULID.
	UploadBatch(ctx context.Context, collection string, idempotencyKey string, r io.Reader) (*UploadResult, error)
}

type uploadService struct {
	defaultCollection string
	batchStore        stores.RecordBatchStore
	batchProducer     streams.BatchProducer
	validate          *validators.Validate
}

func NewUploadService(defaultCollection string, batchStore stores.RecordBatchStore, batchProducer streams.BatchProducer) UploadService {
	return &uploadService{
		defaultCollection: defaultCollection,
		batchStore:        batchStore,
		batchProducer:     batchProducer,
		validate:          validators.New(),
	}
}

func (s *uploadService) UploadBatch(ctx context.Context, collection string, idempotencyKey string, r io.Reader) (*UploadResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started uploading batch with collection: %s, idempotency key: %s", collection, idempotencyKey)

	collection = strings.ToLower(strings.TrimSpace(collection))
	if collection == "" {
		collection = s.defaultCollection
	}
	if err := s.validate.Var(collection, "required,len=3,alpha"); err != nil {
		return nil, s.reject(errValidationFailed(fmt.Sprintf("invalid collection: %q", collection), nil))
	}

	batchID := strings.TrimSpace(idempotencyKey)
	if batchID == "" {
		batchID = ulid.NewULID()
	} else if err := s.validate.Var(batchID, "max=128,alphanum|uuid"); err != nil {
		return nil, s.reject(errValidationFailed("idempotency key must be alphanumeric or a UUID", nil))
	}

	records, err := s.readRecords(r)
	if err != nil {
		return nil, s.reject(err)
	}

	batch := &models.RecordBatch{
		BatchID:    batchID,
		Collection: collection,
		Source:     string(events.SourceUpload),
		Records:    records,
	}

	key, err := s.batchStore.Put(ctx, batch)
	if err != nil {
		if errors.Is(err, stores.ErrRecordBatchAlreadyExist) {
			return nil, s.reject(errBatchAlreadyUploaded(err))
		}
		return nil, s.reject(errInternalRecordBatchStoreFailed(err))
	}

	event := &events.BatchReceivedEvent{
		BatchID:    batchID,
		Collection: collection,
		SourceKind: events.SourceUpload,
		Location:   key,
	}
	if err := s.batchProducer.Produce(ctx, event); err != nil {
		// The batch stays in storage and is published again on the next start.
		return nil, s.reject(errInternalBatchProducerFailed(err))
	}

	metricBatchUploadedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricRecordUploadedTotal.Add(float64(len(records)))
	logger.Info().
		Str(loggers.FieldBatchID, batchID).
		Str(loggers.FieldCollection, collection).
		Int("records", len(records)).
		Msg("batch uploaded")

	return &UploadResult{BatchID: batchID, Collection: collection, RecordCount: len(records)}, nil
}

func (s *uploadService) reject(err error) error {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		metricBatchUploadedTotal.WithLabelValues(svcErr.Code).Inc()
	}
	return err
}

func (s *uploadService) readRecords(r io.Reader) ([]*models.LogRecord, error) {
	// Handle nil reader
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	buf, err := readWithLimit(r, MaxBatchBytes)
	if err != nil {
		return nil, err
	}

	records, err := stores.DecodeRecords(bytes.NewReader(buf))
	if err != nil {
		return nil, errValidationFailed("invalid tab-separated batch", err)
	}
	if len(records) == 0 {
		return nil, errValidationFailed("records cannot be empty", nil)
	}

	for i, record := range records {
		if err := validateRecord(record, i); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// readWithLimit reads up to max+1 bytes from r and checks if it exceeds max.
func readWithLimit(r io.Reader, max int) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(r, int64(max+1)))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}

	// If we read more than max bytes, the batch is too large
	if len(buf) > max {
		return nil, errValidationFailed("batch too large: must be <= 8MiB", nil)
	}
	return buf, nil
}

// validateRecord checks the shape of a record. Records with an unparsable server time are
// accepted here and rejected one by one when the batch is counted.
func validateRecord(record *models.LogRecord, index int) error {
	if record.IP == "" {
		return errValidationFailed(fmt.Sprintf("record at index %d: missing ip", index), nil)
	}
	for _, field := range []struct{ name, value string }{
		{"visitId", record.VisitID},
		{"visitorId", record.VisitorID},
		{"actionId", record.ActionID},
		{"actionName", record.ActionName},
	} {
		if field.value == "" {
			return errValidationFailed(fmt.Sprintf("record at index %d: missing %s", index, field.name), nil)
		}
	}
	if len(record.ActionName) > maxActionNameLen {
		return errValidationFailed(fmt.Sprintf("record at index %d: actionName too long: max %d characters", index, maxActionNameLen), nil)
	}
	if len(record.UserAgent) > maxUserAgentLen {
		return errValidationFailed(fmt.Sprintf("record at index %d: userAgent too long: max %d characters", index, maxUserAgentLen), nil)
	}
	return nil
}
