package aggregators

import (
	"context"

	"usage-counter/internal/counters"
	"usage-counter/internal/events"
	"usage-counter/internal/hits"
	"usage-counter/internal/models"
	"usage-counter/internal/shared/loggers"
	"usage-counter/internal/shared/metrics"
	"usage-counter/internal/shared/svcerrors"
	"usage-counter/internal/stores"
)

// BatchSummary reports what counting one batch did.
type BatchSummary struct {
	BatchID       string
	Records       int
	Rejected      int
	Hits          int
	DoubleClicks  int
	MetricRecords int
	Sink          stores.SinkResult
}

// CountingService turns one batch of raw records into metric records and hands them to the
// metric sink. A batch is the session scope: hits of different batches never share a session.
//
//go:generate mockgen -source=counting_service.go -destination=./mocks/counting_service_mock.go -package=mocks
type CountingService interface {
	Count(ctx context.Context, event *events.BatchReceivedEvent) (*BatchSummary, *svcerrors.ServiceError)
}

type countingService struct {
	loader        stores.BatchLoader
	hitFactory    hits.HitFactory
	newHitManager func() hits.HitManager
	rules         counters.RuleTable
	sink          stores.MetricSink

	// flushOnAddressChange drains the hit manager whenever the client address changes.
	// Only valid when the source is ordered by address.
	flushOnAddressChange bool
}

func NewCountingService(
	loader stores.BatchLoader,
	hitFactory hits.HitFactory,
	newHitManager func() hits.HitManager,
	rules counters.RuleTable,
	sink stores.MetricSink,
	flushOnAddressChange bool,
) CountingService {
	return &countingService{
		loader:               loader,
		hitFactory:           hitFactory,
		newHitManager:        newHitManager,
		rules:                rules,
		sink:                 sink,
		flushOnAddressChange: flushOnAddressChange,
	}
}

func (s *countingService) Count(ctx context.Context, event *events.BatchReceivedEvent) (*BatchSummary, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldBatchID, event.BatchID).
		Str(loggers.FieldCollection, event.Collection).
		Logger()
	ctx = logger.WithContext(ctx)

	summary, svcErr := s.count(ctx, event)
	if svcErr != nil {
		metricBatchCountedTotal.WithLabelValues(svcErr.Code).Inc()
		return summary, svcErr
	}
	metricBatchCountedTotal.WithLabelValues(metrics.ValueNoError).Inc()

	if err := s.loader.Release(ctx, event); err != nil {
		logger.Warn().Err(err).Msg("failed to release counted batch")
	}

	logger.Info().
		Int("records", summary.Records).
		Int("rejected", summary.Rejected).
		Int("hits", summary.Hits).
		Int("double_clicks", summary.DoubleClicks).
		Int("metric_records", summary.MetricRecords).
		Int("stored", summary.Sink.Stored).
		Int("skipped", summary.Sink.Skipped).
		Msg("batch counted")
	return summary, nil
}

func (s *countingService) count(ctx context.Context, event *events.BatchReceivedEvent) (*BatchSummary, *svcerrors.ServiceError) {
	summary := &BatchSummary{BatchID: event.BatchID}

	batch, err := s.loader.Load(ctx, event)
	if err != nil {
		return summary, errInternalBatchLoadFailed(err)
	}
	summary.Records = len(batch.Records)

	records := s.countRecords(ctx, batch, summary)
	summary.MetricRecords = len(records)
	for _, record := range records {
		metricMetricRecordEmittedTotal.WithLabelValues(string(record.Group)).Inc()
	}

	if len(records) == 0 {
		return summary, nil
	}

	result, err := s.sink.Accumulate(ctx, records)
	if result != nil {
		summary.Sink = *result
	}
	if err != nil {
		return summary, errInternalMetricSinkFailed(err)
	}
	if summary.Sink.Failed > 0 {
		return summary, errInternalSinkIncomplete(summary.Sink.Failed)
	}
	return summary, nil
}

// countRecords runs the hit factory, the hit manager and the counter engine over one batch.
func (s *countingService) countRecords(ctx context.Context, batch *models.RecordBatch, summary *BatchSummary) []*models.MetricRecord {
	logger := loggers.Ctx(ctx)

	manager := s.newHitManager()
	manager.Reset()
	defer manager.Reset()

	stat := counters.NewCounterStat(s.rules)

	lastAddress := ""
	for _, record := range batch.Records {
		hit, svcErr := s.hitFactory.CreateHit(ctx, batch.Collection, record)
		if svcErr != nil {
			summary.Rejected++
			metricRecordsRejectedTotal.WithLabelValues(svcErr.Code).Inc()
			logger.Warn().
				Str(loggers.FieldErrorCode, svcErr.Code).
				Str(loggers.FieldAction, record.ActionName).
				Err(svcErr).
				Msg("record rejected")
			continue
		}

		if s.flushOnAddressChange && manager.Len() > 0 && hit.IP != lastAddress {
			summary.DoubleClicks += drain(manager, stat)
		}
		manager.Add(hit)
		summary.Hits++
		lastAddress = hit.IP
	}
	summary.DoubleClicks += drain(manager, stat)

	return stat.Records(batch.Collection)
}

// drain counts the buffered hits and empties the manager. Returns the number of double clicks removed.
func drain(manager hits.HitManager, stat *counters.CounterStat) int {
	removed := manager.RemoveDoubleClicks()
	stat.CalculateMetrics(manager.GroupByIdentifier())
	manager.Reset()
	return removed
}
