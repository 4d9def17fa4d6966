package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"usage-counter/internal/database"
	"usage-counter/internal/models"
	"usage-counter/internal/shared/loggers"
	"usage-counter/internal/shared/metrics"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// SinkResult summarizes one Accumulate call.
type SinkResult struct {
	Stored  int
	Skipped int
	Failed  int
}

// MetricSink additively merges metric records into the counter schema. Each record is
// written in its own transaction: a missing journal or a lost race on item creation skips
// that record only.
//
//go:generate mockgen -source=metric_sink.go -destination=./mocks/metric_sink_mock.go -package=mocks
type MetricSink interface {
	Accumulate(ctx context.Context, records []*models.MetricRecord) (*SinkResult, error)
	// RegisterJournals creates or renames the journals of a collection.
	RegisterJournals(ctx context.Context, collection string, issnToAcronym map[string]string) error
}

type metricSink struct {
	db             *sqlx.DB
	psq            sq.StatementBuilderType
	requireJournal bool
}

func NewMetricSink(db *sqlx.DB, dialect string, requireJournal bool) MetricSink {
	return &metricSink{
		db:             db,
		psq:            database.StatementBuilder(dialect),
		requireJournal: requireJournal,
	}
}

const upsertMetricSuffix = "ON CONFLICT (fk_item_id, year_month_day) DO UPDATE SET " +
	"total_item_requests = counter_metric.total_item_requests + EXCLUDED.total_item_requests, " +
	"total_item_investigations = counter_metric.total_item_investigations + EXCLUDED.total_item_investigations, " +
	"unique_item_requests = counter_metric.unique_item_requests + EXCLUDED.unique_item_requests, " +
	"unique_item_investigations = counter_metric.unique_item_investigations + EXCLUDED.unique_item_investigations"

func (s *metricSink) Accumulate(ctx context.Context, records []*models.MetricRecord) (*SinkResult, error) {
	logger := loggers.Ctx(ctx)
	result := &SinkResult{}

	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		err := s.accumulate(ctx, record)
		switch {
		case err == nil:
			result.Stored++
			metricSinkRecordTotal.WithLabelValues(string(record.Group), metrics.ValueNoError).Inc()
		case errors.Is(err, ErrJournalNotFound):
			result.Skipped++
			metricSinkRecordTotal.WithLabelValues(string(record.Group), codeJournalNotFound).Inc()
			logger.Error().Err(err).Str(loggers.FieldPID, record.PID).Str("issn", record.ISSN).Msg("metric record skipped")
		case errors.Is(err, ErrDuplicateItem):
			result.Skipped++
			metricSinkRecordTotal.WithLabelValues(string(record.Group), codeDuplicateItem).Inc()
			logger.Error().Err(err).Str(loggers.FieldPID, record.PID).Msg("metric record skipped")
		default:
			result.Failed++
			metricSinkRecordTotal.WithLabelValues(string(record.Group), codeSinkFailed).Inc()
			logger.Error().Err(err).Str(loggers.FieldPID, record.PID).Str(loggers.FieldDay, record.Day).Msg("failed to accumulate metric record")
		}
	}
	return result, nil
}

func (s *metricSink) accumulate(ctx context.Context, record *models.MetricRecord) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	journalID, err := s.journalID(ctx, tx, record)
	if err != nil {
		return err
	}

	itemID, err := s.itemID(ctx, tx, record, journalID)
	if err != nil {
		return err
	}

	query, args, err := s.psq.
		Insert("counter_metric").
		Columns(
			"fk_item_id",
			"year_month_day",
			"total_item_requests",
			"total_item_investigations",
			"unique_item_requests",
			"unique_item_investigations",
		).
		Values(
			itemID,
			record.Day,
			record.Counters.TotalItemRequests,
			record.Counters.TotalItemInvestigations,
			record.Counters.UniqueItemRequests,
			record.Counters.UniqueItemInvestigations,
		).
		Suffix(upsertMetricSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build metric upsert: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert metric: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit metric: %w", err)
	}
	return nil
}

// journalID resolves the journal of a record. Groups outside article, issue and journal
// are never attached to a journal.
func (s *metricSink) journalID(ctx context.Context, tx *sqlx.Tx, record *models.MetricRecord) (sql.NullInt64, error) {
	if !journalScoped(record.Group) {
		return sql.NullInt64{}, nil
	}
	if record.ISSN == "" {
		if s.requireJournal {
			return sql.NullInt64{}, fmt.Errorf("%w: no issn for %s", ErrJournalNotFound, record.PID)
		}
		return sql.NullInt64{}, nil
	}

	query, args, err := s.psq.
		Select("id").
		From("counter_journal").
		Where(sq.Eq{"collection": record.Collection, "issn": record.ISSN}).
		ToSql()
	if err != nil {
		return sql.NullInt64{}, fmt.Errorf("failed to build journal query: %w", err)
	}

	var id int64
	if err := tx.GetContext(ctx, &id, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if s.requireJournal {
				return sql.NullInt64{}, fmt.Errorf("%w: %s/%s", ErrJournalNotFound, record.Collection, record.ISSN)
			}
			return sql.NullInt64{}, nil
		}
		return sql.NullInt64{}, fmt.Errorf("failed to get journal: %w", err)
	}
	return sql.NullInt64{Int64: id, Valid: true}, nil
}

func (s *metricSink) itemID(ctx context.Context, tx *sqlx.Tx, record *models.MetricRecord, journalID sql.NullInt64) (int64, error) {
	query, args, err := s.psq.
		Select("id").
		From("counter_item").
		Where(sq.Eq{"collection": record.Collection, "group_category": string(record.Group), "pid": record.PID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build item query: %w", err)
	}

	var id int64
	err = tx.GetContext(ctx, &id, query, args...)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to get item: %w", err)
	}

	query, args, err = s.psq.
		Insert("counter_item").
		Columns("collection", "group_category", "pid", "fk_journal_id", "yop").
		Values(record.Collection, string(record.Group), record.PID, journalID, record.YOP).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build item insert: %w", err)
	}
	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %s", ErrDuplicateItem, record.PID)
		}
		return 0, fmt.Errorf("failed to insert item: %w", err)
	}
	return id, nil
}

func (s *metricSink) RegisterJournals(ctx context.Context, collection string, issnToAcronym map[string]string) error {
	if len(issnToAcronym) == 0 {
		return nil
	}

	issns := make([]string, 0, len(issnToAcronym))
	for issn := range issnToAcronym {
		issns = append(issns, issn)
	}
	sort.Strings(issns)

	insert := s.psq.Insert("counter_journal").Columns("collection", "issn", "acronym")
	for _, issn := range issns {
		insert = insert.Values(collection, issn, issnToAcronym[issn])
	}
	query, args, err := insert.
		Suffix("ON CONFLICT (collection, issn) DO UPDATE SET acronym = EXCLUDED.acronym").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build journal upsert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to register journals: %w", err)
	}
	loggers.Ctx(ctx).Info().Str(loggers.FieldCollection, collection).Int("journals", len(issns)).Msg("journals registered")
	return nil
}

func journalScoped(group models.GroupCategory) bool {
	switch group {
	case models.GroupArticle, models.GroupIssue, models.GroupJournal:
		return true
	}
	return false
}
