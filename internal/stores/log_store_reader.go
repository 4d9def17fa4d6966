package stores

import (
	"context"
	"encoding/hex"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"usage-counter/internal/database"
	"usage-counter/internal/models"
	"usage-counter/internal/shared/validators"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// LogStoreReader reads the actions of one calendar day from the analytics log store
// (log_link_visit_action joined with log_visit and log_action). Rows are ordered by client
// address then server time.
//
//go:generate mockgen -source=log_store_reader.go -destination=./mocks/log_store_reader_mock.go -package=mocks
type LogStoreReader interface {
	ReadDay(ctx context.Context, day time.Time) ([]*models.LogRecord, error)
}

type logStoreRow struct {
	IP             []byte `db:"location_ip"`
	ServerTime     any    `db:"server_time"`
	BrowserName    string `db:"config_browser_name"`
	BrowserVersion string `db:"config_browser_version"`
	VisitID        int64  `db:"idvisit"`
	VisitorID      []byte `db:"idvisitor"`
	ActionID       int64  `db:"idaction"`
	ActionName     string `db:"name"`
}

type logStoreReader struct {
	db          *sqlx.DB
	psq         sq.StatementBuilderType
	idSite      int
	tablePrefix string
}

func NewLogStoreReader(db *sqlx.DB, dialect string, idSite int, tablePrefix string) LogStoreReader {
	return &logStoreReader{
		db:          db,
		psq:         database.StatementBuilder(dialect),
		idSite:      idSite,
		tablePrefix: tablePrefix,
	}
}

func (r *logStoreReader) ReadDay(ctx context.Context, day time.Time) ([]*models.LogRecord, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	query, args, err := r.psq.
		Select(
			"v.location_ip",
			"lva.server_time",
			"v.config_browser_name",
			"v.config_browser_version",
			"lva.idvisit",
			"lva.idvisitor",
			"a.idaction",
			"a.name",
		).
		From(r.tablePrefix + "log_link_visit_action lva").
		Join(r.tablePrefix + "log_visit v ON v.idvisit = lva.idvisit").
		Join(r.tablePrefix + "log_action a ON a.idaction = lva.idaction_url").
		Where(sq.Eq{"lva.idsite": r.idSite}).
		Where(sq.GtOrEq{"lva.server_time": start.Format(validators.ServerTimeLayout)}).
		Where(sq.Lt{"lva.server_time": end.Format(validators.ServerTimeLayout)}).
		OrderBy("v.location_ip", "lva.server_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build log store query: %w", err)
	}

	var rows []logStoreRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to read log store day %s: %w", start.Format(models.DayLayout), err)
	}

	records := make([]*models.LogRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, &models.LogRecord{
			IP:             formatIP(row.IP),
			ServerTime:     formatServerTime(row.ServerTime),
			BrowserName:    row.BrowserName,
			BrowserVersion: row.BrowserVersion,
			VisitID:        strconv.FormatInt(row.VisitID, 10),
			VisitorID:      hex.EncodeToString(row.VisitorID),
			ActionID:       strconv.FormatInt(row.ActionID, 10),
			ActionName:     row.ActionName,
		})
	}
	return records, nil
}

// formatIP renders a binary address (4 or 16 bytes) in its textual form. Anything else is
// assumed to be text already.
func formatIP(raw []byte) string {
	if len(raw) == net.IPv4len || len(raw) == net.IPv6len {
		return net.IP(raw).String()
	}
	return string(raw)
}

func formatServerTime(value any) string {
	switch v := value.(type) {
	case time.Time:
		return v.UTC().Format(validators.ServerTimeLayout)
	case []byte:
		return normalizeServerTimeText(string(v))
	case string:
		return normalizeServerTimeText(v)
	case nil:
		return ""
	}
	return fmt.Sprint(value)
}

func normalizeServerTimeText(text string) string {
	text = strings.Replace(strings.TrimSpace(text), "T", " ", 1)
	if len(text) > len(validators.ServerTimeLayout) {
		text = text[:len(validators.ServerTimeLayout)]
	}
	return text
}
