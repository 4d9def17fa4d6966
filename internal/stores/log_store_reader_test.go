package stores

import (
	"context"
	"errors"
	"testing"
	"time"

	"usage-counter/internal/database"
	"usage-counter/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var logStoreColumns = []string{
	"location_ip",
	"server_time",
	"config_browser_name",
	"config_browser_version",
	"idvisit",
	"idvisitor",
	"idaction",
	"name",
}

func TestLogStoreReader_ReadDay(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	reader := NewLogStoreReader(sqlx.NewDb(db, "sqlmock"), database.DialectPostgres, 3, "matomo_")

	mock.ExpectQuery(`SELECT v.location_ip, lva.server_time, .* FROM matomo_log_link_visit_action lva ` +
		`JOIN matomo_log_visit v ON v.idvisit = lva.idvisit ` +
		`JOIN matomo_log_action a ON a.idaction = lva.idaction_url ` +
		`WHERE lva.idsite = \$1 AND lva.server_time >= \$2 AND lva.server_time < \$3 ` +
		`ORDER BY v.location_ip, lva.server_time`).
		WithArgs(3, "2021-03-14 00:00:00", "2021-03-15 00:00:00").
		WillReturnRows(sqlmock.NewRows(logStoreColumns).
			AddRow([]byte{10, 0, 0, 1}, time.Date(2021, 3, 14, 10, 42, 7, 0, time.UTC), "firefox", "86.0", int64(42), []byte{0xab, 0xcd}, int64(7), "www.scielo.br/scielo.php?script=sci_home").
			AddRow([]byte("10.0.0.2"), "2021-03-14T11:00:00Z", "chrome", "90.0", int64(43), []byte{0x01}, int64(8), "www.scielo.br/"))

	records, err := reader.ReadDay(context.Background(), time.Date(2021, 3, 14, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, &models.LogRecord{
		IP:             "10.0.0.1",
		ServerTime:     "2021-03-14 10:42:07",
		BrowserName:    "firefox",
		BrowserVersion: "86.0",
		VisitID:        "42",
		VisitorID:      "abcd",
		ActionID:       "7",
		ActionName:     "www.scielo.br/scielo.php?script=sci_home",
	}, records[0])
	assert.Equal(t, "10.0.0.2", records[1].IP)
	assert.Equal(t, "2021-03-14 11:00:00", records[1].ServerTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogStoreReader_ReadDay_QueryError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	reader := NewLogStoreReader(sqlx.NewDb(db, "sqlmock"), database.DialectSQLite3, 1, "")
	mock.ExpectQuery(`FROM log_link_visit_action lva`).WillReturnError(errors.New("no such table"))

	records, err := reader.ReadDay(context.Background(), time.Date(2021, 3, 14, 0, 0, 0, 0, time.UTC))
	assert.Nil(t, records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read log store day 2021-03-14")
}

func TestFormatIP(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "10.0.0.1", formatIP([]byte{10, 0, 0, 1}))
	assert.Equal(t, "2001:db8::1", formatIP([]byte{0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}))
	assert.Equal(t, "192.168.0.10", formatIP([]byte("192.168.0.10")))
}
