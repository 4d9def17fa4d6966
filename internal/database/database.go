// Package database opens the counter database and owns its schema.
package database

import (
	"context"
	"fmt"

	"usage-counter/internal/shared/configs"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite3  = "sqlite3"
)

// Open connects to the configured database and verifies the connection.
func Open(ctx context.Context, cfg configs.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(cfg.Dialect, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Dialect, err)
	}

	if cfg.Dialect == DialectSQLite3 {
		// A single connection serializes writers instead of failing with SQLITE_BUSY.
		db.SetMaxOpenConns(1)
		if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.Dialect, err)
	}
	return db, nil
}

// StatementBuilder returns a squirrel builder using the placeholder style of dialect.
func StatementBuilder(dialect string) sq.StatementBuilderType {
	if dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
