package stores

import (
	"errors"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

var (
	ErrJournalNotFound = errors.New("journal not found")
	ErrDuplicateItem   = errors.New("item already exists")
)

const pqUniqueViolation = "23505"

// isUniqueViolation reports whether err is a unique constraint violation of either dialect.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
