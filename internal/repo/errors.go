package repo

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound means no row matched the lookup or delete key.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate means the write violated a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate value violates unique constraint")
	// ErrNotUpdated means an update statement matched zero rows.
	ErrNotUpdated = errors.New("no rows updated")
)

// pqUniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const pqUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	// SQLite reports "UNIQUE constraint failed: <table>.<column>".
	return strings.HasPrefix(err.Error(), "UNIQUE")
}

// classify maps a driver error onto the package's sentinel errors.
// Anything unrecognized is wrapped with op for logging.
func classify(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// affected turns a delete/update result into ErrNotFound (or zeroErr) when no row changed.
func affected(op string, result sql.Result, zeroErr error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return zeroErr
	}
	return nil
}
