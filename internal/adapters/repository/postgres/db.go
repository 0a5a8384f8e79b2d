package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/pollboard/api/internal/core/domain"
)

// Postgres error codes this layer translates into domain errors.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeSerializationFailure = "40001"
)

func Open(connStr string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// translateError maps storage-level integrity failures to domain error
// kinds so raw driver errors never cross the service boundary.
func translateError(err error, uniqueErr error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case codeUniqueViolation:
			return uniqueErr
		case codeSerializationFailure:
			return domain.ErrConflict
		case codeForeignKeyViolation:
			return domain.ErrConflict
		}
	}
	return err
}
