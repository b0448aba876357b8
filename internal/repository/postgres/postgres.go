// Package postgres implements the repository contracts on database/sql with parameterized queries.
package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"inbot/internal/repository"
)

const uniqueViolation = "23505"

type rowScanner interface {
	Scan(dest ...any) error
}

// mapUniqueViolation converts a unique-constraint failure into repository.ErrDuplicate.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrDuplicate
	}
	return err
}
