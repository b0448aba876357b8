package service

import (
	"database/sql"
	"errors"

	"inbot/internal/auth"
)

var (
	ErrIDRequired         = errors.New("id is required")
	ErrNotFound           = errors.New("resource not found")
	ErrReaderNil          = errors.New("reader is nil")
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = auth.ErrWeakPassword
	ErrInvalidEmail       = auth.ErrInvalidEmail
)

// notFound maps a missing row to ErrNotFound and passes anything else through.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
