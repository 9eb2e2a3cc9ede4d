package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when no row matches, including rows owned by someone else.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned on a unique constraint violation.
	ErrDuplicate = errors.New("duplicate record")
	// ErrProjectMissing is returned when a snag references a project that does not exist.
	ErrProjectMissing = errors.New("referenced project does not exist")
	// ErrConstraint is returned on a CHECK constraint violation.
	ErrConstraint = errors.New("constraint violation")
)

// PostgreSQL SQLSTATE codes.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// wrap prefixes err with op and attaches the matching sentinel so callers
// can use errors.Is while logs keep the driver error.
func wrap(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w: %w", op, ErrNotFound, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w: %w", op, ErrDuplicate, err)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w: %w", op, ErrProjectMissing, err)
		case codeCheckViolation:
			return fmt.Errorf("%s: %w: %w", op, ErrConstraint, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
