package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, ErrNotFound},
		{"unique", &pgconn.PgError{Code: "23505"}, ErrDuplicate},
		{"foreign key", &pgconn.PgError{Code: "23503"}, ErrProjectMissing},
		{"check", &pgconn.PgError{Code: "23514"}, ErrConstraint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wrap("Op", tt.err)
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, tt.err)
			require.Contains(t, err.Error(), "Op: ")
		})
	}

	t.Run("other errors pass through", func(t *testing.T) {
		base := errors.New("boom")
		err := wrap("Op", base)
		require.ErrorIs(t, err, base)
		require.NotErrorIs(t, err, ErrNotFound)
		require.NotErrorIs(t, err, ErrDuplicate)
		require.Equal(t, "Op: boom", err.Error())
	})

	t.Run("unknown pg code", func(t *testing.T) {
		err := wrap("Op", &pgconn.PgError{Code: "40001"})
		require.NotErrorIs(t, err, ErrDuplicate)
		require.NotErrorIs(t, err, ErrProjectMissing)
	})
}
