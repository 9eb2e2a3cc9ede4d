package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/burdstermcfc/site-app/internal/database"
	"github.com/burdstermcfc/site-app/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestUserStore(t *testing.T) {
	now := time.Now().UTC()
	sample := []any{7, "Alice", "alice@example.com", "hash123", now}

	t.Run("GetUserByID success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "WHERE id = $1")
				require.Equal(t, []any{7}, args)
				return &fakeRow{vals: sample}
			},
		}
		u, err := GetUserByID(context.Background(), db, 7)
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", u.Email)
		require.Equal(t, "hash123", u.PasswordHash)
		require.Equal(t, now, u.CreatedAt)
	})

	t.Run("GetUserByID not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		u, err := GetUserByID(context.Background(), db, 999)
		require.ErrorIs(t, err, ErrNotFound)
		require.Nil(t, u)
	})

	t.Run("GetUserByEmail matches exact case", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "WHERE email = $1")
				require.Equal(t, []any{"Alice@Example.com"}, args)
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetUserByEmail(context.Background(), db, "Alice@Example.com")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("GetUserByEmail success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{vals: sample}
			},
		}
		u, err := GetUserByEmail(context.Background(), db, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, 7, u.ID)
	})

	t.Run("CreateUser success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "INSERT INTO users")
				require.Equal(t, []any{"Bob", "bob@example.com", "pwdhash"}, args)
				return &fakeRow{vals: []any{42, now}}
			},
		}
		u, err := CreateUser(context.Background(), db, &model.User{
			Name: "Bob", Email: "bob@example.com", PasswordHash: "pwdhash",
		})
		require.NoError(t, err)
		require.Equal(t, 42, u.ID)
		require.Equal(t, now, u.CreatedAt)
	})

	t.Run("CreateUser duplicate email", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}}
			},
		}
		u, err := CreateUser(context.Background(), db, &model.User{Email: "bob@example.com"})
		require.ErrorIs(t, err, ErrDuplicate)
		require.Nil(t, u)
	})

	t.Run("CreateUser other error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("conn reset")}
			},
		}
		_, err := CreateUser(context.Background(), db, &model.User{})
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrDuplicate)
	})
}
