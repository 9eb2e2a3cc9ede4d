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

func TestSnagStore(t *testing.T) {
	now := time.Now().UTC()
	row := func(id int, status string) []any {
		return []any{id, 5, "Cracked tile", "", status, "Sam", "", now}
	}

	t.Run("CreateSnag defaults status", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "INSERT INTO snags")
				require.Equal(t, []any{5, "Cracked tile", "", "Sam", model.SnagStatusOpen, ""}, args)
				return &fakeRow{vals: []any{9, now}}
			},
		}
		s, err := CreateSnag(context.Background(), db, &model.Snag{ProjectID: 5, Title: "Cracked tile", AssignedTo: "Sam"})
		require.NoError(t, err)
		require.Equal(t, 9, s.ID)
		require.Equal(t, model.SnagStatusOpen, s.Status)
		require.Equal(t, now, s.CreatedAt)
	})

	t.Run("CreateSnag keeps explicit status", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, model.SnagStatusResolved, args[4])
				return &fakeRow{vals: []any{9, now}}
			},
		}
		s, err := CreateSnag(context.Background(), db, &model.Snag{ProjectID: 5, Title: "t", Status: model.SnagStatusResolved})
		require.NoError(t, err)
		require.Equal(t, model.SnagStatusResolved, s.Status)
	})

	t.Run("CreateSnag missing project", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: &pgconn.PgError{Code: "23503"}}
			},
		}
		s, err := CreateSnag(context.Background(), db, &model.Snag{ProjectID: 404, Title: "t"})
		require.ErrorIs(t, err, ErrProjectMissing)
		require.Nil(t, s)
	})

	t.Run("ListSnagsByProject", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "WHERE project_id = $1")
				require.Equal(t, []any{5}, args)
				return &fakeRows{data: [][]any{row(2, "open"), row(1, "closed")}}, nil
			},
		}
		list, err := ListSnagsByProject(context.Background(), db, 5)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "closed", list[1].Status)
		require.Equal(t, "Sam", list[0].AssignedTo)
	})

	t.Run("ListSnagsByProject empty", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeRows{}, nil
			},
		}
		list, err := ListSnagsByProject(context.Background(), db, 5)
		require.NoError(t, err)
		require.NotNil(t, list)
		require.Empty(t, list)
	})

	t.Run("ListSnagsByProject error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("down")
			},
		}
		_, err := ListSnagsByProject(context.Background(), db, 5)
		require.ErrorContains(t, err, "ListSnagsByProject: down")
	})

	t.Run("UpdateSnagStatus", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "UPDATE snags SET status = $1")
				require.Equal(t, []any{"resolved", 2, 5}, args)
				return &fakeRow{vals: row(2, "resolved")}
			},
		}
		s, err := UpdateSnagStatus(context.Background(), db, 5, 2, "resolved")
		require.NoError(t, err)
		require.Equal(t, "resolved", s.Status)
		require.Equal(t, "Cracked tile", s.Title)
	})

	t.Run("UpdateSnagStatus wrong project", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		s, err := UpdateSnagStatus(context.Background(), db, 6, 2, "closed")
		require.ErrorIs(t, err, ErrNotFound)
		require.Nil(t, s)
	})

	t.Run("UpdateSnagStatus check violation", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: &pgconn.PgError{Code: "23514"}}
			},
		}
		_, err := UpdateSnagStatus(context.Background(), db, 5, 2, model.SnagStatusClosed)
		require.ErrorIs(t, err, ErrConstraint)
	})

	t.Run("unknown status never reaches the database", func(t *testing.T) {
		db := &database.FakeDB{}

		_, err := CreateSnag(context.Background(), db, &model.Snag{ProjectID: 5, Title: "t", Status: "done"})
		require.ErrorIs(t, err, ErrConstraint)
		require.ErrorContains(t, err, `CreateSnag: constraint violation: status "done"`)

		_, err = UpdateSnagStatus(context.Background(), db, 5, 2, "OPEN")
		require.ErrorIs(t, err, ErrConstraint)

		require.Empty(t, db.Statements())
	})
}
