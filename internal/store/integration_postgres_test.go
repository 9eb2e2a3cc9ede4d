//go:build integration && postgres

package store

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/burdstermcfc/site-app/internal/database"
	"github.com/burdstermcfc/site-app/internal/model"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

// Runs against a real PostgreSQL: go test -tags "integration postgres" ./internal/store
func TestIntegrationPostgres(t *testing.T) {
	_ = godotenv.Load("../../.env")
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping Postgres integration")
	}

	ctx := context.Background()
	// start from an empty schema and leave one behind; this also runs every
	// down migration
	require.NoError(t, database.RollbackAll(dsn))
	require.NoError(t, database.RunMigrations(dsn))
	t.Cleanup(func() { require.NoError(t, database.RollbackAll(dsn)) })

	db, err := database.NewPgxPool(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	newUser := func(t *testing.T) *model.User {
		u, err := CreateUser(ctx, db, &model.User{
			Name:         "it",
			Email:        uuid.NewString() + "@example.com",
			PasswordHash: "x",
		})
		require.NoError(t, err)
		return u
	}

	t.Run("concurrent registration of one email", func(t *testing.T) {
		email := uuid.NewString() + "@example.com"
		const n = 8
		var wg sync.WaitGroup
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := CreateUser(ctx, db, &model.User{Name: "race", Email: email, PasswordHash: "x"})
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		ok := 0
		for err := range errs {
			if err == nil {
				ok++
				continue
			}
			require.ErrorIs(t, err, ErrDuplicate)
		}
		require.Equal(t, 1, ok)
	})

	t.Run("email is case sensitive", func(t *testing.T) {
		u := newUser(t)
		_, err := GetUserByEmail(ctx, db, "X"+u.Email)
		require.ErrorIs(t, err, ErrNotFound)

		byID, err := GetUserByID(ctx, db, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.Email, byID.Email)
	})

	t.Run("ownership and cascade", func(t *testing.T) {
		owner := newUser(t)
		other := newUser(t)

		p, err := CreateProject(ctx, db, &model.Project{UserID: owner.ID, Name: "Block A"})
		require.NoError(t, err)

		_, err = GetProjectForOwner(ctx, db, p.ID, other.ID)
		require.ErrorIs(t, err, ErrNotFound)
		require.ErrorIs(t, DeleteProjectForOwner(ctx, db, p.ID, other.ID), ErrNotFound)

		s, err := CreateSnag(ctx, db, &model.Snag{ProjectID: p.ID, Title: "Leak"})
		require.NoError(t, err)
		require.Equal(t, model.SnagStatusOpen, s.Status)

		s, err = UpdateSnagStatus(ctx, db, p.ID, s.ID, model.SnagStatusClosed)
		require.NoError(t, err)
		require.Equal(t, model.SnagStatusClosed, s.Status)

		s, err = UpdateSnagStatus(ctx, db, p.ID, s.ID, model.SnagStatusOpen)
		require.NoError(t, err)
		require.Equal(t, model.SnagStatusOpen, s.Status)

		_, err = db.Exec(ctx, `UPDATE snags SET status = 'bogus' WHERE id = $1`, s.ID)
		require.ErrorIs(t, wrap("raw update", err), ErrConstraint)

		require.NoError(t, DeleteProjectForOwner(ctx, db, p.ID, owner.ID))
		snags, err := ListSnagsByProject(ctx, db, p.ID)
		require.NoError(t, err)
		require.Empty(t, snags)
	})

	t.Run("snag for missing project", func(t *testing.T) {
		_, err := CreateSnag(ctx, db, &model.Snag{ProjectID: -1, Title: "orphan"})
		require.ErrorIs(t, err, ErrProjectMissing)
	})

	t.Run("projects listed newest first", func(t *testing.T) {
		owner := newUser(t)
		first, err := CreateProject(ctx, db, &model.Project{UserID: owner.ID, Name: "one"})
		require.NoError(t, err)
		second, err := CreateProject(ctx, db, &model.Project{UserID: owner.ID, Name: "two", Number: "2"})
		require.NoError(t, err)

		list, err := ListProjectsByOwner(ctx, db, owner.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, second.ID, list[0].ID)
		require.Equal(t, first.ID, list[1].ID)
		require.Equal(t, "", list[1].Number)
	})

	t.Run("projects round-trip and stay with their owner", func(t *testing.T) {
		a := newUser(t)
		b := newUser(t)

		siteA, err := CreateProject(ctx, db, &model.Project{UserID: a.ID, Name: "Site A", Number: "P-100", Location: "Main St"})
		require.NoError(t, err)
		bare, err := CreateProject(ctx, db, &model.Project{UserID: a.ID, Name: "Site A2"})
		require.NoError(t, err)
		_, err = CreateProject(ctx, db, &model.Project{UserID: b.ID, Name: "Site B", Number: "P-200", Location: "High St"})
		require.NoError(t, err)

		got, err := GetProjectForOwner(ctx, db, siteA.ID, a.ID)
		require.NoError(t, err)
		require.Equal(t, "Site A", got.Name)
		require.Equal(t, "P-100", got.Number)
		require.Equal(t, "Main St", got.Location)
		require.Equal(t, a.ID, got.UserID)
		require.True(t, got.CreatedAt.Equal(siteA.CreatedAt))

		list, err := ListProjectsByOwner(ctx, db, a.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, bare.ID, list[0].ID)
		require.Equal(t, "", list[0].Number)
		require.Equal(t, "", list[0].Location)
		require.Equal(t, siteA.ID, list[1].ID)
		require.Equal(t, "Site A", list[1].Name)
		require.Equal(t, "P-100", list[1].Number)
		require.Equal(t, "Main St", list[1].Location)
		for _, p := range list {
			require.Equal(t, a.ID, p.UserID)
		}

		listB, err := ListProjectsByOwner(ctx, db, b.ID)
		require.NoError(t, err)
		require.Len(t, listB, 1)
		require.Equal(t, "Site B", listB[0].Name)
	})
}
