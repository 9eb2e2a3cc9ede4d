package store

import (
	"context"
	"fmt"

	"github.com/burdstermcfc/site-app/internal/database"
	"github.com/burdstermcfc/site-app/internal/model"

	"github.com/jackc/pgx/v5"
)

const snagColumns = `id, project_id, title, COALESCE(description, ''), status,
	COALESCE(assigned_to, ''), COALESCE(image_url, ''), created_at`

// CreateSnag inserts s under s.ProjectID. An unknown project is rejected by
// the foreign key and surfaces as ErrProjectMissing. An empty status
// defaults to open; an unknown one gives ErrConstraint without a query.
func CreateSnag(ctx context.Context, db database.DB, s *model.Snag) (*model.Snag, error) {
	if s.Status == "" {
		s.Status = model.SnagStatusOpen
	}
	if !model.ValidSnagStatus(s.Status) {
		return nil, fmt.Errorf("CreateSnag: %w: status %q", ErrConstraint, s.Status)
	}
	row := db.QueryRow(ctx,
		`INSERT INTO snags (project_id, title, description, assigned_to, status, image_url)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, NULLIF($6, ''))
		 RETURNING id, created_at`,
		s.ProjectID,
		s.Title,
		s.Description,
		s.AssignedTo,
		s.Status,
		s.ImageURL,
	)
	if err := row.Scan(&s.ID, &s.CreatedAt); err != nil {
		return nil, wrap("CreateSnag", err)
	}
	return s, nil
}

// ListSnagsByProject returns the project's snags, newest first. It does not
// check who owns the project.
func ListSnagsByProject(ctx context.Context, db database.DB, projectID int) ([]model.Snag, error) {
	rows, err := db.Query(ctx,
		`SELECT `+snagColumns+`
		 FROM snags
		 WHERE project_id = $1
		 ORDER BY created_at DESC, id DESC`,
		projectID,
	)
	if err != nil {
		return nil, wrap("ListSnagsByProject", err)
	}
	defer rows.Close()

	snags := []model.Snag{}
	for rows.Next() {
		s, err := scanSnag(rows)
		if err != nil {
			return nil, wrap("ListSnagsByProject", err)
		}
		snags = append(snags, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("ListSnagsByProject", err)
	}
	return snags, nil
}

// UpdateSnagStatus moves a snag to status. No ordering between statuses is
// enforced.
func UpdateSnagStatus(ctx context.Context, db database.DB, projectID, snagID int, status string) (*model.Snag, error) {
	if !model.ValidSnagStatus(status) {
		return nil, fmt.Errorf("UpdateSnagStatus: %w: status %q", ErrConstraint, status)
	}
	row := db.QueryRow(ctx,
		`UPDATE snags SET status = $1
		 WHERE id = $2 AND project_id = $3
		 RETURNING `+snagColumns,
		status,
		snagID,
		projectID,
	)
	s, err := scanSnag(row)
	if err != nil {
		return nil, wrap("UpdateSnagStatus", err)
	}
	return s, nil
}

func scanSnag(row pgx.Row) (*model.Snag, error) {
	s := &model.Snag{}
	if err := row.Scan(
		&s.ID,
		&s.ProjectID,
		&s.Title,
		&s.Description,
		&s.Status,
		&s.AssignedTo,
		&s.ImageURL,
		&s.CreatedAt,
	); err != nil {
		return nil, err
	}
	return s, nil
}
