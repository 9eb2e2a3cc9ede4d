package store

import (
	"context"

	"github.com/burdstermcfc/site-app/internal/database"
	"github.com/burdstermcfc/site-app/internal/model"

	"github.com/jackc/pgx/v5"
)

const projectColumns = `id, user_id, name, COALESCE(number, ''), COALESCE(location, ''), created_at`

func CreateProject(ctx context.Context, db database.DB, p *model.Project) (*model.Project, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO projects (user_id, name, number, location)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
		 RETURNING id, created_at`,
		p.UserID,
		p.Name,
		p.Number,
		p.Location,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, wrap("CreateProject", err)
	}
	return p, nil
}

// ListProjectsByOwner returns the owner's projects, newest first.
func ListProjectsByOwner(ctx context.Context, db database.DB, ownerID int) ([]model.Project, error) {
	rows, err := db.Query(ctx,
		`SELECT `+projectColumns+`
		 FROM projects
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`,
		ownerID,
	)
	if err != nil {
		return nil, wrap("ListProjectsByOwner", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, wrap("ListProjectsByOwner", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("ListProjectsByOwner", err)
	}
	return projects, nil
}

// GetProjectForOwner returns ErrNotFound both when the project does not
// exist and when it belongs to another user.
func GetProjectForOwner(ctx context.Context, db database.DB, projectID, ownerID int) (*model.Project, error) {
	row := db.QueryRow(ctx,
		`SELECT `+projectColumns+`
		 FROM projects
		 WHERE id = $1 AND user_id = $2`,
		projectID,
		ownerID,
	)
	p, err := scanProject(row)
	if err != nil {
		return nil, wrap("GetProjectForOwner", err)
	}
	return p, nil
}

// DeleteProjectForOwner removes the project and, through ON DELETE CASCADE,
// every snag under it in the same statement.
func DeleteProjectForOwner(ctx context.Context, db database.DB, projectID, ownerID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM projects WHERE id = $1 AND user_id = $2`,
		projectID,
		ownerID,
	)
	if err != nil {
		return wrap("DeleteProjectForOwner", err)
	}
	if tag.RowsAffected() == 0 {
		return wrap("DeleteProjectForOwner", pgx.ErrNoRows)
	}
	return nil
}

func scanProject(row pgx.Row) (*model.Project, error) {
	p := &model.Project{}
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Number, &p.Location, &p.CreatedAt); err != nil {
		return nil, err
	}
	return p, nil
}
