// File: internal/model/project.go
package model

import "time"

// Project is owned by exactly one user. Number and Location are optional
// and stored as NULL when empty.
type Project struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	Name      string    `db:"name" json:"name"`
	Number    string    `db:"number" json:"number"`
	Location  string    `db:"location" json:"location"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
