// File: internal/model/snag.go
package model

import "time"

const (
	SnagStatusOpen       = "open"
	SnagStatusInProgress = "in-progress"
	SnagStatusResolved   = "resolved"
	SnagStatusClosed     = "closed"
)

// SnagStatuses lists every accepted status. Any status may move to any other.
var SnagStatuses = []string{
	SnagStatusOpen,
	SnagStatusInProgress,
	SnagStatusResolved,
	SnagStatusClosed,
}

type Snag struct {
	ID          int       `db:"id" json:"id"`
	ProjectID   int       `db:"project_id" json:"project_id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Status      string    `db:"status" json:"status"`
	AssignedTo  string    `db:"assigned_to" json:"assigned_to"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ValidSnagStatus reports whether s is one of SnagStatuses.
func ValidSnagStatus(s string) bool {
	for _, st := range SnagStatuses {
		if st == s {
			return true
		}
	}
	return false
}
