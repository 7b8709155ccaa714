package models

import "time"

// Activity is a registered practice activity, optionally with an
// evidence file attached.
type Activity struct {
	ID           string    `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Place        string    `db:"place" json:"place"`
	Schedule     string    `db:"schedule" json:"schedule"`
	Students     string    `db:"students" json:"students"`
	Date         time.Time `db:"date" json:"date"`
	Month        string    `db:"month" json:"month"`
	EvidencePath *string   `db:"evidence_path" json:"evidence_path,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// ActivityFilter narrows activity listings.
type ActivityFilter struct {
	Month    string
	Search   string
	Page     int
	PageSize int
}
