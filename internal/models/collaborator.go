package models

import "time"

// Collaborator is a center-side staff member who helps run practices.
type Collaborator struct {
	ID        string    `db:"id" json:"id"`
	Rut       string    `db:"rut" json:"rut"`
	Nombre    string    `db:"nombre" json:"nombre"`
	Correo    *string   `db:"correo" json:"correo,omitempty"`
	Fono      *string   `db:"fono" json:"fono,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Tutor is a university-side supervisor or workshop leader.
type Tutor struct {
	ID        string    `db:"id" json:"id"`
	Rut       string    `db:"rut" json:"rut"`
	Nombre    string    `db:"nombre" json:"nombre"`
	Correo    *string   `db:"correo" json:"correo,omitempty"`
	Fono      *string   `db:"fono" json:"fono,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CatalogEntry is the id+name projection served to frontend selects.
type CatalogEntry struct {
	ID     string `db:"id" json:"id"`
	Nombre string `db:"nombre" json:"nombre"`
}
