package models

import "time"

// Student is a practicum student identified by their RUT.
type Student struct {
	Rut       string    `db:"rut" json:"rut"`
	Nombre    string    `db:"nombre" json:"nombre"`
	Email     *string   `db:"email" json:"email,omitempty"`
	Fono      *string   `db:"fono" json:"fono,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
