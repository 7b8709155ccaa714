package models

import "time"

// Known educational center types.
const (
	CenterTypeColegio        = "COLEGIO"
	CenterTypeLiceo          = "LICEO"
	CenterTypeEscuela        = "ESCUELA"
	CenterTypeJardin         = "JARDIN"
	CenterTypeNoConvencional = "NO_CONVENCIONAL"
)

// ValidCenterType reports whether the value is a known center type.
func ValidCenterType(tipo string) bool {
	switch tipo {
	case CenterTypeColegio, CenterTypeLiceo, CenterTypeEscuela, CenterTypeJardin, CenterTypeNoConvencional:
		return true
	}
	return false
}

// Center is an educational center hosting practices.
type Center struct {
	ID               string     `db:"id" json:"id"`
	Nombre           string     `db:"nombre" json:"nombre"`
	Tipo             *string    `db:"tipo" json:"tipo,omitempty"`
	Region           *string    `db:"region" json:"region,omitempty"`
	Comuna           *string    `db:"comuna" json:"comuna,omitempty"`
	Direccion        *string    `db:"direccion" json:"direccion,omitempty"`
	Telefono         *string    `db:"telefono" json:"telefono,omitempty"`
	Correo           *string    `db:"correo" json:"correo,omitempty"`
	Convenio         *string    `db:"convenio" json:"convenio,omitempty"`
	URLRrss          *string    `db:"url_rrss" json:"url_rrss,omitempty"`
	AssociationStart *time.Time `db:"association_start" json:"fecha_inicio_asociacion,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

// CenterFilter narrows center listings.
type CenterFilter struct {
	Tipo      string
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
