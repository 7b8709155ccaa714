package models

import "time"

// Letter lifecycle states.
const (
	LetterStatusDraft = "BORRADOR"
	LetterStatusSent  = "ENVIADA"
)

// Practice types a letter may authorize.
var letterPracticeTypes = map[string]struct{}{
	"Apoyo a la Docencia I":   {},
	"Apoyo a la Docencia II":  {},
	"Apoyo a la Docencia III": {},
	"Práctica Profesional":    {},
}

// ValidLetterPracticeType reports whether the value is an authorized
// practice type for letters.
func ValidLetterPracticeType(tipo string) bool {
	_, ok := letterPracticeTypes[tipo]
	return ok
}

// LetterStudent is one student listed in an authorization letter.
type LetterStudent struct {
	Name string `json:"name"`
	Rut  string `json:"rut"`
}

// AuthorizationRequest is the persisted authorization letter with its
// detail fields. Students are stored as a JSON array.
type AuthorizationRequest struct {
	ID              string          `db:"id" json:"id"`
	Code            string          `db:"code" json:"code"`
	RefTitle        string          `db:"ref_title" json:"ref_title"`
	City            string          `db:"city" json:"city"`
	LetterDate      time.Time       `db:"letter_date" json:"letter_date"`
	AddresseeName   string          `db:"addressee_name" json:"addressee_name"`
	AddresseeRole   string          `db:"addressee_role" json:"addressee_role"`
	Institution     string          `db:"institution" json:"institution"`
	InstitutionAddr string          `db:"institution_addr" json:"institution_addr"`
	PracticeType    string          `db:"practice_type" json:"practice_type"`
	PeriodStart     time.Time       `db:"period_start" json:"period_start"`
	PeriodEnd       time.Time       `db:"period_end" json:"period_end"`
	Degree          string          `db:"degree" json:"degree"`
	Comments        *string         `db:"comments" json:"comments,omitempty"`
	TutorName       *string         `db:"tutor_name" json:"tutor_name,omitempty"`
	TutorPhone      *string         `db:"tutor_phone" json:"tutor_phone,omitempty"`
	StudentsJSON    []byte          `db:"students_json" json:"-"`
	Students        []LetterStudent `db:"-" json:"students"`
	Status          string          `db:"status" json:"status"`
	FilePath        *string         `db:"file_path" json:"-"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
}

// LetterFilter narrows letter listings.
type LetterFilter struct {
	Search      string
	Institution string
	Status      string
}
