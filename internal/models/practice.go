package models

import "time"

// Practice lifecycle states. EN_CURSO is the only "active" state for the
// single-active-practice rule.
const (
	PracticeStatusInProgress = "EN_CURSO"
	PracticeStatusApproved   = "APROBADO"
	PracticeStatusFailed     = "REPROBADO"
)

// Tutor roles attached to a practice-tutor association.
const (
	TutorRoleSupervisor = "Supervisor"
	TutorRoleTallerista = "Tallerista"
)

// ValidPracticeStatus reports whether the value is a known lifecycle state.
func ValidPracticeStatus(status string) bool {
	switch status {
	case PracticeStatusInProgress, PracticeStatusApproved, PracticeStatusFailed:
		return true
	}
	return false
}

// ValidTutorRole reports whether the value is a known tutor role.
func ValidTutorRole(role string) bool {
	return role == TutorRoleSupervisor || role == TutorRoleTallerista
}

// Practice is a time-bounded student placement at an educational center.
// EndDate is nil for open-ended placements.
type Practice struct {
	ID         string     `db:"id" json:"id"`
	StudentRut string     `db:"student_rut" json:"student_rut"`
	CenterID   string     `db:"center_id" json:"center_id"`
	StartDate  time.Time  `db:"start_date" json:"start_date"`
	EndDate    *time.Time `db:"end_date" json:"end_date,omitempty"`
	Type       *string    `db:"type" json:"type,omitempty"`
	Status     string     `db:"status" json:"status"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// PracticeCollaborator links a collaborator to a practice.
type PracticeCollaborator struct {
	ID             string `db:"id" json:"id"`
	PracticeID     string `db:"practice_id" json:"practice_id"`
	CollaboratorID string `db:"collaborator_id" json:"collaborator_id"`
}

// PracticeTutor links a tutor to a practice with its role tag.
type PracticeTutor struct {
	ID         string `db:"id" json:"id"`
	PracticeID string `db:"practice_id" json:"practice_id"`
	TutorID    string `db:"tutor_id" json:"tutor_id"`
	Role       string `db:"role" json:"role"`
}

// PracticePeriod is the projection used by the conflict check.
type PracticePeriod struct {
	ID        string     `db:"id" json:"id"`
	StartDate time.Time  `db:"start_date" json:"start_date"`
	EndDate   *time.Time `db:"end_date" json:"end_date,omitempty"`
}

// CollaboratorRef is a collaborator embedded in a practice detail.
type CollaboratorRef struct {
	ID     string `db:"id" json:"id"`
	Nombre string `db:"nombre" json:"nombre"`
}

// TutorRef is a tutor plus role embedded in a practice detail.
type TutorRef struct {
	ID     string `db:"id" json:"id"`
	Nombre string `db:"nombre" json:"nombre"`
	Role   string `db:"role" json:"role"`
}

// PracticeDetail joins a practice with its student, center and
// association rows.
type PracticeDetail struct {
	Practice
	StudentName   string            `db:"student_name" json:"student_name"`
	CenterName    string            `db:"center_name" json:"center_name"`
	CenterType    *string           `db:"center_type" json:"center_type,omitempty"`
	Collaborators []CollaboratorRef `json:"collaborators"`
	Tutors        []TutorRef        `json:"tutors"`
}

// PracticeFilter narrows the plain practice listing.
type PracticeFilter struct {
	Status     string
	StudentRut string
}

// PracticeBoardFilter narrows the management board listing.
type PracticeBoardFilter struct {
	Status         string
	Type           string
	Search         string
	CenterID       string
	CollaboratorID string
	From           *time.Time
	To             *time.Time
	Page           int
	PageSize       int
	SortBy         string
	SortOrder      string
}
