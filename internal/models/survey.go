package models

import "time"

// Survey variants.
const (
	SurveyTypeStudent      = "ESTUDIANTIL"
	SurveyTypeCollaborator = "COLABORADORES_JEFES"
)

// Question kinds.
const (
	QuestionKindOpen   = "ABIERTA"
	QuestionKindClosed = "CERRADA"
)

// Question is a catalog entry keyed by its description text. Rows are
// created lazily the first time a flattened answer key is seen.
type Question struct {
	ID          string    `db:"id" json:"id"`
	Description string    `db:"description" json:"description"`
	Kind        string    `db:"kind" json:"kind"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Alternative is a closed-form answer option belonging to a question.
type Alternative struct {
	ID          string    `db:"id" json:"id"`
	QuestionID  string    `db:"question_id" json:"question_id"`
	Description string    `db:"description" json:"description"`
	Score       int       `db:"score" json:"score"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Answer links a survey response to a question and either an alternative
// (closed) or a free-text value (open). Exactly one of the two survey
// foreign keys is set.
type Answer struct {
	ID                   string  `db:"id" json:"id"`
	StudentSurveyID      *string `db:"student_survey_id" json:"student_survey_id,omitempty"`
	CollaboratorSurveyID *string `db:"collaborator_survey_id" json:"collaborator_survey_id,omitempty"`
	QuestionID           string  `db:"question_id" json:"question_id"`
	AlternativeID        *string `db:"alternative_id" json:"alternative_id,omitempty"`
	OpenAnswer           *string `db:"open_answer" json:"open_answer,omitempty"`
}

// AnswerDetail joins an answer with its question and alternative labels.
type AnswerDetail struct {
	Answer
	QuestionDescription string  `db:"question_description" json:"question_description"`
	QuestionKind        string  `db:"question_kind" json:"question_kind"`
	AlternativeText     *string `db:"alternative_text" json:"alternative_text,omitempty"`
	AlternativeScore    *int    `db:"alternative_score" json:"alternative_score,omitempty"`
}

// StudentSurvey is the header row of a student-oriented response.
type StudentSurvey struct {
	ID               string    `db:"id" json:"id"`
	StudentName      *string   `db:"student_name" json:"student_name,omitempty"`
	TalleristaName   *string   `db:"tallerista_name" json:"tallerista_name,omitempty"`
	CollaboratorName *string   `db:"collaborator_name" json:"collaborator_name,omitempty"`
	CenterName       *string   `db:"center_name" json:"center_name,omitempty"`
	Date             time.Time `db:"date" json:"date"`
	Observation      *string   `db:"observation" json:"observation,omitempty"`
	Semester         *string   `db:"semester" json:"semester,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// CollaboratorSurvey is the header row of a collaborator-oriented response.
type CollaboratorSurvey struct {
	ID               string    `db:"id" json:"id"`
	CollaboratorName *string   `db:"collaborator_name" json:"collaborator_name,omitempty"`
	SchoolName       *string   `db:"school_name" json:"school_name,omitempty"`
	Date             time.Time `db:"date" json:"date"`
	Observation      *string   `db:"observation" json:"observation,omitempty"`
	Semester         *string   `db:"semester" json:"semester,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// SurveyDetail is the normalized view over both variants.
type SurveyDetail struct {
	ID               string         `json:"id"`
	Tipo             string         `json:"tipo"`
	StudentName      *string        `json:"student_name,omitempty"`
	TalleristaName   *string        `json:"tallerista_name,omitempty"`
	CollaboratorName *string        `json:"collaborator_name,omitempty"`
	CenterName       *string        `json:"center_name,omitempty"`
	Date             time.Time      `json:"date"`
	Observation      *string        `json:"observation,omitempty"`
	Semester         *string        `json:"semester,omitempty"`
	Answers          []AnswerDetail `json:"answers"`
}

// AnswerInput is one classified flattened pair ready for persistence.
// Open answers carry Text verbatim; closed answers resolve Text against
// the alternative catalog with Score as the parsed value.
type AnswerInput struct {
	QuestionKey string
	Kind        string
	Text        string
	Score       int
}

// OpenAnswerUpdate is one (question, new text) pair for the open-answer
// update operation.
type OpenAnswerUpdate struct {
	QuestionID string  `json:"question_id" validate:"required"`
	OpenAnswer *string `json:"open_answer"`
}
