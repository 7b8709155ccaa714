package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/uta-diee/practicas-api/internal/models"
)

// Answer ownership columns. Exactly one is set per answer row.
const (
	answerOwnerStudent      = "student_survey_id"
	answerOwnerCollaborator = "collaborator_survey_id"
)

// SurveyRepository persists survey headers, the question/alternative
// catalogs and answer rows.
type SurveyRepository struct {
	db *sqlx.DB
}

// NewSurveyRepository constructs a SurveyRepository.
func NewSurveyRepository(db *sqlx.DB) *SurveyRepository {
	return &SurveyRepository{db: db}
}

// SaveStudentSurvey inserts the header plus its answers in one
// transaction, resolving catalog rows along the way.
func (r *SurveyRepository) SaveStudentSurvey(ctx context.Context, survey *models.StudentSurvey, answers []models.AnswerInput) error {
	if survey.ID == "" {
		survey.ID = uuid.NewString()
	}
	survey.CreatedAt = time.Now().UTC()
	if survey.Date.IsZero() {
		survey.Date = survey.CreatedAt
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin survey tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const insert = `INSERT INTO student_surveys (id, student_name, tallerista_name, collaborator_name, center_name, date, observation, semester, created_at)
        VALUES (:id, :student_name, :tallerista_name, :collaborator_name, :center_name, :date, :observation, :semester, :created_at)`
	if _, err := tx.NamedExecContext(ctx, insert, survey); err != nil {
		return fmt.Errorf("insert student survey: %w", err)
	}
	if err := r.saveAnswers(ctx, tx, answerOwnerStudent, survey.ID, answers); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit survey tx: %w", err)
	}
	return nil
}

// SaveCollaboratorSurvey inserts the header plus its answers in one
// transaction, resolving catalog rows along the way.
func (r *SurveyRepository) SaveCollaboratorSurvey(ctx context.Context, survey *models.CollaboratorSurvey, answers []models.AnswerInput) error {
	if survey.ID == "" {
		survey.ID = uuid.NewString()
	}
	survey.CreatedAt = time.Now().UTC()
	if survey.Date.IsZero() {
		survey.Date = survey.CreatedAt
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin survey tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const insert = `INSERT INTO collaborator_surveys (id, collaborator_name, school_name, date, observation, semester, created_at)
        VALUES (:id, :collaborator_name, :school_name, :date, :observation, :semester, :created_at)`
	if _, err := tx.NamedExecContext(ctx, insert, survey); err != nil {
		return fmt.Errorf("insert collaborator survey: %w", err)
	}
	if err := r.saveAnswers(ctx, tx, answerOwnerCollaborator, survey.ID, answers); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit survey tx: %w", err)
	}
	return nil
}

// saveAnswers resolves questions/alternatives and bulk-inserts answer
// rows bound to the owning survey. No-op for an empty list.
func (r *SurveyRepository) saveAnswers(ctx context.Context, tx *sqlx.Tx, ownerColumn, ownerID string, answers []models.AnswerInput) error {
	if len(answers) == 0 {
		return nil
	}
	insert := fmt.Sprintf(`INSERT INTO answers (id, %s, question_id, alternative_id, open_answer) VALUES ($1, $2, $3, $4, $5)`, ownerColumn)
	for _, input := range answers {
		question, err := r.ensureQuestion(ctx, tx, input.QuestionKey, input.Kind)
		if err != nil {
			return err
		}
		var alternativeID *string
		var openAnswer *string
		if input.Kind == models.QuestionKindOpen {
			text := input.Text
			openAnswer = &text
		} else {
			alternative, err := r.ensureAlternative(ctx, tx, question.ID, input.Text, input.Score)
			if err != nil {
				return err
			}
			alternativeID = &alternative.ID
		}
		if _, err := tx.ExecContext(ctx, insert, uuid.NewString(), ownerID, question.ID, alternativeID, openAnswer); err != nil {
			return fmt.Errorf("insert answer: %w", err)
		}
	}
	return nil
}

// ensureQuestion finds a question by its description or creates it. The
// unique index on description makes concurrent creates safe: the insert
// is ON CONFLICT DO NOTHING and the row is re-fetched afterwards.
func (r *SurveyRepository) ensureQuestion(ctx context.Context, tx *sqlx.Tx, description, kind string) (*models.Question, error) {
	const find = `SELECT id, description, kind, created_at FROM questions WHERE description = $1`
	var question models.Question
	err := tx.GetContext(ctx, &question, find, description)
	if err == nil {
		return &question, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("find question: %w", err)
	}

	const insert = `INSERT INTO questions (id, description, kind, created_at) VALUES ($1, $2, $3, $4)
        ON CONFLICT (description) DO NOTHING`
	if _, err := tx.ExecContext(ctx, insert, uuid.NewString(), description, kind, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("insert question: %w", err)
	}
	if err := tx.GetContext(ctx, &question, find, description); err != nil {
		return nil, fmt.Errorf("refetch question: %w", err)
	}
	return &question, nil
}

// ensureAlternative finds an alternative by (question, text) or creates
// it, with the same conflict-tolerant insert as ensureQuestion.
func (r *SurveyRepository) ensureAlternative(ctx context.Context, tx *sqlx.Tx, questionID, text string, score int) (*models.Alternative, error) {
	const find = `SELECT id, question_id, description, score, created_at FROM alternatives WHERE question_id = $1 AND description = $2`
	var alternative models.Alternative
	err := tx.GetContext(ctx, &alternative, find, questionID, text)
	if err == nil {
		return &alternative, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("find alternative: %w", err)
	}

	const insert = `INSERT INTO alternatives (id, question_id, description, score, created_at) VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (question_id, description) DO NOTHING`
	if _, err := tx.ExecContext(ctx, insert, uuid.NewString(), questionID, text, score, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("insert alternative: %w", err)
	}
	if err := tx.GetContext(ctx, &alternative, find, questionID, text); err != nil {
		return nil, fmt.Errorf("refetch alternative: %w", err)
	}
	return &alternative, nil
}

// ListStudentSurveys returns student survey headers newest first.
func (r *SurveyRepository) ListStudentSurveys(ctx context.Context) ([]models.StudentSurvey, error) {
	const query = `SELECT id, student_name, tallerista_name, collaborator_name, center_name, date, observation, semester, created_at
        FROM student_surveys ORDER BY date DESC`
	var surveys []models.StudentSurvey
	if err := r.db.SelectContext(ctx, &surveys, query); err != nil {
		return nil, fmt.Errorf("list student surveys: %w", err)
	}
	return surveys, nil
}

// ListCollaboratorSurveys returns collaborator survey headers newest first.
func (r *SurveyRepository) ListCollaboratorSurveys(ctx context.Context) ([]models.CollaboratorSurvey, error) {
	const query = `SELECT id, collaborator_name, school_name, date, observation, semester, created_at
        FROM collaborator_surveys ORDER BY created_at DESC`
	var surveys []models.CollaboratorSurvey
	if err := r.db.SelectContext(ctx, &surveys, query); err != nil {
		return nil, fmt.Errorf("list collaborator surveys: %w", err)
	}
	return surveys, nil
}

// FindStudentSurveyByID fetches a student survey header.
func (r *SurveyRepository) FindStudentSurveyByID(ctx context.Context, id string) (*models.StudentSurvey, error) {
	const query = `SELECT id, student_name, tallerista_name, collaborator_name, center_name, date, observation, semester, created_at
        FROM student_surveys WHERE id = $1`
	var survey models.StudentSurvey
	if err := r.db.GetContext(ctx, &survey, query, id); err != nil {
		return nil, err
	}
	return &survey, nil
}

// FindCollaboratorSurveyByID fetches a collaborator survey header.
func (r *SurveyRepository) FindCollaboratorSurveyByID(ctx context.Context, id string) (*models.CollaboratorSurvey, error) {
	const query = `SELECT id, collaborator_name, school_name, date, observation, semester, created_at
        FROM collaborator_surveys WHERE id = $1`
	var survey models.CollaboratorSurvey
	if err := r.db.GetContext(ctx, &survey, query, id); err != nil {
		return nil, err
	}
	return &survey, nil
}

const answerDetailColumns = `a.id, a.student_survey_id, a.collaborator_survey_id, a.question_id, a.alternative_id, a.open_answer,
        q.description AS question_description, q.kind AS question_kind,
        alt.description AS alternative_text, alt.score AS alternative_score`

// ListStudentSurveyAnswers returns the answers of a student survey with
// question and alternative labels.
func (r *SurveyRepository) ListStudentSurveyAnswers(ctx context.Context, surveyID string) ([]models.AnswerDetail, error) {
	query := fmt.Sprintf(`SELECT %s FROM answers a
        JOIN questions q ON q.id = a.question_id
        LEFT JOIN alternatives alt ON alt.id = a.alternative_id
        WHERE a.student_survey_id = $1 ORDER BY q.description`, answerDetailColumns)
	var answers []models.AnswerDetail
	if err := r.db.SelectContext(ctx, &answers, query, surveyID); err != nil {
		return nil, fmt.Errorf("list student survey answers: %w", err)
	}
	return answers, nil
}

// ListCollaboratorSurveyAnswers returns the answers of a collaborator
// survey with question and alternative labels.
func (r *SurveyRepository) ListCollaboratorSurveyAnswers(ctx context.Context, surveyID string) ([]models.AnswerDetail, error) {
	query := fmt.Sprintf(`SELECT %s FROM answers a
        JOIN questions q ON q.id = a.question_id
        LEFT JOIN alternatives alt ON alt.id = a.alternative_id
        WHERE a.collaborator_survey_id = $1 ORDER BY q.description`, answerDetailColumns)
	var answers []models.AnswerDetail
	if err := r.db.SelectContext(ctx, &answers, query, surveyID); err != nil {
		return nil, fmt.Errorf("list collaborator survey answers: %w", err)
	}
	return answers, nil
}

// StudentSurveyExists probes for a student survey header.
func (r *SurveyRepository) StudentSurveyExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, "SELECT 1 FROM student_surveys WHERE id = $1 LIMIT 1", id)
}

// CollaboratorSurveyExists probes for a collaborator survey header.
func (r *SurveyRepository) CollaboratorSurveyExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, "SELECT 1 FROM collaborator_surveys WHERE id = $1 LIMIT 1", id)
}

func (r *SurveyRepository) exists(ctx context.Context, query, id string) (bool, error) {
	var one int
	if err := r.db.GetContext(ctx, &one, query, id); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("probe survey: %w", err)
	}
	return true, nil
}

// UpdateStudentOpenAnswers rewrites the open text of the given questions
// for one student survey inside a single transaction.
func (r *SurveyRepository) UpdateStudentOpenAnswers(ctx context.Context, surveyID string, updates []models.OpenAnswerUpdate) error {
	return r.updateOpenAnswers(ctx, answerOwnerStudent, surveyID, updates)
}

// UpdateCollaboratorOpenAnswers rewrites the open text of the given
// questions for one collaborator survey inside a single transaction.
func (r *SurveyRepository) UpdateCollaboratorOpenAnswers(ctx context.Context, surveyID string, updates []models.OpenAnswerUpdate) error {
	return r.updateOpenAnswers(ctx, answerOwnerCollaborator, surveyID, updates)
}

func (r *SurveyRepository) updateOpenAnswers(ctx context.Context, ownerColumn, surveyID string, updates []models.OpenAnswerUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin open answers tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	query := fmt.Sprintf(`UPDATE answers SET open_answer = $3 WHERE %s = $1 AND question_id = $2`, ownerColumn)
	for _, update := range updates {
		text := ""
		if update.OpenAnswer != nil {
			text = *update.OpenAnswer
		}
		if _, err := tx.ExecContext(ctx, query, surveyID, update.QuestionID, text); err != nil {
			return fmt.Errorf("update open answer: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit open answers tx: %w", err)
	}
	return nil
}
