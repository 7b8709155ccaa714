package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uta-diee/practicas-api/internal/models"
)

func TestSurveyRepositorySaveStudentSurveyReusesQuestion(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSurveyRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO student_surveys").
		WillReturnResult(sqlmock.NewResult(1, 1))

	// Question already exists: no catalog insert, only the lookup.
	questionRows := sqlmock.NewRows([]string{"id", "description", "kind", "created_at"}).
		AddRow("q1", "secI.planificacion", models.QuestionKindClosed, time.Now())
	mock.ExpectQuery("SELECT id, description, kind, created_at FROM questions WHERE description").
		WithArgs("secI.planificacion").
		WillReturnRows(questionRows)

	alternativeRows := sqlmock.NewRows([]string{"id", "question_id", "description", "score", "created_at"}).
		AddRow("a1", "q1", "4", 4, time.Now())
	mock.ExpectQuery("SELECT id, question_id, description, score, created_at FROM alternatives").
		WithArgs("q1", "4").
		WillReturnRows(alternativeRows)

	mock.ExpectExec("INSERT INTO answers").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "q1", "a1", nil).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	survey := &models.StudentSurvey{}
	answers := []models.AnswerInput{
		{QuestionKey: "secI.planificacion", Kind: models.QuestionKindClosed, Text: "4", Score: 4},
	}
	require.NoError(t, repo.SaveStudentSurvey(context.Background(), survey, answers))
	assert.NotEmpty(t, survey.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSurveyRepositorySaveStudentSurveyCreatesMissingQuestion(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSurveyRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO student_surveys").
		WillReturnResult(sqlmock.NewResult(1, 1))

	mock.ExpectQuery("SELECT id, description, kind, created_at FROM questions WHERE description").
		WithArgs("comentariosAdicionales").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO questions").
		WithArgs(sqlmock.AnyArg(), "comentariosAdicionales", models.QuestionKindOpen, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	refetched := sqlmock.NewRows([]string{"id", "description", "kind", "created_at"}).
		AddRow("q9", "comentariosAdicionales", models.QuestionKindOpen, time.Now())
	mock.ExpectQuery("SELECT id, description, kind, created_at FROM questions WHERE description").
		WithArgs("comentariosAdicionales").
		WillReturnRows(refetched)

	// Open answers skip the alternative catalog entirely.
	mock.ExpectExec("INSERT INTO answers").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "q9", nil, "todo bien").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	survey := &models.StudentSurvey{}
	answers := []models.AnswerInput{
		{QuestionKey: "comentariosAdicionales", Kind: models.QuestionKindOpen, Text: "todo bien"},
	}
	require.NoError(t, repo.SaveStudentSurvey(context.Background(), survey, answers))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSurveyRepositorySaveCollaboratorSurveyEmptyAnswers(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSurveyRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO collaborator_surveys").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SaveCollaboratorSurvey(context.Background(), &models.CollaboratorSurvey{}, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSurveyRepositoryUpdateStudentOpenAnswers(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSurveyRepository(db)

	text := "actualizado"
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE answers SET open_answer").
		WithArgs("s1", "q1", "actualizado").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE answers SET open_answer").
		WithArgs("s1", "q2", "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	updates := []models.OpenAnswerUpdate{
		{QuestionID: "q1", OpenAnswer: &text},
		{QuestionID: "q2", OpenAnswer: nil},
	}
	require.NoError(t, repo.UpdateStudentOpenAnswers(context.Background(), "s1", updates))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSurveyRepositoryExistsProbes(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSurveyRepository(db)

	mock.ExpectQuery("SELECT 1 FROM student_surveys WHERE id").
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery("SELECT 1 FROM collaborator_surveys WHERE id").
		WithArgs("c1").
		WillReturnError(sql.ErrNoRows)

	found, err := repo.StudentSurveyExists(context.Background(), "s1")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.CollaboratorSurveyExists(context.Background(), "c1")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}
