package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uta-diee/practicas-api/internal/models"
)

func TestLetterRepositoryCreateAssignsFolio(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLetterRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(id\\) FROM authorization_requests").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectExec("INSERT INTO authorization_requests").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	letter := &models.AuthorizationRequest{
		RefTitle:    "Solicita autorización práctica",
		City:        "Arica",
		LetterDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Institution: "Liceo A-1",
		Students:    []models.LetterStudent{{Name: "Ana Rojas", Rut: "12345678-5"}},
	}
	require.NoError(t, repo.Create(context.Background(), letter))
	assert.Equal(t, "CARTA-5", letter.Code)
	assert.Equal(t, models.LetterStatusDraft, letter.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLetterRepositoryFindByIDDecodesStudents(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLetterRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "code", "ref_title", "city", "letter_date", "addressee_name", "addressee_role", "institution",
		"institution_addr", "practice_type", "period_start", "period_end", "degree", "comments", "tutor_name",
		"tutor_phone", "students_json", "status", "file_path", "created_at",
	}).AddRow(
		"l1", "CARTA-1", "Ref", "Arica", time.Now(), "Directora", "Directora", "Liceo A-1",
		"Calle 1", "Práctica Profesional", time.Now(), time.Now(), "Pedagogía en Historia y Geografía", nil, nil,
		nil, []byte(`[{"name":"Ana Rojas","rut":"12345678-5"}]`), models.LetterStatusDraft, nil, time.Now(),
	)
	mock.ExpectQuery("SELECT .* FROM authorization_requests WHERE id").
		WithArgs("l1").
		WillReturnRows(rows)

	letter, err := repo.FindByID(context.Background(), "l1")
	require.NoError(t, err)
	require.Len(t, letter.Students, 1)
	assert.Equal(t, "Ana Rojas", letter.Students[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLetterRepositoryUpdateStatusMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLetterRepository(db)

	mock.ExpectExec("UPDATE authorization_requests SET status").
		WithArgs("missing", models.LetterStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "missing", models.LetterStatusSent)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
