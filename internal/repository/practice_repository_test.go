package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uta-diee/practicas-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestPracticeRepositoryListActivePeriods(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPracticeRepository(db)

	end := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "start_date", "end_date"}).
		AddRow("p1", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), end).
		AddRow("p2", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), nil)
	mock.ExpectQuery("SELECT id, start_date, end_date FROM practices WHERE student_rut").
		WithArgs("12345678-5", models.PracticeStatusInProgress).
		WillReturnRows(rows)

	periods, err := repo.ListActivePeriods(context.Background(), "12345678-5")
	require.NoError(t, err)
	require.Len(t, periods, 2)
	assert.Nil(t, periods[1].EndDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPracticeRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPracticeRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO practices").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO practice_collaborators").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "col-1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO practice_tutors").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "tut-1", models.TutorRoleSupervisor).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	practice := &models.Practice{
		StudentRut: "12345678-5",
		CenterID:   "cen-1",
		StartDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:     models.PracticeStatusInProgress,
	}
	err := repo.Create(context.Background(), practice, []string{"col-1"}, []string{"tut-1"}, []string{""})
	require.NoError(t, err)
	assert.NotEmpty(t, practice.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPracticeRepositoryCreateRollsBackOnAssociationFailure(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPracticeRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO practices").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO practice_collaborators").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	practice := &models.Practice{StudentRut: "12345678-5", CenterID: "cen-1", Status: models.PracticeStatusInProgress}
	err := repo.Create(context.Background(), practice, []string{"col-1"}, nil, nil)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPracticeRepositoryUpdateStatus(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPracticeRepository(db)

	mock.ExpectExec("UPDATE practices SET status").
		WithArgs("p1", models.PracticeStatusApproved, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), "p1", models.PracticeStatusApproved))
	assert.NoError(t, mock.ExpectationsWereMet())
}
