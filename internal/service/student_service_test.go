package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uta-diee/practicas-api/internal/models"
	appErrors "github.com/uta-diee/practicas-api/pkg/errors"
)

type mockStudentRepo struct {
	students map[string]*models.Student
	created  *models.Student
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: map[string]*models.Student{}}
}

func (m *mockStudentRepo) Create(ctx context.Context, student *models.Student) error {
	m.created = student
	m.students[student.Rut] = student
	return nil
}

func (m *mockStudentRepo) FindByRut(ctx context.Context, rut string) (*models.Student, error) {
	if student, ok := m.students[rut]; ok {
		return student, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockStudentRepo) List(ctx context.Context) ([]models.Student, error) { return nil, nil }

func (m *mockStudentRepo) Update(ctx context.Context, student *models.Student) error {
	if _, ok := m.students[student.Rut]; !ok {
		return sql.ErrNoRows
	}
	m.students[student.Rut] = student
	return nil
}

func (m *mockStudentRepo) Delete(ctx context.Context, rut string) error {
	if _, ok := m.students[rut]; !ok {
		return sql.ErrNoRows
	}
	delete(m.students, rut)
	return nil
}

func (m *mockStudentRepo) Exists(ctx context.Context, rut string) (bool, error) {
	_, ok := m.students[rut]
	return ok, nil
}

func TestStudentServiceCreateNormalizesRut(t *testing.T) {
	repo := newMockStudentRepo()
	svc := NewStudentService(repo, nil, nil)

	student, err := svc.Create(context.Background(), CreateStudentRequest{
		Rut:    "12.345.678-5",
		Nombre: "Ana Rojas",
	})
	require.NoError(t, err)
	assert.Equal(t, "12345678-5", student.Rut)
}

func TestStudentServiceCreateRejectsBadCheckDigit(t *testing.T) {
	svc := NewStudentService(newMockStudentRepo(), nil, nil)

	_, err := svc.Create(context.Background(), CreateStudentRequest{
		Rut:    "12.345.678-9",
		Nombre: "Ana Rojas",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestStudentServiceCreateRejectsDuplicate(t *testing.T) {
	repo := newMockStudentRepo()
	repo.students["12345678-5"] = &models.Student{Rut: "12345678-5", Nombre: "Ana"}
	svc := NewStudentService(repo, nil, nil)

	_, err := svc.Create(context.Background(), CreateStudentRequest{Rut: "12345678-5", Nombre: "Ana"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
}

func TestStudentServiceGetNotFound(t *testing.T) {
	svc := NewStudentService(newMockStudentRepo(), nil, nil)

	_, err := svc.Get(context.Background(), "9-4")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
