package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/uta-diee/practicas-api/internal/models"
	appErrors "github.com/uta-diee/practicas-api/pkg/errors"
	"github.com/uta-diee/practicas-api/pkg/rut"
)

type studentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	FindByRut(ctx context.Context, rut string) (*models.Student, error)
	List(ctx context.Context) ([]models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, rut string) error
	Exists(ctx context.Context, rut string) (bool, error)
}

// CreateStudentRequest holds payload for registering students.
type CreateStudentRequest struct {
	Rut    string  `json:"rut" validate:"required"`
	Nombre string  `json:"nombre" validate:"required"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Fono   *string `json:"fono"`
}

// UpdateStudentRequest holds payload for updating students.
type UpdateStudentRequest struct {
	Nombre string  `json:"nombre" validate:"required"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Fono   *string `json:"fono"`
}

// StudentService handles student use-cases.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, logger: logger}
}

// Create registers a student after normalizing and validating the RUT.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	normalized := rut.Normalize(req.Rut)
	if !rut.Valid(normalized) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid rut")
	}
	exists, err := s.repo.Exists(ctx, normalized)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate rut")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "rut already registered")
	}

	student := &models.Student{Rut: normalized, Nombre: req.Nombre, Email: req.Email, Fono: req.Fono}
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}
	return student, nil
}

// Get returns one student.
func (s *StudentService) Get(ctx context.Context, studentRut string) (*models.Student, error) {
	student, err := s.repo.FindByRut(ctx, rut.Normalize(studentRut))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return student, nil
}

// List returns all students.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// Update rewrites a student's mutable fields.
func (s *StudentService) Update(ctx context.Context, studentRut string, req UpdateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	student, err := s.Get(ctx, studentRut)
	if err != nil {
		return nil, err
	}
	student.Nombre = req.Nombre
	student.Email = req.Email
	student.Fono = req.Fono
	if err := s.repo.Update(ctx, student); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}
	return student, nil
}

// Delete removes a student.
func (s *StudentService) Delete(ctx context.Context, studentRut string) error {
	if err := s.repo.Delete(ctx, rut.Normalize(studentRut)); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete student")
	}
	return nil
}
