package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/uta-diee/practicas-api/internal/models"
	appErrors "github.com/uta-diee/practicas-api/pkg/errors"
)

type tutorRepository interface {
	Create(ctx context.Context, tutor *models.Tutor) error
	FindByID(ctx context.Context, id string) (*models.Tutor, error)
	List(ctx context.Context) ([]models.Tutor, error)
	Update(ctx context.Context, tutor *models.Tutor) error
	Delete(ctx context.Context, id string) error
}

// TutorService handles tutor use-cases.
type TutorService struct {
	repo      tutorRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTutorService constructs the tutor service.
func NewTutorService(repo tutorRepository, validate *validator.Validate, logger *zap.Logger) *TutorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TutorService{repo: repo, validator: validate, logger: logger}
}

// Create registers a tutor.
func (s *TutorService) Create(ctx context.Context, req PersonRequest) (*models.Tutor, error) {
	normalized, err := validatePerson(s.validator, &req)
	if err != nil {
		return nil, err
	}
	tutor := &models.Tutor{Rut: normalized, Nombre: req.Nombre, Correo: req.Correo, Fono: req.Fono}
	if err := s.repo.Create(ctx, tutor); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create tutor")
	}
	return tutor, nil
}

// Get returns one tutor.
func (s *TutorService) Get(ctx context.Context, id string) (*models.Tutor, error) {
	tutor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "tutor not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load tutor")
	}
	return tutor, nil
}

// List returns all tutors.
func (s *TutorService) List(ctx context.Context) ([]models.Tutor, error) {
	tutors, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list tutors")
	}
	return tutors, nil
}

// Update rewrites a tutor's mutable fields.
func (s *TutorService) Update(ctx context.Context, id string, req PersonRequest) (*models.Tutor, error) {
	normalized, err := validatePerson(s.validator, &req)
	if err != nil {
		return nil, err
	}
	tutor, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	tutor.Rut = normalized
	tutor.Nombre = req.Nombre
	tutor.Correo = req.Correo
	tutor.Fono = req.Fono
	if err := s.repo.Update(ctx, tutor); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "tutor not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update tutor")
	}
	return tutor, nil
}

// Delete removes a tutor.
func (s *TutorService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "tutor not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete tutor")
	}
	return nil
}
