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

type collaboratorRepository interface {
	Create(ctx context.Context, collaborator *models.Collaborator) error
	FindByID(ctx context.Context, id string) (*models.Collaborator, error)
	List(ctx context.Context) ([]models.Collaborator, error)
	Update(ctx context.Context, collaborator *models.Collaborator) error
	Delete(ctx context.Context, id string) error
}

// PersonRequest holds payload for collaborator and tutor records.
type PersonRequest struct {
	Rut    string  `json:"rut" validate:"required"`
	Nombre string  `json:"nombre" validate:"required"`
	Correo *string `json:"correo" validate:"omitempty,email"`
	Fono   *string `json:"fono"`
}

// CollaboratorService handles collaborator use-cases.
type CollaboratorService struct {
	repo      collaboratorRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCollaboratorService constructs the collaborator service.
func NewCollaboratorService(repo collaboratorRepository, validate *validator.Validate, logger *zap.Logger) *CollaboratorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CollaboratorService{repo: repo, validator: validate, logger: logger}
}

// Create registers a collaborator.
func (s *CollaboratorService) Create(ctx context.Context, req PersonRequest) (*models.Collaborator, error) {
	normalized, err := validatePerson(s.validator, &req)
	if err != nil {
		return nil, err
	}
	collaborator := &models.Collaborator{Rut: normalized, Nombre: req.Nombre, Correo: req.Correo, Fono: req.Fono}
	if err := s.repo.Create(ctx, collaborator); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create collaborator")
	}
	return collaborator, nil
}

// Get returns one collaborator.
func (s *CollaboratorService) Get(ctx context.Context, id string) (*models.Collaborator, error) {
	collaborator, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "collaborator not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load collaborator")
	}
	return collaborator, nil
}

// List returns all collaborators.
func (s *CollaboratorService) List(ctx context.Context) ([]models.Collaborator, error) {
	collaborators, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list collaborators")
	}
	return collaborators, nil
}

// Update rewrites a collaborator's mutable fields.
func (s *CollaboratorService) Update(ctx context.Context, id string, req PersonRequest) (*models.Collaborator, error) {
	normalized, err := validatePerson(s.validator, &req)
	if err != nil {
		return nil, err
	}
	collaborator, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	collaborator.Rut = normalized
	collaborator.Nombre = req.Nombre
	collaborator.Correo = req.Correo
	collaborator.Fono = req.Fono
	if err := s.repo.Update(ctx, collaborator); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "collaborator not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update collaborator")
	}
	return collaborator, nil
}

// Delete removes a collaborator.
func (s *CollaboratorService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "collaborator not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete collaborator")
	}
	return nil
}

// validatePerson validates the shared person payload and returns the
// normalized RUT.
func validatePerson(validate *validator.Validate, req *PersonRequest) (string, error) {
	if err := validate.Struct(*req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	normalized := rut.Normalize(req.Rut)
	if !rut.Valid(normalized) {
		return "", appErrors.Clone(appErrors.ErrValidation, "invalid rut")
	}
	return normalized, nil
}
