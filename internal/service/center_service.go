package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/uta-diee/practicas-api/internal/models"
	appErrors "github.com/uta-diee/practicas-api/pkg/errors"
)

type centerRepository interface {
	Create(ctx context.Context, center *models.Center) error
	FindByID(ctx context.Context, id string) (*models.Center, error)
	List(ctx context.Context, filter models.CenterFilter) ([]models.Center, int, error)
	Update(ctx context.Context, center *models.Center) error
	Delete(ctx context.Context, id string) error
}

// CenterRequest holds payload for creating and updating centers.
type CenterRequest struct {
	Nombre           string  `json:"nombre" validate:"required"`
	Tipo             *string `json:"tipo"`
	Region           *string `json:"region"`
	Comuna           *string `json:"comuna"`
	Direccion        *string `json:"direccion"`
	Telefono         *string `json:"telefono"`
	Correo           *string `json:"correo" validate:"omitempty,email"`
	Convenio         *string `json:"convenio"`
	URLRrss          *string `json:"url_rrss"`
	AssociationStart *string `json:"fecha_inicio_asociacion"`
}

// CenterService handles educational center use-cases.
type CenterService struct {
	repo      centerRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCenterService constructs the center service.
func NewCenterService(repo centerRepository, validate *validator.Validate, logger *zap.Logger) *CenterService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CenterService{repo: repo, validator: validate, logger: logger}
}

// Create registers a center.
func (s *CenterService) Create(ctx context.Context, req CenterRequest) (*models.Center, error) {
	center, err := s.buildCenter(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, center); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create center")
	}
	return center, nil
}

// Get returns one center.
func (s *CenterService) Get(ctx context.Context, id string) (*models.Center, error) {
	center, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "center not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load center")
	}
	return center, nil
}

// List returns centers with pagination metadata.
func (s *CenterService) List(ctx context.Context, filter models.CenterFilter) ([]models.Center, *models.Pagination, error) {
	if filter.Tipo != "" && !models.ValidCenterType(filter.Tipo) {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, "unknown center type")
	}
	centers, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list centers")
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 10
	}
	return centers, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

// Update rewrites a center's mutable fields.
func (s *CenterService) Update(ctx context.Context, id string, req CenterRequest) (*models.Center, error) {
	updated, err := s.buildCenter(req)
	if err != nil {
		return nil, err
	}
	center, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updated.ID = center.ID
	updated.CreatedAt = center.CreatedAt
	if err := s.repo.Update(ctx, updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "center not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update center")
	}
	return updated, nil
}

// Delete removes a center.
func (s *CenterService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "center not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete center")
	}
	return nil
}

func (s *CenterService) buildCenter(req CenterRequest) (*models.Center, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid center payload")
	}
	if req.Tipo != nil && *req.Tipo != "" && !models.ValidCenterType(*req.Tipo) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown center type")
	}
	center := &models.Center{
		Nombre:    req.Nombre,
		Tipo:      req.Tipo,
		Region:    req.Region,
		Comuna:    req.Comuna,
		Direccion: req.Direccion,
		Telefono:  req.Telefono,
		Correo:    req.Correo,
		Convenio:  req.Convenio,
		URLRrss:   req.URLRrss,
	}
	if req.AssociationStart != nil && *req.AssociationStart != "" {
		parsed, err := normalizeDate(*req.AssociationStart)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid association start date")
		}
		center.AssociationStart = &parsed
	}
	return center, nil
}

// normalizeDate accepts common date layouts and returns midnight UTC.
func normalizeDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range []string{"2006-01-02", "02-01-2006", "02/01/2006", time.RFC3339} {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
