package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/uta-diee/practicas-api/internal/models"
	appErrors "github.com/uta-diee/practicas-api/pkg/errors"
)

// Cache keys for the select catalogs.
const (
	cacheKeyStudents      = "catalog:students"
	cacheKeyCenters       = "catalog:centers"
	cacheKeyCollaborators = "catalog:collaborators"
	cacheKeyTutors        = "catalog:tutors"
)

type catalogCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

type catalogSource interface {
	ListCatalog(ctx context.Context) ([]models.CatalogEntry, error)
}

// CatalogService serves the id+name select catalogs with a Redis
// read-through cache. Cache failures degrade to direct reads.
type CatalogService struct {
	students      catalogSource
	centers       catalogSource
	collaborators catalogSource
	tutors        catalogSource
	cache         catalogCache
	ttl           time.Duration
	logger        *zap.Logger
}

// NewCatalogService constructs the catalog service.
func NewCatalogService(students, centers, collaborators, tutors catalogSource, cache catalogCache, ttl time.Duration, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &CatalogService{
		students:      students,
		centers:       centers,
		collaborators: collaborators,
		tutors:        tutors,
		cache:         cache,
		ttl:           ttl,
		logger:        logger,
	}
}

// Students returns the student catalog.
func (s *CatalogService) Students(ctx context.Context) ([]models.CatalogEntry, error) {
	return s.load(ctx, cacheKeyStudents, s.students)
}

// Centers returns the center catalog.
func (s *CatalogService) Centers(ctx context.Context) ([]models.CatalogEntry, error) {
	return s.load(ctx, cacheKeyCenters, s.centers)
}

// Collaborators returns the collaborator catalog.
func (s *CatalogService) Collaborators(ctx context.Context) ([]models.CatalogEntry, error) {
	return s.load(ctx, cacheKeyCollaborators, s.collaborators)
}

// Tutors returns the tutor catalog.
func (s *CatalogService) Tutors(ctx context.Context) ([]models.CatalogEntry, error) {
	return s.load(ctx, cacheKeyTutors, s.tutors)
}

// InvalidateAll drops every cached catalog. Called after writes to the
// underlying entities.
func (s *CatalogService) InvalidateAll(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, cacheKeyStudents, cacheKeyCenters, cacheKeyCollaborators, cacheKeyTutors); err != nil {
		s.logger.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}

func (s *CatalogService) load(ctx context.Context, key string, source catalogSource) ([]models.CatalogEntry, error) {
	if s.cache != nil {
		var cached []models.CatalogEntry
		err := s.cache.Get(ctx, key, &cached)
		if err == nil {
			return cached, nil
		}
		if err != appErrors.ErrCacheMiss {
			s.logger.Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	entries, err := source.ListCatalog(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load catalog")
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, entries, s.ttl); err != nil {
			s.logger.Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return entries, nil
}
