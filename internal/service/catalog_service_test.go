package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uta-diee/practicas-api/internal/models"
	appErrors "github.com/uta-diee/practicas-api/pkg/errors"
)

type mockCatalogCache struct {
	store map[string][]models.CatalogEntry
	sets  int
}

func newMockCatalogCache() *mockCatalogCache {
	return &mockCatalogCache{store: map[string][]models.CatalogEntry{}}
}

func (m *mockCatalogCache) Get(ctx context.Context, key string, dest interface{}) error {
	entries, ok := m.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	*(dest.(*[]models.CatalogEntry)) = entries
	return nil
}

func (m *mockCatalogCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.store[key] = value.([]models.CatalogEntry)
	m.sets++
	return nil
}

func (m *mockCatalogCache) Invalidate(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.store, key)
	}
	return nil
}

type mockCatalogSource struct {
	entries []models.CatalogEntry
	calls   int
}

func (m *mockCatalogSource) ListCatalog(ctx context.Context) ([]models.CatalogEntry, error) {
	m.calls++
	return m.entries, nil
}

func TestCatalogServiceReadThrough(t *testing.T) {
	cache := newMockCatalogCache()
	centers := &mockCatalogSource{entries: []models.CatalogEntry{{ID: "c1", Nombre: "Liceo A-1"}}}
	svc := NewCatalogService(&mockCatalogSource{}, centers, &mockCatalogSource{}, &mockCatalogSource{}, cache, time.Minute, nil)

	first, err := svc.Centers(context.Background())
	require.NoError(t, err)
	assert.Len(t, first, 1)
	assert.Equal(t, 1, centers.calls)

	// Second read comes from cache.
	second, err := svc.Centers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, centers.calls)

	svc.InvalidateAll(context.Background())
	_, err = svc.Centers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, centers.calls)
}

func TestCatalogServiceWorksWithoutCache(t *testing.T) {
	tutors := &mockCatalogSource{entries: []models.CatalogEntry{{ID: "t1", Nombre: "Marta Díaz"}}}
	svc := NewCatalogService(&mockCatalogSource{}, &mockCatalogSource{}, &mockCatalogSource{}, tutors, nil, 0, nil)

	entries, err := svc.Tutors(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
