package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uta-diee/practicas-api/internal/models"
	"github.com/uta-diee/practicas-api/pkg/config"
	"github.com/uta-diee/practicas-api/pkg/storage"
)

type mockActivityRepo struct {
	activities map[string]*models.Activity
	created    *models.Activity
	evidence   string
}

func newMockActivityRepo() *mockActivityRepo {
	return &mockActivityRepo{activities: map[string]*models.Activity{}}
}

func (m *mockActivityRepo) Create(ctx context.Context, activity *models.Activity) error {
	activity.ID = "act-new"
	m.created = activity
	m.activities[activity.ID] = activity
	return nil
}

func (m *mockActivityRepo) FindByID(ctx context.Context, id string) (*models.Activity, error) {
	if activity, ok := m.activities[id]; ok {
		return activity, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockActivityRepo) List(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, int, error) {
	return nil, 0, nil
}

func (m *mockActivityRepo) Update(ctx context.Context, activity *models.Activity) error {
	m.activities[activity.ID] = activity
	return nil
}

func (m *mockActivityRepo) SetEvidencePath(ctx context.Context, id, path string) error {
	m.evidence = path
	return nil
}

func (m *mockActivityRepo) Delete(ctx context.Context, id string) error {
	delete(m.activities, id)
	return nil
}

func newActivityService(t *testing.T, repo *mockActivityRepo) *ActivityService {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	uploads := config.UploadsConfig{
		MaxFileSizeBytes: 1024,
		AllowedMIMEs:     []string{"application/pdf"},
	}
	return NewActivityService(repo, store, uploads, nil, nil)
}

func TestSpanishMonth(t *testing.T) {
	assert.Equal(t, "ENERO", SpanishMonth(time.January))
	assert.Equal(t, "SEPTIEMBRE", SpanishMonth(time.September))
	assert.Equal(t, "DICIEMBRE", SpanishMonth(time.December))
}

func TestActivityServiceCreateDerivesMonth(t *testing.T) {
	repo := newMockActivityRepo()
	svc := newActivityService(t, repo)

	activity, err := svc.Create(context.Background(), ActivityRequest{
		Title:    "Taller de evaluación",
		Place:    "Sala 3",
		Schedule: "10:00-12:00",
		Students: "Ana Rojas, Pedro Soto",
		Date:     time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "ABRIL", activity.Month)
}

func TestActivityServiceAttachEvidenceValidates(t *testing.T) {
	repo := newMockActivityRepo()
	repo.activities["act-1"] = &models.Activity{ID: "act-1", Title: "Taller"}
	svc := newActivityService(t, repo)

	_, err := svc.AttachEvidence(context.Background(), "act-1", EvidenceUpload{
		Filename:    "evidencia.exe",
		ContentType: "application/octet-stream",
		Size:        10,
		Data:        []byte("0123456789"),
	})
	require.Error(t, err)

	big := make([]byte, 2048)
	_, err = svc.AttachEvidence(context.Background(), "act-1", EvidenceUpload{
		Filename:    "evidencia.pdf",
		ContentType: "application/pdf",
		Size:        int64(len(big)),
		Data:        big,
	})
	require.Error(t, err)

	activity, err := svc.AttachEvidence(context.Background(), "act-1", EvidenceUpload{
		Filename:    "evidencia.pdf",
		ContentType: "application/pdf",
		Size:        10,
		Data:        []byte("0123456789"),
	})
	require.NoError(t, err)
	require.NotNil(t, activity.EvidencePath)
	assert.Equal(t, *activity.EvidencePath, repo.evidence)
}
