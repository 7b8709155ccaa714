package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uta-diee/practicas-api/internal/models"
	appErrors "github.com/uta-diee/practicas-api/pkg/errors"
	"github.com/uta-diee/practicas-api/pkg/events"
)

type mockPracticeRepo struct {
	periods      []models.PracticePeriod
	created      *models.Practice
	collaborator []string
	tutors       []string
	roles        []string
	detail       *models.PracticeDetail
	statusTo     string
}

func (m *mockPracticeRepo) ListActivePeriods(ctx context.Context, studentRut string) ([]models.PracticePeriod, error) {
	return m.periods, nil
}

func (m *mockPracticeRepo) Create(ctx context.Context, practice *models.Practice, collaboratorIDs, tutorIDs, roles []string) error {
	practice.ID = "p-new"
	m.created = practice
	m.collaborator = collaboratorIDs
	m.tutors = tutorIDs
	m.roles = roles
	return nil
}

func (m *mockPracticeRepo) FindByID(ctx context.Context, id string) (*models.PracticeDetail, error) {
	if m.detail != nil {
		return m.detail, nil
	}
	detail := &models.PracticeDetail{}
	detail.ID = id
	if m.created != nil {
		detail.Practice = *m.created
	}
	return detail, nil
}

func (m *mockPracticeRepo) List(ctx context.Context, filter models.PracticeFilter) ([]models.PracticeDetail, error) {
	return nil, nil
}

func (m *mockPracticeRepo) ListBoard(ctx context.Context, filter models.PracticeBoardFilter) ([]models.PracticeDetail, int, error) {
	return nil, 0, nil
}

func (m *mockPracticeRepo) UpdateStatus(ctx context.Context, id, status string) error {
	m.statusTo = status
	return nil
}

type mockProbe struct{ exists bool }

func (m mockProbe) Exists(ctx context.Context, id string) (bool, error) { return m.exists, nil }

type mockCounter struct{ count int }

func (m mockCounter) CountExisting(ctx context.Context, ids []string) (int, error) {
	return m.count, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name   string
		aStart time.Time
		aEnd   *time.Time
		bStart time.Time
		bEnd   *time.Time
		want   bool
	}{
		{"disjoint", day(2026, 3, 1), ptr(day(2026, 4, 1)), day(2026, 5, 1), ptr(day(2026, 6, 1)), false},
		{"partial overlap", day(2026, 3, 1), ptr(day(2026, 5, 1)), day(2026, 4, 1), ptr(day(2026, 6, 1)), true},
		{"contained", day(2026, 3, 1), ptr(day(2026, 6, 1)), day(2026, 4, 1), ptr(day(2026, 5, 1)), true},
		{"shared boundary day", day(2026, 3, 1), ptr(day(2026, 4, 1)), day(2026, 4, 1), ptr(day(2026, 5, 1)), true},
		{"open end overlaps later interval", day(2026, 3, 1), nil, day(2027, 1, 1), ptr(day(2027, 3, 1)), true},
		{"both open", day(2026, 3, 1), nil, day(2026, 8, 1), nil, true},
		{"open end starts after other ends", day(2026, 6, 1), nil, day(2026, 1, 1), ptr(day(2026, 5, 31)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			// Symmetric in its arguments.
			assert.Equal(t, tc.want, Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}

func newPracticeService(repo *mockPracticeRepo) *PracticeService {
	return NewPracticeService(repo, mockProbe{exists: true}, mockProbe{exists: true},
		mockCounter{count: 1}, mockCounter{count: 1}, nil, nil, nil)
}

func TestPracticeServiceCreateRejectsActiveOverlap(t *testing.T) {
	repo := &mockPracticeRepo{
		periods: []models.PracticePeriod{
			{ID: "p1", StartDate: day(2026, 3, 1), EndDate: ptr(day(2026, 7, 1))},
		},
	}
	svc := newPracticeService(repo)

	_, err := svc.Create(context.Background(), CreatePracticeRequest{
		StudentRut:      "12345678-5",
		CenterID:        "cen-1",
		StartDate:       day(2026, 6, 1),
		EndDate:         ptr(day(2026, 9, 1)),
		CollaboratorIDs: []string{"col-1"},
		Tutors:          []PracticeTutorInput{{TutorID: "tut-1"}},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrActivePracticeConflict, err)
	assert.Nil(t, repo.created)
}

func TestPracticeServiceCreateRejectsOpenEndedActive(t *testing.T) {
	repo := &mockPracticeRepo{
		periods: []models.PracticePeriod{
			{ID: "p1", StartDate: day(2026, 1, 1), EndDate: nil},
		},
	}
	svc := newPracticeService(repo)

	_, err := svc.Create(context.Background(), CreatePracticeRequest{
		StudentRut:      "12345678-5",
		CenterID:        "cen-1",
		StartDate:       day(2027, 3, 1),
		CollaboratorIDs: []string{"col-1"},
		Tutors:          []PracticeTutorInput{{TutorID: "tut-1"}},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrActivePracticeConflict, err)
}

func TestPracticeServiceCreateRejectsSecondActiveEvenDisjoint(t *testing.T) {
	repo := &mockPracticeRepo{
		periods: []models.PracticePeriod{
			{ID: "p1", StartDate: day(2026, 3, 1), EndDate: ptr(day(2026, 7, 1))},
		},
	}
	svc := newPracticeService(repo)

	_, err := svc.Create(context.Background(), CreatePracticeRequest{
		StudentRut:      "12345678-5",
		CenterID:        "cen-1",
		StartDate:       day(2026, 8, 1),
		EndDate:         ptr(day(2026, 12, 1)),
		CollaboratorIDs: []string{"col-1"},
		Tutors:          []PracticeTutorInput{{TutorID: "tut-1"}},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrActivePracticeConflict, err)
	assert.Nil(t, repo.created)
}

func TestPracticeServiceCreateAllowsApprovedAlongsideActive(t *testing.T) {
	repo := &mockPracticeRepo{
		periods: []models.PracticePeriod{
			{ID: "p1", StartDate: day(2026, 3, 1), EndDate: ptr(day(2026, 7, 1))},
		},
	}
	svc := newPracticeService(repo)

	practiceType := "Práctica Profesional"
	detail, err := svc.Create(context.Background(), CreatePracticeRequest{
		StudentRut:      "12345678-5",
		CenterID:        "cen-1",
		StartDate:       day(2025, 8, 1),
		EndDate:         ptr(day(2025, 12, 1)),
		Type:            &practiceType,
		Status:          models.PracticeStatusApproved,
		CollaboratorIDs: []string{"col-1"},
		Tutors:          []PracticeTutorInput{{TutorID: "tut-1"}},
	})
	require.NoError(t, err)
	assert.Equal(t, models.PracticeStatusApproved, repo.created.Status)
	assert.Equal(t, []string{"col-1"}, repo.collaborator)
	assert.Equal(t, []string{"tut-1"}, repo.tutors)
	assert.NotNil(t, detail)
}

func TestPracticeServiceCreateDefaultsStatusToInProgress(t *testing.T) {
	repo := &mockPracticeRepo{}
	svc := newPracticeService(repo)

	_, err := svc.Create(context.Background(), CreatePracticeRequest{
		StudentRut:      "12345678-5",
		CenterID:        "cen-1",
		StartDate:       day(2026, 8, 1),
		CollaboratorIDs: []string{"col-1"},
		Tutors:          []PracticeTutorInput{{TutorID: "tut-1"}},
	})
	require.NoError(t, err)
	assert.Equal(t, models.PracticeStatusInProgress, repo.created.Status)
}

func TestPracticeServiceCreateRejectsUnknownStatus(t *testing.T) {
	svc := newPracticeService(&mockPracticeRepo{})

	_, err := svc.Create(context.Background(), CreatePracticeRequest{
		StudentRut:      "12345678-5",
		CenterID:        "cen-1",
		StartDate:       day(2026, 8, 1),
		Status:          "PAUSADA",
		CollaboratorIDs: []string{"col-1"},
		Tutors:          []PracticeTutorInput{{TutorID: "tut-1"}},
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestPracticeServiceCreateRejectsReversedDates(t *testing.T) {
	svc := newPracticeService(&mockPracticeRepo{})

	_, err := svc.Create(context.Background(), CreatePracticeRequest{
		StudentRut:      "12345678-5",
		CenterID:        "cen-1",
		StartDate:       day(2026, 8, 1),
		EndDate:         ptr(day(2026, 3, 1)),
		CollaboratorIDs: []string{"col-1"},
		Tutors:          []PracticeTutorInput{{TutorID: "tut-1"}},
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestPracticeServiceCreateRejectsUnknownTutorRole(t *testing.T) {
	svc := newPracticeService(&mockPracticeRepo{})

	_, err := svc.Create(context.Background(), CreatePracticeRequest{
		StudentRut:      "12345678-5",
		CenterID:        "cen-1",
		StartDate:       day(2026, 8, 1),
		CollaboratorIDs: []string{"col-1"},
		Tutors:          []PracticeTutorInput{{TutorID: "tut-1", Role: "Invitado"}},
	})
	require.Error(t, err)
}

func TestPracticeServiceCreateRequiresAssociations(t *testing.T) {
	svc := newPracticeService(&mockPracticeRepo{})

	_, err := svc.Create(context.Background(), CreatePracticeRequest{
		StudentRut: "12345678-5",
		CenterID:   "cen-1",
		StartDate:  day(2026, 8, 1),
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestPracticeServiceCreateRejectsMissingStudent(t *testing.T) {
	repo := &mockPracticeRepo{}
	svc := NewPracticeService(repo, mockProbe{exists: false}, mockProbe{exists: true},
		mockCounter{}, mockCounter{}, nil, nil, nil)

	_, err := svc.Create(context.Background(), CreatePracticeRequest{
		StudentRut:      "12345678-5",
		CenterID:        "cen-1",
		StartDate:       day(2026, 8, 1),
		CollaboratorIDs: []string{"col-1"},
		Tutors:          []PracticeTutorInput{{TutorID: "tut-1"}},
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestPracticeServiceCreatePublishesEvent(t *testing.T) {
	broker := events.NewBroker(4, nil)
	defer broker.Close()
	ch, cancel := broker.Subscribe()
	defer cancel()

	repo := &mockPracticeRepo{}
	svc := NewPracticeService(repo, mockProbe{exists: true}, mockProbe{exists: true},
		mockCounter{count: 1}, mockCounter{count: 1}, broker, nil, nil)

	_, err := svc.Create(context.Background(), CreatePracticeRequest{
		StudentRut:      "12345678-5",
		CenterID:        "cen-1",
		StartDate:       day(2026, 8, 1),
		CollaboratorIDs: []string{"col-1"},
		Tutors:          []PracticeTutorInput{{TutorID: "tut-1"}},
	})
	require.NoError(t, err)

	select {
	case event := <-ch:
		assert.Equal(t, events.TypePracticeCreated, event.Type)
	case <-time.After(time.Second):
		t.Fatal("expected practice.created event")
	}
}

func TestPracticeServiceUpdateStatusPublishesEvent(t *testing.T) {
	broker := events.NewBroker(4, nil)
	defer broker.Close()
	ch, cancel := broker.Subscribe()
	defer cancel()

	detail := &models.PracticeDetail{}
	detail.ID = "p1"
	detail.Status = models.PracticeStatusInProgress
	repo := &mockPracticeRepo{detail: detail}
	svc := NewPracticeService(repo, mockProbe{exists: true}, mockProbe{exists: true},
		mockCounter{}, mockCounter{}, broker, nil, nil)

	_, err := svc.UpdateStatus(context.Background(), "p1", UpdatePracticeStatusRequest{Status: models.PracticeStatusApproved})
	require.NoError(t, err)
	assert.Equal(t, models.PracticeStatusApproved, repo.statusTo)

	select {
	case event := <-ch:
		assert.Equal(t, events.TypePracticeUpdated, event.Type)
	case <-time.After(time.Second):
		t.Fatal("expected practice.updated event")
	}
}

func TestPracticeServiceUpdateStatusRejectsUnknown(t *testing.T) {
	svc := newPracticeService(&mockPracticeRepo{})

	_, err := svc.UpdateStatus(context.Background(), "p1", UpdatePracticeStatusRequest{Status: "PAUSADA"})
	require.Error(t, err)
}
