package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/uta-diee/practicas-api/internal/models"
	appErrors "github.com/uta-diee/practicas-api/pkg/errors"
	"github.com/uta-diee/practicas-api/pkg/events"
)

// openEndSentinel stands in for a missing end date so that an open-ended
// placement overlaps every later interval.
var openEndSentinel = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// Overlaps reports whether two date ranges intersect. A nil end is
// treated as unbounded.
func Overlaps(aStart time.Time, aEnd *time.Time, bStart time.Time, bEnd *time.Time) bool {
	endOf := func(end *time.Time) time.Time {
		if end == nil {
			return openEndSentinel
		}
		return *end
	}
	return !aStart.After(endOf(bEnd)) && !endOf(aEnd).Before(bStart)
}

type practiceRepository interface {
	ListActivePeriods(ctx context.Context, studentRut string) ([]models.PracticePeriod, error)
	Create(ctx context.Context, practice *models.Practice, collaboratorIDs, tutorIDs, roles []string) error
	FindByID(ctx context.Context, id string) (*models.PracticeDetail, error)
	List(ctx context.Context, filter models.PracticeFilter) ([]models.PracticeDetail, error)
	ListBoard(ctx context.Context, filter models.PracticeBoardFilter) ([]models.PracticeDetail, int, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type practiceStudentProbe interface {
	Exists(ctx context.Context, rut string) (bool, error)
}

type practiceCenterProbe interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type associationCounter interface {
	CountExisting(ctx context.Context, ids []string) (int, error)
}

// PracticeTutorInput pairs a tutor with its role on the placement.
type PracticeTutorInput struct {
	TutorID string `json:"tutor_id" validate:"required"`
	Role    string `json:"role"`
}

// CreatePracticeRequest holds payload for creating practice placements.
type CreatePracticeRequest struct {
	StudentRut      string               `json:"student_rut" validate:"required"`
	CenterID        string               `json:"center_id" validate:"required"`
	StartDate       time.Time            `json:"start_date" validate:"required"`
	EndDate         *time.Time           `json:"end_date"`
	Type            *string              `json:"type"`
	Status          string               `json:"status"`
	CollaboratorIDs []string             `json:"collaborator_ids" validate:"required,min=1"`
	Tutors          []PracticeTutorInput `json:"tutors" validate:"required,min=1,dive"`
}

// UpdatePracticeStatusRequest holds payload for status transitions.
type UpdatePracticeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// PracticeService handles practice placement use-cases.
type PracticeService struct {
	repo          practiceRepository
	students      practiceStudentProbe
	centers       practiceCenterProbe
	collaborators associationCounter
	tutors        associationCounter
	broker        *events.Broker
	validator     *validator.Validate
	logger        *zap.Logger
}

// NewPracticeService constructs the practice service.
func NewPracticeService(repo practiceRepository, students practiceStudentProbe, centers practiceCenterProbe,
	collaborators, tutors associationCounter, broker *events.Broker, validate *validator.Validate, logger *zap.Logger) *PracticeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PracticeService{
		repo:          repo,
		students:      students,
		centers:       centers,
		collaborators: collaborators,
		tutors:        tutors,
		broker:        broker,
		validator:     validate,
		logger:        logger,
	}
}

// Create registers a placement after validating references, date order
// and the single-active-practice rule.
func (s *PracticeService) Create(ctx context.Context, req CreatePracticeRequest) (*models.PracticeDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid practice payload")
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end date must not precede start date")
	}
	status := req.Status
	if status == "" {
		status = models.PracticeStatusInProgress
	}
	if !models.ValidPracticeStatus(status) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown practice status")
	}
	for _, tutor := range req.Tutors {
		if tutor.Role != "" && !models.ValidTutorRole(tutor.Role) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unknown tutor role")
		}
	}

	exists, err := s.students.Exists(ctx, req.StudentRut)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate student")
	}
	if !exists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	exists, err = s.centers.Exists(ctx, req.CenterID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate center")
	}
	if !exists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "center not found")
	}
	if err := s.checkAssociations(ctx, req); err != nil {
		return nil, err
	}

	active, err := s.repo.ListActivePeriods(ctx, req.StudentRut)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load active practices")
	}
	// One active practice per student, regardless of period.
	if status == models.PracticeStatusInProgress && len(active) > 0 {
		return nil, appErrors.ErrActivePracticeConflict
	}
	for _, period := range active {
		if Overlaps(req.StartDate, req.EndDate, period.StartDate, period.EndDate) {
			return nil, appErrors.ErrActivePracticeConflict
		}
	}

	practice := &models.Practice{
		StudentRut: req.StudentRut,
		CenterID:   req.CenterID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Type:       req.Type,
		Status:     status,
	}
	tutorIDs := make([]string, len(req.Tutors))
	roles := make([]string, len(req.Tutors))
	for i, tutor := range req.Tutors {
		tutorIDs[i] = tutor.TutorID
		roles[i] = tutor.Role
	}
	if err := s.repo.Create(ctx, practice, req.CollaboratorIDs, tutorIDs, roles); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create practice")
	}

	detail, err := s.repo.FindByID(ctx, practice.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load created practice")
	}
	s.publish(events.TypePracticeCreated, detail)
	return detail, nil
}

func (s *PracticeService) checkAssociations(ctx context.Context, req CreatePracticeRequest) error {
	if len(req.CollaboratorIDs) > 0 {
		count, err := s.collaborators.CountExisting(ctx, req.CollaboratorIDs)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate collaborators")
		}
		if count != len(req.CollaboratorIDs) {
			return appErrors.Clone(appErrors.ErrNotFound, "collaborator not found")
		}
	}
	if len(req.Tutors) > 0 {
		ids := make([]string, len(req.Tutors))
		for i, tutor := range req.Tutors {
			ids[i] = tutor.TutorID
		}
		count, err := s.tutors.CountExisting(ctx, ids)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate tutors")
		}
		if count != len(ids) {
			return appErrors.Clone(appErrors.ErrNotFound, "tutor not found")
		}
	}
	return nil
}

// Get returns a placement with its associations.
func (s *PracticeService) Get(ctx context.Context, id string) (*models.PracticeDetail, error) {
	detail, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "practice not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load practice")
	}
	return detail, nil
}

// List returns placements matching the filter.
func (s *PracticeService) List(ctx context.Context, filter models.PracticeFilter) ([]models.PracticeDetail, error) {
	if filter.Status != "" && !models.ValidPracticeStatus(filter.Status) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown practice status")
	}
	details, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list practices")
	}
	return details, nil
}

// ListBoard returns the management board page with pagination metadata.
func (s *PracticeService) ListBoard(ctx context.Context, filter models.PracticeBoardFilter) ([]models.PracticeDetail, *models.Pagination, error) {
	if filter.Status != "" && !models.ValidPracticeStatus(filter.Status) {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, "unknown practice status")
	}
	details, total, err := s.repo.ListBoard(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list practice board")
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 10
	}
	pagination := &models.Pagination{Page: page, PageSize: size, TotalCount: total}
	return details, pagination, nil
}

// UpdateStatus transitions a placement's lifecycle state.
func (s *PracticeService) UpdateStatus(ctx context.Context, id string, req UpdatePracticeStatusRequest) (*models.PracticeDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid status payload")
	}
	if !models.ValidPracticeStatus(req.Status) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown practice status")
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, req.Status); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update practice status")
	}
	detail, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load updated practice")
	}
	s.publish(events.TypePracticeUpdated, detail)
	return detail, nil
}

func (s *PracticeService) publish(eventType string, detail *models.PracticeDetail) {
	if s.broker == nil {
		return
	}
	s.broker.Publish(eventType, detail)
}
