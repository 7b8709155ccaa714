package service

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/uta-diee/practicas-api/internal/models"
	"github.com/uta-diee/practicas-api/pkg/config"
	appErrors "github.com/uta-diee/practicas-api/pkg/errors"
	"github.com/uta-diee/practicas-api/pkg/storage"
)

// spanishMonths maps month numbers to the uppercase names used for the
// monthly activity grouping.
var spanishMonths = [...]string{
	"ENERO", "FEBRERO", "MARZO", "ABRIL", "MAYO", "JUNIO",
	"JULIO", "AGOSTO", "SEPTIEMBRE", "OCTUBRE", "NOVIEMBRE", "DICIEMBRE",
}

// SpanishMonth returns the uppercase Spanish name of the given month.
func SpanishMonth(month time.Month) string {
	return spanishMonths[int(month)-1]
}

type activityRepository interface {
	Create(ctx context.Context, activity *models.Activity) error
	FindByID(ctx context.Context, id string) (*models.Activity, error)
	List(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, int, error)
	Update(ctx context.Context, activity *models.Activity) error
	SetEvidencePath(ctx context.Context, id, path string) error
	Delete(ctx context.Context, id string) error
}

// ActivityRequest holds payload for creating and updating activities.
type ActivityRequest struct {
	Title    string    `json:"title" validate:"required"`
	Place    string    `json:"place" validate:"required"`
	Schedule string    `json:"schedule" validate:"required"`
	Students string    `json:"students" validate:"required"`
	Date     time.Time `json:"date" validate:"required"`
}

// EvidenceUpload carries an uploaded evidence file.
type EvidenceUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// ActivityService handles practice activity use-cases including
// evidence uploads.
type ActivityService struct {
	repo      activityRepository
	storage   *storage.LocalStorage
	uploads   config.UploadsConfig
	validator *validator.Validate
	logger    *zap.Logger
}

// NewActivityService constructs the activity service.
func NewActivityService(repo activityRepository, store *storage.LocalStorage, uploads config.UploadsConfig,
	validate *validator.Validate, logger *zap.Logger) *ActivityService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityService{repo: repo, storage: store, uploads: uploads, validator: validate, logger: logger}
}

// Create registers an activity, deriving its Spanish month tag from the
// date.
func (s *ActivityService) Create(ctx context.Context, req ActivityRequest) (*models.Activity, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid activity payload")
	}
	activity := &models.Activity{
		Title:    req.Title,
		Place:    req.Place,
		Schedule: req.Schedule,
		Students: req.Students,
		Date:     req.Date,
		Month:    SpanishMonth(req.Date.Month()),
	}
	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create activity")
	}
	return activity, nil
}

// Get returns one activity.
func (s *ActivityService) Get(ctx context.Context, id string) (*models.Activity, error) {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "activity not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load activity")
	}
	return activity, nil
}

// List returns activities with pagination metadata.
func (s *ActivityService) List(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, *models.Pagination, error) {
	activities, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list activities")
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 10
	}
	return activities, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

// Update rewrites an activity's mutable fields, recomputing the month.
func (s *ActivityService) Update(ctx context.Context, id string, req ActivityRequest) (*models.Activity, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid activity payload")
	}
	activity, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	activity.Title = req.Title
	activity.Place = req.Place
	activity.Schedule = req.Schedule
	activity.Students = req.Students
	activity.Date = req.Date
	activity.Month = SpanishMonth(req.Date.Month())
	if err := s.repo.Update(ctx, activity); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "activity not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update activity")
	}
	return activity, nil
}

// AttachEvidence stores an uploaded evidence file and records its path.
func (s *ActivityService) AttachEvidence(ctx context.Context, id string, upload EvidenceUpload) (*models.Activity, error) {
	if upload.Size <= 0 || len(upload.Data) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "empty evidence file")
	}
	if upload.Size > s.uploads.MaxFileSizeBytes {
		return nil, appErrors.Clone(appErrors.ErrValidation, "evidence file too large")
	}
	if !s.allowedMIME(upload.ContentType) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported evidence file type")
	}
	activity, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("activities/%s/%s%s", activity.ID, uuid.NewString(), filepath.Ext(upload.Filename))
	stored, err := s.storage.Save(name, upload.Data)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store evidence")
	}
	if err := s.repo.SetEvidencePath(ctx, activity.ID, stored); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record evidence")
	}
	activity.EvidencePath = &stored
	s.logger.Info("activity evidence stored", zap.String("activity_id", activity.ID), zap.String("path", stored))
	return activity, nil
}

// Delete removes an activity and its stored evidence file.
func (s *ActivityService) Delete(ctx context.Context, id string) error {
	activity, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "activity not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete activity")
	}
	if activity.EvidencePath != nil {
		if err := s.storage.Delete(*activity.EvidencePath); err != nil {
			s.logger.Warn("failed to delete evidence file", zap.String("path", *activity.EvidencePath), zap.Error(err))
		}
	}
	return nil
}

func (s *ActivityService) allowedMIME(contentType string) bool {
	if len(s.uploads.AllowedMIMEs) == 0 {
		return true
	}
	for _, allowed := range s.uploads.AllowedMIMEs {
		if allowed == contentType {
			return true
		}
	}
	return false
}
