package service

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/uta-diee/practicas-api/internal/models"
	appErrors "github.com/uta-diee/practicas-api/pkg/errors"
	"github.com/uta-diee/practicas-api/pkg/export"
	"github.com/uta-diee/practicas-api/pkg/storage"
)

// Defaults applied when a letter omits institutional boilerplate.
const (
	defaultDegree     = "Pedagogía en Historia y Geografía"
	defaultSigner     = "Jefatura de Carrera"
	defaultSignerRole = "Pedagogía en Historia y Geografía, Universidad de Tarapacá"
)

type letterRepository interface {
	Create(ctx context.Context, letter *models.AuthorizationRequest) error
	FindByID(ctx context.Context, id string) (*models.AuthorizationRequest, error)
	List(ctx context.Context, filter models.LetterFilter) ([]models.AuthorizationRequest, error)
	UpdateStatus(ctx context.Context, id, status string) error
	SetFilePath(ctx context.Context, id, path string) error
	Delete(ctx context.Context, id string) error
}

// LetterStudentInput is one student line in a letter request.
type LetterStudentInput struct {
	Name string `json:"name" validate:"required"`
	Rut  string `json:"rut" validate:"required"`
}

// CreateLetterRequest holds payload for creating authorization letters.
type CreateLetterRequest struct {
	RefTitle        string               `json:"ref_title" validate:"required"`
	City            string               `json:"city" validate:"required"`
	LetterDate      time.Time            `json:"letter_date" validate:"required"`
	AddresseeName   string               `json:"addressee_name" validate:"required"`
	AddresseeRole   string               `json:"addressee_role"`
	Institution     string               `json:"institution" validate:"required"`
	InstitutionAddr string               `json:"institution_addr"`
	PracticeType    string               `json:"practice_type" validate:"required"`
	PeriodStart     time.Time            `json:"period_start" validate:"required"`
	PeriodEnd       time.Time            `json:"period_end" validate:"required"`
	Degree          string               `json:"degree"`
	Comments        *string              `json:"comments"`
	TutorName       *string              `json:"tutor_name"`
	TutorPhone      *string              `json:"tutor_phone"`
	Students        []LetterStudentInput `json:"students" validate:"required,min=1,dive"`
}

// LetterDownload is a resolved signed download.
type LetterDownload struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LetterService handles authorization letter use-cases: folio
// assignment, PDF rendering and signed downloads.
type LetterService struct {
	repo      letterRepository
	exporter  *export.LetterExporter
	storage   *storage.LocalStorage
	signer    *storage.SignedURLSigner
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLetterService constructs the letter service.
func NewLetterService(repo letterRepository, exporter *export.LetterExporter, store *storage.LocalStorage,
	signer *storage.SignedURLSigner, validate *validator.Validate, logger *zap.Logger) *LetterService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if exporter == nil {
		exporter = export.NewLetterExporter()
	}
	return &LetterService{repo: repo, exporter: exporter, storage: store, signer: signer, validator: validate, logger: logger}
}

// Create registers a letter and assigns its correlative folio.
func (s *LetterService) Create(ctx context.Context, req CreateLetterRequest) (*models.AuthorizationRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid letter payload")
	}
	if req.PeriodEnd.Before(req.PeriodStart) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "period end must not precede period start")
	}
	if !models.ValidLetterPracticeType(req.PracticeType) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown practice type")
	}
	degree := req.Degree
	if degree == "" {
		degree = defaultDegree
	}
	students := make([]models.LetterStudent, len(req.Students))
	for i, student := range req.Students {
		students[i] = models.LetterStudent{Name: student.Name, Rut: student.Rut}
	}
	letter := &models.AuthorizationRequest{
		RefTitle:        req.RefTitle,
		City:            req.City,
		LetterDate:      req.LetterDate,
		AddresseeName:   req.AddresseeName,
		AddresseeRole:   req.AddresseeRole,
		Institution:     req.Institution,
		InstitutionAddr: req.InstitutionAddr,
		PracticeType:    req.PracticeType,
		PeriodStart:     req.PeriodStart,
		PeriodEnd:       req.PeriodEnd,
		Degree:          degree,
		Comments:        req.Comments,
		TutorName:       req.TutorName,
		TutorPhone:      req.TutorPhone,
		Students:        students,
	}
	if err := s.repo.Create(ctx, letter); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create letter")
	}
	s.logger.Info("authorization letter created", zap.String("letter_id", letter.ID), zap.String("code", letter.Code))
	return letter, nil
}

// Get returns one letter.
func (s *LetterService) Get(ctx context.Context, id string) (*models.AuthorizationRequest, error) {
	letter, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "letter not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load letter")
	}
	return letter, nil
}

// List returns letters matching the filter.
func (s *LetterService) List(ctx context.Context, filter models.LetterFilter) ([]models.AuthorizationRequest, error) {
	letters, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list letters")
	}
	return letters, nil
}

// MarkSent transitions a letter to the ENVIADA state.
func (s *LetterService) MarkSent(ctx context.Context, id string) (*models.AuthorizationRequest, error) {
	if err := s.repo.UpdateStatus(ctx, id, models.LetterStatusSent); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "letter not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update letter")
	}
	return s.Get(ctx, id)
}

// Delete removes a letter and its rendered PDF.
func (s *LetterService) Delete(ctx context.Context, id string) error {
	letter, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "letter not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete letter")
	}
	if letter.FilePath != nil {
		if err := s.storage.Delete(*letter.FilePath); err != nil {
			s.logger.Warn("failed to delete letter pdf", zap.String("path", *letter.FilePath), zap.Error(err))
		}
	}
	return nil
}

// RenderPDF renders the letter, caching the file on disk. Subsequent
// calls reuse the stored file path.
func (s *LetterService) RenderPDF(ctx context.Context, id string) ([]byte, *models.AuthorizationRequest, error) {
	letter, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if letter.FilePath != nil {
		file, err := s.storage.Open(*letter.FilePath)
		if err == nil {
			payload, readErr := io.ReadAll(file)
			file.Close() //nolint:errcheck
			if readErr == nil && len(payload) > 0 {
				return payload, letter, nil
			}
		}
	}

	payload, err := s.exporter.Render(buildLetterDocument(letter))
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render letter")
	}
	path := fmt.Sprintf("letters/%s.pdf", letter.ID)
	if _, err := s.storage.Save(path, payload); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store letter pdf")
	}
	if err := s.repo.SetFilePath(ctx, letter.ID, path); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record letter pdf")
	}
	letter.FilePath = &path
	return payload, letter, nil
}

// SignedDownload renders the letter if needed and returns a signed
// download token.
func (s *LetterService) SignedDownload(ctx context.Context, id string) (*LetterDownload, error) {
	_, letter, err := s.RenderPDF(ctx, id)
	if err != nil {
		return nil, err
	}
	token, expiresAt, err := s.signer.Generate(letter.ID, *letter.FilePath)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign download")
	}
	return &LetterDownload{Token: token, ExpiresAt: expiresAt}, nil
}

// ResolveDownload validates a signed token and returns the PDF bytes.
func (s *LetterService) ResolveDownload(ctx context.Context, token string) ([]byte, string, error) {
	id, path, _, err := s.signer.Parse(token, false)
	if err != nil {
		return nil, "", appErrors.Clone(appErrors.ErrUnauthorized, "invalid download token")
	}
	letter, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if letter.FilePath == nil || *letter.FilePath != path {
		return nil, "", appErrors.Clone(appErrors.ErrNotFound, "letter file not found")
	}
	payload, _, err := s.RenderPDF(ctx, id)
	if err != nil {
		return nil, "", err
	}
	return payload, fmt.Sprintf("%s.pdf", letter.Code), nil
}

func buildLetterDocument(letter *models.AuthorizationRequest) export.LetterDocument {
	students := make([]string, len(letter.Students))
	for i, student := range letter.Students {
		students[i] = fmt.Sprintf("- %s, RUT %s", student.Name, student.Rut)
	}
	doc := export.LetterDocument{
		Code:            letter.Code,
		RefTitle:        letter.RefTitle,
		City:            letter.City,
		LetterDate:      formatSpanishDate(letter.LetterDate),
		AddresseeName:   letter.AddresseeName,
		AddresseeRole:   letter.AddresseeRole,
		Institution:     letter.Institution,
		InstitutionAddr: letter.InstitutionAddr,
		PracticeType:    letter.PracticeType,
		Period:          fmt.Sprintf("%s al %s", letter.PeriodStart.Format("02-01-2006"), letter.PeriodEnd.Format("02-01-2006")),
		Degree:          letter.Degree,
		Students:        students,
		Signer:          defaultSigner,
		SignerRole:      defaultSignerRole,
	}
	if letter.TutorName != nil {
		doc.TutorName = *letter.TutorName
	}
	if letter.TutorPhone != nil {
		doc.TutorPhone = *letter.TutorPhone
	}
	if letter.Comments != nil {
		doc.Comments = *letter.Comments
	}
	return doc
}

// formatSpanishDate renders "2 de marzo de 2026".
func formatSpanishDate(date time.Time) string {
	months := [...]string{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	}
	return fmt.Sprintf("%d de %s de %d", date.Day(), months[int(date.Month())-1], date.Year())
}
