package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/uta-diee/practicas-api/internal/dto"
	"github.com/uta-diee/practicas-api/internal/models"
	appErrors "github.com/uta-diee/practicas-api/pkg/errors"
	"github.com/uta-diee/practicas-api/pkg/export"
)

// openKeyMarkers flag a flattened key as an open question regardless of
// its value.
var openKeyMarkers = []string{"comentario", "sugerencia", "mejora", "adicional", "perfil"}

// closedValues are the literal answers accepted as closed-scale marks.
var closedValues = map[string]struct{}{
	"1": {}, "2": {}, "3": {}, "4": {}, "5": {},
	"na": {}, "si": {}, "no": {},
}

type surveyRepository interface {
	SaveStudentSurvey(ctx context.Context, survey *models.StudentSurvey, answers []models.AnswerInput) error
	SaveCollaboratorSurvey(ctx context.Context, survey *models.CollaboratorSurvey, answers []models.AnswerInput) error
	ListStudentSurveys(ctx context.Context) ([]models.StudentSurvey, error)
	ListCollaboratorSurveys(ctx context.Context) ([]models.CollaboratorSurvey, error)
	FindStudentSurveyByID(ctx context.Context, id string) (*models.StudentSurvey, error)
	FindCollaboratorSurveyByID(ctx context.Context, id string) (*models.CollaboratorSurvey, error)
	ListStudentSurveyAnswers(ctx context.Context, surveyID string) ([]models.AnswerDetail, error)
	ListCollaboratorSurveyAnswers(ctx context.Context, surveyID string) ([]models.AnswerDetail, error)
	StudentSurveyExists(ctx context.Context, id string) (bool, error)
	CollaboratorSurveyExists(ctx context.Context, id string) (bool, error)
	UpdateStudentOpenAnswers(ctx context.Context, surveyID string, updates []models.OpenAnswerUpdate) error
	UpdateCollaboratorOpenAnswers(ctx context.Context, surveyID string, updates []models.OpenAnswerUpdate) error
}

// UpdateOpenAnswersRequest holds the open-answer rewrite payload.
type UpdateOpenAnswersRequest struct {
	Answers []models.OpenAnswerUpdate `json:"answers" validate:"required,min=1,dive"`
}

// SurveyService handles survey ingestion, retrieval and export.
type SurveyService struct {
	repo      surveyRepository
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSurveyService constructs the survey service.
func NewSurveyService(repo surveyRepository, csv *export.CSVExporter, pdf *export.PDFExporter,
	validate *validator.Validate, logger *zap.Logger) *SurveyService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &SurveyService{repo: repo, csv: csv, pdf: pdf, validator: validate, logger: logger}
}

// Flatten collapses a nested section payload into dotted leaf keys.
// Scalars keep their string form; nested maps recurse with the parent
// key as prefix. Nil leaves are dropped, not recorded as empty answers.
func Flatten(prefix string, value map[string]interface{}) map[string]string {
	out := make(map[string]string)
	flattenInto(out, prefix, value)
	return out
}

func flattenInto(out map[string]string, prefix string, value map[string]interface{}) {
	for key, raw := range value {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch typed := raw.(type) {
		case map[string]interface{}:
			flattenInto(out, full, typed)
		case nil:
			continue
		case string:
			out[full] = typed
		case float64:
			out[full] = strconv.FormatFloat(typed, 'f', -1, 64)
		case bool:
			out[full] = strconv.FormatBool(typed)
		default:
			out[full] = fmt.Sprintf("%v", typed)
		}
	}
}

// classifyAnswer decides whether a flattened pair is an open or closed
// question. A key containing any open marker is open; so is a value
// outside the closed scale. Note "perfil" also matches keys like
// cumplePerfilEgreso whose values are si/no: the key marker wins, so
// those land as open answers with the literal text preserved.
func classifyAnswer(key, value string) models.AnswerInput {
	lowerKey := strings.ToLower(key)
	for _, marker := range openKeyMarkers {
		if strings.Contains(lowerKey, marker) {
			return models.AnswerInput{QuestionKey: key, Kind: models.QuestionKindOpen, Text: value}
		}
	}
	normalized := strings.ToLower(strings.TrimSpace(value))
	if _, ok := closedValues[normalized]; !ok {
		return models.AnswerInput{QuestionKey: key, Kind: models.QuestionKindOpen, Text: value}
	}
	score := 0
	if parsed, err := strconv.Atoi(normalized); err == nil {
		score = parsed
	}
	return models.AnswerInput{QuestionKey: key, Kind: models.QuestionKindClosed, Text: value, Score: score}
}

// classifyAll flattens every section and classifies each leaf, sorted by
// key for deterministic persistence order. Empty values never become
// answers.
func classifyAll(sections []dto.NamedSection, extras map[string]string) []models.AnswerInput {
	flat := make(map[string]string)
	for _, section := range sections {
		if section.Value == nil {
			continue
		}
		flattenInto(flat, section.Prefix, section.Value)
	}
	for key, value := range extras {
		if value != "" {
			flat[key] = value
		}
	}
	keys := make([]string, 0, len(flat))
	for key, value := range flat {
		if value == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	answers := make([]models.AnswerInput, 0, len(keys))
	for _, key := range keys {
		answers = append(answers, classifyAnswer(key, flat[key]))
	}
	return answers
}

// Create ingests a tagged survey submission and persists the header plus
// its classified answers.
func (s *SurveyService) Create(ctx context.Context, req dto.CreateSurveyRequest) (*models.SurveyDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid survey payload")
	}
	payload, err := json.Marshal(req.Data)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "unreadable survey data")
	}

	switch req.Tipo {
	case models.SurveyTypeStudent:
		var data dto.StudentSurveyData
		if err := json.Unmarshal(payload, &data); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student survey data")
		}
		return s.createStudentSurvey(ctx, data)
	case models.SurveyTypeCollaborator:
		var data dto.CollaboratorSurveyData
		if err := json.Unmarshal(payload, &data); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid collaborator survey data")
		}
		return s.createCollaboratorSurvey(ctx, data)
	}
	return nil, appErrors.Clone(appErrors.ErrValidation, "unknown survey type")
}

func (s *SurveyService) createStudentSurvey(ctx context.Context, data dto.StudentSurveyData) (*models.SurveyDetail, error) {
	extras := map[string]string{
		"mejoraCoordinacion":     data.MejoraCoordinacion,
		"comentariosAdicionales": data.ComentariosAdicionales,
	}
	answers := classifyAll(data.Sections(), extras)

	survey := &models.StudentSurvey{
		StudentName:      optional(data.NombreEstudiante),
		TalleristaName:   optional(data.NombreTalleristaSupervisor),
		CollaboratorName: optional(data.NombreDocenteColaborador),
		CenterName:       optional(data.Establecimiento),
		Date:             parseSurveyDate(data.FechaEvaluacion),
		Observation:      optional(data.MejoraCoordinacion),
		Semester:         optional(data.Semestre),
	}
	if err := s.repo.SaveStudentSurvey(ctx, survey, answers); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save student survey")
	}
	s.logger.Info("student survey saved", zap.String("survey_id", survey.ID), zap.Int("answers", len(answers)))
	return s.GetStudentSurvey(ctx, survey.ID)
}

func (s *SurveyService) createCollaboratorSurvey(ctx context.Context, data dto.CollaboratorSurveyData) (*models.SurveyDetail, error) {
	extras := map[string]string{
		"sugerencias":                    data.Sugerencias,
		"cumplePerfilEgreso":             data.CumplePerfilEgreso,
		"comentariosAdicionalesPractica": data.ComentariosAdicionalesPractica,
		"comentariosAdicionales":         data.ComentariosAdicionales,
	}
	answers := classifyAll(data.Sections(), extras)

	survey := &models.CollaboratorSurvey{
		CollaboratorName: optional(data.NombreColaborador),
		SchoolName:       optional(data.CentroEducativo),
		Date:             parseSurveyDate(data.FechaEvaluacion),
		Observation:      optional(data.ComentariosAdicionalesPractica),
		Semester:         optional(data.Semestre),
	}
	if err := s.repo.SaveCollaboratorSurvey(ctx, survey, answers); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save collaborator survey")
	}
	s.logger.Info("collaborator survey saved", zap.String("survey_id", survey.ID), zap.Int("answers", len(answers)))
	return s.GetCollaboratorSurvey(ctx, survey.ID)
}

// ListStudentSurveys returns student survey headers.
func (s *SurveyService) ListStudentSurveys(ctx context.Context) ([]models.StudentSurvey, error) {
	surveys, err := s.repo.ListStudentSurveys(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list student surveys")
	}
	return surveys, nil
}

// ListCollaboratorSurveys returns collaborator survey headers.
func (s *SurveyService) ListCollaboratorSurveys(ctx context.Context) ([]models.CollaboratorSurvey, error) {
	surveys, err := s.repo.ListCollaboratorSurveys(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list collaborator surveys")
	}
	return surveys, nil
}

// GetStudentSurvey returns one student survey with its answers.
func (s *SurveyService) GetStudentSurvey(ctx context.Context, id string) (*models.SurveyDetail, error) {
	survey, err := s.repo.FindStudentSurveyByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "survey not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load survey")
	}
	answers, err := s.repo.ListStudentSurveyAnswers(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load survey answers")
	}
	return &models.SurveyDetail{
		ID:               survey.ID,
		Tipo:             models.SurveyTypeStudent,
		StudentName:      survey.StudentName,
		TalleristaName:   survey.TalleristaName,
		CollaboratorName: survey.CollaboratorName,
		CenterName:       survey.CenterName,
		Date:             survey.Date,
		Observation:      survey.Observation,
		Semester:         survey.Semester,
		Answers:          answers,
	}, nil
}

// GetCollaboratorSurvey returns one collaborator survey with its answers.
func (s *SurveyService) GetCollaboratorSurvey(ctx context.Context, id string) (*models.SurveyDetail, error) {
	survey, err := s.repo.FindCollaboratorSurveyByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "survey not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load survey")
	}
	answers, err := s.repo.ListCollaboratorSurveyAnswers(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load survey answers")
	}
	return &models.SurveyDetail{
		ID:               survey.ID,
		Tipo:             models.SurveyTypeCollaborator,
		CollaboratorName: survey.CollaboratorName,
		CenterName:       survey.SchoolName,
		Date:             survey.Date,
		Observation:      survey.Observation,
		Semester:         survey.Semester,
		Answers:          answers,
	}, nil
}

// UpdateOpenAnswers rewrites open answer texts for a survey and returns
// the number of pairs processed. The id is probed against the student
// store first, then the collaborator store.
func (s *SurveyService) UpdateOpenAnswers(ctx context.Context, surveyID string, req UpdateOpenAnswersRequest) (int, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid open answers payload")
	}
	found, err := s.repo.StudentSurveyExists(ctx, surveyID)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to probe survey")
	}
	if found {
		if err := s.repo.UpdateStudentOpenAnswers(ctx, surveyID, req.Answers); err != nil {
			return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update open answers")
		}
		return len(req.Answers), nil
	}
	found, err = s.repo.CollaboratorSurveyExists(ctx, surveyID)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to probe survey")
	}
	if !found {
		return 0, appErrors.Clone(appErrors.ErrNotFound, "survey not found")
	}
	if err := s.repo.UpdateCollaboratorOpenAnswers(ctx, surveyID, req.Answers); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update open answers")
	}
	return len(req.Answers), nil
}

var surveyExportHeaders = []string{"Encuesta", "Fecha", "Pregunta", "Tipo", "Respuesta", "Puntaje"}

// ExportCSV renders one survey's answers as CSV.
func (s *SurveyService) ExportCSV(ctx context.Context, tipo, surveyID string) ([]byte, error) {
	dataset, err := s.exportDataset(ctx, tipo, surveyID)
	if err != nil {
		return nil, err
	}
	payload, err := s.csv.Render(*dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
	}
	return payload, nil
}

// ExportPDF renders one survey's answers as a tabular PDF.
func (s *SurveyService) ExportPDF(ctx context.Context, tipo, surveyID string) ([]byte, error) {
	dataset, err := s.exportDataset(ctx, tipo, surveyID)
	if err != nil {
		return nil, err
	}
	payload, err := s.pdf.Render(*dataset, "Encuesta de práctica")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
	}
	return payload, nil
}

func (s *SurveyService) exportDataset(ctx context.Context, tipo, surveyID string) (*export.Dataset, error) {
	var detail *models.SurveyDetail
	var err error
	switch tipo {
	case models.SurveyTypeStudent:
		detail, err = s.GetStudentSurvey(ctx, surveyID)
	case models.SurveyTypeCollaborator:
		detail, err = s.GetCollaboratorSurvey(ctx, surveyID)
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown survey type")
	}
	if err != nil {
		return nil, err
	}

	date := ""
	if !detail.Date.IsZero() {
		date = detail.Date.Format("2006-01-02")
	}
	rows := make([]map[string]string, 0, len(detail.Answers))
	for _, answer := range detail.Answers {
		text := ""
		score := ""
		if answer.OpenAnswer != nil {
			text = *answer.OpenAnswer
		}
		if answer.AlternativeText != nil {
			text = *answer.AlternativeText
		}
		if answer.AlternativeScore != nil {
			score = strconv.Itoa(*answer.AlternativeScore)
		}
		rows = append(rows, map[string]string{
			"Encuesta":  detail.ID,
			"Fecha":     date,
			"Pregunta":  answer.QuestionDescription,
			"Tipo":      answer.QuestionKind,
			"Respuesta": text,
			"Puntaje":   score,
		})
	}
	return &export.Dataset{Headers: surveyExportHeaders, Rows: rows}, nil
}

func optional(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}

// parseSurveyDate accepts ISO dates and falls back to now.
func parseSurveyDate(raw string) time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed
		}
	}
	return time.Now().UTC()
}
