package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uta-diee/practicas-api/internal/dto"
	"github.com/uta-diee/practicas-api/internal/models"
)

type mockSurveyRepo struct {
	studentSurvey      *models.StudentSurvey
	collaboratorSurvey *models.CollaboratorSurvey
	answers            []models.AnswerInput
	studentExists      bool
	collaboratorExists bool
	studentUpdates     []models.OpenAnswerUpdate
	collabUpdates      []models.OpenAnswerUpdate
	details            []models.AnswerDetail
}

func (m *mockSurveyRepo) SaveStudentSurvey(ctx context.Context, survey *models.StudentSurvey, answers []models.AnswerInput) error {
	survey.ID = "s-new"
	m.studentSurvey = survey
	m.answers = answers
	return nil
}

func (m *mockSurveyRepo) SaveCollaboratorSurvey(ctx context.Context, survey *models.CollaboratorSurvey, answers []models.AnswerInput) error {
	survey.ID = "c-new"
	m.collaboratorSurvey = survey
	m.answers = answers
	return nil
}

func (m *mockSurveyRepo) ListStudentSurveys(ctx context.Context) ([]models.StudentSurvey, error) {
	return nil, nil
}

func (m *mockSurveyRepo) ListCollaboratorSurveys(ctx context.Context) ([]models.CollaboratorSurvey, error) {
	return nil, nil
}

func (m *mockSurveyRepo) FindStudentSurveyByID(ctx context.Context, id string) (*models.StudentSurvey, error) {
	if m.studentSurvey != nil {
		return m.studentSurvey, nil
	}
	return &models.StudentSurvey{ID: id}, nil
}

func (m *mockSurveyRepo) FindCollaboratorSurveyByID(ctx context.Context, id string) (*models.CollaboratorSurvey, error) {
	if m.collaboratorSurvey != nil {
		return m.collaboratorSurvey, nil
	}
	return &models.CollaboratorSurvey{ID: id}, nil
}

func (m *mockSurveyRepo) ListStudentSurveyAnswers(ctx context.Context, surveyID string) ([]models.AnswerDetail, error) {
	return m.details, nil
}

func (m *mockSurveyRepo) ListCollaboratorSurveyAnswers(ctx context.Context, surveyID string) ([]models.AnswerDetail, error) {
	return m.details, nil
}

func (m *mockSurveyRepo) StudentSurveyExists(ctx context.Context, id string) (bool, error) {
	return m.studentExists, nil
}

func (m *mockSurveyRepo) CollaboratorSurveyExists(ctx context.Context, id string) (bool, error) {
	return m.collaboratorExists, nil
}

func (m *mockSurveyRepo) UpdateStudentOpenAnswers(ctx context.Context, surveyID string, updates []models.OpenAnswerUpdate) error {
	m.studentUpdates = updates
	return nil
}

func (m *mockSurveyRepo) UpdateCollaboratorOpenAnswers(ctx context.Context, surveyID string, updates []models.OpenAnswerUpdate) error {
	m.collabUpdates = updates
	return nil
}

func TestFlattenNestedSections(t *testing.T) {
	flat := Flatten("secI", map[string]interface{}{
		"planificacion": "4",
		"detalle": map[string]interface{}{
			"puntualidad": "5",
		},
		"numero":  float64(3),
		"activo":  true,
		"vacante": nil,
	})

	assert.Equal(t, "4", flat["secI.planificacion"])
	assert.Equal(t, "5", flat["secI.detalle.puntualidad"])
	assert.Equal(t, "3", flat["secI.numero"])
	assert.Equal(t, "true", flat["secI.activo"])
	assert.NotContains(t, flat, "secI.vacante")
}

func TestClassifyAnswer(t *testing.T) {
	cases := []struct {
		name      string
		key       string
		value     string
		wantKind  string
		wantScore int
	}{
		{"scale value is closed", "secI.planificacion", "4", models.QuestionKindClosed, 4},
		{"na is closed with zero score", "secI.asistencia", "NA", models.QuestionKindClosed, 0},
		{"si is closed", "secII.cumple", "si", models.QuestionKindClosed, 0},
		{"free text is open", "secI.planificacion", "muy buena disposición", models.QuestionKindOpen, 0},
		{"comment marker forces open", "comentariosAdicionales", "5", models.QuestionKindOpen, 0},
		{"sugerencia marker forces open", "sugerenciasMejora", "na", models.QuestionKindOpen, 0},
		{"perfil marker wins over si/no value", "cumplePerfilEgreso", "si", models.QuestionKindOpen, 0},
		{"whitespace trimmed before matching", "secI.item", " 5 ", models.QuestionKindClosed, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyAnswer(tc.key, tc.value)
			assert.Equal(t, tc.wantKind, got.Kind)
			assert.Equal(t, tc.wantScore, got.Score)
			assert.Equal(t, tc.value, got.Text)
		})
	}
}

func TestSurveyServiceCreateStudentSurvey(t *testing.T) {
	repo := &mockSurveyRepo{}
	svc := NewSurveyService(repo, nil, nil, nil, nil)

	detail, err := svc.Create(context.Background(), dto.CreateSurveyRequest{
		Tipo: models.SurveyTypeStudent,
		Data: map[string]interface{}{
			"nombreEstudiante":   "Ana Rojas",
			"establecimiento":    "Liceo A-1",
			"fechaEvaluacion":    "2026-06-15",
			"mejoraCoordinacion": "coordinar visitas con antelación",
			"semestre":           "2026-1",
			"secI": map[string]interface{}{
				"planificacion": "4",
				"observacion":   "llegó siempre puntual",
				"sinResponder":  nil,
				"pendiente":     "",
			},
			"comentariosAdicionales": "sin comentarios",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, models.SurveyTypeStudent, detail.Tipo)
	require.NotNil(t, repo.studentSurvey)
	assert.Equal(t, "Ana Rojas", *repo.studentSurvey.StudentName)
	require.NotNil(t, repo.studentSurvey.Observation)
	assert.Equal(t, "coordinar visitas con antelación", *repo.studentSurvey.Observation)

	byKey := map[string]models.AnswerInput{}
	for _, answer := range repo.answers {
		byKey[answer.QuestionKey] = answer
	}
	assert.Equal(t, models.QuestionKindClosed, byKey["secI.planificacion"].Kind)
	assert.Equal(t, 4, byKey["secI.planificacion"].Score)
	assert.Equal(t, models.QuestionKindOpen, byKey["secI.observacion"].Kind)
	assert.Equal(t, models.QuestionKindOpen, byKey["comentariosAdicionales"].Kind)
	// Blank leaves never become answers.
	assert.NotContains(t, byKey, "secI.sinResponder")
	assert.NotContains(t, byKey, "secI.pendiente")
}

func TestSurveyServiceCreateCollaboratorSurvey(t *testing.T) {
	repo := &mockSurveyRepo{}
	svc := NewSurveyService(repo, nil, nil, nil, nil)

	_, err := svc.Create(context.Background(), dto.CreateSurveyRequest{
		Tipo: models.SurveyTypeCollaborator,
		Data: map[string]interface{}{
			"nombreColaborador": "Pedro Soto",
			"centroEducativo":   "Escuela D-4",
			"fechaEvaluacion":   "2026-07-01",
			"secI": map[string]interface{}{
				"acompanamiento": "5",
			},
			"cumplePerfilEgreso":             "si",
			"sugerencias":                    "más horas de taller",
			"comentariosAdicionalesPractica": "buen acompañamiento en aula",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, repo.collaboratorSurvey)
	require.NotNil(t, repo.collaboratorSurvey.Observation)
	assert.Equal(t, "buen acompañamiento en aula", *repo.collaboratorSurvey.Observation)

	byKey := map[string]models.AnswerInput{}
	for _, answer := range repo.answers {
		byKey[answer.QuestionKey] = answer
	}
	assert.Equal(t, models.QuestionKindClosed, byKey["secI.acompanamiento"].Kind)
	assert.Equal(t, models.QuestionKindOpen, byKey["cumplePerfilEgreso"].Kind)
	assert.Equal(t, "si", byKey["cumplePerfilEgreso"].Text)
	assert.Equal(t, models.QuestionKindOpen, byKey["sugerencias"].Kind)
}

func TestSurveyServiceCreateRejectsUnknownType(t *testing.T) {
	svc := NewSurveyService(&mockSurveyRepo{}, nil, nil, nil, nil)

	_, err := svc.Create(context.Background(), dto.CreateSurveyRequest{
		Tipo: "DOCENTES",
		Data: map[string]interface{}{},
	})
	require.Error(t, err)
}

func TestSurveyServiceUpdateOpenAnswersProbesStudentFirst(t *testing.T) {
	text := "nuevo texto"
	updates := UpdateOpenAnswersRequest{Answers: []models.OpenAnswerUpdate{{QuestionID: "q1", OpenAnswer: &text}}}

	repo := &mockSurveyRepo{studentExists: true}
	svc := NewSurveyService(repo, nil, nil, nil, nil)
	updated, err := svc.UpdateOpenAnswers(context.Background(), "s1", updates)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
	assert.Len(t, repo.studentUpdates, 1)
	assert.Nil(t, repo.collabUpdates)

	repo = &mockSurveyRepo{collaboratorExists: true}
	svc = NewSurveyService(repo, nil, nil, nil, nil)
	updated, err = svc.UpdateOpenAnswers(context.Background(), "c1", updates)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
	assert.Len(t, repo.collabUpdates, 1)

	repo = &mockSurveyRepo{}
	svc = NewSurveyService(repo, nil, nil, nil, nil)
	_, err = svc.UpdateOpenAnswers(context.Background(), "missing", updates)
	require.Error(t, err)
}

func TestSurveyServiceExportCSV(t *testing.T) {
	repo := &mockSurveyRepo{studentSurvey: &models.StudentSurvey{ID: "s1"}}
	svc := NewSurveyService(repo, nil, nil, nil, nil)

	payload, err := svc.ExportCSV(context.Background(), models.SurveyTypeStudent, "s1")
	require.NoError(t, err)
	assert.Contains(t, string(payload), "Encuesta,Fecha,Pregunta,Tipo,Respuesta,Puntaje")
}

func TestSurveyServiceExportOmitsAbsentDate(t *testing.T) {
	text := "sin fecha registrada"
	repo := &mockSurveyRepo{
		collaboratorSurvey: &models.CollaboratorSurvey{ID: "c1"},
		details: []models.AnswerDetail{
			{QuestionDescription: "sugerencias", QuestionKind: models.QuestionKindOpen, Answer: models.Answer{OpenAnswer: &text}},
		},
	}
	svc := NewSurveyService(repo, nil, nil, nil, nil)

	payload, err := svc.ExportCSV(context.Background(), models.SurveyTypeCollaborator, "c1")
	require.NoError(t, err)
	assert.Contains(t, string(payload), "sin fecha registrada")
	assert.NotContains(t, string(payload), "0001-01-01")
}
