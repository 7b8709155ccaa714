package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uta-diee/practicas-api/internal/dto"
	"github.com/uta-diee/practicas-api/internal/models"
	"github.com/uta-diee/practicas-api/internal/service"
	appErrors "github.com/uta-diee/practicas-api/pkg/errors"
	"github.com/uta-diee/practicas-api/pkg/response"
)

// SurveyHandler exposes survey endpoints.
type SurveyHandler struct {
	surveys *service.SurveyService
}

// NewSurveyHandler constructs SurveyHandler.
func NewSurveyHandler(surveys *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveys: surveys}
}

// Create godoc
// @Summary Submit a survey response
// @Tags Surveys
// @Accept json
// @Produce json
// @Param payload body dto.CreateSurveyRequest true "Survey payload"
// @Success 201 {object} response.Envelope
// @Router /encuestas [post]
func (h *SurveyHandler) Create(c *gin.Context) {
	var req dto.CreateSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	detail, err := h.surveys.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, detail)
}

// ListStudent godoc
// @Summary List student surveys
// @Tags Surveys
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /encuestas/estudiantiles [get]
func (h *SurveyHandler) ListStudent(c *gin.Context) {
	surveys, err := h.surveys.ListStudentSurveys(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, surveys, nil)
}

// ListCollaborator godoc
// @Summary List collaborator surveys
// @Tags Surveys
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /encuestas/colaboradores [get]
func (h *SurveyHandler) ListCollaborator(c *gin.Context) {
	surveys, err := h.surveys.ListCollaboratorSurveys(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, surveys, nil)
}

// GetStudent godoc
// @Summary Get a student survey with answers
// @Tags Surveys
// @Produce json
// @Param id path string true "Survey ID"
// @Success 200 {object} response.Envelope
// @Router /encuestas/estudiantiles/{id} [get]
func (h *SurveyHandler) GetStudent(c *gin.Context) {
	detail, err := h.surveys.GetStudentSurvey(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}

// GetCollaborator godoc
// @Summary Get a collaborator survey with answers
// @Tags Surveys
// @Produce json
// @Param id path string true "Survey ID"
// @Success 200 {object} response.Envelope
// @Router /encuestas/colaboradores/{id} [get]
func (h *SurveyHandler) GetCollaborator(c *gin.Context) {
	detail, err := h.surveys.GetCollaboratorSurvey(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}

// UpdateOpenAnswers godoc
// @Summary Update open answers of a survey
// @Tags Surveys
// @Accept json
// @Produce json
// @Param id path string true "Survey ID"
// @Param payload body service.UpdateOpenAnswersRequest true "Answers payload"
// @Success 200 {object} response.Envelope
// @Router /encuestas/{id}/respuestas-abiertas [patch]
func (h *SurveyHandler) UpdateOpenAnswers(c *gin.Context) {
	var req service.UpdateOpenAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	updated, err := h.surveys.UpdateOpenAnswers(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"updated": updated}, nil)
}

// Export godoc
// @Summary Export a survey as CSV or PDF
// @Tags Surveys
// @Produce application/octet-stream
// @Param id path string true "Survey ID"
// @Param tipo query string true "Survey type" Enums(ESTUDIANTIL, COLABORADORES_JEFES)
// @Param formato query string false "Export format" Enums(csv, pdf)
// @Success 200 {file} binary
// @Router /encuestas/{id}/export [get]
func (h *SurveyHandler) Export(c *gin.Context) {
	tipo := c.DefaultQuery("tipo", models.SurveyTypeStudent)
	id := c.Param("id")
	switch c.DefaultQuery("formato", "csv") {
	case "pdf":
		payload, err := h.surveys.ExportPDF(c.Request.Context(), tipo, id)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="encuesta-`+id+`.pdf"`)
		c.Data(http.StatusOK, "application/pdf", payload)
	case "csv":
		payload, err := h.surveys.ExportCSV(c.Request.Context(), tipo, id)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="encuesta-`+id+`.csv"`)
		c.Data(http.StatusOK, "text/csv", payload)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown export format"))
	}
}
