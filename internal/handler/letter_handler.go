package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uta-diee/practicas-api/internal/models"
	"github.com/uta-diee/practicas-api/internal/service"
	appErrors "github.com/uta-diee/practicas-api/pkg/errors"
	"github.com/uta-diee/practicas-api/pkg/response"
)

// LetterHandler exposes authorization letter endpoints.
type LetterHandler struct {
	letters *service.LetterService
}

// NewLetterHandler constructs LetterHandler.
func NewLetterHandler(letters *service.LetterService) *LetterHandler {
	return &LetterHandler{letters: letters}
}

// List godoc
// @Summary List authorization letters
// @Tags Letters
// @Produce json
// @Param estado query string false "Filter by status"
// @Param institucion query string false "Filter by institution"
// @Param search query string false "Search by code, title or addressee"
// @Success 200 {object} response.Envelope
// @Router /cartas [get]
func (h *LetterHandler) List(c *gin.Context) {
	filter := models.LetterFilter{
		Status:      c.Query("estado"),
		Institution: c.Query("institucion"),
		Search:      c.Query("search"),
	}
	letters, err := h.letters.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, letters, nil)
}

// Get godoc
// @Summary Get authorization letter
// @Tags Letters
// @Produce json
// @Param id path string true "Letter ID"
// @Success 200 {object} response.Envelope
// @Router /cartas/{id} [get]
func (h *LetterHandler) Get(c *gin.Context) {
	letter, err := h.letters.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, letter, nil)
}

// Create godoc
// @Summary Create authorization letter
// @Tags Letters
// @Accept json
// @Produce json
// @Param payload body service.CreateLetterRequest true "Letter payload"
// @Success 201 {object} response.Envelope
// @Router /cartas [post]
func (h *LetterHandler) Create(c *gin.Context) {
	var req service.CreateLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	letter, err := h.letters.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, letter)
}

// MarkSent godoc
// @Summary Mark a letter as sent
// @Tags Letters
// @Produce json
// @Param id path string true "Letter ID"
// @Success 200 {object} response.Envelope
// @Router /cartas/{id}/enviar [patch]
func (h *LetterHandler) MarkSent(c *gin.Context) {
	letter, err := h.letters.MarkSent(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, letter, nil)
}

// PDF godoc
// @Summary Render a letter as PDF
// @Tags Letters
// @Produce application/pdf
// @Param id path string true "Letter ID"
// @Success 200 {file} binary
// @Router /cartas/{id}/pdf [get]
func (h *LetterHandler) PDF(c *gin.Context) {
	payload, letter, err := h.letters.RenderPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+letter.Code+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", payload)
}

// SignedDownload godoc
// @Summary Issue a signed download token for a letter PDF
// @Tags Letters
// @Produce json
// @Param id path string true "Letter ID"
// @Success 200 {object} response.Envelope
// @Router /cartas/{id}/descarga [post]
func (h *LetterHandler) SignedDownload(c *gin.Context) {
	download, err := h.letters.SignedDownload(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, download, nil)
}

// Download godoc
// @Summary Download a letter PDF with a signed token
// @Tags Letters
// @Produce application/pdf
// @Param token query string true "Signed download token"
// @Success 200 {file} binary
// @Router /cartas/descarga [get]
func (h *LetterHandler) Download(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "token required"))
		return
	}
	payload, filename, err := h.letters.ResolveDownload(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", payload)
}

// Delete godoc
// @Summary Delete authorization letter
// @Tags Letters
// @Param id path string true "Letter ID"
// @Success 204 "deleted"
// @Router /cartas/{id} [delete]
func (h *LetterHandler) Delete(c *gin.Context) {
	if err := h.letters.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
