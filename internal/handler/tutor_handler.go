package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uta-diee/practicas-api/internal/service"
	appErrors "github.com/uta-diee/practicas-api/pkg/errors"
	"github.com/uta-diee/practicas-api/pkg/response"
)

// TutorHandler exposes tutor endpoints.
type TutorHandler struct {
	tutors   *service.TutorService
	catalogs *service.CatalogService
}

// NewTutorHandler constructs TutorHandler.
func NewTutorHandler(tutors *service.TutorService, catalogs *service.CatalogService) *TutorHandler {
	return &TutorHandler{tutors: tutors, catalogs: catalogs}
}

// List godoc
// @Summary List tutors
// @Tags Tutors
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /tutores [get]
func (h *TutorHandler) List(c *gin.Context) {
	tutors, err := h.tutors.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tutors, nil)
}

// Get godoc
// @Summary Get tutor
// @Tags Tutors
// @Produce json
// @Param id path string true "Tutor ID"
// @Success 200 {object} response.Envelope
// @Router /tutores/{id} [get]
func (h *TutorHandler) Get(c *gin.Context) {
	tutor, err := h.tutors.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tutor, nil)
}

// Create godoc
// @Summary Create tutor
// @Tags Tutors
// @Accept json
// @Produce json
// @Param payload body service.PersonRequest true "Tutor payload"
// @Success 201 {object} response.Envelope
// @Router /tutores [post]
func (h *TutorHandler) Create(c *gin.Context) {
	var req service.PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	tutor, err := h.tutors.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.catalogs.InvalidateAll(c.Request.Context())
	response.Created(c, tutor)
}

// Update godoc
// @Summary Update tutor
// @Tags Tutors
// @Accept json
// @Produce json
// @Param id path string true "Tutor ID"
// @Param payload body service.PersonRequest true "Tutor payload"
// @Success 200 {object} response.Envelope
// @Router /tutores/{id} [put]
func (h *TutorHandler) Update(c *gin.Context) {
	var req service.PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	tutor, err := h.tutors.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.catalogs.InvalidateAll(c.Request.Context())
	response.JSON(c, http.StatusOK, tutor, nil)
}

// Delete godoc
// @Summary Delete tutor
// @Tags Tutors
// @Param id path string true "Tutor ID"
// @Success 204 "deleted"
// @Router /tutores/{id} [delete]
func (h *TutorHandler) Delete(c *gin.Context) {
	if err := h.tutors.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	h.catalogs.InvalidateAll(c.Request.Context())
	response.NoContent(c)
}
