package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uta-diee/practicas-api/internal/service"
	appErrors "github.com/uta-diee/practicas-api/pkg/errors"
	"github.com/uta-diee/practicas-api/pkg/response"
)

// CollaboratorHandler exposes collaborator endpoints.
type CollaboratorHandler struct {
	collaborators *service.CollaboratorService
	catalogs      *service.CatalogService
}

// NewCollaboratorHandler constructs CollaboratorHandler.
func NewCollaboratorHandler(collaborators *service.CollaboratorService, catalogs *service.CatalogService) *CollaboratorHandler {
	return &CollaboratorHandler{collaborators: collaborators, catalogs: catalogs}
}

// List godoc
// @Summary List collaborators
// @Tags Collaborators
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /colaboradores [get]
func (h *CollaboratorHandler) List(c *gin.Context) {
	collaborators, err := h.collaborators.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, collaborators, nil)
}

// Get godoc
// @Summary Get collaborator
// @Tags Collaborators
// @Produce json
// @Param id path string true "Collaborator ID"
// @Success 200 {object} response.Envelope
// @Router /colaboradores/{id} [get]
func (h *CollaboratorHandler) Get(c *gin.Context) {
	collaborator, err := h.collaborators.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, collaborator, nil)
}

// Create godoc
// @Summary Create collaborator
// @Tags Collaborators
// @Accept json
// @Produce json
// @Param payload body service.PersonRequest true "Collaborator payload"
// @Success 201 {object} response.Envelope
// @Router /colaboradores [post]
func (h *CollaboratorHandler) Create(c *gin.Context) {
	var req service.PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	collaborator, err := h.collaborators.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.catalogs.InvalidateAll(c.Request.Context())
	response.Created(c, collaborator)
}

// Update godoc
// @Summary Update collaborator
// @Tags Collaborators
// @Accept json
// @Produce json
// @Param id path string true "Collaborator ID"
// @Param payload body service.PersonRequest true "Collaborator payload"
// @Success 200 {object} response.Envelope
// @Router /colaboradores/{id} [put]
func (h *CollaboratorHandler) Update(c *gin.Context) {
	var req service.PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	collaborator, err := h.collaborators.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.catalogs.InvalidateAll(c.Request.Context())
	response.JSON(c, http.StatusOK, collaborator, nil)
}

// Delete godoc
// @Summary Delete collaborator
// @Tags Collaborators
// @Param id path string true "Collaborator ID"
// @Success 204 "deleted"
// @Router /colaboradores/{id} [delete]
func (h *CollaboratorHandler) Delete(c *gin.Context) {
	if err := h.collaborators.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	h.catalogs.InvalidateAll(c.Request.Context())
	response.NoContent(c)
}
