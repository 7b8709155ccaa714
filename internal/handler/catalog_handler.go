package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uta-diee/practicas-api/internal/service"
	"github.com/uta-diee/practicas-api/pkg/response"
)

// CatalogHandler exposes the cached id+name select catalogs.
type CatalogHandler struct {
	catalogs *service.CatalogService
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(catalogs *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogs: catalogs}
}

// Students godoc
// @Summary Student select catalog
// @Tags Catalogs
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /catalogos/estudiantes [get]
func (h *CatalogHandler) Students(c *gin.Context) {
	entries, err := h.catalogs.Students(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}

// Centers godoc
// @Summary Center select catalog
// @Tags Catalogs
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /catalogos/centros [get]
func (h *CatalogHandler) Centers(c *gin.Context) {
	entries, err := h.catalogs.Centers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}

// Collaborators godoc
// @Summary Collaborator select catalog
// @Tags Catalogs
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /catalogos/colaboradores [get]
func (h *CatalogHandler) Collaborators(c *gin.Context) {
	entries, err := h.catalogs.Collaborators(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}

// Tutors godoc
// @Summary Tutor select catalog
// @Tags Catalogs
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /catalogos/tutores [get]
func (h *CatalogHandler) Tutors(c *gin.Context) {
	entries, err := h.catalogs.Tutors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}
