package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/uta-diee/practicas-api/internal/models"
	"github.com/uta-diee/practicas-api/internal/service"
	appErrors "github.com/uta-diee/practicas-api/pkg/errors"
	"github.com/uta-diee/practicas-api/pkg/response"
)

// CenterHandler exposes educational center endpoints.
type CenterHandler struct {
	centers  *service.CenterService
	catalogs *service.CatalogService
}

// NewCenterHandler constructs CenterHandler.
func NewCenterHandler(centers *service.CenterService, catalogs *service.CatalogService) *CenterHandler {
	return &CenterHandler{centers: centers, catalogs: catalogs}
}

// List godoc
// @Summary List centers
// @Tags Centers
// @Produce json
// @Param tipo query string false "Filter by center type"
// @Param search query string false "Search by name or comuna"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /centros [get]
func (h *CenterHandler) List(c *gin.Context) {
	filter := models.CenterFilter{
		Tipo:      c.Query("tipo"),
		Search:    strings.TrimSpace(c.Query("search")),
		SortBy:    c.Query("sort"),
		SortOrder: c.Query("order"),
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "10")); err == nil {
		filter.PageSize = size
	}
	centers, pagination, err := h.centers.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, centers, pagination)
}

// Get godoc
// @Summary Get center
// @Tags Centers
// @Produce json
// @Param id path string true "Center ID"
// @Success 200 {object} response.Envelope
// @Router /centros/{id} [get]
func (h *CenterHandler) Get(c *gin.Context) {
	center, err := h.centers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, center, nil)
}

// Create godoc
// @Summary Create center
// @Tags Centers
// @Accept json
// @Produce json
// @Param payload body service.CenterRequest true "Center payload"
// @Success 201 {object} response.Envelope
// @Router /centros [post]
func (h *CenterHandler) Create(c *gin.Context) {
	var req service.CenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	center, err := h.centers.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.catalogs.InvalidateAll(c.Request.Context())
	response.Created(c, center)
}

// Update godoc
// @Summary Update center
// @Tags Centers
// @Accept json
// @Produce json
// @Param id path string true "Center ID"
// @Param payload body service.CenterRequest true "Center payload"
// @Success 200 {object} response.Envelope
// @Router /centros/{id} [put]
func (h *CenterHandler) Update(c *gin.Context) {
	var req service.CenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	center, err := h.centers.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.catalogs.InvalidateAll(c.Request.Context())
	response.JSON(c, http.StatusOK, center, nil)
}

// Delete godoc
// @Summary Delete center
// @Tags Centers
// @Param id path string true "Center ID"
// @Success 204 "deleted"
// @Router /centros/{id} [delete]
func (h *CenterHandler) Delete(c *gin.Context) {
	if err := h.centers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	h.catalogs.InvalidateAll(c.Request.Context())
	response.NoContent(c)
}
