package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uta-diee/practicas-api/internal/models"
	"github.com/uta-diee/practicas-api/internal/service"
	appErrors "github.com/uta-diee/practicas-api/pkg/errors"
	"github.com/uta-diee/practicas-api/pkg/events"
	"github.com/uta-diee/practicas-api/pkg/response"
)

// PracticeHandler exposes practice placement endpoints.
type PracticeHandler struct {
	practices *service.PracticeService
	broker    *events.Broker
	metrics   *service.MetricsService
}

// NewPracticeHandler constructs PracticeHandler.
func NewPracticeHandler(practices *service.PracticeService, broker *events.Broker, metrics *service.MetricsService) *PracticeHandler {
	return &PracticeHandler{practices: practices, broker: broker, metrics: metrics}
}

// Create godoc
// @Summary Create practice placement
// @Tags Practices
// @Accept json
// @Produce json
// @Param payload body service.CreatePracticeRequest true "Practice payload"
// @Success 201 {object} response.Envelope
// @Router /practicas [post]
func (h *PracticeHandler) Create(c *gin.Context) {
	var req service.CreatePracticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	detail, err := h.practices.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.RecordEventPublished(events.TypePracticeCreated)
	response.Created(c, detail)
}

// Get godoc
// @Summary Get practice detail
// @Tags Practices
// @Produce json
// @Param id path string true "Practice ID"
// @Success 200 {object} response.Envelope
// @Router /practicas/{id} [get]
func (h *PracticeHandler) Get(c *gin.Context) {
	detail, err := h.practices.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}

// List godoc
// @Summary List practices
// @Tags Practices
// @Produce json
// @Param estado query string false "Filter by status"
// @Param rut query string false "Filter by student RUT"
// @Success 200 {object} response.Envelope
// @Router /practicas [get]
func (h *PracticeHandler) List(c *gin.Context) {
	filter := models.PracticeFilter{
		Status:     strings.TrimSpace(c.Query("estado")),
		StudentRut: strings.TrimSpace(c.Query("rut")),
	}
	details, err := h.practices.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, details, nil)
}

// Board godoc
// @Summary Practice management board
// @Tags Practices
// @Produce json
// @Param estado query string false "Filter by status"
// @Param tipo query string false "Filter by practice type"
// @Param centro query string false "Filter by center"
// @Param colaborador query string false "Filter by collaborator"
// @Param search query string false "Free text search"
// @Param desde query string false "Start date lower bound (YYYY-MM-DD)"
// @Param hasta query string false "Start date upper bound (YYYY-MM-DD)"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /practicas/board [get]
func (h *PracticeHandler) Board(c *gin.Context) {
	filter := models.PracticeBoardFilter{
		Status:         c.Query("estado"),
		Type:           c.Query("tipo"),
		CenterID:       c.Query("centro"),
		CollaboratorID: c.Query("colaborador"),
		Search:         strings.TrimSpace(c.Query("search")),
		SortBy:         c.Query("sort"),
		SortOrder:      c.Query("order"),
	}
	if from := c.Query("desde"); from != "" {
		if parsed, err := time.Parse("2006-01-02", from); err == nil {
			filter.From = &parsed
		}
	}
	if to := c.Query("hasta"); to != "" {
		if parsed, err := time.Parse("2006-01-02", to); err == nil {
			filter.To = &parsed
		}
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "10")); err == nil {
		filter.PageSize = size
	}

	details, pagination, err := h.practices.ListBoard(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, details, pagination)
}

// UpdateStatus godoc
// @Summary Update practice status
// @Tags Practices
// @Accept json
// @Produce json
// @Param id path string true "Practice ID"
// @Param payload body service.UpdatePracticeStatusRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Router /practicas/{id}/estado [patch]
func (h *PracticeHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdatePracticeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	detail, err := h.practices.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.RecordEventPublished(events.TypePracticeUpdated)
	response.JSON(c, http.StatusOK, detail, nil)
}

// Stream godoc
// @Summary Stream practice change events (SSE)
// @Tags Practices
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Router /practicas/stream [get]
func (h *PracticeHandler) Stream(c *gin.Context) {
	ch, cancel := h.broker.Subscribe()
	defer cancel()
	if h.metrics != nil {
		h.metrics.SetSSESubscribers(h.broker.SubscriberCount())
		defer func() { h.metrics.SetSSESubscribers(h.broker.SubscriberCount()) }()
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(event.Type, event.Payload)
			return true
		case <-clientGone:
			return false
		}
	})
}
