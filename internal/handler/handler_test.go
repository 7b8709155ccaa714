package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uta-diee/practicas-api/internal/service"
	"github.com/uta-diee/practicas-api/pkg/events"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

// streamRecorder adds the CloseNotifier contract gin.Context.Stream
// expects from the underlying writer.
type streamRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func (r *streamRecorder) CloseNotify() <-chan bool { return r.closed }

func TestPracticeHandlerCreateInvalidBody(t *testing.T) {
	handler := NewPracticeHandler(nil, nil, nil)

	c, w := newTestContext(t)
	req, _ := http.NewRequest(http.MethodPost, "/practicas", bytes.NewBufferString(`{"estudiante_rut":`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid payload")
}

func TestPracticeHandlerStreamStopsWhenClientGone(t *testing.T) {
	broker := events.NewBroker(4, nil)
	defer broker.Close()
	handler := NewPracticeHandler(nil, broker, nil)

	gin.SetMode(gin.TestMode)
	w := &streamRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool)}
	c, _ := gin.CreateTestContext(w)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req, _ := http.NewRequest(http.MethodGet, "/practicas/stream", nil)
	c.Request = req.WithContext(ctx)

	handler.Stream(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, 0, broker.SubscriberCount())
}

func TestSurveyHandlerExportUnknownFormat(t *testing.T) {
	handler := NewSurveyHandler(nil)

	c, w := newTestContext(t)
	req, _ := http.NewRequest(http.MethodGet, "/encuestas/abc/export?formato=xlsx", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.Export(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown export format")
}

func TestLetterHandlerDownloadRequiresToken(t *testing.T) {
	handler := NewLetterHandler(nil)

	c, w := newTestContext(t)
	req, _ := http.NewRequest(http.MethodGet, "/cartas/descarga", nil)
	c.Request = req

	handler.Download(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "token required")
}

func TestActivityHandlerUploadEvidenceRequiresFile(t *testing.T) {
	handler := NewActivityHandler(nil)

	c, w := newTestContext(t)
	req, _ := http.NewRequest(http.MethodPost, "/actividades/abc/evidencia", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.UploadEvidence(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandlerMeWithoutClaims(t *testing.T) {
	handler := NewAuthHandler(nil)

	c, w := newTestContext(t)
	req, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
	c.Request = req

	handler.Me(c)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMetricsHandlerExpose(t *testing.T) {
	handler := NewMetricsHandler(service.NewMetricsService())

	c, w := newTestContext(t)
	req, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
	c.Request = req

	handler.Expose(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "goroutines_total")
}
