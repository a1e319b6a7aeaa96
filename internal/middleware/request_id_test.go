package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alimgiray/gstats/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": GetRequestID(c)})
	})
	return router
}

func TestRequestIDGenerated(t *testing.T) {
	router := newTestRouter()

	req, _ := http.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	header := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(header)
	assert.NoError(t, err, "generated request ID should be a UUID")

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, header, body["request_id"])
}

func TestRequestIDPropagated(t *testing.T) {
	router := newTestRouter()
	incoming := uuid.New().String()

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))
}

func TestRequestIDReplacesInvalid(t *testing.T) {
	router := newTestRouter()

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEqual(t, "<script>", w.Header().Get(RequestIDHeader))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestLoggerWritesEntry(t *testing.T) {
	var buf bytes.Buffer
	logger.SetLogger(logger.New("info", &buf))
	defer logger.SetLogger(nil)

	router := newTestRouter()
	req, _ := http.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/test", entry["path"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, w.Header().Get(RequestIDHeader), entry["request_id"])
}

func TestGetRequestIDMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, "", GetRequestID(c))
}
