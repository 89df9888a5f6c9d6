package requestid

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(captured *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/", func(c *gin.Context) {
		*captured = Value(c)
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestMiddlewareGeneratesID(t *testing.T) {
	var captured string
	r := newRouter(&captured)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	header := w.Header().Get(headerKey)
	require.NotEmpty(t, header)
	assert.Equal(t, header, captured)
	_, err := uuid.Parse(header)
	assert.NoError(t, err)
}

func TestMiddlewareReusesInboundID(t *testing.T) {
	var captured string
	r := newRouter(&captured)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(headerKey, "edge-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "edge-42", captured)
	assert.Equal(t, "edge-42", w.Header().Get(headerKey))
}

func TestMiddlewareReplacesOversizedID(t *testing.T) {
	var captured string
	r := newRouter(&captured)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(headerKey, strings.Repeat("x", maxInboundLength+1))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Len(t, captured, 36)
}
