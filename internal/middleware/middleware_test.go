package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/techclub-site/internal/service"
)

func TestSetCacheHitWritesHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	SetCacheHit(c, true)
	assert.Equal(t, "HIT", c.Writer.Header().Get(CacheHeader))

	SetCacheHit(c, false)
	assert.Equal(t, "MISS", c.Writer.Header().Get(CacheHeader))
	assert.Nil(t, ExtractMeta(c))
}

func TestWithResponseMetaSharesMapWithHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(WithResponseMeta())
	r.GET("/x", func(c *gin.Context) {
		meta := ProcessingTime(c, time.Now().Add(-5*time.Millisecond))
		_, same := ExtractMeta(c)["processing_time_ms"]
		c.JSON(http.StatusOK, gin.H{"meta": meta, "same": same})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Meta map[string]float64 `json:"meta"`
		Same bool               `json:"same"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Same)
	assert.GreaterOrEqual(t, body.Meta["processing_time_ms"], float64(5))
}

func TestMetricsMiddlewareLabelsRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := service.NewMetricsService()
	r := gin.New()
	r.Use(Metrics(metrics))
	r.GET("/events/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/events/7", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	expected := `
# HELP http_requests_total Total number of HTTP requests
# TYPE http_requests_total counter
http_requests_total{method="GET",path="/events/:id",status="200"} 1
http_requests_total{method="GET",path="unmatched",status="404"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(metrics.Registry(), strings.NewReader(expected), "http_requests_total"))
}

func TestMetricsMiddlewareNilService(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics(nil))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
