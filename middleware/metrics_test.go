package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsBuilder(t *testing.T) {
	reg := prometheus.NewRegistry()
	b := NewMetricsBuilder(reg)

	server := gin.New()
	server.Use(b.Build())
	server.GET("/api/summaries/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for _, path := range []string{"/api/summaries/1", "/api/summaries/2", "/nowhere"} {
		server.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(b.counterVec.WithLabelValues("GET", "/api/summaries/:id", "204")))
	assert.Equal(t, float64(1), testutil.ToFloat64(b.counterVec.WithLabelValues("GET", "unmatched", "404")))
}
