package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func TestMetricsObserve(t *testing.T) {
	m := New(nil)
	m.ObserveReply("ok", 2*time.Second)
	m.ObserveClassification("HOT")
	m.SetHistorySize(3)
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveReply("error", time.Second)
	m.ObserveClassification("COLD")
	m.SetHistorySize(1)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.GinMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestMetricsHandlerExposesCollectors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New(prometheus.NewRegistry())

	r := gin.New()
	r.Use(m.GinMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	m.ObserveClassification("HOT")
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()

	for _, want := range []string{
		`leadqual_conversation_classifications_total{classification="HOT"} 1`,
		`leadqual_http_requests_total{code="200",method="GET",route="/ping"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
