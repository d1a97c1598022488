package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"physics-writing-assistant/internal/metrics"
	"physics-writing-assistant/pkg/log"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(log.NewNop())
	r := gin.New()
	r.Use(mw.RequestID(), mw.Logging(), mw.Metrics())
	r.GET("/ping/:id", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestIDFrom(c.Request.Context()))
	})
	return r
}

func TestRequestID_Propagates(t *testing.T) {
	r := newEngine()

	req := httptest.NewRequest(http.MethodGet, "/ping/1", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Body.String() != "abc-123" {
		t.Errorf("request id in context = %q", w.Body.String())
	}
	if got := w.Header().Get(HeaderRequestID); got != "abc-123" {
		t.Errorf("response header = %q", got)
	}
}

func TestRequestID_Generated(t *testing.T) {
	r := newEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping/1", nil))

	if w.Body.String() == "" || w.Body.String() != w.Header().Get(HeaderRequestID) {
		t.Errorf("generated id mismatch: body=%q header=%q", w.Body.String(), w.Header().Get(HeaderRequestID))
	}
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	r := newEngine()
	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/ping/:id", "200")
	before := testutil.ToFloat64(counter)

	for _, p := range []string{"/ping/1", "/ping/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	if got := testutil.ToFloat64(counter); got != before+2 {
		t.Errorf("http_requests_total = %v, want %v", got, before+2)
	}
}
