package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsByRoutePattern(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/clientes/{id}/pedidos", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/clientes/7/pedidos", nil))

	count := testutil.ToFloat64(m.requestsTotal.WithLabelValues("/clientes/{id}/pedidos", "418"))
	assert.Equal(t, 1.0, count)
}

func TestObserveBackend(t *testing.T) {
	m := New()
	m.ObserveBackend(http.MethodPost, "status", 20*time.Millisecond)
	m.ObserveBackend(http.MethodPost, "status", 20*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.backendTotal.WithLabelValues("POST", "status")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveBackend(http.MethodGet, "ok", time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "dashboard_backend_requests_total"))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.ObserveBackend(http.MethodGet, "ok", time.Millisecond)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	assert.NotNil(t, m.Middleware(next))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
