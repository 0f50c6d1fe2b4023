package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/neuroscope/core/internal/metrics"
)

func TestInstrument(t *testing.T) {
	registry := metrics.NewRegistry(prometheus.NewRegistry())

	handler := Instrument(registry)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("expected status %d, got %d", http.StatusTeapot, w.Code)
	}

	count := testutil.ToFloat64(registry.HTTPRequestsTotal.WithLabelValues("GET", "/health", "418"))
	if count != 1.0 {
		t.Errorf("expected one recorded request, got %f", count)
	}
}

func TestInstrumentDefaultsToOK(t *testing.T) {
	registry := metrics.NewRegistry(prometheus.NewRegistry())

	handler := Instrument(registry)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	count := testutil.ToFloat64(registry.HTTPRequestsTotal.WithLabelValues("GET", "/", "200"))
	if count != 1.0 {
		t.Errorf("expected one recorded request, got %f", count)
	}
}
