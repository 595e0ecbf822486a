package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberService/pkg/metrics"
)

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m, "test"))
	r.HandleFunc("/appointments/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/appointments/123", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/appointments/{id}", "404")))
}
