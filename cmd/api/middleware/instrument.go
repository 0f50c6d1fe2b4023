package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/neuroscope/core/internal/metrics"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

// Instrument records request counts and latencies per method and path.
func Instrument(registry *metrics.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			started := time.Now()

			next.ServeHTTP(recorder, r)

			registry.RecordHTTPRequest(r.Method, r.URL.Path, strconv.Itoa(recorder.status), time.Since(started))
		})
	}
}
