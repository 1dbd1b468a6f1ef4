package middleware

import (
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "employees_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "employees_login_attempts_total",
			Help: "Total login attempts by outcome",
		},
		[]string{"success"},
	)
)

// Metrics records request duration labelled by route template, so ids do not
// inflate label cardinality.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		httpRequestDuration.
			WithLabelValues(r.Method, routeTemplate(r), strconv.Itoa(m.Code)).
			Observe(m.Duration.Seconds())
	})
}

// RecordLoginAttempt counts a login by outcome.
func RecordLoginAttempt(success bool) {
	loginAttempts.WithLabelValues(strconv.FormatBool(success)).Inc()
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
