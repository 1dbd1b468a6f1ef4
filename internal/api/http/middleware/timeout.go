package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"

	"github.com/nicodelloro-arg/Employees/internal/api/http/response"
)

// NewTimeout bounds handler execution. A zero duration disables it.
func NewTimeout(d time.Duration) func(next http.Handler) http.Handler {
	if d <= 0 {
		return noopMiddleware
	}

	body, _ := json.Marshal(response.Message{Message: "Request timed out"})

	return func(next http.Handler) http.Handler {
		timeout := http.TimeoutHandler(next, d, string(body))

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			timeout.ServeHTTP(jsonOnUnavailable(w), r)
		})
	}
}

// jsonOnUnavailable marks an untyped 503 as JSON, which is how
// http.TimeoutHandler reports an expired request.
func jsonOnUnavailable(w http.ResponseWriter) http.ResponseWriter {
	return httpsnoop.Wrap(w, httpsnoop.Hooks{
		WriteHeader: func(next httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
			return func(code int) {
				if code == http.StatusServiceUnavailable && w.Header().Get("Content-Type") == "" {
					w.Header().Set("Content-Type", "application/json; charset=utf-8")
				}
				next(code)
			}
		},
	})
}
