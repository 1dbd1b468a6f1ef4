package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ulule/limiter/v3"
	stdlib "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/nicodelloro-arg/Employees/internal/api/http/response"
)

// NewIPRateLimiter returns middleware that limits by client IP using an
// in-memory store. rateFormatted: "10-M", "1000-H", "50-S". Empty or "off" disables.
func NewIPRateLimiter(rateFormatted string) (func(next http.Handler) http.Handler, error) {
	if rateFormatted == "" || strings.EqualFold(rateFormatted, "off") {
		return noopMiddleware, nil
	}

	rate, err := limiter.NewRateFromFormatted(rateFormatted)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rate %q: %w", rateFormatted, err)
	}

	instance := limiter.New(memory.NewStore(), rate)
	return stdlib.NewMiddleware(instance,
		stdlib.WithLimitReachedHandler(func(w http.ResponseWriter, _ *http.Request) {
			response.Error(w, http.StatusTooManyRequests, "Too many requests")
		}),
	).Handler, nil
}

func noopMiddleware(next http.Handler) http.Handler {
	return next
}
