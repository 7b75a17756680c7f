package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"
)

// NewRateLimiter allows each client IP at most perMinute requests per
// minute. Excess requests get 429 with a Retry-After header. A perMinute
// of zero or less disables limiting.
//
// Wire it after chimiddleware.RealIP so proxied clients are told apart.
func NewRateLimiter(perMinute int) func(http.Handler) http.Handler {
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		perMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(rateLimitExceeded),
	)
}

func rateLimitExceeded(w http.ResponseWriter, _ *http.Request) {
	// httprate does not expose the window reset, so advertise the full window.
	w.Header().Set("Retry-After", strconv.Itoa(int(time.Minute.Seconds())))
	writeError(w, http.StatusTooManyRequests, "rate_limited", "rate limit exceeded, try again later")
}
