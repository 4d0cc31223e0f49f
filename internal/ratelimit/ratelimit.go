// Package ratelimit builds the token bucket limiters that cap request
// rates against a controller.
package ratelimit

import "golang.org/x/time/rate"

// NewRateLimiter returns a limiter that admits requestsPerMinute
// requests per minute. The bucket refills continuously at one sixtieth
// of that per second and holds a full minute of burst, so a fresh
// limiter never throttles a short facts run.
//
// A non-positive requestsPerMinute disables throttling: the returned
// limiter permits every request immediately.
func NewRateLimiter(requestsPerMinute int) *rate.Limiter {
	if requestsPerMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}

	perSecond := rate.Limit(float64(requestsPerMinute) / 60.0)

	return rate.NewLimiter(perSecond, requestsPerMinute)
}
