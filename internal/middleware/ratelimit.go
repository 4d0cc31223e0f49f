package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/time/rate"

	"github.com/kenmoini/unifi-facts/observability"
)

// Waits shorter than this are noise from the token bucket bookkeeping and
// are not reported.
const minReportedWait = 10 * time.Millisecond

// RateLimitConfig configures the rate limit middleware.
type RateLimitConfig struct {
	Limiter *rate.Limiter
	Logger  observability.Logger
	Metrics observability.MetricsRecorder
}

// RateLimit returns a middleware that throttles outgoing requests through a
// token bucket. Controllers often run on modest hardware; the limiter keeps
// repeated fact gathering from starving the device. A nil Limiter disables
// throttling.
func RateLimit(cfg RateLimitConfig) func(http.RoundTripper) http.RoundTripper {
	if cfg.Logger == nil {
		cfg.Logger = observability.NoopLogger()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = observability.NoopMetricsRecorder()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return &throttledTransport{
			next:    next,
			limiter: cfg.Limiter,
			logger:  cfg.Logger,
			metrics: cfg.Metrics,
		}
	}
}

type throttledTransport struct {
	next    http.RoundTripper
	limiter *rate.Limiter
	logger  observability.Logger
	metrics observability.MetricsRecorder
}

func (t *throttledTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.limiter != nil {
		if err := t.waitForToken(req.Context(), req.URL.Path); err != nil {
			return nil, err
		}
	}

	return t.next.RoundTrip(req)
}

// waitForToken blocks until the limiter admits the request or the context
// ends. Noticeable waits are logged and recorded.
func (t *throttledTransport) waitForToken(ctx context.Context, path string) error {
	start := time.Now()

	if err := t.limiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "rate limit wait aborted")
	}

	if waited := time.Since(start); waited >= minReportedWait {
		t.logger.Debug("rate limit delay",
			observability.Field{Key: "delay", Value: waited},
			observability.Field{Key: "path", Value: path},
		)
		t.metrics.RecordRateLimit(path, waited)
	}

	return nil
}
