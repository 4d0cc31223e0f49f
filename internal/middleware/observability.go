package middleware

import (
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/kenmoini/unifi-facts/observability"
)

// Observability returns a middleware that logs every request and feeds the
// metrics recorder. Metrics paths are normalized so site names and device
// identifiers do not blow up label cardinality.
func Observability(logger observability.Logger, metrics observability.MetricsRecorder) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		t := &instrumentedTransport{next: next, logger: logger, metrics: metrics}
		if t.logger == nil {
			t.logger = observability.NoopLogger()
		}
		if t.metrics == nil {
			t.metrics = observability.NoopMetricsRecorder()
		}

		return t
	}
}

type instrumentedTransport struct {
	next    http.RoundTripper
	logger  observability.Logger
	metrics observability.MetricsRecorder
}

func (t *instrumentedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	logger := t.logger.With(
		observability.Field{Key: "method", Value: req.Method},
		observability.Field{Key: "url", Value: req.URL.String()},
	)

	logger.Debug("http request started")
	start := time.Now()

	resp, err := t.next.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		logger.Error("http request failed",
			observability.Field{Key: "duration", Value: duration},
			observability.Field{Key: "error", Value: err.Error()},
		)
		t.metrics.RecordError("http_request", "NetworkError")

		//nolint:wrapcheck // Logs the error but passes it through unchanged
		return nil, err
	}

	statusField := observability.Field{Key: "status", Value: resp.StatusCode}
	durationField := observability.Field{Key: "duration", Value: duration}
	if resp.StatusCode >= http.StatusBadRequest {
		logger.Warn("http request completed with error", statusField, durationField)
	} else {
		logger.Debug("http request completed", statusField, durationField)
	}

	t.metrics.RecordHTTPRequest(req.Method, normalizePath(req.URL.Path), resp.StatusCode, duration)

	return resp, nil
}

var (
	// identifierPattern matches the two identifier shapes that appear as
	// path segments: colon-separated MAC addresses and 24-hex ObjectIDs.
	// One combined pattern keeps the replacement to a single pass.
	identifierPattern = regexp.MustCompile(`[0-9a-fA-F]{2}(?::[0-9a-fA-F]{2}){5}|[0-9a-f]{24}`)

	// sitePattern matches the site segment in classic API paths:
	// /api/s/{name}/ → /api/s/:site/.
	sitePattern = regexp.MustCompile(`^/api/s/[^/]+(/|$)`)

	// pathCache holds already normalized paths. A facts run hits a small
	// set of endpoints over and over, so nearly every lookup after the
	// first is a hit and the regexes run once per distinct path.
	pathCache sync.Map
)

// normalizePath replaces dynamic path segments (site names, MAC addresses,
// ObjectIDs) with placeholders to keep metrics labels bounded.
//
// Examples:
//   - /api/s/default/stat/sta/aa:bb:cc:dd:ee:ff → /api/s/:site/stat/sta/:mac
//   - /api/s/default/rest/wlanconf/5c2e8a7f9d3b4a0011223344 → /api/s/:site/rest/wlanconf/:id
//   - /api/stat/sites → /api/stat/sites
func normalizePath(path string) string {
	if cached, ok := pathCache.Load(path); ok {
		//nolint:forcetypeassert // Only strings go into the cache
		return cached.(string)
	}

	normalized := anonymizePath(path)
	pathCache.Store(path, normalized)

	return normalized
}

func anonymizePath(path string) string {
	// MACs carry colons and ObjectIDs never do, so the match content
	// picks the placeholder.
	normalized := identifierPattern.ReplaceAllStringFunc(path, func(match string) string {
		if strings.Contains(match, ":") {
			return ":mac"
		}

		return ":id"
	})

	return sitePattern.ReplaceAllString(normalized, "/api/s/:site$1")
}
