package observability_test

import (
	"testing"
	"time"

	"github.com/kenmoini/unifi-facts/observability"
)

func TestNoopMetricsRecorder(t *testing.T) {
	t.Parallel()

	recorder := observability.NoopMetricsRecorder()

	// The default recorder has to absorb the full recording surface
	// without panicking.
	recorder.RecordHTTPRequest("POST", "/api/login", 200, 80*time.Millisecond)
	recorder.RecordHTTPRequest("GET", "/api/s/:site/stat/device/:mac", 200, 120*time.Millisecond)
	recorder.RecordRateLimit("/api/s/:site/stat/sta", 15*time.Millisecond)
	recorder.RecordError("query", "transport")
	recorder.RecordError("login", "authentication")
	recorder.RecordError("http_request", "NetworkError")
}
