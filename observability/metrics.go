package observability

import "time"

// MetricsRecorder receives the measurements the facts client takes
// during a run. Label values are bounded: paths arrive normalized
// (site names, MACs, and object ids replaced with :site, :mac, :id),
// operations are login, query, or http_request, and error types come
// from the client's error taxonomy (authentication, unsupported_query,
// api, transport) plus NetworkError at the HTTP layer.
type MetricsRecorder interface {
	// RecordHTTPRequest records one completed HTTP exchange.
	RecordHTTPRequest(method, path string, statusCode int, duration time.Duration)

	// RecordRateLimit records time spent waiting on the client-side
	// rate cap before the request for endpoint went out.
	RecordRateLimit(endpoint string, wait time.Duration)

	// RecordError counts one failure of operation by error type.
	RecordError(operation, errorType string)
}

// noopMetricsRecorder drops every measurement. It backs the default
// configuration so callers never nil-check the recorder.
type noopMetricsRecorder struct{}

var _ MetricsRecorder = noopMetricsRecorder{}

// NoopMetricsRecorder returns the recorder used when a configuration
// supplies none.
func NoopMetricsRecorder() MetricsRecorder {
	return noopMetricsRecorder{}
}

func (noopMetricsRecorder) RecordHTTPRequest(string, string, int, time.Duration) {}
func (noopMetricsRecorder) RecordRateLimit(string, time.Duration)                {}
func (noopMetricsRecorder) RecordError(string, string)                           {}
