package observability

// Logger receives the structured log events the facts client emits:
// query dispatch and session lifecycle at Debug, rejected logins and
// slow responses at Warn, transport failures at Error. Adapters for
// zerolog ship with this package; any structured logger fits.
type Logger interface {
	// Debug logs routine client activity, such as request dispatch.
	Debug(msg string, fields ...Field)

	// Info logs notable but healthy events.
	Info(msg string, fields ...Field)

	// Warn logs degraded outcomes the run can continue past.
	Warn(msg string, fields ...Field)

	// Error logs failures that end the current query.
	Error(msg string, fields ...Field)

	// With returns a logger whose every event carries fields, used to
	// scope a logger to one query or HTTP exchange.
	With(fields ...Field) Logger
}

// Field is one structured log attribute. Typical keys are query, site,
// method, url, status, and duration_ms.
type Field struct {
	Key   string
	Value any
}

// noopLogger drops every event. It backs the default configuration so
// callers never nil-check the logger.
type noopLogger struct{}

var _ Logger = noopLogger{}

// NoopLogger returns the logger used when a configuration supplies
// none.
//
//nolint:ireturn // Factory function must return interface for dependency injection pattern
func NoopLogger() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(string, ...Field) {}
func (noopLogger) Info(string, ...Field)  {}
func (noopLogger) Warn(string, ...Field)  {}
func (noopLogger) Error(string, ...Field) {}

//nolint:ireturn // Method must return interface to satisfy Logger interface
func (l noopLogger) With(...Field) Logger { return l }
