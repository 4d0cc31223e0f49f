package observability

import (
	"github.com/rs/zerolog"
)

// zerologLogger adapts a zerolog.Logger to the Logger interface.
type zerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger returns a Logger backed by the given zerolog.Logger.
// The CLI uses this adapter so library log output shares the process-wide
// zerolog configuration (level, output, timestamps).
//
//nolint:ireturn // Factory function must return interface for dependency injection pattern
func NewZerologLogger(logger zerolog.Logger) Logger {
	return &zerologLogger{logger: logger}
}

func (l *zerologLogger) Debug(msg string, fields ...Field) {
	l.logger.Debug().Fields(fieldMap(fields)).Msg(msg)
}

func (l *zerologLogger) Info(msg string, fields ...Field) {
	l.logger.Info().Fields(fieldMap(fields)).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, fields ...Field) {
	l.logger.Warn().Fields(fieldMap(fields)).Msg(msg)
}

func (l *zerologLogger) Error(msg string, fields ...Field) {
	l.logger.Error().Fields(fieldMap(fields)).Msg(msg)
}

//nolint:ireturn // Method must return interface to satisfy Logger interface
func (l *zerologLogger) With(fields ...Field) Logger {
	return &zerologLogger{logger: l.logger.With().Fields(fieldMap(fields)).Logger()}
}

func fieldMap(fields []Field) map[string]any {
	if len(fields) == 0 {
		return nil
	}
	m := make(map[string]any, len(fields))
	for _, f := range fields {
		m[f.Key] = f.Value
	}
	return m
}
