package httpclient

import (
	"net/http"
	"time"
)

// settings collects what the options choose before New assembles the
// client.
type settings struct {
	client     *http.Client
	timeout    time.Duration
	middleware []Middleware
}

// Option configures the client New assembles.
type Option func(*settings)

// WithHTTPClient supplies the base http.Client. New works on a copy,
// keeping the supplied value untouched while middleware wraps whatever
// transport it carries. Nil falls back to the default client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *settings) {
		s.client = client
	}
}

// WithTimeout bounds each whole exchange: connection, redirects, body
// read. It applies to the default client only; a client supplied via
// WithHTTPClient keeps its own timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.timeout = timeout
	}
}

// WithMiddleware appends middleware to the chain. The first entry
// becomes the outermost layer:
//
//	WithMiddleware(A, B, C) wraps the transport as A(B(C(transport)))
//
// so observability sits first and sees every request, while transport
// replacements (TLS policy) go last.
func WithMiddleware(middleware ...Middleware) Option {
	return func(s *settings) {
		s.middleware = append(s.middleware, middleware...)
	}
}
