// Package httpclient provides the HTTP client the facts client sends its
// requests through. Cross-cutting transport behavior (static headers, TLS
// policy, request logging, rate limiting) composes as middleware around a
// single base client instead of being baked into request code.
package httpclient

import (
	"net/http"
	"time"
)

// Middleware wraps an http.RoundTripper to add behavior.
type Middleware func(http.RoundTripper) http.RoundTripper

const defaultTimeout = 30 * time.Second

// Client executes HTTP requests through a middleware chain.
type Client struct {
	hc *http.Client
}

// New assembles a client from the given options. Without options it is a
// plain http.Client with a 30 second timeout.
func New(opts ...Option) *Client {
	s := settings{timeout: defaultTimeout}
	for _, opt := range opts {
		opt(&s)
	}

	var hc *http.Client
	if s.client != nil {
		// Work on a copy so installing the chain never rewires the
		// caller's client.
		cp := *s.client
		hc = &cp
	} else {
		hc = &http.Client{Timeout: s.timeout}
	}

	if len(s.middleware) > 0 {
		hc.Transport = chain(hc.Transport, s.middleware)
	}

	return &Client{hc: hc}
}

// chain wraps base with the middleware slice. The slice is applied in
// reverse so the first entry ends up outermost: the request passes through
// middleware[0] first and the base transport last.
func chain(base http.RoundTripper, middleware []Middleware) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}

	for i := len(middleware) - 1; i >= 0; i-- {
		base = middleware[i](base)
	}

	return base
}

// Do executes an HTTP request through the middleware chain.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.hc.Do(req)
}

// CloseIdleConnections releases idle connections held by the underlying
// transport. Short-lived callers (one query per process) use it on exit.
func (c *Client) CloseIdleConnections() {
	c.hc.CloseIdleConnections()
}
