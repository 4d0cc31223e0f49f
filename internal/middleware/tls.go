package middleware

import (
	"crypto/tls"
	"net/http"
)

// TLSConfig returns a middleware that installs the given TLS configuration.
// Unlike the other middleware it replaces the transport instead of wrapping
// it, so it has to be the last middleware applied. Certificate verification
// stays on unless the supplied config turns it off.
func TLSConfig(config *tls.Config) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		transport, ok := ownTransport(next)
		if !ok {
			return next
		}

		transport.TLSClientConfig = config

		return transport
	}
}

// ownTransport returns a private copy of next, falling back to the
// process default when next is not an *http.Transport. The copy keeps
// connection pool settings without sharing them.
func ownTransport(next http.RoundTripper) (*http.Transport, bool) {
	transport, ok := next.(*http.Transport)
	if !ok {
		transport, ok = http.DefaultTransport.(*http.Transport)
	}
	if !ok {
		return nil, false
	}

	return transport.Clone(), true
}

// InsecureSkipVerify returns a TLS config that skips certificate verification.
// Controllers commonly ship with self-signed certificates; this is the opt-in
// for talking to them over a trusted network path.
func InsecureSkipVerify() *tls.Config {
	return &tls.Config{
		InsecureSkipVerify: true, //nolint:gosec // Opt-in for self-signed controller certificates
	}
}
