package middleware

import (
	"maps"
	"net/http"
)

// Headers returns a middleware that sets static headers on all requests.
// The facts client uses it for Accept and User-Agent; per-session headers
// (cookies, referer) are attached by the request executor instead, since
// they change between invocations.
func Headers(headers map[string]string) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return &headersTransport{
			next:    next,
			headers: headers,
		}
	}
}

type headersTransport struct {
	next    http.RoundTripper
	headers map[string]string
}

func (t *headersTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone request to avoid modifying original
	req = cloneRequest(req)

	for name, value := range t.headers {
		req.Header.Set(name, value)
	}

	//nolint:wrapcheck // Middleware passes through errors from next handler in chain
	return t.next.RoundTrip(req)
}

// cloneRequest creates a shallow copy of the request with a cloned header map.
func cloneRequest(req *http.Request) *http.Request {
	r := new(http.Request)
	*r = *req
	r.Header = make(http.Header, len(req.Header))
	maps.Copy(r.Header, req.Header)

	return r
}
