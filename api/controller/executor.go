package controller

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/cockroachdb/errors"
)

// endpointURL builds the request URL for desc. Site-scoped queries go
// under /api/s/{site}/, global ones directly under /api/. Descriptors
// with an identifier the caller supplied get it as a trailing segment.
func (c *Client) endpointURL(desc Descriptor, p QueryParams) *url.URL {
	segments := []string{"api"}
	if !desc.Global {
		segments = append(segments, "s", c.site)
	}
	segments = append(segments, desc.Path)
	if id := desc.identifier(p); id != "" {
		segments = append(segments, id)
	}
	return c.base.JoinPath(segments...)
}

// execute runs one GET against endpoint inside sess and returns the
// HTTP status and raw body.
func (c *Client) execute(ctx context.Context, sess *session, endpoint *url.URL, params url.Values) (int, []byte, error) {
	if len(params) > 0 {
		endpoint.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), http.NoBody)
	if err != nil {
		return 0, nil, errors.Wrap(err, "failed to build query request")
	}
	sess.apply(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &TransportError{cause: errors.Wrap(err, "query request failed")}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &TransportError{Status: resp.StatusCode, cause: errors.Wrap(err, "failed to read query response")}
	}

	return resp.StatusCode, body, nil
}
