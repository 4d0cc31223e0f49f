package controller

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
	json "github.com/goccy/go-json"

	"github.com/kenmoini/unifi-facts/internal/response"
	"github.com/kenmoini/unifi-facts/observability"
)

// session holds the cookies the controller issued for one login plus
// the referer the controller expects on in-session requests. Sessions
// live for a single Query call and are never stored on the Client.
type session struct {
	cookies []*http.Cookie
	referer string
}

// apply attaches the session cookies and referer to req.
func (s *session) apply(req *http.Request) {
	for _, cookie := range s.cookies {
		req.AddCookie(cookie)
	}
	req.Header.Set("Referer", s.referer)
}

// loginRequest is the credential payload for POST /api/login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login opens a controller session and returns the cookies it issued.
// Success requires both HTTP 200 and an ok response envelope; anything
// else is an AuthenticationError carrying the controller's answer.
func (c *Client) login(ctx context.Context) (*session, error) {
	payload, err := json.Marshal(loginRequest{Username: c.username, Password: c.password})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode login request")
	}

	referer := c.base.JoinPath("login").String()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base.JoinPath("api", "login").String(), bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build login request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", referer)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{cause: errors.Wrap(err, "login request failed")}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Status: resp.StatusCode, cause: errors.Wrap(err, "failed to read login response")}
	}

	if resp.StatusCode != http.StatusOK || !response.Parse(body).OK() {
		c.logger.Warn("controller rejected login",
			observability.Field{Key: "status", Value: resp.StatusCode},
		)
		return nil, &AuthenticationError{Status: resp.StatusCode, Body: string(body)}
	}

	c.logger.Debug("controller session opened",
		observability.Field{Key: "cookies", Value: len(resp.Cookies())},
	)

	return &session{cookies: resp.Cookies(), referer: referer}, nil
}

// logout closes the session on a best-effort basis. The query result
// is final by the time logout runs, so failures are logged at debug
// level and dropped.
func (c *Client) logout(ctx context.Context, sess *session) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base.JoinPath("logout").String(), http.NoBody)
	if err != nil {
		c.logger.Debug("failed to build logout request",
			observability.Field{Key: "error", Value: err.Error()},
		)
		return
	}
	sess.apply(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("controller logout failed",
			observability.Field{Key: "error", Value: err.Error()},
		)
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
}
