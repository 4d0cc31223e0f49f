// Package testutil provides common testing utilities and helpers.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Canned controller envelopes for mock responses.
const (
	EnvelopeOK        = `{"meta":{"rc":"ok"},"data":[]}`
	EnvelopeLoginFail = `{"meta":{"rc":"error","msg":"api.err.Invalid"},"data":[]}`
)

// MockControllerConfig shapes the answers a MockController gives.
// Zero-value fields fall back to a successful login, an empty ok data
// envelope for queries, and a clean logout.
type MockControllerConfig struct {
	// Username and Password are the credentials the mock accepts.
	// Default: admin/secret.
	Username string
	Password string

	// LoginStatus and LoginBody override the login answer for accepted
	// credentials. Rejected credentials always get 400 with
	// EnvelopeLoginFail.
	LoginStatus int
	LoginBody   string

	// QueryPath, when set, is asserted against every query request.
	QueryPath string

	// QueryStatus and QueryBody form the query answer.
	QueryStatus int
	QueryBody   string

	// LogoutStatus overrides the logout answer.
	LogoutStatus int
}

// QueryRecord captures one query request the mock served.
type QueryRecord struct {
	Path    string
	Query   url.Values
	Referer string
	Cookies []*http.Cookie
}

// MockController simulates the classic controller surface a facts
// client touches: cookie login, site queries, and logout. It issues a
// session cookie on login and requires it on every later request.
type MockController struct {
	Server *httptest.Server

	t   *testing.T
	cfg MockControllerConfig

	mu          sync.Mutex
	loginCalls  int
	logoutCalls int
	queryCalls  int
	lastQuery   QueryRecord
}

// sessionCookie is the cookie the mock issues and checks.
const sessionCookie = "unifises"

// NewMockController starts a mock controller. The server is shut down
// with the test.
func NewMockController(t *testing.T, cfg MockControllerConfig) *MockController {
	t.Helper()

	if cfg.Username == "" {
		cfg.Username = "admin"
	}
	if cfg.Password == "" {
		cfg.Password = "secret"
	}
	if cfg.LoginStatus == 0 {
		cfg.LoginStatus = http.StatusOK
	}
	if cfg.LoginBody == "" {
		cfg.LoginBody = EnvelopeOK
	}
	if cfg.QueryStatus == 0 {
		cfg.QueryStatus = http.StatusOK
	}
	if cfg.QueryBody == "" {
		cfg.QueryBody = EnvelopeOK
	}
	if cfg.LogoutStatus == 0 {
		cfg.LogoutStatus = http.StatusOK
	}

	mc := &MockController{t: t, cfg: cfg}
	mc.Server = httptest.NewServer(http.HandlerFunc(mc.handle))
	t.Cleanup(mc.Server.Close)
	return mc
}

func (mc *MockController) handle(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/api/login":
		mc.handleLogin(w, r)
	case r.Method == http.MethodGet && r.URL.Path == "/logout":
		mc.handleLogout(w, r)
	default:
		mc.handleQuery(w, r)
	}
}

func (mc *MockController) handleLogin(w http.ResponseWriter, r *http.Request) {
	mc.mu.Lock()
	mc.loginCalls++
	mc.mu.Unlock()

	body, err := io.ReadAll(r.Body)
	require.NoError(mc.t, err, "Failed to read login body")

	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	require.NoError(mc.t, json.Unmarshal(body, &creds), "Login body should be JSON credentials")

	w.Header().Set("Content-Type", "application/json")

	if creds.Username != mc.cfg.Username || creds.Password != mc.cfg.Password {
		w.WriteHeader(http.StatusBadRequest)
		_, werr := w.Write([]byte(EnvelopeLoginFail))
		require.NoError(mc.t, werr, "Failed to write login response")
		return
	}

	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "mock-session", Path: "/"})
	http.SetCookie(w, &http.Cookie{Name: "csrf_token", Value: "mock-csrf", Path: "/"})
	w.WriteHeader(mc.cfg.LoginStatus)
	_, werr := w.Write([]byte(mc.cfg.LoginBody))
	require.NoError(mc.t, werr, "Failed to write login response")
}

func (mc *MockController) handleLogout(w http.ResponseWriter, r *http.Request) {
	mc.mu.Lock()
	mc.logoutCalls++
	mc.mu.Unlock()

	mc.assertSession(r)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(mc.cfg.LogoutStatus)
	_, err := w.Write([]byte(EnvelopeOK))
	require.NoError(mc.t, err, "Failed to write logout response")
}

func (mc *MockController) handleQuery(w http.ResponseWriter, r *http.Request) {
	mc.mu.Lock()
	mc.queryCalls++
	mc.lastQuery = QueryRecord{
		Path:    r.URL.Path,
		Query:   r.URL.Query(),
		Referer: r.Header.Get("Referer"),
		Cookies: r.Cookies(),
	}
	mc.mu.Unlock()

	mc.assertSession(r)
	if mc.cfg.QueryPath != "" {
		assert.Equal(mc.t, mc.cfg.QueryPath, r.URL.Path, "Query path should match expected")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(mc.cfg.QueryStatus)
	_, err := w.Write([]byte(mc.cfg.QueryBody))
	require.NoError(mc.t, err, "Failed to write query response")
}

// assertSession checks that the request carries the login cookie and
// the referer the controller expects from a live session.
func (mc *MockController) assertSession(r *http.Request) {
	cookie, err := r.Cookie(sessionCookie)
	if assert.NoError(mc.t, err, "Request should carry the session cookie") {
		assert.Equal(mc.t, "mock-session", cookie.Value, "Session cookie should round-trip unchanged")
	}
	assert.Equal(mc.t, mc.Server.URL+"/login", r.Header.Get("Referer"), "Referer should point at the login page")
}

// LoginCalls reports how many logins the mock served.
func (mc *MockController) LoginCalls() int {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return mc.loginCalls
}

// LogoutCalls reports how many logouts the mock served.
func (mc *MockController) LogoutCalls() int {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return mc.logoutCalls
}

// QueryCalls reports how many queries the mock served.
func (mc *MockController) QueryCalls() int {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return mc.queryCalls
}

// LastQuery returns the most recent query request the mock served.
func (mc *MockController) LastQuery() QueryRecord {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return mc.lastQuery
}
