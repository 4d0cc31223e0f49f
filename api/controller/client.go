package controller

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/kenmoini/unifi-facts/internal/httpclient"
	"github.com/kenmoini/unifi-facts/internal/middleware"
	"github.com/kenmoini/unifi-facts/internal/ratelimit"
	"github.com/kenmoini/unifi-facts/observability"
)

const (
	// DefaultSite is the site every controller creates at install time.
	DefaultSite = "default"

	// DefaultTimeout is the default HTTP timeout per exchange.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the default requests per minute cap.
	DefaultRateLimit = 300

	// RateLimitDisabled turns the client-side rate cap off.
	RateLimitDisabled = -1

	userAgent = "unifi-facts"
)

// Client issues read-only fact queries against one controller. A
// Client is safe for concurrent use; every Query opens and closes its
// own controller session.
type Client struct {
	base     *url.URL
	username string
	password string
	site     string

	httpClient *httpclient.Client
	logger     observability.Logger
	metrics    observability.MetricsRecorder

	// now is the clock parameter resolution reads. Tests freeze it.
	now func() time.Time
}

// Compile-time check to ensure Client implements the FactsClient interface.
var _ FactsClient = (*Client)(nil)

// ClientConfig holds configuration for the controller client.
type ClientConfig struct {
	// BaseURL is the controller root, such as https://192.168.1.1:8443
	BaseURL string

	// Username and Password authenticate every session
	Username string
	Password string

	// Site scopes site-level queries (defaults to "default")
	Site string

	// InsecureSkipVerify disables TLS certificate verification for
	// controllers with self-signed certificates. Verification is on
	// unless this is set.
	InsecureSkipVerify bool

	// Timeout for HTTP requests (defaults to 30 seconds)
	Timeout time.Duration

	// RateLimitPerMinute caps requests client-side (defaults to 300,
	// RateLimitDisabled turns the cap off)
	RateLimitPerMinute int

	// HTTPClient is the HTTP client to use (optional)
	HTTPClient *http.Client

	// Logger for observability (optional, defaults to no-op)
	Logger observability.Logger

	// Metrics recorder for observability (optional, defaults to no-op)
	Metrics observability.MetricsRecorder
}

// New creates a controller client with default settings.
func New(baseURL, username, password string) (*Client, error) {
	return NewWithConfig(&ClientConfig{
		BaseURL:  baseURL,
		Username: username,
		Password: password,
	})
}

// NewWithConfig creates a controller client with custom configuration.
func NewWithConfig(cfg *ClientConfig) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if cfg.Username == "" {
		return nil, errors.New("username is required")
	}
	if cfg.Password == "" {
		return nil, errors.New("password is required")
	}

	// Set defaults
	if cfg.Site == "" {
		cfg.Site = DefaultSite
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RateLimitPerMinute == 0 {
		cfg.RateLimitPerMinute = DefaultRateLimit
	}

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base URL %q", cfg.BaseURL)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, errors.Newf("base URL %q must use http or https", cfg.BaseURL)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = observability.NoopLogger()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = observability.NoopMetricsRecorder()
	}

	mw := []httpclient.Middleware{
		middleware.Observability(logger, metrics),
		middleware.Headers(map[string]string{
			"Accept":     "application/json",
			"User-Agent": userAgent,
		}),
	}
	if cfg.RateLimitPerMinute != RateLimitDisabled {
		mw = append(mw, middleware.RateLimit(middleware.RateLimitConfig{
			Limiter: ratelimit.NewRateLimiter(cfg.RateLimitPerMinute),
			Logger:  logger,
			Metrics: metrics,
		}))
	}
	if cfg.InsecureSkipVerify {
		// Replaces the transport, so it must close the chain.
		mw = append(mw, middleware.TLSConfig(middleware.InsecureSkipVerify()))
	}

	var opts []httpclient.Option
	if cfg.HTTPClient != nil {
		opts = append(opts, httpclient.WithHTTPClient(cfg.HTTPClient))
	} else {
		opts = append(opts, httpclient.WithTimeout(cfg.Timeout))
	}
	opts = append(opts, httpclient.WithMiddleware(mw...))

	return &Client{
		base:       base,
		username:   cfg.Username,
		password:   cfg.Password,
		site:       cfg.Site,
		httpClient: httpclient.New(opts...),
		logger:     logger,
		metrics:    metrics,
		now:        time.Now,
	}, nil
}

// QueryRequest names a catalog query and carries its parameters.
type QueryRequest struct {
	// Name is a catalog query name, as listed by Queries.
	Name string
	// Params holds the optional parameters. The zero value resolves
	// every parameter to its default.
	Params QueryParams
}

// Query authenticates, runs the named query once, and returns the
// normalized result.
//
// Failures surface twice: the typed error carries the taxonomy for
// errors.As, and where the controller answered at all the QueryResult
// also comes back with IsError set and the raw body as payload. A nil
// error always means IsError is false.
func (c *Client) Query(ctx context.Context, req QueryRequest) (*QueryResult, error) {
	desc, err := Lookup(req.Name)
	if err != nil {
		c.metrics.RecordError("query", errorType(err))
		return nil, err
	}

	c.logger.Debug("running controller query",
		observability.Field{Key: "query", Value: desc.Name},
		observability.Field{Key: "site", Value: c.site},
	)

	sess, err := c.login(ctx)
	if err != nil {
		c.metrics.RecordError("login", errorType(err))
		var authErr *AuthenticationError
		if errors.As(err, &authErr) {
			return &QueryResult{IsError: true, Status: authErr.Status, Payload: authErr.Body}, err
		}
		return nil, err
	}
	defer c.logout(ctx, sess)

	status, body, err := c.execute(ctx, sess, c.endpointURL(desc, req.Params), resolveParams(desc, req.Params, c.now()))
	if err != nil {
		c.metrics.RecordError("query", errorType(err))
		return nil, err
	}

	result, err := classify(status, body)
	if err != nil {
		c.metrics.RecordError("query", errorType(err))
	}
	return result, err
}

// CloseIdleConnections closes idle connections in the underlying HTTP
// client. One-shot callers use it before exit.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}
