package sdk

import (
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

type options struct {
	httpClient   *http.Client
	timeout      time.Duration
	maxAttempts  int
	initialDelay time.Duration
	tokens       oauth2.TokenSource
	userAgent    string
}

func defaultOptions() options {
	return options{
		httpClient:   http.DefaultClient,
		timeout:      30 * time.Second,
		maxAttempts:  3,
		initialDelay: 500 * time.Millisecond,
		userAgent:    "grindchain-go/" + Version,
	}
}

// Option configures the SDK client.
type Option func(*options)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithTimeout sets the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithRetry configures retry behaviour.
func WithRetry(maxAttempts int, initialDelay time.Duration) Option {
	return func(o *options) {
		o.maxAttempts = maxAttempts
		o.initialDelay = initialDelay
	}
}

// WithTokenSource sets the authentication context. Every request carries a
// bearer token drawn from the source. Without one, requests go out
// unauthenticated and the server decides what the caller may see.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(o *options) { o.tokens = ts }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}
