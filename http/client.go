// Package http validates web links with HEAD/GET requests over a shared,
// connection-pooled client.
package http

import (
	"net/http"
	"time"
)

// DefaultTimeout is the default timeout for a single HTTP request.
const DefaultTimeout = 30 * time.Second

// DefaultMaxRedirects is the number of redirects followed before the last
// 3xx response is returned as is.
const DefaultMaxRedirects = 10

// UserAgent identifies the checker to remote hosts.
const UserAgent = "linkscan (github.com/fwojciec/linkscan)"

type clientOptions struct {
	timeout      time.Duration
	maxRedirects int
	transport    http.RoundTripper
}

// ClientOption configures NewClient.
type ClientOption func(*clientOptions)

// WithTimeout sets the timeout for a single request.
// Defaults to DefaultTimeout (30s) if not specified.
func WithTimeout(d time.Duration) ClientOption {
	return func(o *clientOptions) {
		o.timeout = d
	}
}

// WithMaxRedirects sets how many redirects are followed automatically.
func WithMaxRedirects(n int) ClientOption {
	return func(o *clientOptions) {
		o.maxRedirects = n
	}
}

// WithTransport replaces the default transport.
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(o *clientOptions) {
		o.transport = rt
	}
}

// NewClient builds the client shared by every HTTP check of a run.
// The transport negotiates gzip compression and pools connections; it is
// safe for concurrent use.
func NewClient(opts ...ClientOption) *http.Client {
	o := clientOptions{
		timeout:      DefaultTimeout,
		maxRedirects: DefaultMaxRedirects,
	}
	for _, opt := range opts {
		opt(&o)
	}

	transport := o.transport
	if transport == nil {
		transport = http.DefaultTransport.(*http.Transport).Clone()
	}

	maxRedirects := o.maxRedirects
	return &http.Client{
		Timeout:   o.timeout,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}
}
