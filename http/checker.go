package http

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/fwojciec/linkscan"
)

// Ensure Checker implements linkscan.Validator at compile time.
var _ linkscan.Validator = (*Checker)(nil)

const acceptHeader = "text/html, text/markdown"

// maxDrain bounds how much of a GET body is read before the connection is
// returned to the pool.
const maxDrain = 64 << 10

// Checker validates http and https links.
type Checker struct {
	client *http.Client
	logger *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger used for retry diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

// NewChecker creates a Checker that sends every request through client.
func NewChecker(client *http.Client, opts ...Option) *Checker {
	c := &Checker{
		client: client,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// response is what remains of an HTTP response once its body is closed.
type response struct {
	status   int
	finalURL *url.URL
}

// Validate checks target with a HEAD request, falling back to GET.
//
// A transport error on HEAD is retried once with GET and the GET response is
// final. A non-success, non-redirect HEAD status is retried once with GET.
// Success on a different final URL is a warning: the link was redirected.
func (c *Checker) Validate(ctx context.Context, target string) linkscan.Outcome {
	u, err := url.Parse(target)
	if err != nil {
		return requestFailed(err)
	}
	u.Fragment = ""
	u.RawFragment = ""

	head, err := c.do(ctx, http.MethodHead, u)
	if err != nil {
		c.logger.Debug("head request failed, retrying with get", "url", target, "err", err)
		get, err := c.do(ctx, http.MethodGet, u)
		if err != nil {
			return requestFailed(err)
		}
		switch {
		case isSuccess(get.status):
			return redirectOutcome(u, get)
		case isRedirection(get.status):
			return linkscan.Warn(statusLine(get.status))
		}
		return linkscan.Fail(statusLine(get.status))
	}

	switch {
	case isSuccess(head.status):
		return redirectOutcome(u, head)
	case isRedirection(head.status):
		// Only reached after the client gave up following redirects.
		return linkscan.Warn(statusLine(head.status))
	}

	c.logger.Debug("unexpected status, retrying with get", "url", target, "status", head.status)
	get, err := c.do(ctx, http.MethodGet, u)
	if err != nil {
		return requestFailed(err)
	}
	if isSuccess(get.status) {
		if sameURL(u, get.finalURL) {
			return linkscan.OK()
		}
		return linkscan.Warn(statusLine(get.status))
	}
	return linkscan.Fail(statusLine(get.status))
}

func (c *Checker) do(ctx context.Context, method string, u *url.URL) (*response, error) {
	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))

	final := *resp.Request.URL
	final.Fragment = ""
	final.RawFragment = ""
	return &response{status: resp.StatusCode, finalURL: &final}, nil
}

func redirectOutcome(requested *url.URL, resp *response) linkscan.Outcome {
	if sameURL(requested, resp.finalURL) {
		return linkscan.OK()
	}
	return linkscan.Warn("Request was redirected to " + resp.finalURL.String())
}

func sameURL(a, b *url.URL) bool {
	return a.String() == b.String()
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func isRedirection(status int) bool {
	return status >= 300 && status < 400
}

func requestFailed(err error) linkscan.Outcome {
	return linkscan.Fail(fmt.Sprintf("Http(s) request failed: %v", err))
}

// statusLine formats a status as "404 - Not Found".
func statusLine(status int) string {
	reason := http.StatusText(status)
	if reason == "" {
		reason = "Unknown reason"
	}
	return fmt.Sprintf("%d - %s", status, reason)
}
