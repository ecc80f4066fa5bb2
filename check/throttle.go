package check

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/linkscan"
	"golang.org/x/net/idna"
	"golang.org/x/time/rate"
)

var _ linkscan.HostLimiter = (*HostThrottle)(nil)

// HostThrottle enforces a minimum delay between requests to the same host.
// It keeps one token bucket per host, so requests to different hosts never
// wait on each other.
type HostThrottle struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	delay    time.Duration
}

// NewHostThrottle creates a HostThrottle with the given per-host delay.
// Each host gets its own limiter with a burst of 1 (no bursting allowed).
// A delay of zero disables throttling.
func NewHostThrottle(delay time.Duration) *HostThrottle {
	return &HostThrottle{
		limiters: make(map[string]*rate.Limiter),
		delay:    delay,
	}
}

// Wait blocks until the delay since the previous request to host has passed.
// Returns an error if the context is canceled before the wait completes.
func (t *HostThrottle) Wait(ctx context.Context, host string) error {
	if t.delay <= 0 {
		return nil
	}

	t.mu.Lock()
	limiter, ok := t.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(t.delay), 1)
		t.limiters[host] = limiter
	}
	t.mu.Unlock()

	return limiter.Wait(ctx)
}

// Host returns the lowercase ASCII (punycode) host of rawURL, used as the
// throttling key. It returns an empty string if rawURL cannot be parsed.
func Host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	if ascii, err := idna.Lookup.ToASCII(host); err == nil {
		return ascii
	}
	return host
}
