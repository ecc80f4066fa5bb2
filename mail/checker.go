// Package mail validates mailto: link targets syntactically. No network
// lookups are made.
package mail

import (
	"context"
	"net/mail"
	"net/url"
	"strings"

	"github.com/fwojciec/linkscan"
)

// Ensure Checker implements linkscan.Validator at compile time.
var _ linkscan.Validator = (*Checker)(nil)

// Checker validates the recipients of mailto: targets.
type Checker struct{}

// NewChecker creates a Checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Validate reports OK when every recipient of target is a bare
// local@domain address.
func (c *Checker) Validate(ctx context.Context, target string) linkscan.Outcome {
	for _, addr := range Recipients(target) {
		if !valid(addr) {
			return linkscan.Fail("Not a valid mail address: " + addr)
		}
	}
	return linkscan.OK()
}

// Recipients returns the comma-separated addresses of a mailto: target,
// with the scheme and any ?query removed. An empty address list yields a
// single empty recipient.
func Recipients(target string) []string {
	s := target
	if len(s) >= len("mailto:") && strings.EqualFold(s[:len("mailto:")], "mailto:") {
		s = s[len("mailto:"):]
	}
	if i := strings.IndexByte(s, '?'); i >= 0 {
		s = s[:i]
	}
	if unescaped, err := url.PathUnescape(s); err == nil {
		s = unescaped
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func valid(addr string) bool {
	if addr == "" {
		return false
	}
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Name != "" || parsed.Address != addr {
		return false
	}
	at := strings.LastIndexByte(parsed.Address, '@')
	if at <= 0 {
		return false
	}
	domain := parsed.Address[at+1:]
	return domain != "" && !strings.ContainsAny(domain, " \t\r\n")
}
