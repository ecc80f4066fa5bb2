// Package glob implements link-level ignore patterns using
// github.com/gobwas/glob.
package glob

import (
	"github.com/fwojciec/linkscan"
	"github.com/gobwas/glob"
)

// Ensure Matcher implements linkscan.LinkMatcher at compile time.
var _ linkscan.LinkMatcher = (*Matcher)(nil)

// Matcher matches link targets against a set of glob patterns. Patterns are
// compiled without separators, so '*' also matches '/'.
type Matcher struct {
	globs []glob.Glob
}

// NewMatcher compiles patterns. An invalid pattern is an EINVALID error.
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{globs: make([]glob.Glob, 0, len(patterns))}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, linkscan.Errorf(linkscan.EINVALID, "invalid ignore link pattern %q: %v", p, err)
		}
		m.globs = append(m.globs, g)
	}
	return m, nil
}

// Match reports whether target, taken literally, matches any pattern.
func (m *Matcher) Match(target string) bool {
	for _, g := range m.globs {
		if g.Match(target) {
			return true
		}
	}
	return false
}
