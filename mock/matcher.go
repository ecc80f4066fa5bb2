package mock

import "github.com/fwojciec/linkscan"

var _ linkscan.LinkMatcher = (*LinkMatcher)(nil)

// LinkMatcher is a mock implementation of linkscan.LinkMatcher.
type LinkMatcher struct {
	MatchFn func(target string) bool
}

func (m *LinkMatcher) Match(target string) bool {
	return m.MatchFn(target)
}
