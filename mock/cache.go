package mock

import (
	"context"

	"github.com/fwojciec/linkscan"
)

var _ linkscan.OutcomeCache = (*OutcomeCache)(nil)

// OutcomeCache is a mock implementation of linkscan.OutcomeCache.
type OutcomeCache struct {
	FindOutcomeFn func(ctx context.Context, url string) (linkscan.Outcome, bool, error)
	SaveOutcomeFn func(ctx context.Context, url string, outcome linkscan.Outcome) error
}

func (c *OutcomeCache) FindOutcome(ctx context.Context, url string) (linkscan.Outcome, bool, error) {
	return c.FindOutcomeFn(ctx, url)
}

func (c *OutcomeCache) SaveOutcome(ctx context.Context, url string, outcome linkscan.Outcome) error {
	return c.SaveOutcomeFn(ctx, url, outcome)
}
