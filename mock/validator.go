package mock

import (
	"context"

	"github.com/fwojciec/linkscan"
)

var _ linkscan.Validator = (*Validator)(nil)

// Validator is a mock implementation of linkscan.Validator.
type Validator struct {
	ValidateFn func(ctx context.Context, target string) linkscan.Outcome
}

func (v *Validator) Validate(ctx context.Context, target string) linkscan.Outcome {
	return v.ValidateFn(ctx, target)
}
