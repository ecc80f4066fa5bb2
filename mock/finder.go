package mock

import (
	"context"

	"github.com/fwojciec/linkscan"
)

var _ linkscan.FileFinder = (*FileFinder)(nil)

// FileFinder is a mock implementation of linkscan.FileFinder.
type FileFinder struct {
	FindFilesFn func(ctx context.Context) ([]linkscan.MarkupFile, error)
}

func (f *FileFinder) FindFiles(ctx context.Context) ([]linkscan.MarkupFile, error) {
	return f.FindFilesFn(ctx)
}
