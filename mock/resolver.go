package mock

import "github.com/fwojciec/linkscan"

var _ linkscan.PathResolver = (*PathResolver)(nil)

// PathResolver is a mock implementation of linkscan.PathResolver.
type PathResolver struct {
	ResolvePathFn func(source, target string) (string, error)
}

func (r *PathResolver) ResolvePath(source, target string) (string, error) {
	return r.ResolvePathFn(source, target)
}
