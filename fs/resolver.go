// Package fs resolves and validates links to local files and enumerates the
// markup files of a directory tree.
package fs

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/fwojciec/linkscan"
)

// Ensure Resolver implements linkscan.PathResolver at compile time.
var _ linkscan.PathResolver = (*Resolver)(nil)

// Target is a filesystem link resolved to an absolute path.
type Target struct {
	Path     string
	Fragment string // without '#'; not checked
}

// Resolver turns relative filesystem link targets into absolute paths.
type Resolver struct {
	// RootDir, if set, replaces the directory of the referencing document
	// as the base of relative targets.
	RootDir string
}

// NewResolver creates a Resolver. An empty rootDir resolves relative to the
// referencing document.
func NewResolver(rootDir string) *Resolver {
	return &Resolver{RootDir: rootDir}
}

// Resolve returns the absolute path target refers to when written in the
// document at source.
//
// An empty target (after removing the fragment) refers to source itself.
// Absolute targets are used as is.
func (r *Resolver) Resolve(source, target string) (Target, error) {
	var t Target
	path := target
	if i := strings.IndexByte(path, '#'); i >= 0 {
		t.Fragment = path[i+1:]
		path = path[:i]
	}
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}
	path = filepath.FromSlash(path)

	var resolved string
	switch {
	case path == "":
		resolved = source
	case filepath.IsAbs(path):
		resolved = path
	case r.RootDir != "":
		resolved = filepath.Join(r.RootDir, path)
	default:
		resolved = filepath.Join(filepath.Dir(source), path)
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return Target{}, err
	}
	t.Path = abs
	return t, nil
}

// ResolvePath returns the absolute path of target without its fragment.
func (r *Resolver) ResolvePath(source, target string) (string, error) {
	t, err := r.Resolve(source, target)
	if err != nil {
		return "", err
	}
	return t.Path, nil
}
