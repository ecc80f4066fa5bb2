package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/linkscan"
)

// Canonicalize returns the absolute path of path with symlinks resolved.
// The path must exist.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// NewIgnorePath canonicalizes path and builds an ignore rule for it:
// IgnoreWhole for a regular file, IgnorePrefix for a directory.
func NewIgnorePath(path string) (linkscan.IgnorePath, error) {
	canonical, err := Canonicalize(path)
	if err != nil {
		return linkscan.IgnorePath{}, linkscan.Errorf(linkscan.ENOTFOUND, "ignore path %q not found: %v", path, err)
	}
	fi, err := os.Stat(canonical)
	if err != nil {
		return linkscan.IgnorePath{}, linkscan.Errorf(linkscan.ENOTFOUND, "ignore path %q not found: %v", path, err)
	}
	switch {
	case fi.Mode().IsRegular():
		return linkscan.IgnorePath{Kind: linkscan.IgnoreWhole, Path: canonical}, nil
	case fi.IsDir():
		return linkscan.IgnorePath{Kind: linkscan.IgnorePrefix, Path: canonical}, nil
	}
	return linkscan.IgnorePath{}, linkscan.Errorf(linkscan.EINVALID,
		"ignore path %q is neither a directory nor a regular file", path)
}

// NewIgnorePaths builds an ignore rule for every path, failing on the first
// invalid one.
func NewIgnorePaths(paths []string) ([]linkscan.IgnorePath, error) {
	rules := make([]linkscan.IgnorePath, 0, len(paths))
	for _, p := range paths {
		rule, err := NewIgnorePath(p)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
