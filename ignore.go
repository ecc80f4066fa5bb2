package linkscan

import (
	"path/filepath"
	"strings"
)

// IgnoreKind selects how an IgnorePath matches.
type IgnoreKind int

const (
	// IgnoreWhole matches exactly one canonical file path.
	IgnoreWhole IgnoreKind = iota
	// IgnorePrefix matches a directory and everything beneath it.
	IgnorePrefix
)

func (k IgnoreKind) String() string {
	if k == IgnorePrefix {
		return "Prefix"
	}
	return "Whole"
}

// IgnorePath excludes a file or a directory subtree from checking.
// Path is absolute and canonical; see fs.NewIgnorePath.
type IgnorePath struct {
	Kind IgnoreKind
	Path string
}

// Matches reports whether the canonical absolute path abs is excluded.
// Prefix matching is component-aware: "/docs" does not match "/docs2".
func (p IgnorePath) Matches(abs string) bool {
	abs = filepath.Clean(abs)
	switch p.Kind {
	case IgnoreWhole:
		return abs == p.Path
	case IgnorePrefix:
		if abs == p.Path {
			return true
		}
		prefix := p.Path
		if !strings.HasSuffix(prefix, string(filepath.Separator)) {
			prefix += string(filepath.Separator)
		}
		return strings.HasPrefix(abs, prefix)
	}
	return false
}

// IgnoredBy reports whether any of the ignore paths matches abs.
func IgnoredBy(paths []IgnorePath, abs string) bool {
	for _, p := range paths {
		if p.Matches(abs) {
			return true
		}
	}
	return false
}
