package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/linkscan"
)

// Ensure Checker implements linkscan.Validator at compile time.
var _ linkscan.Validator = (*Checker)(nil)

// Checker validates that a resolved filesystem target exists.
type Checker struct {
	// MatchFileExtension disables probing extensionless targets with the
	// markup extensions.
	MatchFileExtension bool

	// Extensions are probed, lowercase and without dot, when the target has
	// no extension of its own.
	Extensions []string
}

// NewChecker creates a Checker probing the extensions of the given kinds.
func NewChecker(kinds []linkscan.MarkupKind, matchFileExtension bool) *Checker {
	return &Checker{
		MatchFileExtension: matchFileExtension,
		Extensions:         linkscan.ExtensionsFor(kinds),
	}
}

// Validate checks the absolute path produced by Resolver.Resolve.
func (c *Checker) Validate(ctx context.Context, path string) linkscan.Outcome {
	if _, err := os.Stat(path); err == nil {
		return linkscan.OK()
	}
	if !c.MatchFileExtension && filepath.Ext(path) == "" && c.probeExtensions(path) {
		return linkscan.OK()
	}
	return linkscan.Fail("target file not found")
}

// probeExtensions looks for a sibling named "<base>.<ext>". The base must
// match exactly; the extension is compared ignoring case.
func (c *Checker) probeExtensions(path string) bool {
	dir, base := filepath.Split(path)
	if base == "" {
		return false
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		name := entry.Name()
		ext := filepath.Ext(name)
		if ext == "" || name[:len(name)-len(ext)] != base {
			continue
		}
		ext = strings.ToLower(ext[1:])
		for _, want := range c.Extensions {
			if ext == want {
				return true
			}
		}
	}
	return false
}
