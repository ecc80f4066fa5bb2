package linkscan

import (
	"context"
	"strings"
)

// MarkupKind identifies a supported document format.
type MarkupKind int

// Supported markup kinds.
const (
	Markdown MarkupKind = iota
	HTML
)

// DefaultMarkupKinds returns the kinds scanned when none are configured.
func DefaultMarkupKinds() []MarkupKind {
	return []MarkupKind{Markdown, HTML}
}

// String returns the short name used on the command line and in config files.
func (k MarkupKind) String() string {
	switch k {
	case Markdown:
		return "md"
	case HTML:
		return "html"
	}
	return "unknown"
}

// Extensions returns the lowercase file extensions recognized for the kind,
// without the leading dot.
func (k MarkupKind) Extensions() []string {
	switch k {
	case Markdown:
		return []string{"md", "markdown", "mkdown", "mkdn", "mkd", "mdwn", "mdtxt", "mdtext", "text", "rmd"}
	case HTML:
		return []string{"htm", "html", "xhtml"}
	}
	return nil
}

// ParseMarkupKind parses a short markup name ("md" or "html").
func ParseMarkupKind(s string) (MarkupKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "md":
		return Markdown, nil
	case "html":
		return HTML, nil
	}
	return 0, Errorf(EINVALID, "unknown markup type %q (want md or html)", s)
}

// MarkupKindForFile returns the first kind whose extension table matches the
// file name, compared case-insensitively.
func MarkupKindForFile(name string, kinds []MarkupKind) (MarkupKind, bool) {
	lower := strings.ToLower(name)
	for _, kind := range kinds {
		for _, ext := range kind.Extensions() {
			if strings.HasSuffix(lower, "."+ext) {
				return kind, true
			}
		}
	}
	return 0, false
}

// ExtensionsFor returns the union of the extensions of the given kinds.
func ExtensionsFor(kinds []MarkupKind) []string {
	var exts []string
	for _, kind := range kinds {
		exts = append(exts, kind.Extensions()...)
	}
	return exts
}

// MarkupFile is a discovered document to scan for links.
type MarkupFile struct {
	Path string
	Kind MarkupKind
}

// FileFinder enumerates the markup files to check.
type FileFinder interface {
	// FindFiles returns the non-ignored markup files under the configured
	// directory, sorted by path.
	FindFiles(ctx context.Context) ([]MarkupFile, error)
}
