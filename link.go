package linkscan

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// RawLink is a single link occurrence found in a markup file.
// Occurrences are not deduplicated.
type RawLink struct {
	Source string // path of the document containing the link
	Target string // link target exactly as written
	Line   int    // 1-based; 0 if unknown
	Column int    // 1-based; 0 if unknown
}

// LinkKind is the protocol category of a link target.
type LinkKind int

// Link kinds. The set is closed; every dispatch on LinkKind must handle all of them.
const (
	LinkHTTP LinkKind = iota
	LinkFileSystem
	LinkMail
	LinkFTP
	LinkUnknownScheme
)

// AllLinkKinds returns every LinkKind.
func AllLinkKinds() []LinkKind {
	return []LinkKind{LinkHTTP, LinkFileSystem, LinkMail, LinkFTP, LinkUnknownScheme}
}

func (k LinkKind) String() string {
	switch k {
	case LinkHTTP:
		return "Http"
	case LinkFileSystem:
		return "FileSystem"
	case LinkMail:
		return "Mail"
	case LinkFTP:
		return "Ftp"
	case LinkUnknownScheme:
		return "UnknownScheme"
	}
	return "LinkKind(?)"
}

// Classify maps a raw target to its LinkKind. It never touches the network
// or the filesystem and is defined for every input string.
func Classify(target string) LinkKind {
	t := strings.TrimSpace(target)
	if len(t) >= len("mailto:") && strings.EqualFold(t[:len("mailto:")], "mailto:") {
		return LinkMail
	}
	scheme, ok := Scheme(t)
	if !ok {
		return LinkFileSystem
	}
	switch scheme {
	case "http", "https":
		return LinkHTTP
	case "ftp":
		return LinkFTP
	case "mailto":
		return LinkMail
	}
	return LinkUnknownScheme
}

// Scheme returns the lowercase URI scheme of target, if it has one.
// Single-letter schemes are treated as Windows drive letters, not schemes.
func Scheme(target string) (string, bool) {
	i := strings.IndexByte(target, ':')
	if i < 2 {
		return "", false
	}
	for j := 0; j < i; j++ {
		c := target[j]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case j > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return "", false
		}
	}
	return strings.ToLower(target[:i]), true
}

// LinkExtractor extracts raw link targets from markup source text.
type LinkExtractor interface {
	// ExtractLinks returns every link occurrence in content, in document order.
	// The source path is copied into each RawLink.
	ExtractLinks(source string, content []byte) ([]RawLink, error)
}

// PathResolver maps a filesystem link target to the absolute path it
// refers to.
type PathResolver interface {
	// ResolvePath resolves target as written in the document at source.
	ResolvePath(source, target string) (string, error)
}

// LinkMatcher decides whether a raw target is excluded from checking.
type LinkMatcher interface {
	// Match reports whether the literal target matches an ignore pattern.
	Match(target string) bool
}

// Locator reports source positions of successive link targets. Each search
// starts after the previous match, so repeated targets get distinct positions.
type Locator struct {
	content []byte
	cursor  int
}

// NewLocator creates a Locator over markup source.
func NewLocator(content []byte) *Locator {
	return &Locator{content: content}
}

// Seek moves the start of the next search to offset.
func (l *Locator) Seek(offset int) {
	if offset >= 0 && offset <= len(l.content) {
		l.cursor = offset
	}
}

// Locate returns the 1-based line and column of the next occurrence of text,
// or zeros when text is empty or not found.
func (l *Locator) Locate(text string) (line, column int) {
	if text == "" {
		return 0, 0
	}
	i := bytes.Index(l.content[l.cursor:], []byte(text))
	if i < 0 {
		return 0, 0
	}
	offset := l.cursor + i
	l.cursor = offset + len(text)

	before := l.content[:offset]
	lineStart := bytes.LastIndexByte(before, '\n') + 1
	return bytes.Count(before, []byte{'\n'}) + 1, utf8.RuneCount(before[lineStart:]) + 1
}
