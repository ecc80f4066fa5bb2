package linkscan

import (
	"os"
	"time"
)

// DefaultConfigFile is the configuration file read from the working directory.
const DefaultConfigFile = ".linkscan.toml"

// Default values applied when a setting is absent.
const (
	DefaultConcurrency = 64
	DefaultCacheTTL    = 24 * time.Hour
)

// Config is the finished, immutable configuration of a run.
type Config struct {
	// Directory is scanned recursively for markup files.
	Directory string

	// MarkupKinds selects the document formats to scan.
	MarkupKinds []MarkupKind

	Debug   bool
	Quiet   bool
	Offline bool

	// MatchFileExtension disables probing "target" as "target.md" etc.
	MatchFileExtension bool

	// Throttle is the minimum delay between requests to the same host.
	Throttle time.Duration

	// IgnoreLinks are glob patterns matched against literal link targets.
	IgnoreLinks []string

	// IgnorePaths exclude files and directory subtrees from scanning.
	IgnorePaths []IgnorePath

	// RootDir, if set, is the base for relative filesystem links instead of
	// the directory of the referencing document.
	RootDir string

	// Concurrency bounds the number of links validated at once.
	Concurrency int

	// Cache is the path of the outcome cache database; empty disables caching.
	Cache    string
	CacheTTL time.Duration
}

// Validate returns an error if the configuration cannot be used for a run.
func (c *Config) Validate() error {
	if c.Directory == "" {
		return Errorf(EINVALID, "directory required")
	}
	if len(c.MarkupKinds) == 0 {
		return Errorf(EINVALID, "at least one markup type required")
	}
	if c.Throttle < 0 {
		return Errorf(EINVALID, "throttle must not be negative")
	}
	if c.Concurrency < 0 {
		return Errorf(EINVALID, "concurrency must not be negative")
	}
	if c.RootDir != "" {
		fi, err := os.Stat(c.RootDir)
		if err != nil || !fi.IsDir() {
			return Errorf(EINVALID, "root path %q must be a directory", c.RootDir)
		}
	}
	return nil
}

// Settings holds raw configuration values from one source (config file or
// command line). Nil pointers and nil slices are unset.
type Settings struct {
	Debug              *bool
	Offline            *bool
	MatchFileExtension *bool
	MarkupTypes        []string
	Throttle           *int // milliseconds
	IgnoreLinks        []string
	IgnorePaths        []string
	RootDir            *string
	Concurrency        *int
	Cache              *string
	CacheTTL           *time.Duration
}

// Merge returns s overlaid with every value that is set in over.
func (s Settings) Merge(over Settings) Settings {
	out := s
	if over.Debug != nil {
		out.Debug = over.Debug
	}
	if over.Offline != nil {
		out.Offline = over.Offline
	}
	if over.MatchFileExtension != nil {
		out.MatchFileExtension = over.MatchFileExtension
	}
	if over.MarkupTypes != nil {
		out.MarkupTypes = over.MarkupTypes
	}
	if over.Throttle != nil {
		out.Throttle = over.Throttle
	}
	if over.IgnoreLinks != nil {
		out.IgnoreLinks = over.IgnoreLinks
	}
	if over.IgnorePaths != nil {
		out.IgnorePaths = over.IgnorePaths
	}
	if over.RootDir != nil {
		out.RootDir = over.RootDir
	}
	if over.Concurrency != nil {
		out.Concurrency = over.Concurrency
	}
	if over.Cache != nil {
		out.Cache = over.Cache
	}
	if over.CacheTTL != nil {
		out.CacheTTL = over.CacheTTL
	}
	return out
}

// MarkupKinds parses MarkupTypes, defaulting to DefaultMarkupKinds.
func (s Settings) MarkupKinds() ([]MarkupKind, error) {
	if len(s.MarkupTypes) == 0 {
		return DefaultMarkupKinds(), nil
	}
	kinds := make([]MarkupKind, 0, len(s.MarkupTypes))
	seen := make(map[MarkupKind]bool)
	for _, name := range s.MarkupTypes {
		kind, err := ParseMarkupKind(name)
		if err != nil {
			return nil, err
		}
		if !seen[kind] {
			seen[kind] = true
			kinds = append(kinds, kind)
		}
	}
	return kinds, nil
}
