package main

import (
	"time"

	"github.com/fwojciec/linkscan"
)

// CLI defines the command-line interface structure for Kong.
//
// Pointer fields stay nil unless given so that the configuration file
// applies; given values win over the file in both directions.
type CLI struct {
	Directory          string         `arg:"" optional:"" default:"." help:"Directory to scan for markup files"`
	Debug              *bool          `short:"d" negatable:"" help:"Print debug information to stderr"`
	Offline            *bool          `short:"o" negatable:"" help:"Skip web links"`
	MatchFileExtension *bool          `short:"e" name:"match-file-extension" negatable:"" help:"Do not probe local links without extension for markup files"`
	IgnorePath         []string       `short:"p" name:"ignore-path" sep:"," help:"Files or directories to skip (repeatable, comma separated)"`
	IgnoreLinks        []string       `short:"i" name:"ignore-links" sep:"," help:"Glob patterns of link targets to skip (repeatable, comma separated)"`
	MarkupTypes        []string       `short:"t" name:"markup-types" sep:"," help:"Markup types to scan: md, html"`
	Throttle           *int           `short:"T" help:"Minimum delay in milliseconds between requests to the same host"`
	RootDir            *string        `short:"r" name:"root-dir" help:"Base directory for relative local links"`
	Concurrency        *int           `short:"c" help:"Maximum number of links checked at once (default 64)"`
	Cache              *string        `help:"Path of the web link outcome cache database"`
	CacheTTL           *time.Duration `name:"cache-ttl" help:"Maximum age of cached outcomes (default 24h)"`
	Config             string         `help:"Path of the TOML configuration file (default .linkscan.toml)"`
	Quiet              bool           `short:"q" help:"Only print links with issues and the summary"`
	Version            bool           `short:"V" help:"Print the version and exit"`
}

// Settings returns the values given on the command line.
func (c *CLI) Settings() linkscan.Settings {
	s := linkscan.Settings{
		Debug:              c.Debug,
		Offline:            c.Offline,
		MatchFileExtension: c.MatchFileExtension,
		Throttle:           c.Throttle,
		RootDir:            c.RootDir,
		Concurrency:        c.Concurrency,
		Cache:              c.Cache,
		CacheTTL:           c.CacheTTL,
	}
	if len(c.MarkupTypes) > 0 {
		s.MarkupTypes = c.MarkupTypes
	}
	if len(c.IgnoreLinks) > 0 {
		s.IgnoreLinks = c.IgnoreLinks
	}
	if len(c.IgnorePath) > 0 {
		s.IgnorePaths = c.IgnorePath
	}
	return s
}
