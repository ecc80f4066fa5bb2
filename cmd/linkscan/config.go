package main

import (
	"time"

	"github.com/fwojciec/linkscan"
	"github.com/fwojciec/linkscan/fs"
)

// buildConfig turns merged settings into the configuration of a run.
func buildConfig(dir string, quiet bool, s linkscan.Settings) (*linkscan.Config, error) {
	kinds, err := s.MarkupKinds()
	if err != nil {
		return nil, err
	}
	ignores, err := fs.NewIgnorePaths(s.IgnorePaths)
	if err != nil {
		return nil, err
	}

	cfg := &linkscan.Config{
		Directory:          dir,
		MarkupKinds:        kinds,
		Debug:              deref(s.Debug),
		Quiet:              quiet,
		Offline:            deref(s.Offline),
		MatchFileExtension: deref(s.MatchFileExtension),
		Throttle:           time.Duration(deref(s.Throttle)) * time.Millisecond,
		IgnoreLinks:        s.IgnoreLinks,
		IgnorePaths:        ignores,
		RootDir:            deref(s.RootDir),
		Concurrency:        deref(s.Concurrency),
		Cache:              deref(s.Cache),
		CacheTTL:           deref(s.CacheTTL),
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = linkscan.DefaultConcurrency
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = linkscan.DefaultCacheTTL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
