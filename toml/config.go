// Package toml reads linkscan settings from a TOML file using
// github.com/pelletier/go-toml/v2.
package toml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fwojciec/linkscan"
	gotoml "github.com/pelletier/go-toml/v2"
)

// file mirrors the keys of the configuration file.
type file struct {
	Debug              *bool    `toml:"debug"`
	MarkupTypes        []string `toml:"markup_types"`
	Offline            *bool    `toml:"offline"`
	MatchFileExtension *bool    `toml:"match_file_extension"`
	Throttle           *int     `toml:"throttle"`
	IgnoreLinks        []string `toml:"ignore_links"`
	IgnorePaths        []string `toml:"ignore_paths"`
	RootDir            *string  `toml:"root_dir"`
	Concurrency        *int     `toml:"concurrency"`
	Cache              *string  `toml:"cache"`
	CacheTTL           *string  `toml:"cache_ttl"`
}

// Decode reads settings from r. Unknown keys are ignored.
func Decode(r io.Reader) (linkscan.Settings, error) {
	var f file
	if err := gotoml.NewDecoder(r).Decode(&f); err != nil {
		var derr *gotoml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return linkscan.Settings{}, linkscan.Errorf(linkscan.EINVALID, "malformed config at line %d, column %d: %v", row, col, err)
		}
		return linkscan.Settings{}, linkscan.Errorf(linkscan.EINVALID, "malformed config: %v", err)
	}

	s := linkscan.Settings{
		Debug:              f.Debug,
		MarkupTypes:        f.MarkupTypes,
		Offline:            f.Offline,
		MatchFileExtension: f.MatchFileExtension,
		Throttle:           f.Throttle,
		IgnoreLinks:        f.IgnoreLinks,
		IgnorePaths:        f.IgnorePaths,
		RootDir:            f.RootDir,
		Concurrency:        f.Concurrency,
		Cache:              f.Cache,
	}
	if f.CacheTTL != nil {
		ttl, err := time.ParseDuration(*f.CacheTTL)
		if err != nil {
			return linkscan.Settings{}, linkscan.Errorf(linkscan.EINVALID, "invalid cache_ttl %q: %v", *f.CacheTTL, err)
		}
		s.CacheTTL = &ttl
	}
	return s, nil
}

// Load reads settings from the file at path. A missing file yields empty
// settings.
func Load(path string) (linkscan.Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return linkscan.Settings{}, nil
	}
	if err != nil {
		return linkscan.Settings{}, fmt.Errorf("read config: %w", err)
	}
	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		return linkscan.Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
