package fs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/fwojciec/linkscan"
)

// Ensure Finder implements linkscan.FileFinder at compile time.
var _ linkscan.FileFinder = (*Finder)(nil)

// Finder walks a directory tree for markup files. Symbolic links are not
// followed.
type Finder struct {
	Dir         string
	Kinds       []linkscan.MarkupKind
	IgnorePaths []linkscan.IgnorePath
}

// NewFinder creates a Finder for the directory and markup kinds of cfg.
func NewFinder(cfg *linkscan.Config) *Finder {
	return &Finder{
		Dir:         cfg.Directory,
		Kinds:       cfg.MarkupKinds,
		IgnorePaths: cfg.IgnorePaths,
	}
}

// FindFiles returns every non-ignored markup file under Dir, sorted by path.
// Paths keep the form of Dir (relative stays relative).
func (f *Finder) FindFiles(ctx context.Context) ([]linkscan.MarkupFile, error) {
	fi, err := os.Stat(f.Dir)
	if err != nil {
		return nil, linkscan.Errorf(linkscan.EINVALID, "cannot read directory %q: %v", f.Dir, err)
	}
	if !fi.IsDir() {
		return nil, linkscan.Errorf(linkscan.EINVALID, "%q is not a directory", f.Dir)
	}

	var files []linkscan.MarkupFile
	err = filepath.WalkDir(f.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries below the root are skipped.
			if path == f.Dir {
				return err
			}
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			return nil
		}
		kind, ok := linkscan.MarkupKindForFile(d.Name(), f.Kinds)
		if !ok {
			return nil
		}
		canonical, err := Canonicalize(path)
		if err != nil {
			return nil // dangling symlink
		}
		if linkscan.IgnoredBy(f.IgnorePaths, canonical) {
			return nil
		}
		files = append(files, linkscan.MarkupFile{Path: path, Kind: kind})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files, nil
}
