package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/linkscan"
	"github.com/fwojciec/linkscan/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinder_FindFiles(t *testing.T) {
	t.Parallel()

	newTree := func(t *testing.T) string {
		t.Helper()
		dir := canonicalTempDir(t)
		writeTree(t, dir, map[string]string{
			"README.md":           "# readme",
			"docs/b.html":         "<a href=x>",
			"docs/a.Markdown":     "[a](b)",
			"docs/image.png":      "png",
			"vendor/lib/notes.md": "skip",
			"vendor2/keep.md":     "keep",
		})
		return dir
	}

	paths := func(files []linkscan.MarkupFile) []string {
		var out []string
		for _, f := range files {
			out = append(out, f.Path)
		}
		return out
	}

	t.Run("finds markup files sorted by path", func(t *testing.T) {
		t.Parallel()
		dir := newTree(t)

		f := &fs.Finder{Dir: dir, Kinds: linkscan.DefaultMarkupKinds()}
		files, err := f.FindFiles(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "README.md"),
			filepath.Join(dir, "docs", "a.Markdown"),
			filepath.Join(dir, "docs", "b.html"),
			filepath.Join(dir, "vendor", "lib", "notes.md"),
			filepath.Join(dir, "vendor2", "keep.md"),
		}, paths(files))
		assert.Equal(t, linkscan.Markdown, files[1].Kind)
		assert.Equal(t, linkscan.HTML, files[2].Kind)
	})

	t.Run("restricts to configured kinds", func(t *testing.T) {
		t.Parallel()
		dir := newTree(t)

		f := &fs.Finder{Dir: dir, Kinds: []linkscan.MarkupKind{linkscan.HTML}}
		files, err := f.FindFiles(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "docs", "b.html")}, paths(files))
	})

	t.Run("skips ignored paths", func(t *testing.T) {
		t.Parallel()
		dir := newTree(t)

		ignores, err := fs.NewIgnorePaths([]string{
			filepath.Join(dir, "vendor"),
			filepath.Join(dir, "README.md"),
		})
		require.NoError(t, err)

		f := &fs.Finder{Dir: dir, Kinds: linkscan.DefaultMarkupKinds(), IgnorePaths: ignores}
		files, err := f.FindFiles(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "docs", "a.Markdown"),
			filepath.Join(dir, "docs", "b.html"),
			filepath.Join(dir, "vendor2", "keep.md"),
		}, paths(files))
	})

	t.Run("missing directory is invalid", func(t *testing.T) {
		t.Parallel()

		f := &fs.Finder{Dir: filepath.Join(t.TempDir(), "nope"), Kinds: linkscan.DefaultMarkupKinds()}
		_, err := f.FindFiles(context.Background())

		assert.Equal(t, linkscan.EINVALID, linkscan.ErrorCode(err))
	})

	t.Run("file as directory is invalid", func(t *testing.T) {
		t.Parallel()
		dir := newTree(t)

		f := &fs.Finder{Dir: filepath.Join(dir, "README.md"), Kinds: linkscan.DefaultMarkupKinds()}
		_, err := f.FindFiles(context.Background())

		assert.Equal(t, linkscan.EINVALID, linkscan.ErrorCode(err))
	})

	t.Run("honors canceled context", func(t *testing.T) {
		t.Parallel()
		dir := newTree(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		f := &fs.Finder{Dir: dir, Kinds: linkscan.DefaultMarkupKinds()}
		_, err := f.FindFiles(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewIgnorePath(t *testing.T) {
	t.Parallel()

	dir := canonicalTempDir(t)
	writeTree(t, dir, map[string]string{"docs/a.md": "a"})

	t.Run("file is whole", func(t *testing.T) {
		t.Parallel()

		got, err := fs.NewIgnorePath(filepath.Join(dir, "docs", "a.md"))

		require.NoError(t, err)
		assert.Equal(t, linkscan.IgnorePath{Kind: linkscan.IgnoreWhole, Path: filepath.Join(dir, "docs", "a.md")}, got)
	})

	t.Run("directory is prefix", func(t *testing.T) {
		t.Parallel()

		got, err := fs.NewIgnorePath(filepath.Join(dir, "docs", "..", "docs"))

		require.NoError(t, err)
		assert.Equal(t, linkscan.IgnorePath{Kind: linkscan.IgnorePrefix, Path: filepath.Join(dir, "docs")}, got)
	})

	t.Run("symlink is canonicalized", func(t *testing.T) {
		t.Parallel()
		link := filepath.Join(t.TempDir(), "alias")
		if err := os.Symlink(filepath.Join(dir, "docs"), link); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}

		got, err := fs.NewIgnorePath(link)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "docs"), got.Path)
	})

	t.Run("missing path is an error", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewIgnorePath(filepath.Join(dir, "missing"))

		assert.Equal(t, linkscan.ENOTFOUND, linkscan.ErrorCode(err))
	})

	t.Run("NewIgnorePaths stops at first error", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewIgnorePaths([]string{filepath.Join(dir, "docs"), filepath.Join(dir, "missing")})

		require.Error(t, err)
	})
}
