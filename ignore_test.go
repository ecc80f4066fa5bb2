package linkscan_test

import (
	"path/filepath"
	"testing"

	"github.com/fwojciec/linkscan"
	"github.com/stretchr/testify/assert"
)

func TestIgnorePath_Matches(t *testing.T) {
	t.Parallel()

	root := filepath.FromSlash("/srv")
	docs := filepath.Join(root, "docs")

	t.Run("whole matches the exact path only", func(t *testing.T) {
		t.Parallel()

		p := linkscan.IgnorePath{Kind: linkscan.IgnoreWhole, Path: filepath.Join(docs, "a.md")}

		assert.True(t, p.Matches(filepath.Join(docs, "a.md")))
		assert.True(t, p.Matches(filepath.Join(docs, ".", "a.md")))
		assert.False(t, p.Matches(filepath.Join(docs, "a.md.bak")))
		assert.False(t, p.Matches(docs))
	})

	t.Run("prefix matches the directory and descendants", func(t *testing.T) {
		t.Parallel()

		p := linkscan.IgnorePath{Kind: linkscan.IgnorePrefix, Path: docs}

		assert.True(t, p.Matches(docs))
		assert.True(t, p.Matches(filepath.Join(docs, "a.md")))
		assert.True(t, p.Matches(filepath.Join(docs, "sub", "deep", "b.md")))
	})

	t.Run("prefix does not match siblings sharing a textual prefix", func(t *testing.T) {
		t.Parallel()

		p := linkscan.IgnorePath{Kind: linkscan.IgnorePrefix, Path: docs}

		assert.False(t, p.Matches(filepath.Join(root, "docs2")))
		assert.False(t, p.Matches(filepath.Join(root, "docs2", "a.md")))
		assert.False(t, p.Matches(root))
	})

	t.Run("prefix at filesystem root matches everything", func(t *testing.T) {
		t.Parallel()

		p := linkscan.IgnorePath{Kind: linkscan.IgnorePrefix, Path: string(filepath.Separator)}

		assert.True(t, p.Matches(filepath.Join(docs, "a.md")))
	})
}

func TestIgnoredBy(t *testing.T) {
	t.Parallel()

	paths := []linkscan.IgnorePath{
		{Kind: linkscan.IgnoreWhole, Path: filepath.FromSlash("/a/b.md")},
		{Kind: linkscan.IgnorePrefix, Path: filepath.FromSlash("/c")},
	}

	assert.True(t, linkscan.IgnoredBy(paths, filepath.FromSlash("/a/b.md")))
	assert.True(t, linkscan.IgnoredBy(paths, filepath.FromSlash("/c/d/e.md")))
	assert.False(t, linkscan.IgnoredBy(paths, filepath.FromSlash("/a/c.md")))
	assert.False(t, linkscan.IgnoredBy(nil, filepath.FromSlash("/a/b.md")))
}
