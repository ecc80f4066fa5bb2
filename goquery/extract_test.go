package goquery_test

import (
	"testing"

	"github.com/fwojciec/linkscan"
	"github.com/fwojciec/linkscan/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("extracts href and src in document order", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><link rel="stylesheet" href="style.css"></head>
<body>
<a href="https://example.com">Example</a>
<img src="img/logo.png" alt="logo">
<a href="mailto:someone@example.com">Mail</a>
</body>
</html>`

		links, err := goquery.NewExtractor().ExtractLinks("index.html", []byte(html))

		require.NoError(t, err)
		assert.Equal(t, []linkscan.RawLink{
			{Source: "index.html", Target: "style.css", Line: 3, Column: 36},
			{Source: "index.html", Target: "https://example.com", Line: 5, Column: 10},
			{Source: "index.html", Target: "img/logo.png", Line: 6, Column: 11},
			{Source: "index.html", Target: "mailto:someone@example.com", Line: 7, Column: 10},
		}, links)
	})

	t.Run("skips empty attributes and anchors without href", func(t *testing.T) {
		t.Parallel()

		html := `<a name="top">Top</a><a href="">Empty</a><script src=""></script><a href="#top">Back</a>`

		links, err := goquery.NewExtractor().ExtractLinks("page.html", []byte(html))

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "#top", links[0].Target)
	})

	t.Run("keeps repeated links", func(t *testing.T) {
		t.Parallel()

		html := "<a href=\"a.html\">one</a>\n<a href=\"a.html\">two</a>"

		links, err := goquery.NewExtractor().ExtractLinks("page.html", []byte(html))

		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, 1, links[0].Line)
		assert.Equal(t, 2, links[1].Line)
	})

	t.Run("decoded entities have no position", func(t *testing.T) {
		t.Parallel()

		html := `<a href="search?a=1&amp;b=2">search</a>`

		links, err := goquery.NewExtractor().ExtractLinks("page.html", []byte(html))

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "search?a=1&b=2", links[0].Target)
		assert.Zero(t, links[0].Line)
	})

	t.Run("no links", func(t *testing.T) {
		t.Parallel()

		links, err := goquery.NewExtractor().ExtractLinks("page.html", []byte("<p>plain</p>"))

		require.NoError(t, err)
		assert.Empty(t, links)
	})
}
