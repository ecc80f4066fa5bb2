// Package goldmark extracts link targets from Markdown documents using
// github.com/yuin/goldmark.
package goldmark

import (
	"github.com/fwojciec/linkscan"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Ensure Extractor implements linkscan.LinkExtractor at compile time.
var _ linkscan.LinkExtractor = (*Extractor)(nil)

// Extractor finds inline links, images and autolinks in Markdown.
type Extractor struct {
	// HTML, if set, extracts links from raw HTML embedded in the document.
	HTML linkscan.LinkExtractor

	md goldmark.Markdown
}

// NewExtractor creates an Extractor. html may be nil to skip raw HTML.
func NewExtractor(html linkscan.LinkExtractor) *Extractor {
	return &Extractor{
		HTML: html,
		md: goldmark.New(goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.TaskList,
			extension.Footnote,
		)),
	}
}

// ExtractLinks returns every link destination in document order. Reference
// links yield their resolved destination at the position of the definition.
// Email autolinks are returned as mailto: targets.
func (e *Extractor) ExtractLinks(source string, content []byte) ([]linkscan.RawLink, error) {
	root := e.md.Parser().Parse(text.NewReader(content))
	locator := linkscan.NewLocator(content)

	var links []linkscan.RawLink
	add := func(target, needle string) {
		line, col := locator.Locate(needle)
		links = append(links, linkscan.RawLink{Source: source, Target: target, Line: line, Column: col})
	}

	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Link:
			seekPastText(locator, node)
			add(string(node.Destination), string(node.Destination))
		case *ast.Image:
			seekPastText(locator, node)
			add(string(node.Destination), string(node.Destination))
		case *ast.AutoLink:
			url := string(node.URL(content))
			if node.AutoLinkType == ast.AutoLinkEmail {
				add("mailto:"+url, url)
			} else {
				add(url, url)
			}
		case *ast.HTMLBlock:
			if e.HTML == nil {
				return ast.WalkContinue, nil
			}
			lines := node.Lines()
			if lines.Len() == 0 {
				return ast.WalkContinue, nil
			}
			var raw []byte
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				raw = append(raw, seg.Value(content)...)
			}
			if node.HasClosure() {
				raw = append(raw, node.ClosureLine.Value(content)...)
			}
			locator.Seek(lines.At(0).Start)
			return ast.WalkContinue, e.extractHTML(raw, add)
		case *ast.RawHTML:
			if e.HTML == nil || node.Segments.Len() == 0 {
				return ast.WalkContinue, nil
			}
			var raw []byte
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				raw = append(raw, seg.Value(content)...)
			}
			locator.Seek(node.Segments.At(0).Start)
			return ast.WalkContinue, e.extractHTML(raw, add)
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (e *Extractor) extractHTML(raw []byte, add func(target, needle string)) error {
	found, err := e.HTML.ExtractLinks("", raw)
	if err != nil {
		return err
	}
	for _, link := range found {
		add(link.Target, link.Target)
	}
	return nil
}

// seekPastText anchors the search after the text of a link or the alt text
// of an image, which precede the destination in inline syntax.
func seekPastText(locator *linkscan.Locator, n ast.Node) {
	end := -1
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := c.(*ast.Text); ok && entering && t.Segment.Stop > end {
			end = t.Segment.Stop
		}
		return ast.WalkContinue, nil
	})
	if end >= 0 {
		locator.Seek(end)
	}
}
