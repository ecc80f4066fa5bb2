// Package goquery extracts link targets from HTML documents using
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/linkscan"
)

// Ensure Extractor implements linkscan.LinkExtractor at compile time.
var _ linkscan.LinkExtractor = (*Extractor)(nil)

// linkAttrs are read from every element, in this order.
var linkAttrs = []string{"href", "src"}

// Extractor finds the href and src attributes of every element.
type Extractor struct{}

// NewExtractor creates an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractLinks returns every non-empty href and src value in document order.
// Positions are located in content by the attribute text; targets written
// with character references have no position.
func (e *Extractor) ExtractLinks(source string, content []byte) ([]linkscan.RawLink, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, linkscan.Errorf(linkscan.EINVALID, "failed to parse HTML: %v", err)
	}

	locator := linkscan.NewLocator(content)
	var links []linkscan.RawLink
	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		for _, attr := range linkAttrs {
			target, exists := sel.Attr(attr)
			if !exists || target == "" {
				continue
			}
			line, col := locator.Locate(target)
			links = append(links, linkscan.RawLink{
				Source: source,
				Target: target,
				Line:   line,
				Column: col,
			})
		}
	})
	return links, nil
}
