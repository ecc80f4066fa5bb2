package mock

import "github.com/fwojciec/linkscan"

var _ linkscan.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of linkscan.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(source string, content []byte) ([]linkscan.RawLink, error)
}

func (e *LinkExtractor) ExtractLinks(source string, content []byte) ([]linkscan.RawLink, error) {
	return e.ExtractLinksFn(source, content)
}
