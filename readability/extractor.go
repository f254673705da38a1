// Package readability backs the crawler's body fallback with go-readability.
// It is only consulted when a site's selectors leave an article body empty.
package readability

import (
	"strings"

	"github.com/fwojciec/newsrag"
	"github.com/go-shiori/go-readability"
)

var _ newsrag.Extractor = (*Extractor)(nil)

// Extractor scores the page's blocks and keeps the one that reads most like
// article prose.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page title and the winning block as HTML. Blank input
// is EINVALID; the parser's own errors are returned as is.
func (e *Extractor) Extract(rawHTML string) (*newsrag.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, newsrag.Errorf(newsrag.EINVALID, "nothing to extract: page is blank")
	}

	parsed, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}
	return &newsrag.ExtractResult{
		Title:       strings.TrimSpace(parsed.Title),
		ContentHTML: parsed.Content,
	}, nil
}
