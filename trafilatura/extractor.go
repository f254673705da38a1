// Package trafilatura provides a fallback article extractor built on
// go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/newsrag"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements newsrag.Extractor at compile time.
var _ newsrag.Extractor = (*Extractor)(nil)

// Extractor extracts the main text and page metadata of arbitrary news pages.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main content with comments removed, along with the
// title, publication date and first category found in page metadata.
func (e *Extractor) Extract(rawHTML string) (*newsrag.ExtractResult, error) {
	if rawHTML == "" {
		return nil, newsrag.Errorf(newsrag.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
	})
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, err
		}
		contentHTML = buf.String()
	}

	out := &newsrag.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}
	if !result.Metadata.Date.IsZero() {
		out.PublicationDate = result.Metadata.Date.Format("2006-01-02")
	}
	if len(result.Metadata.Categories) > 0 {
		out.Category = result.Metadata.Categories[0]
	}
	return out, nil
}
