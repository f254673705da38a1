// Package goquery implements HTML parsing for news pages using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsrag"
)

var _ newsrag.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor returns the raw href of every anchor on a page.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks returns every a[href] value in document order.
// Values are not resolved, filtered or deduplicated.
func (e *LinkExtractor) ExtractLinks(html string) ([]string, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		links = append(links, href)
	})
	return links, nil
}

func parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, newsrag.Errorf(newsrag.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
