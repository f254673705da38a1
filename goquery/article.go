package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsrag"
)

var _ newsrag.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor pulls article fields out of a page using a site's CSS
// selectors. Fields whose selector matches nothing are reported as absent.
type ArticleExtractor struct {
	Selectors newsrag.ArticleSelectors
}

// NewArticleExtractor creates an ArticleExtractor for the given selectors.
func NewArticleExtractor(selectors newsrag.ArticleSelectors) *ArticleExtractor {
	return &ArticleExtractor{Selectors: selectors}
}

// ExtractArticle parses html once and returns both the metadata and the
// body.
func (e *ArticleExtractor) ExtractArticle(html string) (*newsrag.ArticleMetadata, string, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, "", err
	}
	return e.metadata(doc), e.body(doc), nil
}

// ExtractMetadata returns the headline, publication date and category.
// Values are the text of the first matching element with surrounding
// quotes and whitespace trimmed.
func (e *ArticleExtractor) ExtractMetadata(html string) (*newsrag.ArticleMetadata, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}
	return e.metadata(doc), nil
}

// ExtractBody returns the lead followed by a blank line and the body
// paragraphs, one per line. Empty paragraphs are skipped.
// Returns "" when neither lead nor paragraphs are present.
func (e *ArticleExtractor) ExtractBody(html string) (string, error) {
	doc, err := parse(html)
	if err != nil {
		return "", err
	}
	return e.body(doc), nil
}

func (e *ArticleExtractor) metadata(doc *goquery.Document) *newsrag.ArticleMetadata {
	return &newsrag.ArticleMetadata{
		Headline:        firstText(doc, e.Selectors.Headline),
		PublicationDate: firstText(doc, e.Selectors.Date),
		Category:        firstText(doc, e.Selectors.Category),
	}
}

func (e *ArticleExtractor) body(doc *goquery.Document) string {
	var lead string
	if e.Selectors.Lead != "" {
		lead = strings.TrimSpace(doc.Find(e.Selectors.Lead).First().Text())
	}

	var paragraphs []string
	if e.Selectors.Body != "" {
		container := doc.Find(e.Selectors.Body).First()
		container.Find(e.Selectors.Paragraph).Each(func(_ int, sel *goquery.Selection) {
			if text := strings.TrimSpace(sel.Text()); text != "" {
				paragraphs = append(paragraphs, text)
			}
		})
	}

	return strings.TrimSpace(lead + "\n\n" + strings.Join(paragraphs, "\n"))
}

func firstText(doc *goquery.Document, selector string) *string {
	if selector == "" {
		return nil
	}
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil
	}
	text := strings.Trim(sel.Text(), "'\" \t\r\n")
	return &text
}
