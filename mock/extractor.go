package mock

import "github.com/fwojciec/newsrag"

var _ newsrag.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of newsrag.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*newsrag.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*newsrag.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ newsrag.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of newsrag.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string) ([]string, error) {
	return e.ExtractLinksFn(html)
}

var _ newsrag.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of newsrag.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticleFn func(html string) (*newsrag.ArticleMetadata, string, error)
}

func (e *ArticleExtractor) ExtractArticle(html string) (*newsrag.ArticleMetadata, string, error) {
	return e.ExtractArticleFn(html)
}
