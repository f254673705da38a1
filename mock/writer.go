package mock

import (
	"context"

	"github.com/fwojciec/newsrag"
)

var _ newsrag.ArticleWriter = (*ArticleWriter)(nil)

// ArticleWriter is a mock implementation of newsrag.ArticleWriter.
type ArticleWriter struct {
	CreateArticleFn func(ctx context.Context, article *newsrag.Article) error
}

func (w *ArticleWriter) CreateArticle(ctx context.Context, article *newsrag.Article) error {
	return w.CreateArticleFn(ctx, article)
}
