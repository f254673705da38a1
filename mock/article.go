package mock

import (
	"context"

	"github.com/fwojciec/newsrag"
)

var _ newsrag.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of newsrag.ArticleService.
type ArticleService struct {
	CreateArticleFn   func(ctx context.Context, article *newsrag.Article) error
	FindArticleByIDFn func(ctx context.Context, id string) (*newsrag.Article, error)
	FindArticlesFn    func(ctx context.Context, filter newsrag.ArticleFilter) ([]*newsrag.Article, error)
	CountArticlesFn   func(ctx context.Context) (int, error)
	DeleteArticleFn   func(ctx context.Context, id string) error
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *newsrag.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*newsrag.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter newsrag.ArticleFilter) ([]*newsrag.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) CountArticles(ctx context.Context) (int, error) {
	return s.CountArticlesFn(ctx)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	return s.DeleteArticleFn(ctx, id)
}

var _ newsrag.SupplementService = (*SupplementService)(nil)

// SupplementService is a mock implementation of newsrag.SupplementService.
type SupplementService struct {
	CreateSupplementFn func(ctx context.Context, s *newsrag.Supplement) error
	FindSupplementsFn  func(ctx context.Context) ([]*newsrag.Supplement, error)
}

func (s *SupplementService) CreateSupplement(ctx context.Context, supplement *newsrag.Supplement) error {
	return s.CreateSupplementFn(ctx, supplement)
}

func (s *SupplementService) FindSupplements(ctx context.Context) ([]*newsrag.Supplement, error) {
	return s.FindSupplementsFn(ctx)
}
