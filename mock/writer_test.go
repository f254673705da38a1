package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/newsrag"
	"github.com/fwojciec/newsrag/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleWriter_CreateArticle(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CreateArticleFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *newsrag.Article
		w := &mock.ArticleWriter{
			CreateArticleFn: func(_ context.Context, article *newsrag.Article) error {
				calledWith = article
				return nil
			},
		}

		article := &newsrag.Article{
			SourceURL: "https://www.delfi.lt/verslas/naujiena-1",
			Headline:  newsrag.StringPtr("Naujiena"),
			Body:      "Tekstas",
		}

		err := w.CreateArticle(context.Background(), article)

		require.NoError(t, err)
		assert.Equal(t, article, calledWith)
	})

	t.Run("returns error from CreateArticleFn", func(t *testing.T) {
		t.Parallel()

		w := &mock.ArticleWriter{
			CreateArticleFn: func(context.Context, *newsrag.Article) error {
				return newsrag.Errorf(newsrag.ECONFLICT, "article exists")
			},
		}

		err := w.CreateArticle(context.Background(), &newsrag.Article{})

		assert.Equal(t, newsrag.ECONFLICT, newsrag.ErrorCode(err))
	})
}
