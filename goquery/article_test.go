package goquery_test

import (
	"testing"

	"github.com/fwojciec/newsrag"
	"github.com/fwojciec/newsrag/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!DOCTYPE html>
<html>
<body>
<nav><span itemprop="name">Sportas</span><span itemprop="name">Krepšinis</span></nav>
<h1 class="article-info__title">
	"Žalgiris" laimėjo
</h1>
<div class="article-info__publish-date"> 2024-05-01 12:30 </div>
<div class="article-info__lead article-info__lead--big">  Trumpas įvadas.  </div>
<div class="col col-article article__body-fs-1">
	<div class="fragment fragment-html fragment-html--paragraph"><p>Pirma pastraipa.</p></div>
	<div class="fragment fragment-html fragment-html--paragraph">   </div>
	<div class="fragment fragment-html fragment-html--paragraph"><p>Antra pastraipa.</p></div>
	<div class="fragment fragment-html fragment-html--banner">Reklama</div>
</div>
<div class="fragment fragment-html fragment-html--paragraph">Outside body</div>
</body>
</html>`

func TestArticleExtractor_ExtractArticle(t *testing.T) {
	t.Parallel()

	ext := goquery.NewArticleExtractor(newsrag.DefaultSite().Selectors)

	t.Run("returns metadata and body from one page", func(t *testing.T) {
		t.Parallel()

		meta, body, err := ext.ExtractArticle(articleHTML)

		require.NoError(t, err)
		assert.Equal(t, "Žalgiris\" laimėjo", newsrag.StringValue(meta.Headline))
		assert.Equal(t, "2024-05-01 12:30", newsrag.StringValue(meta.PublicationDate))
		assert.Equal(t, "Sportas", newsrag.StringValue(meta.Category))
		assert.Equal(t, "Trumpas įvadas.\n\nPirma pastraipa.\nAntra pastraipa.", body)
	})

	t.Run("agrees with the single-field extractors", func(t *testing.T) {
		t.Parallel()

		html := "<html><body><h1>Kita antraštė</h1><p>Kažkas kita</p></body></html>"

		meta, body, err := ext.ExtractArticle(html)
		require.NoError(t, err)
		wantMeta, err := ext.ExtractMetadata(html)
		require.NoError(t, err)
		wantBody, err := ext.ExtractBody(html)
		require.NoError(t, err)

		assert.Equal(t, wantMeta, meta)
		assert.Equal(t, wantBody, body)
		assert.Nil(t, meta.Headline)
		assert.Empty(t, body)
	})
}

func TestArticleExtractor_ExtractMetadata(t *testing.T) {
	t.Parallel()

	ext := goquery.NewArticleExtractor(newsrag.DefaultSite().Selectors)

	t.Run("extracts trimmed fields", func(t *testing.T) {
		t.Parallel()

		meta, err := ext.ExtractMetadata(articleHTML)

		require.NoError(t, err)
		assert.Equal(t, "Žalgiris\" laimėjo", newsrag.StringValue(meta.Headline))
		assert.Equal(t, "2024-05-01 12:30", newsrag.StringValue(meta.PublicationDate))
		assert.Equal(t, "Sportas", newsrag.StringValue(meta.Category))
	})

	t.Run("reports missing fields as nil", func(t *testing.T) {
		t.Parallel()

		meta, err := ext.ExtractMetadata("<html><body><h1>Kita antraštė</h1></body></html>")

		require.NoError(t, err)
		assert.Nil(t, meta.Headline)
		assert.Nil(t, meta.PublicationDate)
		assert.Nil(t, meta.Category)
	})
}

func TestArticleExtractor_ExtractBody(t *testing.T) {
	t.Parallel()

	ext := goquery.NewArticleExtractor(newsrag.DefaultSite().Selectors)

	t.Run("joins lead and body paragraphs", func(t *testing.T) {
		t.Parallel()

		body, err := ext.ExtractBody(articleHTML)

		require.NoError(t, err)
		assert.Equal(t, "Trumpas įvadas.\n\nPirma pastraipa.\nAntra pastraipa.", body)
	})

	t.Run("returns paragraphs alone when lead is missing", func(t *testing.T) {
		t.Parallel()

		html := `<div class="col col-article article__body-fs-1">
<div class="fragment fragment-html fragment-html--paragraph">Vienintelė.</div>
</div>`

		body, err := ext.ExtractBody(html)

		require.NoError(t, err)
		assert.Equal(t, "Vienintelė.", body)
	})

	t.Run("returns lead alone when body is missing", func(t *testing.T) {
		t.Parallel()

		body, err := ext.ExtractBody(`<div class="article-info__lead">Tik įvadas.</div>`)

		require.NoError(t, err)
		assert.Equal(t, "Tik įvadas.", body)
	})

	t.Run("returns empty string when nothing matches", func(t *testing.T) {
		t.Parallel()

		body, err := ext.ExtractBody("<html><body><p>Kažkas kita</p></body></html>")

		require.NoError(t, err)
		assert.Empty(t, body)
	})
}
