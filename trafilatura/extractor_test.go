package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/newsrag"
	"github.com/fwojciec/newsrag/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements newsrag.Extractor at compile time.
var _ newsrag.Extractor = (*trafilatura.Extractor)(nil)

const newsPage = `<!DOCTYPE html>
<html lang="lt">
<head>
<title>Seimas priėmė biudžetą - DELFI</title>
<meta property="og:title" content="Seimas priėmė biudžetą">
<meta property="article:published_time" content="2024-12-10T09:15:00+02:00">
<meta property="article:section" content="Politika">
</head>
<body>
<nav><a href="/">Pradžia</a><a href="/politika">Politika</a><a href="/sportas">Sportas</a></nav>
<article>
<h1>Seimas priėmė biudžetą</h1>
<p>Seimas antradienį priėmė kitų metų valstybės biudžetą, už jį balsavo dauguma parlamentarų.</p>
<p>Biudžeto pajamos sieks daugiau nei dvidešimt milijardų eurų, o išlaidos bus šiek tiek didesnės.</p>
<p>Opozicija kritikavo sprendimą didinti skolinimąsi, tačiau pataisos nebuvo priimtos.</p>
</article>
<footer>Visos teisės saugomos 2024</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(newsPage)

		require.NoError(t, err)
		assert.Contains(t, result.Title, "Seimas priėmė biudžetą")
	})

	t.Run("extracts main content", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(newsPage)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "valstybės biudžetą")
		assert.Contains(t, result.ContentHTML, "Opozicija kritikavo")
	})

	t.Run("removes footer boilerplate", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(newsPage)

		require.NoError(t, err)
		assert.NotContains(t, result.ContentHTML, "Visos teisės saugomos")
	})

	t.Run("formats publication date", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(newsPage)

		require.NoError(t, err)
		if result.PublicationDate != "" {
			assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, result.PublicationDate)
		}
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().Extract("")

		require.Error(t, err)
		assert.Equal(t, newsrag.EINVALID, newsrag.ErrorCode(err))
	})
}
