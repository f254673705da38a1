package yaml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/newsrag"
	"github.com/fwojciec/newsrag/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSite(t *testing.T) {
	t.Parallel()

	t.Run("overrides given fields", func(t *testing.T) {
		t.Parallel()

		site, err := yaml.DecodeSite(strings.NewReader(`
name: delfi-sportas
seed: https://www.delfi.lt/sportas
exclude:
  - diskusija
  - video
selectors:
  headline: h1.title
`))

		require.NoError(t, err)
		assert.Equal(t, "delfi-sportas", site.Name)
		assert.Equal(t, "https://www.delfi.lt/sportas", site.SeedURL)
		assert.Equal(t, "https://www.delfi.lt", site.Prefix)
		assert.Equal(t, []string{"diskusija", "video"}, site.Exclude)
		assert.Equal(t, "h1.title", site.Selectors.Headline)
		assert.Equal(t, newsrag.DefaultSite().Selectors.Paragraph, site.Selectors.Paragraph)
	})

	t.Run("empty document yields defaults", func(t *testing.T) {
		t.Parallel()

		site, err := yaml.DecodeSite(strings.NewReader(""))

		require.NoError(t, err)
		assert.Equal(t, newsrag.DefaultSite(), site)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.DecodeSite(strings.NewReader("sead: https://www.delfi.lt/\n"))

		assert.Equal(t, newsrag.EINVALID, newsrag.ErrorCode(err))
	})

	t.Run("rejects prefix with path", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.DecodeSite(strings.NewReader("prefix: https://www.delfi.lt/sportas\n"))

		assert.Equal(t, newsrag.EINVALID, newsrag.ErrorCode(err))
	})
}

func TestLoadSite(t *testing.T) {
	t.Parallel()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "site.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: test\n"), 0o644))

		site, err := yaml.LoadSite(path)

		require.NoError(t, err)
		assert.Equal(t, "test", site.Name)
	})

	t.Run("missing file returns ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadSite(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Equal(t, newsrag.ENOTFOUND, newsrag.ErrorCode(err))
	})
}
