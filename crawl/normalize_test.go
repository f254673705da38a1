package crawl_test

import (
	"testing"

	"github.com/fwojciec/newsrag/crawl"
	"github.com/stretchr/testify/assert"
)

func TestNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	n := &crawl.Normalizer{Prefix: "https://www.delfi.lt", Exclude: []string{"diskusija"}}

	t.Run("resolves relative links against prefix", func(t *testing.T) {
		t.Parallel()
		got := n.Normalize([]string{"/sportas/naujiena-99"})
		assert.Equal(t, []string{"https://www.delfi.lt/sportas/naujiena-99"}, got)
	})

	t.Run("keeps absolute links under prefix", func(t *testing.T) {
		t.Parallel()
		got := n.Normalize([]string{"https://www.delfi.lt/verslas?page=2"})
		assert.Equal(t, []string{"https://www.delfi.lt/verslas?page=2"}, got)
	})

	t.Run("deduplicates preserving first occurrence order", func(t *testing.T) {
		t.Parallel()
		got := n.Normalize([]string{"/b", "/a", "/b", "https://www.delfi.lt/a"})
		assert.Equal(t, []string{"https://www.delfi.lt/b", "https://www.delfi.lt/a"}, got)
	})

	t.Run("drops excluded links", func(t *testing.T) {
		t.Parallel()
		got := n.Normalize([]string{"/diskusija/naujiena-1", "https://www.delfi.lt/x/diskusija", "/ok"})
		assert.Equal(t, []string{"https://www.delfi.lt/ok"}, got)
	})

	t.Run("strips fragments", func(t *testing.T) {
		t.Parallel()
		got := n.Normalize([]string{"/a-1#comments", "https://www.delfi.lt/a-1#top"})
		assert.Equal(t, []string{"https://www.delfi.lt/a-1"}, got)
	})

	t.Run("drops non-navigable and off-site links", func(t *testing.T) {
		t.Parallel()
		got := n.Normalize([]string{
			"",
			"   ",
			"mailto:info@delfi.lt",
			"javascript:void(0)",
			"tel:+37052000000",
			"https://example.com/a-1",
			"https://www.delfi.lt.example.com/a-2",
			"//cdn.delfi.lt/img.png",
		})
		assert.Empty(t, got)
	})

	t.Run("absolute and relative forms share one canonical URL", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			raw  []string
			want string
		}{
			{[]string{"https://www.delfi.lt", "/"}, "https://www.delfi.lt/"},
			{[]string{"https://www.delfi.lt/a/../sportas", "/sportas"}, "https://www.delfi.lt/sportas"},
			{[]string{"https://www.delfi.lt/x y-1", "/x y-1"}, "https://www.delfi.lt/x%20y-1"},
			{[]string{"http://WWW.DELFI.LT/verslas", "/verslas"}, "https://www.delfi.lt/verslas"},
		}
		for _, tt := range tests {
			assert.Equal(t, []string{tt.want}, n.Normalize(tt.raw), "raw %q", tt.raw)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()
		raw := []string{"/a", "/b-2#x", "https://www.delfi.lt/c?q=1", "/diskusija", "../d"}
		once := n.Normalize(raw)
		assert.Equal(t, once, n.Normalize(once))
	})

	t.Run("returns empty for empty input", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, n.Normalize(nil))
	})
}

func TestNormalizer_Canonical(t *testing.T) {
	t.Parallel()

	n := &crawl.Normalizer{Prefix: "https://www.delfi.lt", Exclude: []string{"diskusija"}}

	t.Run("accepts seed under prefix", func(t *testing.T) {
		t.Parallel()
		got, ok := n.Canonical("https://www.delfi.lt/")
		assert.True(t, ok)
		assert.Equal(t, "https://www.delfi.lt/", got)
	})

	t.Run("rejects excluded URL", func(t *testing.T) {
		t.Parallel()
		_, ok := n.Canonical("https://www.delfi.lt/diskusija")
		assert.False(t, ok)
	})

	t.Run("rejects other host", func(t *testing.T) {
		t.Parallel()
		_, ok := n.Canonical("https://www.15min.lt/")
		assert.False(t, ok)
	})
}
