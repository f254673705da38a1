package gemini_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/newsrag"
	"github.com/fwojciec/newsrag/gemini"
	"github.com/fwojciec/newsrag/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticEmbedder() *mock.Embedder {
	return &mock.Embedder{
		EmbedQueryFn: func(context.Context, string) ([]float32, error) {
			return make([]float32, newsrag.EmbeddingDimensions), nil
		},
	}
}

func TestAsker_Ask_ReturnsErrorWhenNothingIndexed(t *testing.T) {
	t.Parallel()

	chunks := &mock.ChunkService{
		SearchChunksFn: func(context.Context, []float32, int) ([]newsrag.SearchResult, error) {
			return nil, nil
		},
	}

	asker := gemini.NewAsker(nil, staticEmbedder(), chunks) // nil client ok for this test

	_, err := asker.Ask(context.Background(), nil, "kas laimėjo?")

	require.Error(t, err)
	assert.Equal(t, newsrag.ENOTFOUND, newsrag.ErrorCode(err))
}

func TestAsker_Ask_SearchesWithTopK(t *testing.T) {
	t.Parallel()

	var gotLimit int
	var gotQuery string
	embedder := &mock.Embedder{
		EmbedQueryFn: func(_ context.Context, text string) ([]float32, error) {
			gotQuery = text
			return make([]float32, newsrag.EmbeddingDimensions), nil
		},
	}
	chunks := &mock.ChunkService{
		SearchChunksFn: func(_ context.Context, _ []float32, limit int) ([]newsrag.SearchResult, error) {
			gotLimit = limit
			return nil, nil
		},
	}

	asker := gemini.NewAsker(nil, embedder, chunks)
	_, _ = asker.Ask(context.Background(), nil, "  kas laimėjo?  ")

	assert.Equal(t, gemini.DefaultTopK, gotLimit)
	assert.Equal(t, "kas laimėjo?", gotQuery)
}

func TestAsker_Ask_PropagatesEmbedderError(t *testing.T) {
	t.Parallel()

	embedder := &mock.Embedder{
		EmbedQueryFn: func(context.Context, string) ([]float32, error) {
			return nil, newsrag.Errorf(newsrag.EUNAVAILABLE, "quota exceeded")
		},
	}

	asker := gemini.NewAsker(nil, embedder, nil)

	_, err := asker.Ask(context.Background(), nil, "kas laimėjo?")

	require.Error(t, err)
	assert.Equal(t, newsrag.EUNAVAILABLE, newsrag.ErrorCode(err))
	assert.Contains(t, newsrag.ErrorMessage(err), "quota exceeded")
}

func TestAsker_Ask_PropagatesSearchError(t *testing.T) {
	t.Parallel()

	chunks := &mock.ChunkService{
		SearchChunksFn: func(context.Context, []float32, int) ([]newsrag.SearchResult, error) {
			return nil, newsrag.Errorf(newsrag.EINTERNAL, "database error")
		},
	}

	asker := gemini.NewAsker(nil, staticEmbedder(), chunks)

	_, err := asker.Ask(context.Background(), nil, "kas laimėjo?")

	assert.Equal(t, newsrag.EINTERNAL, newsrag.ErrorCode(err))
}

func TestAsker_Ask_ReturnsErrorWhenQuestionEmpty(t *testing.T) {
	t.Parallel()

	asker := gemini.NewAsker(nil, nil, nil)

	_, err := asker.Ask(context.Background(), nil, "   ")

	require.Error(t, err)
	assert.Equal(t, newsrag.EINVALID, newsrag.ErrorCode(err))
	assert.Contains(t, newsrag.ErrorMessage(err), "question required")
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Equal(t, gemini.SystemPrompt, config.SystemInstruction.Parts[0].Text)
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.2, *config.Temperature, 1e-6)
}

func TestBuildUserPrompt(t *testing.T) {
	t.Parallel()

	results := []newsrag.SearchResult{
		{
			Chunk: &newsrag.Chunk{
				Text: "Žalgiris nugalėjo Real Madrid.",
				Metadata: newsrag.ChunkMetadata{
					Headline:        "Žalgirio pergalė",
					Category:        "Sportas",
					PublicationDate: "2024-03-01",
					SourceURL:       "https://www.delfi.lt/sportas/zalgirio-pergale-1",
				},
			},
			Score: 0.9,
		},
	}

	t.Run("contains retrieved articles", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildUserPrompt(results, nil, "Kas laimėjo?")

		assert.Contains(t, prompt, "<headline>Žalgirio pergalė</headline>")
		assert.Contains(t, prompt, "<category>Sportas</category>")
		assert.Contains(t, prompt, "<source>https://www.delfi.lt/sportas/zalgirio-pergale-1</source>")
		assert.Contains(t, prompt, "Žalgiris nugalėjo Real Madrid.")
	})

	t.Run("ends with the question", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildUserPrompt(results, nil, "Kas laimėjo?")

		assert.True(t, strings.HasSuffix(prompt, "Question: Kas laimėjo?"))
		assert.NotContains(t, prompt, "<conversation>")
	})

	t.Run("includes conversation when present", func(t *testing.T) {
		t.Parallel()

		history := []newsrag.Turn{
			{Role: newsrag.RoleUser, Text: "Kas žaidė?"},
			{Role: newsrag.RoleAssistant, Text: "Žalgiris ir Real."},
		}
		prompt := gemini.BuildUserPrompt(results, history, "O kas laimėjo?")

		assert.Contains(t, prompt, "user: Kas žaidė?")
		assert.Contains(t, prompt, "assistant: Žalgiris ir Real.")
	})

	t.Run("does not contain system instruction", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildUserPrompt(results, nil, "Kas laimėjo?")

		assert.NotContains(t, prompt, gemini.SystemPrompt)
	})
}

func TestBuildCondensePrompt(t *testing.T) {
	t.Parallel()

	history := []newsrag.Turn{
		{Role: newsrag.RoleUser, Text: "Kas yra Lietuvos prezidentas?"},
		{Role: newsrag.RoleAssistant, Text: "Gitanas Nausėda."},
	}

	prompt := gemini.BuildCondensePrompt(history, "Kada jis išrinktas?")

	assert.Contains(t, prompt, "user: Kas yra Lietuvos prezidentas?")
	assert.Contains(t, prompt, "assistant: Gitanas Nausėda.")
	assert.Contains(t, prompt, "Follow-up question: Kada jis išrinktas?")
}
