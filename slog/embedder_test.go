package slog_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/newsrag/mock"
	nrslog "github.com/fwojciec/newsrag/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingEmbedder(t *testing.T) {
	t.Parallel()

	t.Run("logs document batch", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Embedder{
			EmbedDocumentsFn: func(ctx context.Context, texts []string) ([][]float32, error) {
				return make([][]float32, len(texts)), nil
			},
		}

		vectors, err := nrslog.NewLoggingEmbedder(inner, newDebugLogger(&buf)).
			EmbedDocuments(context.Background(), []string{"a", "b", "c"})

		require.NoError(t, err)
		assert.Len(t, vectors, 3)
		output := buf.String()
		assert.Contains(t, output, "embed documents")
		assert.Contains(t, output, "count=3")
		assert.Contains(t, output, "vectors=3")
	})

	t.Run("logs query failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Embedder{
			EmbedQueryFn: func(ctx context.Context, text string) ([]float32, error) {
				return nil, errors.New("quota exceeded")
			},
		}

		_, err := nrslog.NewLoggingEmbedder(inner, newDebugLogger(&buf)).
			EmbedQuery(context.Background(), "Kas laimėjo?")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "embed query")
		assert.Contains(t, output, "chars=12")
		assert.Contains(t, output, "err=\"quota exceeded\"")
	})
}
