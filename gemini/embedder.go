package gemini

import (
	"context"

	"github.com/fwojciec/newsrag"
	"google.golang.org/genai"
)

// DefaultEmbeddingModel produces 768-dimension embeddings.
const DefaultEmbeddingModel = "text-embedding-004"

// maxBatch is the largest number of texts sent in one embedding request.
const maxBatch = 100

// Ensure Embedder implements newsrag.Embedder at compile time.
var _ newsrag.Embedder = (*Embedder)(nil)

// Embedder computes text embeddings with the Gemini embedding API.
type Embedder struct {
	client *genai.Client

	// Model is the embedding model. Defaults to DefaultEmbeddingModel.
	Model string
}

// NewEmbedder creates a new Embedder.
func NewEmbedder(client *genai.Client) *Embedder {
	return &Embedder{client: client, Model: DefaultEmbeddingModel}
}

// EmbedDocuments embeds texts for storage, in order.
func (e *Embedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += maxBatch {
		end := min(start+maxBatch, len(texts))
		vectors, err := e.embed(ctx, texts[start:end], "RETRIEVAL_DOCUMENT")
		if err != nil {
			return nil, err
		}
		out = append(out, vectors...)
	}
	return out, nil
}

// EmbedQuery embeds a search query.
func (e *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.embed(ctx, []string{text}, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (e *Embedder) embed(ctx context.Context, texts []string, taskType string) ([][]float32, error) {
	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		if text == "" {
			return nil, newsrag.Errorf(newsrag.EINVALID, "cannot embed empty text")
		}
		contents[i] = genai.NewContentFromText(text, genai.RoleUser)
	}

	dims := int32(newsrag.EmbeddingDimensions)
	resp, err := e.client.Models.EmbedContent(ctx, e.Model, contents, &genai.EmbedContentConfig{
		TaskType:             taskType,
		OutputDimensionality: &dims,
	})
	if err != nil {
		return nil, newsrag.Errorf(newsrag.EUNAVAILABLE, "embed content: %v", err)
	}
	if resp == nil || len(resp.Embeddings) != len(texts) {
		return nil, newsrag.Errorf(newsrag.EINTERNAL, "gemini returned %d embeddings for %d texts", embeddingCount(resp), len(texts))
	}

	vectors := make([][]float32, len(resp.Embeddings))
	for i, emb := range resp.Embeddings {
		if len(emb.Values) != newsrag.EmbeddingDimensions {
			return nil, newsrag.Errorf(newsrag.EINTERNAL, "gemini returned %d dimensions, want %d", len(emb.Values), newsrag.EmbeddingDimensions)
		}
		vectors[i] = emb.Values
	}
	return vectors, nil
}

func embeddingCount(resp *genai.EmbedContentResponse) int {
	if resp == nil {
		return 0
	}
	return len(resp.Embeddings)
}
