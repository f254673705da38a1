// Package gemini implements embedding, token counting and question answering
// on top of the Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/newsrag"
	"google.golang.org/genai"
)

// DefaultModel is the generative model used to answer questions.
const DefaultModel = "gemini-2.5-flash"

// DefaultTopK is the number of chunks retrieved as context for an answer.
const DefaultTopK = 3

// SystemPrompt restricts answers to the retrieved news context.
const SystemPrompt = "You are an assistant answering questions about Lithuanian news articles. " +
	"Answer based only on the articles provided. If the answer is not in the articles, say so. " +
	"Answer in the language of the question."

// Ensure Asker implements newsrag.Asker at compile time.
var _ newsrag.Asker = (*Asker)(nil)

// Asker answers questions with retrieval-augmented generation: the question
// is embedded, the most similar chunks are retrieved, and Gemini answers from
// them.
type Asker struct {
	client   *genai.Client
	embedder newsrag.Embedder
	chunks   newsrag.ChunkService

	// Model is the generative model. Defaults to DefaultModel.
	Model string

	// TopK is the number of chunks retrieved. Defaults to DefaultTopK.
	TopK int
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client, embedder newsrag.Embedder, chunks newsrag.ChunkService) *Asker {
	return &Asker{
		client:   client,
		embedder: embedder,
		chunks:   chunks,
		Model:    DefaultModel,
		TopK:     DefaultTopK,
	}
}

// Ask answers question. When history is non-empty, the question is first
// condensed into a standalone question so follow-ups retrieve the right
// context.
func (a *Asker) Ask(ctx context.Context, history []newsrag.Turn, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", newsrag.Errorf(newsrag.EINVALID, "question required")
	}

	standalone := question
	if len(history) > 0 {
		condensed, err := a.generate(ctx, BuildCondensePrompt(history, question), nil)
		if err != nil {
			return "", fmt.Errorf("condense question: %w", err)
		}
		if condensed = strings.TrimSpace(condensed); condensed != "" {
			standalone = condensed
		}
	}

	vector, err := a.embedder.EmbedQuery(ctx, standalone)
	if err != nil {
		return "", err
	}
	results, err := a.chunks.SearchChunks(ctx, vector, a.TopK)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", newsrag.Errorf(newsrag.ENOTFOUND, "no indexed articles found")
	}

	return a.generate(ctx, BuildUserPrompt(results, history, question), BuildConfig())
}

func (a *Asker) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	result, err := a.client.Models.GenerateContent(ctx, a.Model,
		[]*genai.Content{{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", newsrag.Errorf(newsrag.EINTERNAL, "gemini returned nil result")
	}
	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for answer generation.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: SystemPrompt}},
		},
		Temperature: &temp,
	}
}

// BuildCondensePrompt asks the model to rewrite a follow-up question as a
// standalone question given the conversation so far.
func BuildCondensePrompt(history []newsrag.Turn, question string) string {
	var sb strings.Builder
	sb.WriteString("Given the following conversation and a follow-up question, ")
	sb.WriteString("rephrase the follow-up question to be a standalone question. ")
	sb.WriteString("Reply with the question only.\n\n")
	writeHistory(&sb, history)
	fmt.Fprintf(&sb, "Follow-up question: %s\nStandalone question:", question)
	return sb.String()
}

// BuildUserPrompt builds the prompt containing retrieved chunks, the
// conversation and the question.
func BuildUserPrompt(results []newsrag.SearchResult, history []newsrag.Turn, question string) string {
	var sb strings.Builder
	sb.WriteString("<articles>\n")
	for i, r := range results {
		md := r.Chunk.Metadata
		sb.WriteString("<article>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<headline>%s</headline>\n", md.Headline)
		if md.Category != "" {
			fmt.Fprintf(&sb, "<category>%s</category>\n", md.Category)
		}
		if md.PublicationDate != "" {
			fmt.Fprintf(&sb, "<date>%s</date>\n", md.PublicationDate)
		}
		if md.SourceURL != "" {
			fmt.Fprintf(&sb, "<source>%s</source>\n", md.SourceURL)
		}
		fmt.Fprintf(&sb, "<content>%s</content>\n", r.Chunk.Text)
		sb.WriteString("</article>\n")
	}
	sb.WriteString("</articles>\n\n")
	if len(history) > 0 {
		writeHistory(&sb, history)
	}
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}

func writeHistory(sb *strings.Builder, history []newsrag.Turn) {
	sb.WriteString("<conversation>\n")
	for _, turn := range history {
		fmt.Fprintf(sb, "%s: %s\n", turn.Role, turn.Text)
	}
	sb.WriteString("</conversation>\n\n")
}
