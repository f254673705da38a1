package newsrag

import "context"

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message in a conversation.
type Turn struct {
	Role string
	Text string
}

// Asker provides natural language question answering over the indexed corpus.
type Asker interface {
	// Ask answers question using retrieved chunks. History holds the prior
	// turns of the conversation, oldest first, and may be empty.
	// Returns ENOTFOUND if nothing has been indexed.
	Ask(ctx context.Context, history []Turn, question string) (string, error)
}
