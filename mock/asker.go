package mock

import (
	"context"

	"github.com/fwojciec/newsrag"
)

var _ newsrag.Asker = (*Asker)(nil)

// Asker is a mock implementation of newsrag.Asker.
type Asker struct {
	AskFn func(ctx context.Context, history []newsrag.Turn, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, history []newsrag.Turn, question string) (string, error) {
	return a.AskFn(ctx, history, question)
}
