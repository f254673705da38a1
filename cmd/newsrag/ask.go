package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fwojciec/newsrag"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	vector, err := deps.Embedder.EmbedQuery(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsrag.ErrorMessage(err))
		return err
	}

	results, err := deps.Chunks.SearchChunks(deps.Ctx, vector, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsrag.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No matches. Use 'newsrag index' to build the index.")
		return nil
	}

	for i, r := range results {
		fmt.Fprintf(deps.Stdout, "[%d] score %.3f\n", i+1, r.Score)
	}
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, newsrag.FormatResults(results))
	return nil
}

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answer, err := deps.Asker.Ask(deps.Ctx, nil, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsrag.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}

// Run executes the chat command. Each line read from stdin is a question
// answered with the earlier turns as context. The session ends on an empty
// line or "exit".
func (c *ChatCmd) Run(deps *Dependencies) error {
	var history []newsrag.Turn
	scanner := bufio.NewScanner(deps.Stdin)

	fmt.Fprintln(deps.Stdout, "Ask a question (empty line to quit).")
	for {
		fmt.Fprint(deps.Stdout, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(deps.Stdout)
			return scanner.Err()
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" || question == "exit" || question == "quit" {
			return nil
		}

		answer, err := deps.Asker.Ask(deps.Ctx, history, question)
		if err != nil {
			if deps.Ctx.Err() != nil {
				return err
			}
			fmt.Fprintf(deps.Stderr, "error: %s\n", newsrag.ErrorMessage(err))
			continue
		}

		fmt.Fprintf(deps.Stdout, "%s\n\n", answer)
		history = append(history,
			newsrag.Turn{Role: newsrag.RoleUser, Text: question},
			newsrag.Turn{Role: newsrag.RoleAssistant, Text: answer},
		)
	}
}
