package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/newsrag"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	result, err := deps.Indexer.IndexAll(deps.Ctx)
	if err != nil {
		if newsrag.ErrorCode(err) == newsrag.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "error: nothing to index. Use 'newsrag crawl' or 'newsrag add-document' first.")
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsrag.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d documents into %d chunks", result.Sources, result.Chunks)
	if result.Skipped > 0 {
		fmt.Fprintf(deps.Stdout, " (%d without text skipped)", result.Skipped)
	}
	fmt.Fprintln(deps.Stdout)
	return nil
}

// Run executes the add-document command.
func (c *AddDocumentCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	supplement, n, err := deps.Indexer.IndexSupplement(deps.Ctx, string(data), deps.now())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsrag.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added document %s (%d chunks)\n", supplement.ID, n)
	return nil
}
