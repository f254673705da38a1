package main

import (
	"fmt"

	"github.com/fwojciec/newsrag"
)

// Run executes the articles command.
func (c *ArticlesCmd) Run(deps *Dependencies) error {
	filter := newsrag.ArticleFilter{Offset: c.Offset, Limit: c.Limit}
	if c.Category != "" {
		filter.Category = &c.Category
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsrag.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'newsrag crawl' to fetch some.")
		return nil
	}

	total, err := deps.Articles.CountArticles(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsrag.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Articles (%d total):\n\n", total)

	for i, a := range articles {
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s\n", c.Offset+i+1, a.Title(), a.SourceURL)
		if date, category := newsrag.StringValue(a.PublicationDate), newsrag.StringValue(a.Category); date != "" || category != "" {
			fmt.Fprintf(deps.Stdout, "     %s %s\n", date, category)
		}
		if c.Full {
			fmt.Fprintf(deps.Stdout, "\n%s\n\n", a.Body)
		}
	}

	return nil
}
