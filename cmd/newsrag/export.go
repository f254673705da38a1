package main

import (
	"fmt"

	"github.com/fwojciec/newsrag"
	"github.com/fwojciec/newsrag/fs"
)

// exportPageSize is the number of articles loaded per query.
const exportPageSize = 200

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	w := fs.NewWriter(c.Dir)

	var written, skipped int
	for offset := 0; ; offset += exportPageSize {
		articles, err := deps.Articles.FindArticles(deps.Ctx, newsrag.ArticleFilter{Offset: offset, Limit: exportPageSize})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", newsrag.ErrorMessage(err))
			return err
		}

		for _, a := range articles {
			err := w.CreateArticle(deps.Ctx, a)
			switch {
			case err == nil:
				written++
			case newsrag.ErrorCode(err) == newsrag.ECONFLICT:
				skipped++
			default:
				fmt.Fprintf(deps.Stderr, "error: %s: %s\n", a.SourceURL, newsrag.ErrorMessage(err))
				return err
			}
		}

		if len(articles) < exportPageSize {
			break
		}
	}

	fmt.Fprintf(deps.Stdout, "Exported %d articles to %s (%d already present)\n", written, c.Dir, skipped)
	return nil
}
