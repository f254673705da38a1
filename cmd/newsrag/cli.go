package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/newsrag"
	"github.com/fwojciec/newsrag/crawl"
	"github.com/fwojciec/newsrag/index"
	"github.com/fwojciec/newsrag/sqlite"
	"github.com/fwojciec/newsrag/yaml"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	DB          *sqlite.DB
	Articles    newsrag.ArticleService
	Supplements newsrag.SupplementService
	Chunks      newsrag.ChunkService
	Crawler     *crawl.Crawler
	Indexer     *index.Indexer
	Embedder    newsrag.Embedder
	Asker       newsrag.Asker

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

func (d *Dependencies) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetches, writes and embedding calls to stderr"`

	Crawl       CrawlCmd       `cmd:"" help:"Crawl the news site and store articles"`
	Articles    ArticlesCmd    `cmd:"" help:"List stored articles"`
	Export      ExportCmd      `cmd:"" help:"Export stored articles as markdown files"`
	AddDocument AddDocumentCmd `cmd:"" name:"add-document" help:"Add a text file to the index"`
	Index       IndexCmd       `cmd:"" help:"Build the vector index over stored articles"`
	Search      SearchCmd      `cmd:"" help:"Show the chunks most similar to a query"`
	Ask         AskCmd         `cmd:"" help:"Ask a question about the news"`
	Chat        ChatCmd        `cmd:"" help:"Ask follow-up questions interactively"`
}

// Fallback extractor names accepted by the crawl command.
const (
	FallbackNone        = "none"
	FallbackTrafilatura = "trafilatura"
	FallbackReadability = "readability"
)

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Site      string        `help:"YAML site profile overriding the built-in delfi.lt profile"`
	Seed      string        `help:"Seed URL overriding the site profile"`
	MinDelay  time.Duration `default:"1s" help:"Minimum random delay before each article fetch"`
	MaxDelay  time.Duration `default:"4s" help:"Maximum random delay before each article fetch"`
	RPS       float64       `name:"rps" default:"1" help:"Requests per second per host (0 disables the limit)"`
	Timeout   time.Duration `default:"10s" help:"Per-request timeout"`
	UserAgent string        `help:"User-Agent header (default rotates browser agents)"`
	MaxPages  int           `help:"Stop after this many section pages (0 means no limit)"`
	Fallback  string        `enum:"none,trafilatura,readability" default:"none" help:"Generic extractor used when site selectors find no body"`
}

// LoadSite returns the site profile for the crawl.
func (c *CrawlCmd) LoadSite() (*newsrag.Site, error) {
	site := newsrag.DefaultSite()
	if c.Site != "" {
		var err error
		if site, err = yaml.LoadSite(c.Site); err != nil {
			return nil, err
		}
	}
	if c.Seed != "" {
		site.SeedURL = c.Seed
	}
	return site, nil
}

// Config returns the crawl configuration for site with the command's flags applied.
func (c *CrawlCmd) Config(site *newsrag.Site) (crawl.Config, error) {
	if c.MinDelay < 0 || c.MaxDelay < c.MinDelay {
		return crawl.Config{}, newsrag.Errorf(newsrag.EINVALID, "invalid delay range %s..%s", c.MinDelay, c.MaxDelay)
	}
	if c.RPS < 0 {
		return crawl.Config{}, newsrag.Errorf(newsrag.EINVALID, "requests per second must not be negative")
	}
	if c.MaxPages < 0 {
		return crawl.Config{}, newsrag.Errorf(newsrag.EINVALID, "max pages must not be negative")
	}
	cfg := crawl.ConfigFromSite(site)
	cfg.MinDelay = c.MinDelay
	cfg.MaxDelay = c.MaxDelay
	cfg.RequestsPerSecond = c.RPS
	cfg.MaxPages = c.MaxPages
	return cfg, nil
}

// ArticlesCmd is the "articles" subcommand.
type ArticlesCmd struct {
	Category string `help:"Only list articles in this category"`
	Limit    int    `default:"20" help:"Maximum number of articles to list"`
	Offset   int    `help:"Number of articles to skip"`
	Full     bool   `help:"Print article bodies"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir string `arg:"" help:"Output directory"`
}

// AddDocumentCmd is the "add-document" subcommand.
type AddDocumentCmd struct {
	Path string `arg:"" type:"existingfile" help:"Text file to add"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search query"`
	Limit int    `short:"k" default:"3" help:"Number of chunks to show"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct{}
