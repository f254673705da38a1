package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/newsrag"
	"github.com/fwojciec/newsrag/crawl"
	"github.com/fwojciec/newsrag/gemini"
	"github.com/fwojciec/newsrag/goquery"
	"github.com/fwojciec/newsrag/htmltomarkdown"
	nrhttp "github.com/fwojciec/newsrag/http"
	"github.com/fwojciec/newsrag/index"
	"github.com/fwojciec/newsrag/readability"
	nrslog "github.com/fwojciec/newsrag/slog"
	"github.com/fwojciec/newsrag/sqlite"
	"github.com/fwojciec/newsrag/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ArticleService    newsrag.ArticleService
	SupplementService newsrag.SupplementService
	ChunkService      newsrag.ChunkService
	IndexService      newsrag.IndexService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newsrag"),
		kong.Description("Crawl a news site and answer questions about it."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'newsrag --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd = kongCtx.Command()

	level := slog.LevelError
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// A database that cannot be opened is the only fatal startup error.
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set NEWSRAG_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ArticleService = sqlite.NewArticleService(m.DB)
	m.SupplementService = sqlite.NewSupplementService(m.DB)
	m.ChunkService = sqlite.NewChunkService(m.DB)
	m.IndexService = sqlite.NewIndexService(m.DB)
	deps.DB = m.DB
	deps.Articles = m.ArticleService
	deps.Supplements = m.SupplementService
	deps.Chunks = m.ChunkService

	switch cmd {
	case "crawl":
		crawler, err := m.newCrawler(&cli.Crawl, logger)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", newsrag.ErrorMessage(err))
			return err
		}
		defer crawler.Fetcher.Close()
		deps.Crawler = crawler

	case "add-document <path>", "index", "search <query>", "ask <question>", "chat":
		client, err := newGenaiClient(ctx, stderr)
		if err != nil {
			return err
		}
		embedder := nrslog.NewLoggingEmbedder(gemini.NewEmbedder(client), logger)
		deps.Embedder = embedder
		deps.Indexer = &index.Indexer{
			Articles:    m.ArticleService,
			Supplements: m.SupplementService,
			Chunks:      m.ChunkService,
			Indexes:     m.IndexService,
			Embedder:    embedder,
			Logger:      logger,
		}
		deps.Asker = gemini.NewAsker(client, embedder, m.ChunkService)
	}

	return kongCtx.Run(deps)
}

// newCrawler wires the crawl pipeline from the command's flags.
func (m *Main) newCrawler(c *CrawlCmd, logger *slog.Logger) (*crawl.Crawler, error) {
	site, err := c.LoadSite()
	if err != nil {
		return nil, err
	}
	cfg, err := c.Config(site)
	if err != nil {
		return nil, err
	}

	opts := []nrhttp.Option{nrhttp.WithTimeout(c.Timeout)}
	if c.UserAgent != "" {
		opts = append(opts, nrhttp.WithUserAgent(c.UserAgent))
	}

	tokenCounter, err := gemini.NewTokenCounter(gemini.DefaultTokenizerModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create token counter: %w", err)
	}

	crawler := crawl.NewCrawler(cfg)
	crawler.Fetcher = nrslog.NewLoggingFetcher(nrhttp.NewFetcher(opts...), logger)
	crawler.Links = goquery.NewLinkExtractor()
	crawler.Extractor = goquery.NewArticleExtractor(site.Selectors)
	crawler.Articles = nrslog.NewLoggingArticleWriter(m.ArticleService, logger)
	crawler.TokenCounter = tokenCounter
	crawler.Logger = logger

	switch c.Fallback {
	case FallbackTrafilatura:
		crawler.Fallback = trafilatura.NewExtractor()
	case FallbackReadability:
		crawler.Fallback = readability.NewExtractor()
	}
	if crawler.Fallback != nil {
		converter := htmltomarkdown.NewConverter()
		converter.Domain = site.Prefix
		crawler.Converter = converter
	}
	return crawler, nil
}

func newGenaiClient(ctx context.Context, stderr io.Writer) (*genai.Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}
	return client, nil
}

func defaultDBPath() string {
	if path := os.Getenv("NEWSRAG_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "newsrag.db"
	}
	dir := filepath.Join(home, ".newsrag")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "newsrag.db")
}
