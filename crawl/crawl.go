// Package crawl provides breadth-first news site crawling.
// It coordinates URL normalization and classification, the visited set and
// section frontier, politeness delays, fetching, article extraction, and
// storage of article records.
package crawl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/newsrag"
)

// Frontier filter sizing.
const (
	DefaultExpectedURLs      = 100000
	DefaultFalsePositiveRate = 0.01
)

// Config holds the crawl parameters for one site.
type Config struct {
	// SeedURL is the single entry point of the crawl.
	SeedURL string

	// Prefix is the site's scheme and host. Relative links resolve against it
	// and only URLs under it are followed.
	Prefix string

	// Exclude lists URL substrings that are never followed.
	Exclude []string

	// MinDelay and MaxDelay bound the random pause before each article fetch.
	MinDelay time.Duration
	MaxDelay time.Duration

	// RequestsPerSecond caps fetches per host. Zero disables the cap.
	RequestsPerSecond float64

	// RetryDelays are the waits before each fetch retry.
	// Nil uses DefaultRetryDelays; an empty slice disables retries.
	RetryDelays []time.Duration

	// MaxPages stops the crawl after this many section pages. Zero means no limit.
	MaxPages int

	// ExpectedURLs and FalsePositiveRate size the frontier's Bloom filter.
	ExpectedURLs      uint
	FalsePositiveRate float64
}

// DefaultConfig returns the crawl configuration for the default site.
func DefaultConfig() Config {
	return ConfigFromSite(newsrag.DefaultSite())
}

// ConfigFromSite returns a Config for site with default politeness settings.
func ConfigFromSite(site *newsrag.Site) Config {
	return Config{
		SeedURL:           site.SeedURL,
		Prefix:            site.Prefix,
		Exclude:           append([]string(nil), site.Exclude...),
		MinDelay:          DefaultMinDelay,
		MaxDelay:          DefaultMaxDelay,
		RequestsPerSecond: DefaultRequestsPerSecond,
		ExpectedURLs:      DefaultExpectedURLs,
		FalsePositiveRate: DefaultFalsePositiveRate,
	}
}

// Crawler walks a news site breadth-first from a single seed.
//
// Section pages are traversed to discover links; article pages are fetched,
// extracted, and written to Articles. Every canonical URL is fetched at most
// once per crawl.
type Crawler struct {
	Config Config

	Fetcher   newsrag.Fetcher
	Links     newsrag.LinkExtractor
	Extractor newsrag.ArticleExtractor
	Articles  newsrag.ArticleWriter

	// Fallback and Converter, when both set, supply the body of articles
	// whose site selectors match nothing.
	Fallback  newsrag.Extractor
	Converter newsrag.Converter

	TokenCounter newsrag.TokenCounter
	RateLimiter  newsrag.DomainLimiter
	Throttle     newsrag.Throttle
	Logger       *slog.Logger

	// Now returns the crawl timestamp for new articles. Defaults to time.Now.
	Now func() time.Time
}

// NewCrawler returns a Crawler configured with cfg and the rate limiter and
// politeness throttle it describes. Collaborators are set by the caller.
func NewCrawler(cfg Config) *Crawler {
	return &Crawler{
		Config:      cfg,
		RateLimiter: NewDomainLimiter(cfg.RequestsPerSecond),
		Throttle:    NewRandomDelay(cfg.MinDelay, cfg.MaxDelay),
	}
}

// Result holds the outcome of a crawl operation.
type Result struct {
	Sections   int // section pages processed
	Articles   int // article URLs claimed
	Saved      int
	Duplicates int
	Failed     int
	Skipped    int // popped URLs that were already visited
	Bytes      int
	Tokens     int
}

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type     ProgressType
	URL      string
	Sections int
	Saved    int
	Queued   int
	Error    error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressSection ProgressType = iota
	ProgressSaved
	ProgressDuplicate
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// run holds the state of a single crawl.
type run struct {
	*Crawler
	ctx      context.Context
	norm     *Normalizer
	visited  *VisitedSet
	frontier *Frontier
	result   Result
	progress ProgressFunc
	logger   *slog.Logger
}

// Crawl runs the crawl to completion and returns its counters.
//
// Per-page failures are logged and counted but never stop the crawl. If ctx
// is canceled the partial result is returned along with the context error.
// Returns EINVALID if the seed URL is not under the configured prefix.
func (c *Crawler) Crawl(ctx context.Context, progress ProgressFunc) (*Result, error) {
	norm := &Normalizer{Prefix: c.Config.Prefix, Exclude: c.Config.Exclude}
	seed, ok := norm.Canonical(c.Config.SeedURL)
	if !ok {
		return nil, newsrag.Errorf(newsrag.EINVALID, "seed URL %q is not under %q", c.Config.SeedURL, c.Config.Prefix)
	}

	expected, fpRate := c.Config.ExpectedURLs, c.Config.FalsePositiveRate
	if expected == 0 {
		expected = DefaultExpectedURLs
	}
	if fpRate <= 0 || fpRate >= 1 {
		fpRate = DefaultFalsePositiveRate
	}

	r := &run{
		Crawler:  c,
		ctx:      ctx,
		norm:     norm,
		visited:  NewVisitedSet(),
		frontier: NewFrontier(expected, fpRate),
		progress: progress,
		logger:   c.Logger,
	}
	if r.logger == nil {
		r.logger = slog.New(slog.DiscardHandler)
	}
	r.frontier.Push(seed)

	err := r.loop()
	r.emit(ProgressEvent{Type: ProgressFinished})
	r.logger.Info("crawl finished",
		"sections", r.result.Sections,
		"articles", r.result.Articles,
		"saved", r.result.Saved,
		"duplicates", r.result.Duplicates,
		"failed", r.result.Failed,
	)
	return &r.result, err
}

func (r *run) loop() error {
	for {
		if err := r.ctx.Err(); err != nil {
			return err
		}
		if r.Config.MaxPages > 0 && r.result.Sections >= r.Config.MaxPages {
			r.logger.Info("page limit reached", "limit", r.Config.MaxPages, "queued", r.frontier.Len())
			return nil
		}

		pageURL, ok := r.frontier.Pop()
		if !ok {
			return nil
		}
		if !r.visited.MarkIfNew(pageURL) {
			r.result.Skipped++
			continue
		}
		r.result.Sections++
		r.emit(ProgressEvent{Type: ProgressSection, URL: pageURL})

		if err := r.processSection(pageURL); err != nil {
			return err
		}
	}
}

// processSection fetches a section page, drains its articles, and queues its
// subsections. Only context errors are returned.
func (r *run) processSection(pageURL string) error {
	html, err := r.fetch(pageURL)
	if err != nil {
		if r.ctx.Err() != nil {
			return r.ctx.Err()
		}
		r.fail(pageURL, "fetch section", err)
		return nil
	}

	raw, err := r.Links.ExtractLinks(html)
	if err != nil {
		r.fail(pageURL, "extract links", err)
		return nil
	}
	articles, sections := Classify(r.norm.Normalize(raw))
	r.logger.Debug("section parsed", "url", pageURL, "links", len(raw), "articles", len(articles), "sections", len(sections))

	for _, articleURL := range articles {
		if !r.visited.MarkIfNew(articleURL) {
			continue
		}
		if err := r.processArticle(articleURL); err != nil {
			return err
		}
	}

	for _, sectionURL := range sections {
		if r.visited.Has(sectionURL) {
			continue
		}
		r.frontier.Push(sectionURL)
	}
	return nil
}

// processArticle fetches, extracts, and stores one article.
// Only context errors are returned.
func (r *run) processArticle(articleURL string) error {
	r.result.Articles++

	if r.Throttle != nil {
		if err := r.Throttle.Wait(r.ctx); err != nil {
			return err
		}
	}

	html, err := r.fetch(articleURL)
	if err != nil {
		if r.ctx.Err() != nil {
			return r.ctx.Err()
		}
		r.fail(articleURL, "fetch article", err)
		return nil
	}

	article, err := r.extract(articleURL, html)
	if err != nil {
		r.fail(articleURL, "extract article", err)
		return nil
	}

	if err := r.Articles.CreateArticle(r.ctx, article); err != nil {
		if newsrag.ErrorCode(err) == newsrag.ECONFLICT {
			r.result.Duplicates++
			r.logger.Info("duplicate article", "url", articleURL)
			r.emit(ProgressEvent{Type: ProgressDuplicate, URL: articleURL})
			return nil
		}
		if r.ctx.Err() != nil {
			return r.ctx.Err()
		}
		r.fail(articleURL, "store article", err)
		return nil
	}

	r.result.Saved++
	r.result.Bytes += len(article.Body)
	if r.TokenCounter != nil && article.Body != "" {
		if tokens, err := r.TokenCounter.CountTokens(r.ctx, article.Body); err == nil {
			r.result.Tokens += tokens
		}
	}
	r.emit(ProgressEvent{Type: ProgressSaved, URL: articleURL})
	return nil
}

// extract builds an article record from html. Missing fields are left empty.
func (r *run) extract(articleURL, html string) (*newsrag.Article, error) {
	meta, body, err := r.Extractor.ExtractArticle(html)
	if err != nil {
		return nil, err
	}

	if body == "" && r.Fallback != nil && r.Converter != nil {
		body = r.fallback(articleURL, html, meta)
	}

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	return &newsrag.Article{
		SourceURL:       articleURL,
		Headline:        meta.Headline,
		PublicationDate: meta.PublicationDate,
		Category:        meta.Category,
		Body:            body,
		ContentHash:     ComputeHash(body),
		CrawledAt:       now().UTC(),
	}, nil
}

// fallback extracts the body with the generic extractor and fills metadata
// fields the site selectors missed. It returns "" on any failure.
func (r *run) fallback(articleURL, html string, meta *newsrag.ArticleMetadata) string {
	extracted, err := r.Fallback.Extract(html)
	if err != nil {
		r.logger.Debug("fallback extraction failed", "url", articleURL, "err", err)
		return ""
	}
	text, err := r.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		r.logger.Debug("fallback conversion failed", "url", articleURL, "err", err)
		return ""
	}

	if meta.Headline == nil {
		meta.Headline = newsrag.StringPtr(extracted.Title)
	}
	if meta.PublicationDate == nil {
		meta.PublicationDate = newsrag.StringPtr(extracted.PublicationDate)
	}
	if meta.Category == nil {
		meta.Category = newsrag.StringPtr(extracted.Category)
	}
	return strings.TrimSpace(text)
}

// fetch waits on the host's rate limit and fetches pageURL with retries.
func (r *run) fetch(pageURL string) (string, error) {
	if r.RateLimiter != nil {
		if err := r.RateLimiter.Wait(r.ctx, hostOf(pageURL)); err != nil {
			return "", err
		}
	}
	delays := r.Config.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetry(r.ctx, pageURL, r.Fetcher.Fetch, r.logger, delays)
}

func (r *run) fail(pageURL, op string, err error) {
	r.result.Failed++
	r.logger.Warn(op+" failed", "url", pageURL, "err", err)
	r.emit(ProgressEvent{Type: ProgressFailed, URL: pageURL, Error: err})
}

func (r *run) emit(event ProgressEvent) {
	if r.progress == nil {
		return
	}
	event.Sections = r.result.Sections
	event.Saved = r.result.Saved
	event.Queued = r.frontier.Len()
	r.progress(event)
}
