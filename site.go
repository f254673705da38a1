package newsrag

import (
	"net/url"
	"strings"
)

// ArticleSelectors are the CSS selectors used to pull fields out of an
// article page.
type ArticleSelectors struct {
	Headline  string `yaml:"headline"`
	Date      string `yaml:"date"`
	Category  string `yaml:"category"`
	Lead      string `yaml:"lead"`
	Body      string `yaml:"body"`
	Paragraph string `yaml:"paragraph"`
}

// Site describes a crawl target: where to start, which URLs belong to it, and
// how its article pages are laid out.
type Site struct {
	Name      string           `yaml:"name"`
	SeedURL   string           `yaml:"seed"`
	Prefix    string           `yaml:"prefix"`
	Exclude   []string         `yaml:"exclude"`
	Selectors ArticleSelectors `yaml:"selectors"`
}

// DefaultSite returns the profile for www.delfi.lt.
func DefaultSite() *Site {
	return &Site{
		Name:    "delfi",
		SeedURL: "https://www.delfi.lt/",
		Prefix:  "https://www.delfi.lt",
		Exclude: []string{"diskusija"},
		Selectors: ArticleSelectors{
			Headline:  "h1.article-info__title",
			Date:      "div.article-info__publish-date",
			Category:  `span[itemprop="name"]`,
			Lead:      `div[class*="article-info__lead"]`,
			Body:      "div.col.col-article.article__body-fs-1",
			Paragraph: "div.fragment.fragment-html.fragment-html--paragraph",
		},
	}
}

// Validate returns an error if the site profile cannot drive a crawl.
func (s *Site) Validate() error {
	if s.SeedURL == "" {
		return Errorf(EINVALID, "site seed URL required")
	}
	if s.Prefix == "" {
		return Errorf(EINVALID, "site prefix required")
	}
	u, err := url.Parse(s.Prefix)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return Errorf(EINVALID, "site prefix %q must be an absolute http(s) URL", s.Prefix)
	}
	if strings.TrimRight(u.Path, "/") != "" {
		return Errorf(EINVALID, "site prefix %q must not carry a path", s.Prefix)
	}
	return nil
}
