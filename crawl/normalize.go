package crawl

import (
	"net/url"
	"strings"
)

// Normalizer turns raw link targets into canonical URLs for one site.
//
// A canonical URL is absolute, starts with Prefix (scheme and host), carries
// no fragment and contains none of the Exclude substrings.
type Normalizer struct {
	// Prefix is the site's scheme and host, e.g. "https://www.delfi.lt".
	Prefix string

	// Exclude lists substrings that disqualify a URL, e.g. "diskusija".
	Exclude []string
}

// Normalize deduplicates raw, drops excluded URLs and resolves the rest
// against Prefix. The result is deduplicated and keeps first-occurrence order.
// Targets that cannot be made canonical (empty, unparseable, non-http(s),
// or on another host) are dropped.
func (n *Normalizer) Normalize(raw []string) []string {
	base, err := url.Parse(n.Prefix)
	if err != nil {
		return nil
	}

	// Deduplicate exact strings.
	seen := make(map[string]struct{}, len(raw))
	unique := make([]string, 0, len(raw))
	for _, u := range raw {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		unique = append(unique, u)
	}

	// Drop deny-listed URLs.
	kept := make([]string, 0, len(unique))
	for _, u := range unique {
		if n.excluded(u) {
			continue
		}
		kept = append(kept, u)
	}

	// Canonicalize. Distinct raw forms may resolve to the same URL.
	out := make([]string, 0, len(kept))
	canonical := make(map[string]struct{}, len(kept))
	for _, u := range kept {
		c, ok := n.canonicalize(base, u)
		if !ok {
			continue
		}
		if _, dup := canonical[c]; dup {
			continue
		}
		canonical[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Canonical returns the canonical form of a single URL.
// The bool result is false if the URL is excluded or cannot be made canonical.
func (n *Normalizer) Canonical(raw string) (string, bool) {
	if n.excluded(raw) {
		return "", false
	}
	base, err := url.Parse(n.Prefix)
	if err != nil {
		return "", false
	}
	return n.canonicalize(base, raw)
}

func (n *Normalizer) canonicalize(base *url.URL, raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	// Absolute and relative forms of one page serialize identically.
	ref, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return "", false
	}
	if !strings.EqualFold(resolved.Host, base.Host) {
		return "", false
	}
	resolved.Scheme = base.Scheme
	resolved.Host = base.Host
	resolved.Fragment = ""
	resolved.RawFragment = ""
	if resolved.Path == "" {
		resolved.Path = "/"
		resolved.RawPath = ""
	}

	result := resolved.String()
	if n.excluded(result) {
		return "", false
	}
	return result, true
}

func (n *Normalizer) excluded(u string) bool {
	for _, marker := range n.Exclude {
		if marker != "" && strings.Contains(u, marker) {
			return true
		}
	}
	return false
}
