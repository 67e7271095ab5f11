package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"embedbot/embed"
	"embedbot/models"
	"embedbot/scraper"
)

// Embedder runs the scrape → classify → render sequence for a single URL.
// It owns no transport; callers decide how the response is delivered and
// how each error kind is worded.
type Embedder struct {
	Registry *scraper.Registry
}

// Embed resolves rawURL to a rendered response. The returned post is
// non-nil on success; posts implementing io.Closer hold resources that must
// be released after the response has been sent.
//
// A failed scrape of a URL carrying a fragment (reddit share links append
// tracking fragments, observed as a trailing "#") is retried exactly once
// with the fragment stripped.
func (e *Embedder) Embed(ctx context.Context, rawURL, author string, opts *models.EmbedOptions) (*embed.Response, models.Post, error) {
	if opts == nil {
		opts = &models.EmbedOptions{}
	}

	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || !u.IsAbs() || u.Hostname() == "" {
		return nil, nil, fmt.Errorf("%w: %q", scraper.ErrInvalidURL, rawURL)
	}

	s := e.Registry.Find(u)
	if s == nil {
		return nil, nil, scraper.ErrNoAdapter
	}

	post, err := s.Scrape(ctx, u)
	if err != nil && (u.Fragment != "" || strings.HasSuffix(rawURL, "#")) {
		retry := *u
		retry.Fragment = ""
		retry.RawFragment = ""
		post, err = s.Scrape(ctx, &retry)
	}
	if err != nil {
		return nil, nil, err
	}

	if !s.ShouldEmbed(post) {
		return nil, nil, &scraper.NotEligibleError{Post: post}
	}

	r := post.CreateResponse(author, opts, embed.NewResponse())
	return r, post, nil
}

// closePost releases any resources a post holds (e.g. the SVG adapter's
// rasterized temp file).
func closePost(post models.Post) {
	if closer, ok := post.(interface{ Close() error }); ok {
		closer.Close()
	}
}

// isSilent reports whether an error kind is deliberately not surfaced in
// the implicit auto-embed flow.
func isSilent(err error) bool {
	var notEligible *scraper.NotEligibleError
	return errors.Is(err, scraper.ErrNoAdapter) || errors.As(err, &notEligible)
}
