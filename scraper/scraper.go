// Package scraper defines the contract every site adapter implements and
// the registry that dispatches URLs to the first adapter claiming them.
package scraper

import (
	"context"
	"net/url"

	"embedbot/models"
)

// UserAgent is sent with every outgoing fetch unless overridden by config.
const UserAgent = "embedbot v0.2"

// Scraper converts one site's URL space into normalized posts.
//
// IsSuitable is a pure domain/path predicate and must not perform I/O.
// Scrape performs the network fetch and parsing; it either returns a fully
// populated post or an error, never partial data. ShouldEmbed evaluates the
// scraped post against the adapter's embed policy without side effects.
type Scraper interface {
	Name() string
	IsSuitable(u *url.URL) bool
	Scrape(ctx context.Context, u *url.URL) (models.Post, error)
	ShouldEmbed(post models.Post) bool
}

// Registry is an ordered list of adapters. It is read-only after
// construction and safe for concurrent use.
type Registry struct {
	scrapers []Scraper
}

func NewRegistry(scrapers ...Scraper) *Registry {
	return &Registry{scrapers: scrapers}
}

// Find returns the first adapter whose IsSuitable claims the URL, or nil.
// At most one adapter is consulted per URL.
func (r *Registry) Find(u *url.URL) Scraper {
	for _, s := range r.scrapers {
		if s.IsSuitable(u) {
			return s
		}
	}
	return nil
}

// Names lists the registered adapters in dispatch order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.scrapers))
	for i, s := range r.scrapers {
		names[i] = s.Name()
	}
	return names
}
