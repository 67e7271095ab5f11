package scraper

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"embedbot/models"
)

type fakeScraper struct {
	name string
	host string
}

func (f *fakeScraper) Name() string { return f.name }

func (f *fakeScraper) IsSuitable(u *url.URL) bool {
	return u.Hostname() == f.host
}

func (f *fakeScraper) Scrape(ctx context.Context, u *url.URL) (models.Post, error) {
	return nil, nil
}

func (f *fakeScraper) ShouldEmbed(post models.Post) bool { return true }

func TestRegistryFindFirstMatch(t *testing.T) {
	first := &fakeScraper{name: "first", host: "example.com"}
	shadowed := &fakeScraper{name: "shadowed", host: "example.com"}
	other := &fakeScraper{name: "other", host: "other.com"}
	reg := NewRegistry(first, shadowed, other)

	u, _ := url.Parse("https://example.com/post/1")
	found := reg.Find(u)
	assert.NotNil(t, found)
	assert.Equal(t, "first", found.Name())

	u, _ = url.Parse("https://other.com/post/1")
	found = reg.Find(u)
	assert.NotNil(t, found)
	assert.Equal(t, "other", found.Name())
}

func TestRegistryFindNoMatch(t *testing.T) {
	reg := NewRegistry(&fakeScraper{name: "only", host: "example.com"})

	u, _ := url.Parse("https://unclaimed.net/x")
	assert.Nil(t, reg.Find(u))
}

func TestRegistryNames(t *testing.T) {
	reg := NewRegistry(
		&fakeScraper{name: "a", host: "a.com"},
		&fakeScraper{name: "b", host: "b.com"},
	)
	assert.Equal(t, []string{"a", "b"}, reg.Names())
}
