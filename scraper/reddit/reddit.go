// Package reddit scrapes reddit.com posts through the public .json listing
// endpoint, including crossposts, galleries, hosted video and singled-out
// comments.
package reddit

import (
	"context"
	"html"
	"net/url"
	"sort"
	"strings"

	"embedbot/models"
	"embedbot/scraper"
	"embedbot/settings"
	"embedbot/utils"
)

var domains = []string{"reddit.com", "www.reddit.com", "old.reddit.com"}

// Scraper is the reddit adapter.
type Scraper struct {
	client *scraper.Client
	store  *settings.Store
}

func New(client *scraper.Client, store *settings.Store) *Scraper {
	return &Scraper{client: client, store: store}
}

func (s *Scraper) Name() string { return "reddit" }

func (s *Scraper) IsSuitable(u *url.URL) bool {
	for _, d := range domains {
		if u.Hostname() == d {
			return true
		}
	}
	return false
}

func (s *Scraper) ShouldEmbed(post models.Post) bool {
	return s.store.Reddit().Allows(post.Classify())
}

func (s *Scraper) Scrape(ctx context.Context, u *url.URL) (models.Post, error) {
	canonical := s.canonicalPostURL(ctx, u)
	canonical.RawQuery = ""
	canonical.Fragment = ""

	apiURL := *canonical
	apiURL.Path = strings.TrimRight(apiURL.Path, "/") + ".json"

	doc, err := s.client.GetJSON(ctx, apiURL.String())
	if err != nil {
		return nil, err
	}

	return analyzePost(canonical, doc)
}

// canonicalPostURL resolves share links by following redirects. If the
// request fails or lands on the over-18 interstitial the input URL is kept.
func (s *Scraper) canonicalPostURL(ctx context.Context, u *url.URL) *url.URL {
	resp, err := s.client.Get(ctx, u.String())
	if err != nil {
		return u
	}
	defer resp.Body.Close()

	final := resp.Request.URL
	if final.Path == "/over18" {
		return u
	}
	return final
}

// analyzePost converts the decoded listing response into a Post. The URL
// must already be the canonical post URL.
func analyzePost(src *url.URL, doc any) (*Post, error) {
	topLevel, err := scraper.NavObject(doc, 0, "data", "children", 0, "data")
	if err != nil {
		return nil, err
	}

	title, err := scraper.NavString(topLevel, "title")
	if err != nil {
		return nil, err
	}

	subreddit, err := scraper.NavString(topLevel, "subreddit")
	if err != nil {
		return nil, err
	}

	// postJSON is the top-level record, or the original post when this is
	// a crosspost.
	postJSON := topLevel
	isXpost := false
	if parent, err := scraper.NavObject(topLevel, "crosspost_parent_list", 0); err == nil {
		postJSON = parent
		isXpost = true
	}

	origin := models.JustOrigin(subreddit)
	if isXpost {
		originalSubreddit, err := scraper.NavString(postJSON, "subreddit")
		if err != nil {
			return nil, err
		}
		origin = models.Crossposted(originalSubreddit, subreddit)
	}

	selftext, err := scraper.NavString(postJSON, "selftext")
	if err != nil {
		return nil, err
	}

	flair, _ := scraper.NavString(postJSON, "link_flair_text")
	nsfw, _ := scraper.NavBool(postJSON, "over_18")
	spoiler, _ := scraper.NavBool(postJSON, "spoiler")

	common := models.PostCommon{
		SourceURL:    src,
		Title:        html.UnescapeString(title),
		BodyText:     html.UnescapeString(selftext),
		Flair:        flair,
		NSFW:         nsfw,
		Spoiler:      spoiler,
		Origin:       origin,
		ReplyContext: linkedComment(src, doc),
	}

	content, err := specializedContent(postJSON, topLevel)
	if err != nil {
		return nil, err
	}

	return &Post{PostCommon: common, content: content}, nil
}

// linkedComment returns the singled-out comment of the listing, but only
// when the scraped URL points at exactly that comment.
func linkedComment(src *url.URL, doc any) *models.Comment {
	comment, err := scraper.Nav(doc, 1, "data", "children", 0, "data")
	if err != nil {
		return nil
	}

	id, err := scraper.NavString(comment, "id")
	if err != nil || !utils.URLPathEndsWith(src, id) {
		return nil
	}

	author, err := scraper.NavString(comment, "author")
	if err != nil {
		return nil
	}
	body, err := scraper.NavString(comment, "body")
	if err != nil {
		return nil
	}

	return &models.Comment{Author: author, Body: html.UnescapeString(body)}
}

// parseAbsURL rejects relative strings such as the literal "default" reddit
// puts into thumbnail fields of deleted posts.
func parseAbsURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() {
		return nil, &scraper.ParseError{Reason: "expected absolute url, got " + raw}
	}
	return u, nil
}

func specializedContent(postJSON, topLevel map[string]any) (models.Content, error) {
	// thumbnail can be "default" when a crosspost's original was deleted
	altEmbedURL := func() (*url.URL, error) {
		thumb, err := scraper.NavString(topLevel, "thumbnail")
		if err != nil {
			return nil, err
		}
		return parseAbsURL(thumb)
	}

	if sm, err := scraper.NavObject(postJSON, "secure_media"); err == nil {
		if _, ok := sm["reddit_video"]; ok {
			fallback, err := scraper.NavString(sm, "reddit_video", "fallback_url")
			if err != nil {
				return nil, err
			}
			u, err := parseAbsURL(fallback)
			if err != nil {
				return nil, &scraper.ParseError{Reason: "invalid video url", Err: err}
			}
			return models.VideoContent{URL: u}, nil
		}

		if _, ok := sm["oembed"]; ok {
			thumb, err := scraper.NavString(sm, "oembed", "thumbnail_url")
			if err != nil {
				return nil, err
			}
			u, err := parseAbsURL(thumb)
			if err != nil {
				if u, err = altEmbedURL(); err != nil {
					return nil, &scraper.ParseError{Reason: "invalid oembed thumbnail", Err: err}
				}
			}
			return models.ImageContent{URL: u}, nil
		}
	}

	if meta, err := scraper.NavObject(postJSON, "media_metadata"); err == nil {
		return galleryContent(postJSON, meta)
	}

	rawURL, err := scraper.NavString(postJSON, "url")
	if err != nil {
		return nil, err
	}
	u, err := parseAbsURL(rawURL)
	if err != nil {
		if u, err = altEmbedURL(); err != nil {
			return models.TextContent{}, nil
		}
	}

	switch {
	case utils.URLPathEndsWithImageExtension(u):
		return models.ImageContent{URL: u}, nil
	case utils.URLPathEndsWith(u, ".gifv"):
		return models.VideoContent{URL: u}, nil
	default:
		return models.TextContent{}, nil
	}
}

// galleryContent builds the image list of a gallery post. Order follows
// gallery_data.items when present (the only ordered representation the API
// offers); otherwise media_metadata keys are walked in sorted order since
// object key order is not guaranteed.
func galleryContent(postJSON, meta map[string]any) (models.Content, error) {
	var ids []string
	if items, err := scraper.NavArray(postJSON, "gallery_data", "items"); err == nil {
		for i := range items {
			id, err := scraper.NavString(items, i, "media_id")
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
	} else {
		for id := range meta {
			ids = append(ids, id)
		}
		sort.Strings(ids)
	}

	urls := make([]*url.URL, 0, len(ids))
	for _, id := range ids {
		raw, err := scraper.NavString(meta, id, "s", "u")
		if err != nil {
			return nil, err
		}
		u, err := parseAbsURL(html.UnescapeString(raw))
		if err != nil {
			return nil, &scraper.ParseError{Reason: "invalid gallery image url", Err: err}
		}
		urls = append(urls, u)
	}

	if len(urls) == 0 {
		return nil, &scraper.ParseError{Reason: "empty media_metadata"}
	}
	if len(urls) == 1 {
		return models.ImageContent{URL: urls[0]}, nil
	}
	return models.GalleryContent{URLs: urls}, nil
}
