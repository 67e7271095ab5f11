// Package twitter scrapes twitter.com/x.com posts. Tweets are rendered
// client-side, so scraping navigates a headless browser and parses the
// resulting DOM; concurrent browser sessions are capped to avoid resource
// exhaustion.
package twitter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/viper"

	"embedbot/embed"
	"embedbot/models"
	"embedbot/scraper"
	"embedbot/settings"
	"embedbot/utils"
)

const mediaCDNPrefix = "https://pbs.twimg.com/media"

// ellipsisPlaceholder is the truncation artifact twitter renders inside
// tweet text nodes.
const ellipsisPlaceholder = "…"

// Post is a scraped tweet. Author is the handle from the URL's first path
// segment; tweets have no title.
type Post struct {
	models.PostCommon
	Author  string
	content models.Content
}

func (p *Post) Common() *models.PostCommon { return &p.PostCommon }
func (p *Post) Content() models.Content    { return p.content }

func (p *Post) Classify() models.Classification {
	return models.ClassifyCommon(&p.PostCommon, p.content)
}

func fmtTitle(p *Post) string {
	return fmt.Sprintf("@%s - **twitter.com**", p.Author)
}

func (p *Post) baseEmbed(author string, opts *models.EmbedOptions, r *embed.Response) *embed.Response {
	r.Title(fmtTitle(p)).
		Description(utils.LimitDescrLen(p.BodyText)).
		Author(author).
		URL(p.SourceURL.String())
	if opts.Comment != "" {
		r.AuthorComment(author, opts.Comment)
	}
	return r
}

func (p *Post) manualEmbed(author string, embedURLs []*url.URL, comment string) string {
	authorComment := ""
	if comment != "" {
		authorComment = fmt.Sprintf("**Comment By %s:**\n%s\n\n", author, comment)
	}

	urls := make([]string, len(embedURLs))
	for i, u := range embedURLs {
		urls[i] = u.String()
	}

	return fmt.Sprintf(">>> **%s**\nSource: <%s>\nEmbedURL: %s\n\n%s%s\n\n%s",
		author,
		p.SourceURL,
		strings.Join(urls, "\n"),
		authorComment,
		fmtTitle(p),
		utils.LimitDescrLen(utils.EscapeMarkdown(p.BodyText)),
	)
}

func (p *Post) CreateResponse(author string, opts *models.EmbedOptions, r *embed.Response) *embed.Response {
	switch content := p.content.(type) {
	case models.ImageContent:
		return p.baseEmbed(author, opts, r).Image(content.URL.String())
	case models.GalleryContent:
		return r.Content(p.manualEmbed(author, content.URLs, opts.Comment))
	case models.VideoContent:
		return r.Content(p.manualEmbed(author, []*url.URL{content.URL}, opts.Comment))
	case models.VideoPreviewContent:
		return p.baseEmbed(author, opts, r).
			Image(content.ThumbnailURL.String()).
			Footer("This was originally a video. Click to watch on twitter.")
	default:
		return p.baseEmbed(author, opts, r)
	}
}

// Scraper is the twitter adapter.
type Scraper struct {
	store *settings.Store
	// sessions caps concurrent headless-browser instances.
	sessions chan struct{}
}

func New(store *settings.Store) *Scraper {
	max := viper.GetInt("twitter.maxSessions")
	if max <= 0 {
		max = 2
	}
	return &Scraper{store: store, sessions: make(chan struct{}, max)}
}

func (s *Scraper) Name() string { return "twitter" }

func (s *Scraper) IsSuitable(u *url.URL) bool {
	host := u.Hostname()
	return host == "twitter.com" || host == "www.twitter.com" ||
		host == "x.com" || host == "www.x.com"
}

func (s *Scraper) ShouldEmbed(post models.Post) bool {
	kind := post.Content().Kind()
	switch kind {
	case models.ContentGallery:
		// multiple tweet images are still images policy-wise
		kind = models.ContentImage
	case models.ContentVideoPreview:
		kind = models.ContentVideo
	}
	return s.store.Twitter().Allows(kind)
}

func (s *Scraper) Scrape(ctx context.Context, u *url.URL) (models.Post, error) {
	select {
	case s.sessions <- struct{}{}:
		defer func() { <-s.sessions }()
	case <-ctx.Done():
		return nil, &scraper.FetchError{URL: u.String(), Err: ctx.Err()}
	}

	content, err := renderedHTML(ctx, u.String())
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, &scraper.ParseError{Reason: "invalid html", Err: err}
	}

	return analyzePost(u, doc)
}

func analyzePost(src *url.URL, doc *goquery.Document) (*Post, error) {
	author := authorFromURL(src)
	if author == "" {
		return nil, &scraper.ParseError{Reason: "url missing author path segment"}
	}

	post := &Post{
		PostCommon: models.PostCommon{
			SourceURL: src,
			BodyText:  tweetText(doc),
			Origin:    models.JustOrigin("twitter.com"),
		},
		Author: author,
	}

	if urls := mediaImages(doc); len(urls) == 1 {
		post.content = models.ImageContent{URL: urls[0]}
		return post, nil
	} else if len(urls) > 1 {
		post.content = models.GalleryContent{URLs: urls}
		return post, nil
	}

	video := doc.Find("article video").First()
	if video.Length() == 0 {
		post.content = models.TextContent{}
		return post, nil
	}

	if videoType, _ := video.Attr("type"); videoType == "video/mp4" {
		rawSrc, ok := video.Attr("src")
		if !ok {
			return nil, &scraper.ParseError{Reason: "video element missing src"}
		}
		u, err := url.Parse(rawSrc)
		if err != nil {
			return nil, &scraper.ParseError{Reason: "invalid video url", Err: err}
		}
		post.content = models.VideoContent{URL: u}
		return post, nil
	}

	// non-mp4 players cannot be embedded, offer the poster as a preview
	poster, ok := video.Attr("poster")
	if !ok {
		return nil, &scraper.ParseError{Reason: "video element missing poster"}
	}
	u, err := url.Parse(poster)
	if err != nil {
		return nil, &scraper.ParseError{Reason: "invalid poster url", Err: err}
	}
	post.content = models.VideoPreviewContent{ThumbnailURL: u}
	return post, nil
}

func authorFromURL(u *url.URL) string {
	for _, segment := range strings.Split(u.Path, "/") {
		if segment != "" {
			return segment
		}
	}
	return ""
}

// tweetText collects the text of the tweet body, dropping the literal
// ellipsis placeholder nodes twitter inserts for truncated links.
func tweetText(doc *goquery.Document) string {
	sel := doc.Find(`article div[data-testid="tweetText"]`).First()
	if sel.Length() == 0 {
		return ""
	}

	var b strings.Builder
	collectText(sel, &b)
	return b.String()
}

func collectText(sel *goquery.Selection, b *strings.Builder) {
	sel.Contents().Each(func(_ int, child *goquery.Selection) {
		if goquery.NodeName(child) == "#text" {
			if text := child.Text(); text != ellipsisPlaceholder {
				b.WriteString(text)
			}
			return
		}
		collectText(child, b)
	})
}

// mediaImages returns the tweet's images: img elements with non-empty alt
// text hosted on the media CDN.
func mediaImages(doc *goquery.Document) []*url.URL {
	var urls []*url.URL
	doc.Find("article img[alt]").Each(func(_ int, sel *goquery.Selection) {
		if alt, _ := sel.Attr("alt"); alt == "" {
			return
		}
		src, ok := sel.Attr("src")
		if !ok || !strings.HasPrefix(src, mediaCDNPrefix) {
			return
		}
		if u, err := url.Parse(src); err == nil {
			urls = append(urls, u)
		}
	})
	return urls
}
