// Package imgur scrapes imgur.com pages through the image_src link tag.
// Upstream markup changes have broken this before; treat it as best-effort.
package imgur

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"embedbot/embed"
	"embedbot/models"
	"embedbot/scraper"
	"embedbot/utils"
)

const titleSuffix = " - Imgur"

// titleOverhead is the per-template budget for "'%s' - **imgur**".
const titleOverhead = 14

// Post is a scraped imgur image. Imgur posts are always classified as
// images; video and gallery pages are not supported.
type Post struct {
	models.PostCommon
	content models.ImageContent
}

func (p *Post) Common() *models.PostCommon { return &p.PostCommon }
func (p *Post) Content() models.Content    { return p.content }

func (p *Post) Classify() models.Classification {
	return models.ClassifyCommon(&p.PostCommon, p.content)
}

func fmtTitle(p *Post) string {
	title := utils.LimitLen(utils.EscapeMarkdown(p.Title), utils.EmbedTitleMaxLen-titleOverhead)
	return fmt.Sprintf("'%s' - **imgur**", title)
}

func (p *Post) CreateResponse(author string, opts *models.EmbedOptions, r *embed.Response) *embed.Response {
	r.Title(fmtTitle(p)).
		Author(author).
		URL(p.SourceURL.String()).
		Image(p.content.URL.String())
	if opts.Comment != "" {
		r.AuthorComment(author, opts.Comment)
	}
	return r
}

// Scraper is the imgur adapter.
type Scraper struct {
	client *scraper.Client
}

func New(client *scraper.Client) *Scraper {
	return &Scraper{client: client}
}

func (s *Scraper) Name() string { return "imgur" }

func (s *Scraper) IsSuitable(u *url.URL) bool {
	host := u.Hostname()
	return host == "imgur.com" || strings.HasSuffix(host, ".imgur.com")
}

// ShouldEmbed always allows imgur posts; there is no policy dimension to
// filter on.
func (s *Scraper) ShouldEmbed(models.Post) bool { return true }

func (s *Scraper) Scrape(ctx context.Context, u *url.URL) (models.Post, error) {
	doc, err := s.client.GetHTML(ctx, u.String())
	if err != nil {
		return nil, err
	}
	return analyzePost(u, doc)
}

func analyzePost(src *url.URL, doc *goquery.Document) (*Post, error) {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return nil, &scraper.ParseError{Reason: "could not find title"}
	}
	title = strings.TrimSuffix(title, titleSuffix)

	href, ok := doc.Find(`link[rel="image_src"]`).First().Attr("href")
	if !ok {
		return nil, &scraper.ParseError{Reason: "could not find image_src link"}
	}

	imgURL, err := url.Parse(href)
	if err != nil {
		return nil, &scraper.ParseError{Reason: "invalid image url", Err: err}
	}

	return &Post{
		PostCommon: models.PostCommon{
			SourceURL: src,
			Title:     title,
			Origin:    models.JustOrigin("imgur"),
		},
		content: models.ImageContent{URL: imgURL},
	}, nil
}
