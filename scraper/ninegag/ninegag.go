// Package ninegag scrapes 9gag.com posts. The post data lives in an inline
// script that feeds a JSON blob through JSON.parse; the blob is located by
// its delimiters rather than fixed offsets since the surrounding template
// changes without notice.
package ninegag

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"embedbot/embed"
	"embedbot/models"
	"embedbot/scraper"
	"embedbot/settings"
	"embedbot/utils"
)

const titleSuffix = " - 9GAG"

// titleOverhead is the per-template budget for "'%s' - **9GAG**": the two
// quotes plus the 11-byte suffix.
const titleOverhead = 13

// Post is a scraped 9GAG post. 9GAG has no text or gallery posts in this
// model; content is always a single image or video.
type Post struct {
	models.PostCommon
	content models.Content
}

func (p *Post) Common() *models.PostCommon { return &p.PostCommon }
func (p *Post) Content() models.Content    { return p.content }

func (p *Post) Classify() models.Classification {
	return models.ClassifyCommon(&p.PostCommon, p.content)
}

func fmtTitle(p *Post) string {
	title := utils.LimitLen(utils.EscapeMarkdown(p.Title), utils.EmbedTitleMaxLen-titleOverhead)
	return fmt.Sprintf("'%s' - **9GAG**", title)
}

func (p *Post) CreateResponse(author string, opts *models.EmbedOptions, r *embed.Response) *embed.Response {
	switch content := p.content.(type) {
	case models.ImageContent:
		r.Title(fmtTitle(p)).
			URL(p.SourceURL.String()).
			Image(content.URL.String())
		if opts.Comment != "" {
			r.AuthorComment(author, opts.Comment)
		}
		return r
	case models.VideoContent:
		authorComment := ""
		if opts.Comment != "" {
			authorComment = fmt.Sprintf("**Comment By %s:**\n%s\n\n", author, opts.Comment)
		}
		return r.Content(fmt.Sprintf(">>> **%s**\nSource: <%s>\nEmbedURL: %s\n\n%s%s",
			author, p.SourceURL, content.URL, authorComment, fmtTitle(p)))
	default:
		return r
	}
}

// Scraper is the 9GAG adapter.
type Scraper struct {
	client *scraper.Client
	store  *settings.Store
}

func New(client *scraper.Client, store *settings.Store) *Scraper {
	return &Scraper{client: client, store: store}
}

func (s *Scraper) Name() string { return "9gag" }

func (s *Scraper) IsSuitable(u *url.URL) bool {
	return u.Hostname() == "9gag.com"
}

func (s *Scraper) ShouldEmbed(post models.Post) bool {
	return s.store.NineGag().Allows(post.Content().Kind())
}

func (s *Scraper) Scrape(ctx context.Context, u *url.URL) (models.Post, error) {
	doc, err := s.client.GetHTML(ctx, u.String())
	if err != nil {
		return nil, err
	}
	return analyzePost(u, doc)
}

func analyzePost(src *url.URL, doc *goquery.Document) (*Post, error) {
	title := doc.Find("title").First().Text()
	if title == "" {
		return nil, &scraper.ParseError{Reason: "could not find title"}
	}
	title = strings.TrimSuffix(title, titleSuffix)

	blob, err := configBlob(doc)
	if err != nil {
		return nil, err
	}

	postJSON, err := scraper.NavObject(blob, "data", "post")
	if err != nil {
		return nil, err
	}

	content, err := postContent(postJSON)
	if err != nil {
		return nil, err
	}

	return &Post{
		PostCommon: models.PostCommon{
			SourceURL: src,
			Title:     title,
			Origin:    models.JustOrigin("9GAG"),
		},
		content: content,
	}, nil
}

// configBlob extracts the page-config JSON fed to JSON.parse in one of the
// inline scripts.
func configBlob(doc *goquery.Document) (any, error) {
	var script string
	doc.Find("script").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if text := sel.Text(); strings.Contains(text, "JSON.parse") {
			script = text
			return false
		}
		return true
	})
	if script == "" {
		return nil, &scraper.ParseError{Reason: "could not find config script"}
	}

	// the blob is a backslash-escaped string literal
	script = strings.ReplaceAll(script, "\\", "")

	const open = `JSON.parse("`
	start := strings.Index(script, open)
	if start < 0 {
		return nil, &scraper.ParseError{Reason: "could not find JSON.parse call"}
	}
	rest := script[start+len(open):]

	end := strings.LastIndex(rest, `")`)
	if end < 0 {
		return nil, &scraper.ParseError{Reason: "unterminated JSON.parse call"}
	}

	return scraper.DecodeJSON(rest[:end])
}

// postContent picks the media URL by post type: Photo posts embed the large
// still, Animated posts prefer the sound-stripped webm rendition, anything
// else falls back to the vp9 stream.
func postContent(postJSON map[string]any) (models.Content, error) {
	postType, err := scraper.NavString(postJSON, "type")
	if err != nil {
		return nil, err
	}

	switch postType {
	case "Photo":
		raw, err := scraper.NavString(postJSON, "images", "image700", "url")
		if err != nil {
			return nil, err
		}
		u, err := url.Parse(raw)
		if err != nil {
			return nil, &scraper.ParseError{Reason: "invalid image url", Err: err}
		}
		return models.ImageContent{URL: u}, nil

	case "Animated":
		raw, err := scraper.NavString(postJSON, "images", "image460svwm", "url")
		if err != nil {
			raw, err = scraper.NavString(postJSON, "images", "image460sv", "url")
			if err != nil {
				return nil, err
			}
		}
		u, err := url.Parse(raw)
		if err != nil {
			return nil, &scraper.ParseError{Reason: "invalid video url", Err: err}
		}
		return models.VideoContent{URL: u}, nil

	default:
		raw, err := scraper.NavString(postJSON, "vp9Url")
		if err != nil {
			return nil, err
		}
		u, err := url.Parse(raw)
		if err != nil {
			return nil, &scraper.ParseError{Reason: "invalid video url", Err: err}
		}
		return models.VideoContent{URL: u}, nil
	}
}
