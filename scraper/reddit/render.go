package reddit

import (
	"fmt"
	"net/url"
	"strings"

	"embedbot/embed"
	"embedbot/models"
	"embedbot/utils"
)

// Post is a scraped reddit post.
type Post struct {
	models.PostCommon
	content models.Content
}

func (p *Post) Common() *models.PostCommon { return &p.PostCommon }
func (p *Post) Content() models.Content    { return p.content }

func (p *Post) Classify() models.Classification {
	return models.ClassifyCommon(&p.PostCommon, p.content)
}

// Per-template title overhead, subtracted from the title budget before
// truncation. Over-reserved to stay below the limit even after markdown
// escaping of the flair.
const (
	titleOverhead = 34
	xpostOverhead = 18
)

// FmtTitle renders the card title and keeps it within the platform limit
// for every crosspost/flair combination.
func FmtTitle(c *models.PostCommon) string {
	flair := ""
	if c.Flair != "" {
		flair = "[" + c.Flair + "] "
	}

	escaped := utils.EscapeMarkdown(c.Title)

	if c.Origin.IsCrosspost() {
		budget := utils.EmbedTitleMaxLen - titleOverhead - xpostOverhead -
			len(c.Origin.Name) - len(flair) - len(c.Origin.CrosspostedFrom)
		title := utils.LimitLen(escaped, budget)

		return fmt.Sprintf("'%s' %s- **reddit.com/r/%s\n[XPosted from r/%s]**",
			title, flair, c.Origin.Name, c.Origin.CrosspostedFrom)
	}

	budget := utils.EmbedTitleMaxLen - titleOverhead - len(c.Origin.Name) - len(flair)
	title := utils.LimitLen(escaped, budget)

	return fmt.Sprintf("'%s' %s- **reddit.com/r/%s**", title, flair, c.Origin.Name)
}

func includeComment(r *embed.Response, comment *models.Comment) {
	name := fmt.Sprintf("Comment by Reddit User '%s'", comment.Author)
	r.Field(name, utils.EscapeMarkdown(comment.Body), true)
}

func (p *Post) baseEmbed(author string, opts *models.EmbedOptions, r *embed.Response) *embed.Response {
	r.Title(FmtTitle(&p.PostCommon)).
		Description(utils.LimitDescrLen(p.BodyText)).
		Author(author).
		URL(p.SourceURL.String())

	if opts.Comment != "" {
		r.AuthorComment(author, opts.Comment)
	}
	if p.ReplyContext != nil {
		includeComment(r, p.ReplyContext)
	}
	return r
}

// manualEmbed is the plain-text fallback for content a rich card cannot
// carry (multiple images, autoplaying video).
func (p *Post) manualEmbed(author string, embedURLs []*url.URL, comment string) string {
	authorComment := ""
	if comment != "" {
		authorComment = fmt.Sprintf("**Comment By %s:**\n%s\n\n", author, comment)
	}

	redditComment := ""
	if p.ReplyContext != nil {
		redditComment = fmt.Sprintf("**Comment By Reddit User '%s':**\n%s\n\n",
			p.ReplyContext.Author, utils.EscapeMarkdown(p.ReplyContext.Body))
	}

	urls := make([]string, len(embedURLs))
	for i, u := range embedURLs {
		urls[i] = u.String()
	}

	return fmt.Sprintf(">>> **%s**\nSource: <%s>\nEmbedURL: %s\n\n%s%s%s\n\n%s",
		author,
		p.SourceURL,
		strings.Join(urls, "\n"),
		authorComment,
		redditComment,
		FmtTitle(&p.PostCommon),
		utils.LimitDescrLen(p.BodyText),
	)
}

func (p *Post) CreateResponse(author string, opts *models.EmbedOptions, r *embed.Response) *embed.Response {
	if p.NSFW && !opts.IgnoreNSFW {
		r.Title(FmtTitle(&p.PostCommon)).
			Description("Warning NSFW: Click to view content").
			Author(author).
			URL(p.SourceURL.String())
		if opts.Comment != "" {
			r.AuthorComment(author, opts.Comment)
		}
		return r
	}

	if p.Spoiler && !opts.IgnoreSpoiler {
		r.Title(FmtTitle(&p.PostCommon)).
			Description("Spoiler: Click to view content").
			Author(author).
			URL(p.SourceURL.String())
		if opts.Comment != "" {
			r.AuthorComment(author, opts.Comment)
		}
		if p.ReplyContext != nil {
			includeComment(r, p.ReplyContext)
		}
		return r
	}

	switch content := p.content.(type) {
	case models.TextContent:
		return p.baseEmbed(author, opts, r)
	case models.ImageContent:
		return p.baseEmbed(author, opts, r).Image(content.URL.String())
	case models.GalleryContent:
		return r.Content(p.manualEmbed(author, content.URLs, opts.Comment))
	case models.VideoContent:
		return r.Content(p.manualEmbed(author, []*url.URL{content.URL}, opts.Comment))
	default:
		return p.baseEmbed(author, opts, r)
	}
}
