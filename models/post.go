package models

import (
	"net/url"

	"embedbot/embed"
)

// Origin describes the community a post belongs to. For sites where
// cross-posting is a native concept, CrosspostedFrom names the community the
// post was originally made in.
type Origin struct {
	Name            string
	CrosspostedFrom string
}

// JustOrigin returns an Origin for a post made directly in name.
func JustOrigin(name string) Origin {
	return Origin{Name: name}
}

// Crossposted returns an Origin for a post re-shared from one community
// into another.
func Crossposted(from, to string) Origin {
	return Origin{Name: to, CrosspostedFrom: from}
}

func (o Origin) IsCrosspost() bool {
	return o.CrosspostedFrom != ""
}

// Comment is a single associated comment surfaced next to a post, present
// only when the scraped URL targeted that comment directly.
type Comment struct {
	Author string
	Body   string
}

// PostCommon holds the fields every scraped post carries. Text fields are
// raw: HTML entities are unescaped at scrape time, markdown escaping happens
// at render time.
type PostCommon struct {
	SourceURL    *url.URL
	Title        string
	BodyText     string
	Flair        string
	NSFW         bool
	Spoiler      bool
	Origin       Origin
	ReplyContext *Comment
}

// Post is the normalized result of scraping a URL. Concrete types live in
// the adapter packages; each renders itself into a Response since title
// templates and card-vs-text policy are adapter specific.
type Post interface {
	Common() *PostCommon
	Content() Content
	Classify() Classification
	CreateResponse(author string, opts *EmbedOptions, r *embed.Response) *embed.Response
}

// EmbedOptions are the per-invocation options of a single embed request.
type EmbedOptions struct {
	Comment       string
	IgnoreNSFW    bool
	IgnoreSpoiler bool
}
