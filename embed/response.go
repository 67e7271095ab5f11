// Package embed builds the payload a post is rendered into, independent of
// whether it is delivered as a new channel message or an interaction reply.
package embed

import (
	"io"

	"github.com/bwmarrin/discordgo"
)

// Response accumulates a rich card, a plain-text block, file attachments,
// or any combination of those.
type Response struct {
	content string
	embed   *discordgo.MessageEmbed
	files   []*discordgo.File
}

func NewResponse() *Response {
	return &Response{}
}

func (r *Response) card() *discordgo.MessageEmbed {
	if r.embed == nil {
		r.embed = &discordgo.MessageEmbed{}
	}
	return r.embed
}

// Title sets the rich-card title. Callers are responsible for keeping the
// formatted title within the platform limit.
func (r *Response) Title(title string) *Response {
	r.card().Title = title
	return r
}

func (r *Response) Description(descr string) *Response {
	r.card().Description = descr
	return r
}

func (r *Response) Author(name string) *Response {
	r.card().Author = &discordgo.MessageEmbedAuthor{Name: name}
	return r
}

func (r *Response) URL(u string) *Response {
	r.card().URL = u
	return r
}

func (r *Response) Image(u string) *Response {
	r.card().Image = &discordgo.MessageEmbedImage{URL: u}
	return r
}

func (r *Response) Footer(text string) *Response {
	r.card().Footer = &discordgo.MessageEmbedFooter{Text: text}
	return r
}

func (r *Response) Field(name, value string, inline bool) *Response {
	e := r.card()
	e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	})
	return r
}

// AuthorComment attaches the requesting user's comment as a field.
func (r *Response) AuthorComment(author, comment string) *Response {
	return r.Field("Comment by "+author, comment, false)
}

// Content sets the plain-text block of the response.
func (r *Response) Content(text string) *Response {
	r.content = text
	return r
}

// AttachFile adds a binary attachment. The reader must stay valid until the
// response has been sent.
func (r *Response) AttachFile(name, contentType string, reader io.Reader) *Response {
	r.files = append(r.files, &discordgo.File{
		Name:        name,
		ContentType: contentType,
		Reader:      reader,
	})
	return r
}

// HasCard reports whether a rich card was populated.
func (r *Response) HasCard() bool {
	return r.embed != nil
}

// PlainText returns the plain-text block, empty when none was set.
func (r *Response) PlainText() string {
	return r.content
}

// Card returns the rich card, nil when none was populated.
func (r *Response) Card() *discordgo.MessageEmbed {
	return r.embed
}

// Message shapes the response as a channel message creation.
func (r *Response) Message() *discordgo.MessageSend {
	m := &discordgo.MessageSend{
		Content: r.content,
		Files:   r.files,
	}
	if r.embed != nil {
		m.Embeds = []*discordgo.MessageEmbed{r.embed}
	}
	return m
}

// Interaction shapes the response as an interaction reply.
func (r *Response) Interaction() *discordgo.InteractionResponseData {
	d := &discordgo.InteractionResponseData{
		Content: r.content,
		Files:   r.files,
	}
	if r.embed != nil {
		d.Embeds = []*discordgo.MessageEmbed{r.embed}
	}
	return d
}

// Webhook shapes the response as a followup message to a deferred
// interaction reply.
func (r *Response) Webhook() *discordgo.WebhookParams {
	p := &discordgo.WebhookParams{
		Content: r.content,
		Files:   r.files,
	}
	if r.embed != nil {
		p.Embeds = []*discordgo.MessageEmbed{r.embed}
	}
	return p
}
