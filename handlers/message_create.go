package handlers

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"

	"embedbot/bot"
	"embedbot/models"
	"embedbot/utils"
)

// MessageCreate implements the implicit auto-embed flow: the first line of
// a message that parses as a URL becomes the embed target, the remaining
// lines become the comment. On success the rendered response replaces the
// original message. Non-embeddable links are skipped silently so ordinary
// conversation is never spammed.
func MessageCreate(b *bot.Bot) func(s *discordgo.Session, m *discordgo.MessageCreate) {
	embedder := &Embedder{Registry: b.Registry}

	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author.ID == s.State.User.ID || m.Author.Bot {
			return
		}
		if !b.Store.Runtime().DoImplicitAutoEmbed {
			return
		}

		rawURL, comment := splitMessage(m.Content)
		if rawURL == "" {
			return
		}

		log := utils.Logger().WithField("url", rawURL)

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout())
		defer cancel()

		opts := &models.EmbedOptions{Comment: comment}
		response, post, err := embedder.Embed(ctx, rawURL, m.Author.Username, opts)
		if err != nil {
			if isSilent(err) {
				log.WithField("reason", err.Error()).Info("not embedding")
			} else {
				log.WithField("error", err.Error()).Error("could not embed post")
			}
			return
		}
		defer closePost(post)

		if _, err := s.ChannelMessageSendComplex(m.ChannelID, response.Message()); err != nil {
			log.WithField("error", err.Error()).Error("could not send embed")
			return
		}

		// a failed delete leaves the original link behind, tolerable
		if err := s.ChannelMessageDelete(m.ChannelID, m.ID); err != nil {
			log.WithField("error", err.Error()).Warn("could not delete original message")
		}

		log.Info("embedded post")
	}
}

// splitMessage returns the first URL line of a message and the remaining
// non-empty lines joined as the comment.
func splitMessage(content string) (rawURL, comment string) {
	var comments []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if rawURL == "" && isURL(line) {
			rawURL = line
			continue
		}
		comments = append(comments, line)
	}
	return rawURL, strings.Join(comments, "\n")
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Hostname() != ""
}

func requestTimeout() time.Duration {
	seconds := viper.GetInt("scrape.timeoutSeconds")
	if seconds <= 0 {
		seconds = 30
	}
	// headroom for browser startup on top of the fetch timeout
	return time.Duration(seconds+15) * time.Second
}
