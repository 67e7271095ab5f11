package handlers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"embedbot/bot"
	"embedbot/command"
	"embedbot/models"
	"embedbot/utils"
)

// HandleEmbed handles the /embed command. The response is deferred since a
// scrape can take seconds when the headless browser is involved; the result
// arrives as a followup. Unlike the implicit flow, the explicit command
// always answers, errors included.
func HandleEmbed(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	optionMap := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		optionMap[opt.Name] = opt
	}

	var rawURL string
	opts := &models.EmbedOptions{}

	if opt, ok := optionMap["url"]; ok {
		rawURL = opt.StringValue()
	}
	if opt, ok := optionMap["comment"]; ok {
		opts.Comment = opt.StringValue()
	}
	if opt, ok := optionMap["ignore-nsfw"]; ok {
		opts.IgnoreNSFW = opt.BoolValue()
	}
	if opt, ok := optionMap["ignore-spoiler"]; ok {
		opts.IgnoreSpoiler = opt.BoolValue()
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		utils.Logger().WithField("error", err.Error()).Error("could not defer interaction")
		return
	}

	go func() {
		log := utils.Logger().WithField("url", rawURL)

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout())
		defer cancel()

		embedder := &Embedder{Registry: b.Registry}
		response, post, err := embedder.Embed(ctx, rawURL, interactionUser(i), opts)
		if err != nil {
			log.WithField("error", err.Error()).Error("embed command failed")
			followupError(s, i, err.Error())
			return
		}
		defer closePost(post)

		if _, err := s.FollowupMessageCreate(i.Interaction, true, response.Webhook()); err != nil {
			log.WithField("error", err.Error()).Error("could not send followup")
			return
		}
		log.Info("embedded post")
	}()
}

// HandleSettings handles /settings get|set over the closed key enum.
func HandleSettings(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return
	}

	sub := data.Options[0]
	optionMap := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, opt := range sub.Options {
		optionMap[opt.Name] = opt
	}

	var key string
	if opt, ok := optionMap["key"]; ok {
		key = opt.StringValue()
	}

	switch sub.Name {
	case "get":
		handleSettingsGet(b, s, i, key)
	case "set":
		var value string
		if opt, ok := optionMap["value"]; ok {
			value = opt.StringValue()
		}
		handleSettingsSet(b, s, i, key, value)
	}
}

func handleSettingsGet(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, key string) {
	switch key {
	case command.SettingImplicitAutoEmbed:
		respondEphemeral(s, i, fmt.Sprintf("`%s` is `%t`", key, b.Store.Runtime().DoImplicitAutoEmbed))
	default:
		respondEphemeral(s, i, ":x: Error: unknown setting "+key)
	}
}

func handleSettingsSet(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, key, value string) {
	switch key {
	case command.SettingImplicitAutoEmbed:
		v, err := strconv.ParseBool(value)
		if err != nil {
			respondEphemeral(s, i, ":x: Error: expected boolean")
			return
		}

		if err := b.Store.SetImplicitAutoEmbed(v); err != nil {
			// the in-memory change took effect, only durability failed
			utils.Logger().WithField("error", err.Error()).Error("could not persist setting")
			respondEphemeral(s, i, fmt.Sprintf(
				":warning: `%s` is now `%t`, but saving failed; the change may not survive a restart", key, v))
			return
		}
		respondEphemeral(s, i, fmt.Sprintf(":white_check_mark: Success: `%s` is now `%t`", key, v))
	default:
		respondEphemeral(s, i, ":x: Error: unknown setting "+key)
	}
}

func interactionUser(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.Username
	}
	if i.User != nil {
		return i.User.Username
	}
	return "unknown"
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		utils.Logger().WithField("error", err.Error()).Error("could not respond to interaction")
	}
}

func followupError(s *discordgo.Session, i *discordgo.InteractionCreate, msg string) {
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       ":x: Error",
				Description: utils.LimitDescrLen(msg),
				Color:       utils.ColorError,
			},
		},
	})
	if err != nil {
		utils.Logger().WithField("error", err.Error()).Error("could not send error followup")
	}
}
