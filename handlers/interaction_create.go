package handlers

import (
	"github.com/bwmarrin/discordgo"

	"embedbot/bot"
)

// InteractionCreate dispatches slash command interactions.
func InteractionCreate(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}

		switch i.ApplicationCommandData().Name {
		case "embed":
			HandleEmbed(b, s, i)
		case "settings":
			HandleSettings(b, s, i)
		}
	}
}
