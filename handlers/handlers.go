package handlers

import (
	"github.com/bwmarrin/discordgo"

	"embedbot/bot"
	"embedbot/utils"
)

// Register all handlers to the bot.
func Register(b *bot.Bot) {
	b.Session.AddHandler(MessageCreate(b))
	b.Session.AddHandler(InteractionCreate(b))

	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		utils.Logger().Infof("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})
}
