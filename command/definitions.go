package command

import "github.com/bwmarrin/discordgo"

// SettingImplicitAutoEmbed is the key of the auto-embed toggle; the
// recognized settings form a closed enum.
const SettingImplicitAutoEmbed = "do-implicit-auto-embed"

var settingChoices = []*discordgo.ApplicationCommandOptionChoice{
	{
		Name:  ":envelope: do-implicit-auto-embed",
		Value: SettingImplicitAutoEmbed,
	},
}

// EmbedCommand defines the structure for the /embed command.
type EmbedCommand struct{}

// Definition returns the application command definition.
func (c *EmbedCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "embed",
		Description: "Embed a post",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "url",
				Description: "Url of the post",
				Type:        discordgo.ApplicationCommandOptionString,
				Required:    true,
			},
			{
				Name:        "comment",
				Description: "A personal comment to include",
				Type:        discordgo.ApplicationCommandOptionString,
				Required:    false,
			},
			{
				Name:        "ignore-nsfw",
				Description: "Embed fully even if the post is flagged as nsfw",
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Required:    false,
			},
			{
				Name:        "ignore-spoiler",
				Description: "Embed fully even if the post is flagged as spoiler",
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Required:    false,
			},
		},
	}
}

// SettingsCommand defines the structure for the /settings command.
type SettingsCommand struct{}

// Definition returns the application command definition.
func (c *SettingsCommand) Definition() *discordgo.ApplicationCommand {
	keyOption := func(required bool) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Name:        "key",
			Description: "The setting",
			Type:        discordgo.ApplicationCommandOptionString,
			Required:    required,
			Choices:     settingChoices,
		}
	}

	return &discordgo.ApplicationCommand{
		Name:        "settings",
		Description: "Change or view the bot settings",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "get",
				Description: "Displays the current value of a setting",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					keyOption(true),
				},
			},
			{
				Name:        "set",
				Description: "Sets a bot setting to a new value",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					keyOption(true),
					{
						Name:        "value",
						Description: "The desired value",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    true,
					},
				},
			},
		},
	}
}
