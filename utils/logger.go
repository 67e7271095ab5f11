package utils

import (
	"os"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	ColorInfo  = 0x00ff00 // Green
	ColorWarn  = 0xffff00 // Yellow
	ColorError = 0xff0000 // Red
)

var log = logrus.New()

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// Logger returns the process-wide logger.
func Logger() *logrus.Logger {
	return log
}

// InitLogger attaches the Discord admin-channel hook to the logger. Warnings
// and errors are mirrored to bot.adminChannelId as colored embeds; if the
// channel is not configured only stderr logging remains.
func InitLogger(s *discordgo.Session) {
	channelID := viper.GetString("bot.adminChannelId")
	if channelID == "" {
		log.Warn("bot.adminChannelId is not set, channel logging disabled")
		return
	}
	log.AddHook(&discordHook{session: s, channelID: channelID})
}

// discordHook mirrors log records to an admin channel.
type discordHook struct {
	session   *discordgo.Session
	channelID string
}

func (h *discordHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.ErrorLevel, logrus.WarnLevel}
}

func (h *discordHook) Fire(entry *logrus.Entry) error {
	color := ColorInfo
	switch entry.Level {
	case logrus.WarnLevel:
		color = ColorWarn
	case logrus.ErrorLevel:
		color = ColorError
	}

	embed := &discordgo.MessageEmbed{
		Title:     "Log Level: " + entry.Level.String(),
		Color:     color,
		Timestamp: entry.Time.Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Message",
				Value: LimitLen(entry.Message, 1024),
			},
		},
	}

	for name, value := range entry.Data {
		if s, ok := value.(string); ok && s != "" {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   name,
				Value:  LimitLen(s, 1024),
				Inline: true,
			})
		}
	}

	_, err := h.session.ChannelMessageSendEmbed(h.channelID, embed)
	return err
}
