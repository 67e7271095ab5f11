package bot

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"

	"embedbot/command"
	"embedbot/config"
	"embedbot/scraper"
	"embedbot/scraper/imgur"
	"embedbot/scraper/ninegag"
	"embedbot/scraper/reddit"
	"embedbot/scraper/svg"
	"embedbot/scraper/twitter"
	"embedbot/settings"
	"embedbot/utils"
)

// Bot encapsulates the bot's state.
type Bot struct {
	Session  *discordgo.Session
	Registry *scraper.Registry
	Store    *settings.Store
}

// NewBot creates and initializes a new Bot instance.
func NewBot() (*Bot, error) {
	config.LoadConfig()

	token := viper.GetString("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("no bot token provided")
	}

	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	store, err := settings.Open(viper.GetString("bot.settingsDir"))
	if err != nil {
		return nil, fmt.Errorf("error loading settings: %w", err)
	}

	return &Bot{
		Session:  dg,
		Registry: buildRegistry(store),
		Store:    store,
	}, nil
}

// buildRegistry assembles the adapters enabled in the config, in dispatch
// order. The SVG adapter goes last: its suitability check is a bare path
// extension match and must not shadow site adapters.
func buildRegistry(store *settings.Store) *scraper.Registry {
	client := scraper.NewClient()

	enabled := func(name string) bool {
		key := "modules." + name + ".enabled"
		return !viper.IsSet(key) || viper.GetBool(key)
	}

	var scrapers []scraper.Scraper
	if enabled("reddit") {
		scrapers = append(scrapers, reddit.New(client, store))
	}
	if enabled("ninegag") {
		scrapers = append(scrapers, ninegag.New(client, store))
	}
	if enabled("imgur") {
		scrapers = append(scrapers, imgur.New(client))
	}
	if enabled("twitter") {
		scrapers = append(scrapers, twitter.New(store))
	}
	if enabled("svg") {
		scrapers = append(scrapers, svg.New(client))
	}
	return scraper.NewRegistry(scrapers...)
}

// Start opens the bot's session and registers handlers.
func (b *Bot) Start(registerHandlers func(*Bot)) error {
	registerHandlers(b)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	utils.InitLogger(b.Session)

	for _, def := range command.GetCommandDefinitions() {
		if _, err := b.Session.ApplicationCommandCreate(b.Session.State.User.ID, "", def); err != nil {
			utils.Logger().WithField("command", def.Name).
				WithField("error", err.Error()).
				Error("cannot create command")
		}
	}

	startScheduler()

	utils.Logger().WithField("scrapers", fmt.Sprint(b.Registry.Names())).
		Info("bot is now running, press CTRL-C to exit")
	return nil
}

// Stop gracefully closes the bot's session.
func (b *Bot) Stop() {
	stopScheduler()
	if b.Session != nil {
		b.Session.Close()
	}
	utils.Logger().Info("bot stopped gracefully")
}

// Run is the main entry point for the bot application.
func Run(registerHandlers func(*Bot)) {
	bot, err := NewBot()
	if err != nil {
		utils.Logger().Fatalf("Error initializing bot: %v", err)
	}

	if err := bot.Start(registerHandlers); err != nil {
		utils.Logger().Fatalf("Error starting bot: %v", err)
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	bot.Stop()
}
