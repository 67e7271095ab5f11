package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from multiple sources:
// 1. .env file (environment variables, notably BOT_TOKEN)
// 2. config.yaml (base configuration)
// Environment variables override settings of the same name.
func LoadConfig() {
	// .env is optional
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("bot.settingsDir", "./settings")
	viper.SetDefault("scrape.timeoutSeconds", 30)
	viper.SetDefault("twitter.maxSessions", 2)
	viper.SetDefault("twitter.headless", true)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// no config file is fine, env vars and defaults apply
			return
		}
		panic(fmt.Errorf("fatal error reading config file: %w", err))
	}
}
