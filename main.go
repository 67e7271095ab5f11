package main

import (
	"embedbot/bot"
	"embedbot/handlers"
)

func main() {
	bot.Run(handlers.Register)
}
