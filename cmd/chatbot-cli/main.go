package main

import (
	"os"

	"github.com/HafizhRaihan31/Chatbot-MPL/cmd/chatbot-cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
