package main

import (
	"os"

	"github.com/deemkeen/keytan/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		os.Exit(1)
	}
}
