package main

import (
	"os"

	"linky/cmd/linky/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
