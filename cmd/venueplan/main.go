package main

import (
	"os"

	"github.com/katalvlaran/venueplan/cmd/venueplan/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
