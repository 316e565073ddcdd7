package main

import (
	"os"

	"github.com/mileagelog/mileagelog/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
