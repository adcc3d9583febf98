package main

import (
	"os"

	"github.com/shiwake-dev/shiwake/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
