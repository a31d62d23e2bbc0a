package main

import (
	"os"

	"github.com/ougirez/rtrw/cmd/rtrw/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
