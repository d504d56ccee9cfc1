package main

import (
	"os"

	"personal-brand-crew/cmd/brandcrew/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
