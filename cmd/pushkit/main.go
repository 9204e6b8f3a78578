package main

import (
	"os"

	"pushkit/cmd/pushkit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
