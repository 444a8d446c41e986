package main

import (
	"os"

	"currency-mask/cmd/maskfield/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
