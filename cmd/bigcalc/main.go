package main

import (
	"os"

	"github.com/govalues/bigdec/cmd/bigcalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
