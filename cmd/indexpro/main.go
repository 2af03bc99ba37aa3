package main

import (
	"os"

	"github.com/rustyeddy/indexpro/cmd/indexpro/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
