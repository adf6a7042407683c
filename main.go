package main

import (
	"os"

	"github.com/jakoblorz/phxforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
