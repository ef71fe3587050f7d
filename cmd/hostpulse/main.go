package main

import (
	"os"

	"github.com/hostpulse/hostpulse/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
