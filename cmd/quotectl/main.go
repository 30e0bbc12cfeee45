package main

import (
	"os"

	"github.com/fleshka4/swap-quote/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
