package main

import (
	"os"

	"github.com/go-theft-auto/grid/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
