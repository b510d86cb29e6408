// Package main is the entry point for the mpa CLI.
package main

import (
	"os"

	"github.com/iiskills/mpa/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
