// Package main is the entry point for the cosmic-oracle CLI.
package main

import (
	"os"

	"github.com/f3rmion/cosmic-oracle/cmd/cosmic-oracle/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
