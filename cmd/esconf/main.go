// Package main provides the esconf CLI.
package main

import (
	"os"

	"github.com/lintwell/esconf/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
