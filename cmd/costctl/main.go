// Package main is the entry point for the costctl CLI.
package main

import (
	"os"

	"github.com/Simplici0/costboard/cmd/costctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
