// Package main is the entry point for the bioharvest CLI.
package main

import (
	"os"

	"github.com/parldata/bioharvest/cmd/bioharvest/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
