// Package main is the entry point for the sumpus CLI.
package main

import (
	"os"

	"sumpus.exe.dev/cmd/sumpus/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
