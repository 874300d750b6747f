// Package main is the entrypoint for the leoplan CLI.
// It delegates all command handling to the cmd package.
package main

import (
	"os"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
