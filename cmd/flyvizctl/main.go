// Package main is the entry point for the flyvizctl CLI
package main

import (
	"os"

	"github.com/flybench/flyviz/cmd/flyvizctl/cmd"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
