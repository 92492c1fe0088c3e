// Package main provides the entry point for the patrol CLI.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/patrol/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
