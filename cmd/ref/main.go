// Package main is the entry point for the ref CLI tool.
package main

import (
	"os"

	"github.com/usdAG/reftool/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
