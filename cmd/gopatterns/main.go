// Package main is the entry point for the gopatterns demo CLI.
package main

import (
	"os"

	"github.com/dshills/gopatterns/cmd/gopatterns/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
