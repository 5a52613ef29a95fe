package main

import (
	"fmt"
	"os"

	"github.com/rybkr/gitcore/internal/gitcore"
)

// runInit implements `init [path]`, defaulting path to the current
// directory.
func runInit(args []string) int {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := gitcore.Create(path); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 128
	}

	fmt.Printf("Initialized empty Git repository in %s\n", path)
	return 0
}
