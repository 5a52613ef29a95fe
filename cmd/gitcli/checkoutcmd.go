package main

import (
	"fmt"
	"os"

	"github.com/rybkr/gitcore/internal/gitcore"
	"github.com/rybkr/gitcore/internal/progress"
)

// runCheckout implements `checkout <name> <path>`.
func runCheckout(repo *gitcore.Repository, args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: gitcore-cli checkout <name> <path>")
		return 1
	}
	name, target := args[0], args[1]

	id, err := repo.ResolveName(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 128
	}

	sp := progress.New(fmt.Sprintf("checking out %s", id.Short()))
	sp.Start()
	err = repo.Checkout(id, target)
	sp.Stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 128
	}
	return 0
}
