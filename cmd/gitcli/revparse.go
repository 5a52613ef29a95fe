package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rybkr/gitcore/internal/gitcore"
)

// runRevParse implements `rev-parse [--type=<kind>] <name>`.
func runRevParse(repo *gitcore.Repository, args []string) int {
	kind := gitcore.NoneObject
	var name string

	for _, a := range args {
		switch {
		case strings.HasPrefix(a, "--type="):
			kindName := strings.TrimPrefix(a, "--type=")
			kind = gitcore.ParseObjectType(kindName)
			if kind == gitcore.NoneObject {
				fmt.Fprintf(os.Stderr, "fatal: unknown kind %q\n", kindName)
				return 128
			}
		default:
			name = a
		}
	}

	if name == "" {
		fmt.Fprintln(os.Stderr, "usage: gitcore-cli rev-parse [--type=<kind>] <name>")
		return 1
	}

	id, err := repo.Resolve(name, kind, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 128
	}

	fmt.Println(id)
	return 0
}
