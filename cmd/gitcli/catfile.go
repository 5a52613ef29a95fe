package main

import (
	"fmt"
	"os"

	"github.com/rybkr/gitcore/internal/gitcore"
)

// runCatFile implements `cat-file <kind> <name>`: resolve name to an object
// of the given kind and write its raw serialized payload to stdout.
func runCatFile(repo *gitcore.Repository, args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: gitcore-cli cat-file <kind> <name>")
		return 1
	}

	kind := gitcore.ParseObjectType(args[0])
	if kind == gitcore.NoneObject {
		fmt.Fprintf(os.Stderr, "fatal: unknown kind %q\n", args[0])
		return 128
	}

	id, err := repo.Resolve(args[1], kind, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 128
	}

	obj, err := repo.ReadObject(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 128
	}
	if obj == nil {
		fmt.Fprintf(os.Stderr, "fatal: object %s not found\n", id)
		return 128
	}

	if _, err := os.Stdout.Write(obj.Serialize()); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 128
	}
	return 0
}
