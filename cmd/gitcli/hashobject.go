package main

import (
	"fmt"
	"os"

	"github.com/rybkr/gitcore/internal/gitcore"
	"github.com/rybkr/gitcore/internal/progress"
)

// runHashObject implements `hash-object -t <kind> [-w] <path>`.
func runHashObject(repo *gitcore.Repository, args []string) int {
	kindName := "blob"
	write := false
	var path string

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "-t" && i+1 < len(args):
			i++
			kindName = args[i]
		case args[i] == "-w":
			write = true
		default:
			path = args[i]
		}
	}

	if path == "" {
		fmt.Fprintln(os.Stderr, "usage: gitcore-cli hash-object [-t <kind>] [-w] <path>")
		return 1
	}

	kind := gitcore.ParseObjectType(kindName)
	if kind != gitcore.BlobObject {
		fmt.Fprintf(os.Stderr, "fatal: hash-object only supports blob payloads from a raw file, got %q\n", kindName)
		return 128
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 128
	}
	blob := &gitcore.Blob{Data: data}

	if !write {
		fmt.Println(gitcore.HashObject(blob))
		return 0
	}

	var sp *progress.Spinner
	if len(data) > 1<<20 {
		sp = progress.New("hashing object")
		sp.Start()
	}

	id, err := repo.WriteObject(blob)

	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 128
	}

	fmt.Println(id)
	return 0
}
