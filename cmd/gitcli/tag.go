package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rybkr/gitcore/internal/gitcore"
	"github.com/rybkr/gitcore/internal/termcolor"
)

// runTag implements `tag [-a] [--name=<name>] [--object=HEAD]`: with no
// --name, lists existing tags; with --name, creates one (annotated if -a is
// given, lightweight otherwise) pointing at --object (default HEAD).
func runTag(repo *gitcore.Repository, args []string, cw *termcolor.Writer) int {
	annotated := false
	name := ""
	object := "HEAD"

	for _, a := range args {
		switch {
		case a == "-a":
			annotated = true
		case strings.HasPrefix(a, "--name="):
			name = strings.TrimPrefix(a, "--name=")
		case strings.HasPrefix(a, "--object="):
			object = strings.TrimPrefix(a, "--object=")
		default:
			fmt.Fprintf(os.Stderr, "error: unknown option: %q\n", a)
			return 1
		}
	}

	if name == "" {
		return listTags(repo, cw)
	}
	return createTag(repo, name, object, annotated)
}

func listTags(repo *gitcore.Repository, cw *termcolor.Writer) int {
	tags, err := repo.Tags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 128
	}
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Println(cw.Yellow(name))
	}
	return 0
}

func createTag(repo *gitcore.Repository, name, objectName string, annotated bool) int {
	id, err := repo.ResolveName(objectName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 128
	}

	target := id
	if annotated {
		obj, err := repo.ReadObject(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
			return 128
		}
		if obj == nil {
			fmt.Fprintf(os.Stderr, "fatal: object %s not found\n", id)
			return 128
		}

		tagger := gitcore.Signature{Name: "gitcore", Email: "gitcore@localhost", When: time.Now()}
		tag := gitcore.NewTag(id, obj.Type(), name, tagger, fmt.Sprintf("%s\n", name))

		tagID, err := repo.WriteObject(tag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
			return 128
		}
		target = tagID
	}

	if err := repo.CreateRef("tags/"+name, target); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 128
	}
	return 0
}
