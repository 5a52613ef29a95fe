package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/rybkr/gitcore/internal/gitcore"
	"github.com/rybkr/gitcore/internal/termcolor"
)

// runLsFiles implements `ls-files [-v]`: lists the staging index's entries,
// optionally with stage/mode/id detail.
func runLsFiles(repo *gitcore.Repository, args []string, cw *termcolor.Writer) int {
	verbose := false
	for _, a := range args {
		if a == "-v" {
			verbose = true
		}
	}

	idx, err := repo.ReadIndex()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 128
	}

	if !verbose {
		for _, e := range idx.Entries {
			fmt.Println(e.Path)
		}
		return 0
	}

	if !cw.Enabled() {
		for _, e := range idx.Entries {
			fmt.Printf("%04o %s %d\t%s\n", e.ModePerm, e.ID, e.Stage, e.Path)
		}
		return 0
	}

	data := pterm.TableData{{"mode", "object", "stage", "path"}}
	for _, e := range idx.Entries {
		data = append(data, []string{fmt.Sprintf("%04o", e.ModePerm), string(e.ID), fmt.Sprintf("%d", e.Stage), e.Path})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 128
	}
	return 0
}
