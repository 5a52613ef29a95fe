package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/rybkr/gitcore/internal/gitcore"
	"github.com/rybkr/gitcore/internal/termcolor"
)

// runLsTree implements `ls-tree [-r] <tree-name>`.
func runLsTree(repo *gitcore.Repository, args []string, cw *termcolor.Writer) int {
	recurse := false
	var name string

	for _, a := range args {
		switch {
		case a == "-r":
			recurse = true
		default:
			name = a
		}
	}
	if name == "" {
		fmt.Fprintln(os.Stderr, "usage: gitcore-cli ls-tree [-r] <tree-name>")
		return 1
	}

	id, err := repo.Resolve(name, gitcore.TreeObject, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 128
	}

	rows, err := lsTreeRows(repo, id, "", recurse)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 128
	}

	if !cw.Enabled() {
		for _, row := range rows {
			fmt.Printf("%s %s %s\t%s\n", row[0], row[1], row[2], row[3])
		}
		return 0
	}

	data := pterm.TableData{{"mode", "type", "object", "path"}}
	data = append(data, rows...)
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 128
	}
	return 0
}

func lsTreeRows(repo *gitcore.Repository, id gitcore.Hash, prefix string, recurse bool) ([][]string, error) {
	obj, err := repo.ReadObject(id)
	if err != nil {
		return nil, err
	}
	tree, ok := obj.(*gitcore.Tree)
	if !ok {
		return nil, fmt.Errorf("%s is not a tree", id)
	}

	var rows [][]string
	for _, entry := range tree.Entries {
		kind, err := entry.Kind()
		if err != nil {
			return nil, err
		}
		path := prefix + entry.Path

		if recurse && kind == gitcore.TreeObject {
			sub, err := lsTreeRows(repo, entry.ID, path+"/", recurse)
			if err != nil {
				return nil, err
			}
			rows = append(rows, sub...)
			continue
		}

		rows = append(rows, []string{entry.Mode, kind.String(), string(entry.ID), path})
	}
	return rows, nil
}
