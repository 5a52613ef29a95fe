package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/pterm/pterm"
	"github.com/rybkr/gitcore/internal/gitcore"
	"github.com/rybkr/gitcore/internal/termcolor"
)

// runShowRef implements `show-ref [--with-hash]`: lists every reference
// under refs/, recursively, sorted lexicographically by full reference name.
func runShowRef(repo *gitcore.Repository, args []string, cw *termcolor.Writer) int {
	withHash := false
	for _, a := range args {
		if a == "--with-hash" {
			withHash = true
		}
	}

	refs, err := repo.ListRefs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 128
	}

	var rows [][]string
	collectRefRows(refs, "refs", &rows)
	sort.Slice(rows, func(i, j int) bool { return rows[i][1] < rows[j][1] })

	if !withHash || !cw.Enabled() {
		for _, row := range rows {
			if withHash {
				fmt.Printf("%s %s\n", row[0], row[1])
			} else {
				fmt.Println(row[1])
			}
		}
		return 0
	}

	data := pterm.TableData{{"hash", "ref"}}
	data = append(data, rows...)
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 128
	}
	return 0
}

// collectRefRows recursively walks a RefMap, accumulating prefix-qualified
// ref names, mirroring the Python original's recursive show_ref walk.
func collectRefRows(m gitcore.RefMap, prefix string, out *[][]string) {
	for k, v := range m {
		name := prefix + "/" + k
		switch val := v.(type) {
		case gitcore.Hash:
			*out = append(*out, []string{string(val), name})
		case gitcore.RefMap:
			collectRefRows(val, name, out)
		}
	}
}
