package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rybkr/gitcore/internal/gitcore"
	"github.com/rybkr/gitcore/internal/termcolor"
)

// runLog implements `log [commit-name] [--oneline] [-n count]`, defaulting
// the start point to HEAD.
func runLog(repo *gitcore.Repository, args []string, cw *termcolor.Writer) int {
	maxCount := 0
	oneline := false
	startName := "HEAD"
	haveStart := false

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--oneline":
			oneline = true
		case args[i] == "-n" && i+1 < len(args):
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: invalid -n value: %q\n", args[i])
				return 1
			}
			maxCount = n
		case strings.HasPrefix(args[i], "-n"):
			n, err := strconv.Atoi(args[i][2:])
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: invalid -n value: %q\n", args[i][2:])
				return 1
			}
			maxCount = n
		case strings.HasPrefix(args[i], "-"):
			fmt.Fprintf(os.Stderr, "error: unknown option: %q\n", args[i])
			return 1
		default:
			if haveStart {
				fmt.Fprintf(os.Stderr, "error: unexpected argument: %q\n", args[i])
				return 1
			}
			startName = args[i]
			haveStart = true
		}
	}

	start, err := repo.Resolve(startName, gitcore.CommitObject, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 128
	}

	entries, err := repo.Log(start, maxCount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 128
	}
	if len(entries) == 0 {
		return 0
	}

	branches, err := repo.Branches()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 128
	}
	tags, err := repo.Tags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 128
	}
	headRef, headSymbolic, err := repo.HeadRef()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 128
	}
	var headID gitcore.Hash
	if !headSymbolic {
		if id, ok, err := repo.Head(); err == nil && ok {
			headID = id
		}
	}

	decorations := buildDecorations(branches, tags, headRef, headSymbolic, headID, cw)

	for i, e := range entries {
		c := e.Commit
		decor := ""
		if d, ok := decorations[e.ID]; ok {
			decor = " " + cw.Yellow("(") + d + cw.Yellow(")")
		}

		if oneline {
			fmt.Printf("%s%s %s\n", cw.Yellow(e.ID.Short()), decor, firstLine(c.Message()))
			continue
		}

		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s %s%s\n", cw.Yellow("commit"), cw.Yellow(string(e.ID)), decor)
		parents, err := c.Parents()
		if err != nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
			return 128
		}
		if len(parents) > 1 {
			parentStrs := make([]string, len(parents))
			for j, p := range parents {
				parentStrs[j] = p.Short()
			}
			fmt.Printf("Merge: %s\n", strings.Join(parentStrs, " "))
		}
		author, err := c.Author()
		if err != nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
			return 128
		}
		fmt.Printf("Author: %s <%s>\n", author.Name, author.Email)
		fmt.Printf("Date:   %s\n", gitDateFormat(author.When))
		fmt.Println()
		for _, line := range strings.Split(strings.TrimSuffix(c.Message(), "\n"), "\n") {
			fmt.Printf("    %s\n", line)
		}
	}

	return 0
}

func buildDecorations(branches, tags map[string]gitcore.Hash, headRef string, headSymbolic bool, headID gitcore.Hash, cw *termcolor.Writer) map[gitcore.Hash]string {
	result := make(map[gitcore.Hash]string)

	headBranch := ""
	if headSymbolic {
		headBranch = strings.TrimPrefix(headRef, "refs/heads/")
	}

	type decoInfo struct {
		headArrow string
		branches  []string
		tags      []string
	}
	byHash := make(map[gitcore.Hash]*decoInfo)

	getInfo := func(h gitcore.Hash) *decoInfo {
		if info, ok := byHash[h]; ok {
			return info
		}
		info := &decoInfo{}
		byHash[h] = info
		return info
	}

	for name, hash := range branches {
		info := getInfo(hash)
		if name == headBranch {
			info.headArrow = cw.BoldCyan("HEAD -> ") + cw.Green(name)
		} else {
			info.branches = append(info.branches, cw.Green(name))
		}
	}

	for name, hash := range tags {
		info := getInfo(hash)
		info.tags = append(info.tags, cw.Yellow("tag: "+name))
	}

	if !headSymbolic && headID != "" {
		info := getInfo(headID)
		info.headArrow = cw.BoldCyan("HEAD")
	}

	for hash, info := range byHash {
		var parts []string
		if info.headArrow != "" {
			parts = append(parts, info.headArrow)
		}
		parts = append(parts, info.branches...)
		parts = append(parts, info.tags...)
		if len(parts) > 0 {
			result[hash] = strings.Join(parts, cw.Yellow(", "))
		}
	}

	return result
}

func firstLine(msg string) string {
	if idx := strings.IndexByte(msg, '\n'); idx >= 0 {
		return msg[:idx]
	}
	return msg
}
