package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/rybkr/gitcore/internal/cli"
	"github.com/rybkr/gitcore/internal/gitcore"
	"github.com/rybkr/gitcore/internal/termcolor"
)

// Build-time variables set via -ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	gf, args := parseGlobalFlags(os.Args[1:])

	for _, a := range args {
		if a == "--version" {
			printVersion()
			os.Exit(0)
		}
	}

	cw := termcolor.NewWriter(os.Stdout, gf.colorMode)

	app := cli.NewApp("gitcore-cli", version)
	app.Stderr = os.Stderr

	var repo *gitcore.Repository

	app.Register(&cli.Command{
		Name:     "init",
		Summary:  "Create an empty repository",
		Usage:    "gitcore-cli init [path]",
		Examples: []string{"gitcore-cli init", "gitcore-cli init /tmp/r"},
		Run:      func(args []string) int { return runInit(args) },
	})

	app.Register(&cli.Command{
		Name:      "cat-file",
		Summary:   "Show raw object content",
		Usage:     "gitcore-cli cat-file <kind> <name>",
		Examples:  []string{"gitcore-cli cat-file commit HEAD", "gitcore-cli cat-file blob abc1234"},
		NeedsRepo: true,
		Run:       func(args []string) int { return runCatFile(repo, args) },
	})

	app.Register(&cli.Command{
		Name:      "hash-object",
		Summary:   "Compute (and optionally store) an object's identifier",
		Usage:     "gitcore-cli hash-object [-t <kind>] [-w] <path>",
		Examples:  []string{"gitcore-cli hash-object -w -t blob README.md"},
		NeedsRepo: true,
		Run:       func(args []string) int { return runHashObject(repo, args) },
	})

	app.Register(&cli.Command{
		Name:      "log",
		Summary:   "Show commit history",
		Usage:     "gitcore-cli log [commit-name] [--oneline] [-n <count>]",
		Examples:  []string{"gitcore-cli log", "gitcore-cli log --oneline -n5"},
		NeedsRepo: true,
		Run:       func(args []string) int { return runLog(repo, args, cw) },
	})

	app.Register(&cli.Command{
		Name:      "ls-tree",
		Summary:   "List a tree object's entries",
		Usage:     "gitcore-cli ls-tree [-r] <tree-name>",
		Examples:  []string{"gitcore-cli ls-tree HEAD", "gitcore-cli ls-tree -r HEAD"},
		NeedsRepo: true,
		Run:       func(args []string) int { return runLsTree(repo, args, cw) },
	})

	app.Register(&cli.Command{
		Name:      "checkout",
		Summary:   "Materialize a commit or tree into a directory",
		Usage:     "gitcore-cli checkout <name> <path>",
		Examples:  []string{"gitcore-cli checkout HEAD /tmp/out"},
		NeedsRepo: true,
		Run:       func(args []string) int { return runCheckout(repo, args) },
	})

	app.Register(&cli.Command{
		Name:      "show-ref",
		Summary:   "List references",
		Usage:     "gitcore-cli show-ref [--with-hash]",
		NeedsRepo: true,
		Run:       func(args []string) int { return runShowRef(repo, args, cw) },
	})

	app.Register(&cli.Command{
		Name:      "tag",
		Summary:   "List or create tags",
		Usage:     "gitcore-cli tag [-a] [--name=<name>] [--object=HEAD]",
		Examples:  []string{"gitcore-cli tag", "gitcore-cli tag -a --name=v1.0"},
		NeedsRepo: true,
		Run:       func(args []string) int { return runTag(repo, args, cw) },
	})

	app.Register(&cli.Command{
		Name:      "rev-parse",
		Summary:   "Resolve a name to an object identifier",
		Usage:     "gitcore-cli rev-parse [--type=<kind>] <name>",
		Examples:  []string{"gitcore-cli rev-parse HEAD", "gitcore-cli rev-parse --type=tree HEAD"},
		NeedsRepo: true,
		Run:       func(args []string) int { return runRevParse(repo, args) },
	})

	app.Register(&cli.Command{
		Name:      "ls-files",
		Summary:   "List staged files",
		Usage:     "gitcore-cli ls-files [-v]",
		NeedsRepo: true,
		Run:       func(args []string) int { return runLsFiles(repo, args, cw) },
	})

	app.Register(&cli.Command{
		Name:    "version",
		Summary: "Show version information",
		Usage:   "gitcore-cli version",
		Run:     func([]string) int { printVersion(); return 0 },
	})

	if len(args) > 0 {
		cmd := app.Lookup(args[0])
		if cmd != nil && cmd.NeedsRepo {
			start := os.Getenv("GIT_DIR")
			if start == "" {
				start = "."
			}
			worktree, ok, err := gitcore.Find(start, true)
			if err != nil {
				fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
				os.Exit(128)
			}
			if !ok {
				fmt.Fprintln(os.Stderr, "fatal: not a git repository")
				os.Exit(128)
			}
			repo, err = gitcore.Open(worktree, false)
			if err != nil {
				fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
				os.Exit(128)
			}
		}
	}

	os.Exit(app.Run(args, cw))
}

func printVersion() {
	fmt.Printf("gitcore-cli %s\n", version)
	fmt.Printf("  commit:     %s\n", commit)
	fmt.Printf("  built:      %s\n", buildDate)
	fmt.Printf("  go version: %s\n", runtime.Version())
	fmt.Printf("  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
