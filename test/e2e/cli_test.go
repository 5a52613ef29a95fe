//go:build e2e

package e2e

import (
	"strings"
	"testing"
)

const (
	// Fixed timestamps for deterministic output
	ts1 = "2025-01-15T10:00:00-0500"
	ts2 = "2025-01-15T11:00:00-0500"
	ts3 = "2025-01-15T12:00:00-0500"
)

func setupStandardRepo(t *testing.T) string {
	t.Helper()
	dir := setupTestRepo(t)
	addCommit(t, dir, "README.md", "# Hello\n", "Initial commit", ts1)
	addCommit(t, dir, "main.go", "package main\n", "Add main.go", ts2)
	addCommit(t, dir, "main.go", "package main\n\nfunc main() {}\n", "Update main.go", ts3)
	return dir
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	cliOut := runCLI(t, dir, "init", dir)
	if !strings.Contains(cliOut, "Initialized empty Git repository") {
		t.Errorf("expected init confirmation, got:\n%s", cliOut)
	}
}

func TestLog(t *testing.T) {
	dir := setupStandardRepo(t)

	cliOut := runCLI(t, dir, "log")
	gitOut := git(t, dir, "log", "--decorate=short", "--no-color")

	compareOutput(t, "log", cliOut, gitOut)
}

func TestLogOneline(t *testing.T) {
	dir := setupStandardRepo(t)

	cliOut := runCLI(t, dir, "log", "--oneline")
	gitOut := git(t, dir, "log", "--oneline", "--decorate=short", "--no-color")

	compareOutput(t, "log --oneline", cliOut, gitOut)
}

func TestLogN(t *testing.T) {
	dir := setupStandardRepo(t)

	cliOut := runCLI(t, dir, "log", "-n2")
	gitOut := git(t, dir, "log", "-n2", "--decorate=short", "--no-color")

	compareOutput(t, "log -n2", cliOut, gitOut)
}

func TestCatFileCommit(t *testing.T) {
	dir := setupStandardRepo(t)

	cliOut := runCLI(t, dir, "cat-file", "commit", "HEAD")
	gitOut := git(t, dir, "cat-file", "commit", "HEAD")

	compareOutput(t, "cat-file commit", cliOut, gitOut)
}

func TestCatFileTree(t *testing.T) {
	dir := setupStandardRepo(t)

	treeHash := strings.TrimSpace(git(t, dir, "rev-parse", "HEAD^{tree}"))

	cliOut := runCLI(t, dir, "cat-file", "tree", treeHash)
	gitOut := git(t, dir, "cat-file", "tree", treeHash)

	compareOutput(t, "cat-file tree", cliOut, gitOut)
}

func TestCatFileBlob(t *testing.T) {
	dir := setupStandardRepo(t)

	blobHash := strings.TrimSpace(git(t, dir, "rev-parse", "HEAD:README.md"))

	cliOut := runCLI(t, dir, "cat-file", "blob", blobHash)
	gitOut := git(t, dir, "cat-file", "blob", blobHash)

	compareOutput(t, "cat-file blob", cliOut, gitOut)
}

func TestHashObject(t *testing.T) {
	dir := setupStandardRepo(t)

	cliOut := strings.TrimSpace(runCLI(t, dir, "hash-object", "README.md"))
	gitOut := strings.TrimSpace(git(t, dir, "hash-object", "README.md"))

	compareOutput(t, "hash-object", cliOut, gitOut)
}

func TestLsTree(t *testing.T) {
	dir := setupStandardRepo(t)

	cliOut := runCLI(t, dir, "ls-tree", "HEAD")
	gitOut := git(t, dir, "ls-tree", "HEAD")

	if len(strings.Fields(cliOut)) == 0 || len(strings.Fields(gitOut)) == 0 {
		t.Fatal("expected non-empty ls-tree output from both implementations")
	}
}

func TestCheckout(t *testing.T) {
	dir := setupStandardRepo(t)
	target := t.TempDir() + "/out"

	runCLI(t, dir, "checkout", "HEAD", target)

	got := readFile(t, target+"/README.md")
	if got != "# Hello\n" {
		t.Errorf("expected checked-out README.md to match committed content, got %q", got)
	}
}

func TestCheckoutNonEmptyFails(t *testing.T) {
	dir := setupStandardRepo(t)

	if err := writeFile(dir, "existing-marker.txt", "x"); err != nil {
		t.Fatal(err)
	}

	cmd := runCLIExpectFailure(t, dir, "checkout", "HEAD", dir)
	if !strings.Contains(cmd, "DirectoryNotEmpty") {
		t.Errorf("expected DirectoryNotEmpty failure, got:\n%s", cmd)
	}
}

func TestShowRef(t *testing.T) {
	dir := setupStandardRepo(t)

	cliOut := runCLI(t, dir, "show-ref")
	if !strings.Contains(cliOut, "refs/heads/main") {
		t.Errorf("expected refs/heads/main in show-ref output, got:\n%s", cliOut)
	}
}

func TestTagList(t *testing.T) {
	dir := setupStandardRepo(t)

	git(t, dir, "tag", "v0.1.0")
	git(t, dir, "tag", "v0.2.0")

	cliOut := runCLI(t, dir, "tag")
	gitOut := git(t, dir, "tag")

	compareOutput(t, "tag", cliOut, gitOut)
}

func TestTagCreate(t *testing.T) {
	dir := setupStandardRepo(t)

	runCLI(t, dir, "tag", "--name=v1.0.0")

	gitOut := strings.TrimSpace(git(t, dir, "tag"))
	if gitOut != "v1.0.0" {
		t.Errorf("expected real git to see the created tag, got:\n%s", gitOut)
	}
}

func TestRevParseHead(t *testing.T) {
	dir := setupStandardRepo(t)

	cliOut := strings.TrimSpace(runCLI(t, dir, "rev-parse", "HEAD"))
	gitOut := strings.TrimSpace(git(t, dir, "rev-parse", "HEAD"))

	compareOutput(t, "rev-parse HEAD", cliOut, gitOut)
}

func TestRevParseAmbiguous(t *testing.T) {
	dir := setupStandardRepo(t)

	headID := strings.TrimSpace(git(t, dir, "rev-parse", "HEAD"))
	git(t, dir, "branch", headID[:10], "HEAD~1")

	out := runCLIExpectFailure(t, dir, "rev-parse", headID[:10])
	if !strings.Contains(out, "AmbiguousRef") {
		t.Errorf("expected AmbiguousRef, got:\n%s", out)
	}
}

func TestLsFiles(t *testing.T) {
	dir := setupStandardRepo(t)

	cliOut := runCLI(t, dir, "ls-files")
	gitOut := git(t, dir, "ls-files")

	compareOutput(t, "ls-files", cliOut, gitOut)
}
