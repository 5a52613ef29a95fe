package gitcore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckoutMaterializesTreeVerbatim(t *testing.T) {
	r := newTestRepo(t)

	blob := &Blob{Data: []byte("hello\n")}
	blobID, err := r.WriteObject(blob)
	if err != nil {
		t.Fatalf("WriteObject(blob): %v", err)
	}

	subBlob := &Blob{Data: []byte("nested\n")}
	subBlobID, err := r.WriteObject(subBlob)
	if err != nil {
		t.Fatalf("WriteObject(subBlob): %v", err)
	}
	subtree := &Tree{Entries: []TreeEntry{{Mode: "100644", Path: "inner.txt", ID: subBlobID}}}
	subtreeID, err := r.WriteObject(subtree)
	if err != nil {
		t.Fatalf("WriteObject(subtree): %v", err)
	}

	tree := &Tree{Entries: []TreeEntry{
		{Mode: "100644", Path: "top.txt", ID: blobID},
		{Mode: "040000", Path: "dir", ID: subtreeID},
	}}
	treeID, err := r.WriteObject(tree)
	if err != nil {
		t.Fatalf("WriteObject(tree): %v", err)
	}

	target := filepath.Join(t.TempDir(), "out")
	if err := r.Checkout(treeID, target); err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(target, "top.txt"))
	if err != nil || string(got) != "hello\n" {
		t.Errorf("top.txt = %q, %v", got, err)
	}
	got, err = os.ReadFile(filepath.Join(target, "dir", "inner.txt"))
	if err != nil || string(got) != "nested\n" {
		t.Errorf("dir/inner.txt = %q, %v", got, err)
	}
}

func TestCheckoutRejectsNonEmptyTarget(t *testing.T) {
	r := newTestRepo(t)
	tree := &Tree{}
	treeID, err := r.WriteObject(tree)
	if err != nil {
		t.Fatalf("WriteObject(tree): %v", err)
	}

	target := t.TempDir()
	if err := os.WriteFile(filepath.Join(target, "marker"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	err = r.Checkout(treeID, target)
	if err == nil {
		t.Fatal("expected DirectoryNotEmpty error")
	}
	if !errors.Is(err, ErrDirectoryNotEmpty) {
		t.Errorf("expected DirectoryNotEmpty, got %v", err)
	}
}

func TestCheckoutRejectsFileTarget(t *testing.T) {
	r := newTestRepo(t)
	tree := &Tree{}
	treeID, err := r.WriteObject(tree)
	if err != nil {
		t.Fatalf("WriteObject(tree): %v", err)
	}

	target := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	err = r.Checkout(treeID, target)
	if !errors.Is(err, ErrNotADirectory) {
		t.Errorf("expected NotADirectory, got %v", err)
	}
}

func TestCheckoutFollowsCommitToTree(t *testing.T) {
	r := newTestRepo(t)
	blob := &Blob{Data: []byte("content\n")}
	blobID, err := r.WriteObject(blob)
	if err != nil {
		t.Fatalf("WriteObject(blob): %v", err)
	}
	tree := &Tree{Entries: []TreeEntry{{Mode: "100644", Path: "f", ID: blobID}}}
	treeID, err := r.WriteObject(tree)
	if err != nil {
		t.Fatalf("WriteObject(tree): %v", err)
	}
	commit := NewCommit(treeID, nil, sig("A", "a@x", zeroTime()), sig("A", "a@x", zeroTime()), "msg\n")
	commitID, err := r.WriteObject(commit)
	if err != nil {
		t.Fatalf("WriteObject(commit): %v", err)
	}

	target := filepath.Join(t.TempDir(), "out")
	if err := r.Checkout(commitID, target); err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(target, "f"))
	if err != nil || string(got) != "content\n" {
		t.Errorf("f = %q, %v", got, err)
	}
}
