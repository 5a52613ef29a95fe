package gitcore

import (
	"os"
	"path/filepath"
)

// checkoutWork is one pending (tree, destination-directory) pair in the
// iterative work list, keeping Checkout's stack depth bounded regardless of
// the tree's nesting.
type checkoutWork struct {
	tree *Tree
	dest string
}

// Checkout reads the object named by id — following a commit to its tree if
// necessary — and materializes it into target. target must be either
// absent (it is created) or an existing empty directory; otherwise it fails
// DirectoryNotEmpty or NotADirectory. Blob payloads are written verbatim;
// symlinks are treated as blobs; gitlinks are skipped.
func (r *Repository) Checkout(id Hash, target string) error {
	obj, err := r.ReadObject(id)
	if err != nil {
		return err
	}
	if obj == nil {
		return newErr(UnknownRef, "%s", id)
	}

	var tree *Tree
	switch t := obj.(type) {
	case *Tree:
		tree = t
	case *Commit:
		treeID, err := t.Tree()
		if err != nil {
			return err
		}
		treeObj, err := r.ReadObject(treeID)
		if err != nil {
			return err
		}
		tt, ok := treeObj.(*Tree)
		if !ok {
			return newErr(Malformed, "commit %s points at a non-tree object", id)
		}
		tree = tt
	default:
		return newErr(UnknownKind, "%s is a %s, not a commit or tree", id, obj.Type())
	}

	if err := prepareCheckoutTarget(target); err != nil {
		return err
	}

	work := []checkoutWork{{tree: tree, dest: target}}
	for len(work) > 0 {
		item := work[0]
		work = work[1:]

		for _, entry := range item.tree.Entries {
			dest := filepath.Join(item.dest, entry.Path)

			kind, err := entry.Kind()
			if err != nil {
				return err
			}

			switch kind {
			case TreeObject:
				if err := os.MkdirAll(dest, 0o755); err != nil {
					return wrapErr(IoFailure, err, "creating directory %s", dest)
				}
				obj, err := r.ReadObject(entry.ID)
				if err != nil {
					return err
				}
				subtree, ok := obj.(*Tree)
				if !ok {
					return newErr(Malformed, "tree entry %s claims tree mode but is not a tree", entry.Path)
				}
				work = append(work, checkoutWork{tree: subtree, dest: dest})
			case BlobObject:
				obj, err := r.ReadObject(entry.ID)
				if err != nil {
					return err
				}
				blob, ok := obj.(*Blob)
				if !ok {
					return newErr(Malformed, "tree entry %s claims blob mode but is not a blob", entry.Path)
				}
				if err := os.WriteFile(dest, blob.Data, 0o644); err != nil {
					return wrapErr(IoFailure, err, "writing %s", dest)
				}
			case CommitObject:
				// gitlink: submodule reference, skipped.
			}
		}
	}

	return nil
}

// prepareCheckoutTarget ensures target is either absent (creating it) or an
// existing empty directory.
func prepareCheckoutTarget(target string) error {
	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return wrapErr(IoFailure, err, "creating directory %s", target)
			}
			return nil
		}
		return wrapErr(IoFailure, err, "stat %s", target)
	}

	if !info.IsDir() {
		return newErr(NotADirectory, "%s", target)
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		return wrapErr(IoFailure, err, "reading %s", target)
	}
	if len(entries) > 0 {
		return newErr(DirectoryNotEmpty, "%s", target)
	}

	return nil
}
