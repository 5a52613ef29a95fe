package gitcore

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var hexPrefixRe = regexp.MustCompile(`^[0-9A-Fa-f]{4,40}$`)

// ResolveName maps a user-supplied name to a set of candidate identifiers,
// collecting from every applicable source before disambiguating:
//  1. "HEAD" resolves via ResolveRef.
//  2. A 4-40 hex-digit string is treated as an object-id prefix: every
//     filename under objects/<prefix>/ starting with the remainder
//     contributes one candidate.
//  3. refs/tags/<name>, if it resolves.
//  4. refs/heads/<name>, if it resolves.
//
// An empty candidate set fails UnknownRef; more than one fails AmbiguousRef
// (carrying the candidate list); exactly one is accepted.
func (r *Repository) ResolveName(name string) (Hash, error) {
	var candidates []Hash
	seen := make(map[Hash]bool)
	add := func(h Hash) {
		if !seen[h] {
			seen[h] = true
			candidates = append(candidates, h)
		}
	}

	if name == "HEAD" {
		id, ok, err := r.ResolveRef("HEAD")
		if err != nil {
			return "", err
		}
		if ok {
			add(id)
		}
	} else {
		if hexPrefixRe.MatchString(name) {
			lower := strings.ToLower(name)
			prefix, rest := lower[:2], lower[2:]
			dir := filepath.Join(r.gitdir, "objects", prefix)
			entries, err := os.ReadDir(dir)
			if err == nil {
				for _, e := range entries {
					if strings.HasPrefix(e.Name(), rest) {
						if id, err := NewHash(prefix + e.Name()); err == nil {
							add(id)
						}
					}
				}
			} else if !os.IsNotExist(err) {
				return "", wrapErr(IoFailure, err, "reading %s", dir)
			}
		}

		if id, ok, err := r.ResolveRef(filepath.Join("refs", "tags", name)); err != nil {
			return "", err
		} else if ok {
			add(id)
		}

		if id, ok, err := r.ResolveRef(filepath.Join("refs", "heads", name)); err != nil {
			return "", err
		} else if ok {
			add(id)
		}
	}

	switch len(candidates) {
	case 0:
		return "", newErr(UnknownRef, "%s", name)
	case 1:
		return candidates[0], nil
	default:
		return "", &Error{Kind: AmbiguousRef, Context: name, Candidates: candidates}
	}
}

// Resolve resolves name to an object of the expected kind. If follow is
// true and the resolved object is a tag, it follows the tag's object
// header and retries; if it is a commit and kind == TreeObject, it follows
// the commit's tree header. With follow disabled, a kind mismatch is fatal.
func (r *Repository) Resolve(name string, kind ObjectType, follow bool) (Hash, error) {
	id, err := r.ResolveName(name)
	if err != nil {
		return "", err
	}
	return r.followKind(id, kind, follow)
}

func (r *Repository) followKind(id Hash, kind ObjectType, follow bool) (Hash, error) {
	if kind == NoneObject {
		return id, nil
	}

	obj, err := r.ReadObject(id)
	if err != nil {
		return "", err
	}
	if obj == nil {
		return "", newErr(UnknownRef, "%s", id)
	}

	if obj.Type() == kind {
		return id, nil
	}

	if !follow {
		return "", newErr(UnknownKind, "%s is a %s, not a %s", id, obj.Type(), kind)
	}

	switch t := obj.(type) {
	case *Tag:
		obj, err := t.Object()
		if err != nil {
			return "", err
		}
		return r.followKind(obj, kind, follow)
	case *Commit:
		if kind == TreeObject {
			tree, err := t.Tree()
			if err != nil {
				return "", err
			}
			return r.followKind(tree, kind, follow)
		}
		return "", newErr(UnknownKind, "no such object of kind %s reachable from %s", kind, id)
	default:
		return "", newErr(UnknownKind, "no such object of kind %s reachable from %s", kind, id)
	}
}
