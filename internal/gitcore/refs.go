package gitcore

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ResolveRef resolves the reference path p (relative to gitdir). It reads
// gitdir/p; if absent, returns ("", false, nil) — absence is not an error,
// since a freshly initialized HEAD with no commits yet is legitimate. If the
// content is "ref: <target>\n", it recurses on <target>; a broken
// indirection anywhere in the chain likewise yields absence, not an error.
func (r *Repository) ResolveRef(p string) (Hash, bool, error) {
	full := filepath.Join(r.gitdir, p)

	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, wrapErr(IoFailure, err, "reading ref %s", p)
	}

	content := strings.TrimSpace(string(data))
	if strings.HasPrefix(content, "ref: ") {
		target := strings.TrimPrefix(content, "ref: ")
		return r.ResolveRef(target)
	}

	id, err := NewHash(content)
	if err != nil {
		return "", false, newErr(Malformed, "ref %s: %v", p, err)
	}
	return id, true, nil
}

// CreateRef writes refs/<name> to contain id followed by a single newline.
func (r *Repository) CreateRef(name string, id Hash) error {
	path, err := r.file([]string{"refs", name}, true)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(string(id)+"\n"), 0o644); err != nil {
		return wrapErr(IoFailure, err, "writing ref refs/%s", name)
	}
	return nil
}

// HeadRef returns the symbolic target HEAD points at (e.g. "refs/heads/main")
// and true, or ("", false) if HEAD is currently detached (points directly at
// an object id).
func (r *Repository) HeadRef() (string, bool, error) {
	data, err := os.ReadFile(filepath.Join(r.gitdir, "HEAD"))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, wrapErr(IoFailure, err, "reading HEAD")
	}
	content := strings.TrimSpace(string(data))
	if strings.HasPrefix(content, "ref: ") {
		return strings.TrimPrefix(content, "ref: "), true, nil
	}
	return "", false, nil
}

// Head resolves HEAD to its terminal identifier, or ("", false) if absent
// (e.g. a freshly initialized repository with no commits).
func (r *Repository) Head() (Hash, bool, error) {
	return r.ResolveRef("HEAD")
}

// Branches returns every refs/heads/<name> entry, flattened to a single
// name->id map (nested directories join with "/").
func (r *Repository) Branches() (map[string]Hash, error) {
	m, err := r.listRefsDir(filepath.Join("refs", "heads"))
	if err != nil {
		return nil, err
	}
	out := make(map[string]Hash)
	flattenRefMap(m, "", out)
	return out, nil
}

// Tags returns every refs/tags/<name> entry, flattened the same way.
func (r *Repository) Tags() (map[string]Hash, error) {
	m, err := r.listRefsDir(filepath.Join("refs", "tags"))
	if err != nil {
		return nil, err
	}
	out := make(map[string]Hash)
	flattenRefMap(m, "", out)
	return out, nil
}

func flattenRefMap(m RefMap, prefix string, out map[string]Hash) {
	for k, v := range m {
		name := k
		if prefix != "" {
			name = prefix + "/" + k
		}
		switch val := v.(type) {
		case Hash:
			out[name] = val
		case RefMap:
			flattenRefMap(val, name, out)
		}
	}
}

// RefMap is the nested structure produced by ListRefs: leaves are resolved
// identifiers, interior nodes are sub-maps keyed by path component.
type RefMap map[string]any

// ListRefs walks refs/ recursively and builds a nested structure keyed by
// filename. Directory entries are visited in lexicographic order, but a
// RefMap is a Go map, so the result itself carries no order. Entries are
// resolved to their terminal identifier; entries whose indirection is broken
// are omitted.
func (r *Repository) ListRefs() (RefMap, error) {
	return r.listRefsDir("refs")
}

func (r *Repository) listRefsDir(rel string) (RefMap, error) {
	full := filepath.Join(r.gitdir, rel)
	entries, err := os.ReadDir(full)
	if err != nil {
		if os.IsNotExist(err) {
			return RefMap{}, nil
		}
		return nil, wrapErr(IoFailure, err, "reading %s", full)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	out := make(RefMap)
	for _, e := range entries {
		childRel := filepath.Join(rel, e.Name())
		if e.IsDir() {
			sub, err := r.listRefsDir(childRel)
			if err != nil {
				return nil, err
			}
			out[e.Name()] = sub
			continue
		}

		id, ok, err := r.ResolveRef(childRel)
		if err != nil {
			return nil, err
		}
		if ok {
			out[e.Name()] = id
		}
	}
	return out, nil
}
