package gitcore

import (
	"bytes"
	"sort"
	"strings"
)

// TreeEntry is one (mode, path, id) leaf of a tree object. Mode is always
// normalized to 6 digits in memory (5-digit modes are left-padded with '0'
// on parse); Serialize writes it back verbatim, without re-stripping.
type TreeEntry struct {
	Mode string
	Path string
	ID   Hash
}

// Tree is an ordered sequence of leaves.
type Tree struct {
	Entries []TreeEntry
}

// Type implements Object.
func (t *Tree) Type() ObjectType { return TreeObject }

// sortKey is the key entries are ordered by on serialization: path for
// regular-file-class modes (those beginning with "10"), path+"/" otherwise.
// This places a directory-named subtree immediately after a same-named file
// prefix block, matching the canonical upstream ordering.
func (e TreeEntry) sortKey() string {
	if strings.HasPrefix(e.Mode, "10") {
		return e.Path
	}
	return e.Path + "/"
}

// Serialize implements Object: sorts leaves by sortKey, then emits
// "mode SP path NUL raw20" per leaf.
func (t *Tree) Serialize() []byte {
	entries := make([]TreeEntry, len(t.Entries))
	copy(entries, t.Entries)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].sortKey() < entries[j].sortKey()
	})

	var buf bytes.Buffer
	for _, e := range entries {
		buf.WriteString(e.Mode)
		buf.WriteByte(' ')
		buf.WriteString(e.Path)
		buf.WriteByte(0)
		raw := e.ID.Bytes()
		buf.Write(raw[:])
	}
	return buf.Bytes()
}

// Kind classifies a tree entry's mode for listing purposes: first two
// digits 04 -> tree, 10 -> blob (regular file), 12 -> blob (symlink),
// 16 -> commit (gitlink). Any other leading two digits is UnknownMode.
func (e TreeEntry) Kind() (ObjectType, error) {
	if len(e.Mode) < 2 {
		return NoneObject, newErr(UnknownMode, "mode %q too short", e.Mode)
	}
	switch e.Mode[:2] {
	case "04":
		return TreeObject, nil
	case "10", "12":
		return BlobObject, nil
	case "16":
		return CommitObject, nil
	default:
		return NoneObject, newErr(UnknownMode, "mode %q", e.Mode)
	}
}

// deserializeTree parses a tree's framed payload: repeatedly read a
// SP-delimited mode (5 or 6 digits), a NUL-delimited UTF-8 path, then 20 raw
// bytes as the big-endian identifier.
func deserializeTree(payload []byte) (*Tree, error) {
	var entries []TreeEntry
	pos := 0
	n := len(payload)

	for pos < n {
		spaceIdx := bytes.IndexByte(payload[pos:], ' ')
		if spaceIdx == -1 {
			return nil, newErr(Malformed, "tree: missing space at offset %d", pos)
		}
		spaceIdx += pos
		mode := string(payload[pos:spaceIdx])
		if len(mode) != 5 && len(mode) != 6 {
			return nil, newErr(Malformed, "tree: invalid mode length %d at offset %d", len(mode), pos)
		}
		if len(mode) == 5 {
			mode = "0" + mode
		}

		nulIdx := bytes.IndexByte(payload[spaceIdx+1:], 0)
		if nulIdx == -1 {
			return nil, newErr(Malformed, "tree: missing NUL at offset %d", spaceIdx+1)
		}
		nulIdx += spaceIdx + 1
		path := string(payload[spaceIdx+1 : nulIdx])

		idStart := nulIdx + 1
		idEnd := idStart + 20
		if idEnd > n {
			return nil, newErr(Malformed, "tree: truncated identifier at offset %d", idStart)
		}
		var raw [20]byte
		copy(raw[:], payload[idStart:idEnd])

		entries = append(entries, TreeEntry{
			Mode: mode,
			Path: path,
			ID:   NewHashFromBytes(raw),
		})
		pos = idEnd
	}

	return &Tree{Entries: entries}, nil
}
