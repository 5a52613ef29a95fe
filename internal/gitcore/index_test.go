package gitcore

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// buildIndexEntry constructs one fixed-62-byte-plus-name entry, padded to an
// 8-byte boundary, matching the on-disk layout parseIndexEntry expects.
func buildIndexEntry(path string, id [20]byte, modeType EntryType, perm uint16, stage int) []byte {
	var buf bytes.Buffer
	var u32 [4]byte

	putU32 := func(v uint32) {
		binary.BigEndian.PutUint32(u32[:], v)
		buf.Write(u32[:])
	}

	putU32(0)    // ctime sec
	putU32(0)    // ctime nsec
	putU32(0)    // mtime sec
	putU32(0)    // mtime nsec
	putU32(0)    // dev
	putU32(0)    // ino

	var u16 [2]byte
	binary.BigEndian.PutUint16(u16[:], 0) // reserved
	buf.Write(u16[:])

	modeField := uint16(modeType)<<12 | (perm & 0x1FF)
	binary.BigEndian.PutUint16(u16[:], modeField)
	buf.Write(u16[:])

	putU32(0) // uid
	putU32(0) // gid
	putU32(uint32(len(path)))

	buf.Write(id[:])

	nameLen := len(path)
	if nameLen > 0xFFE {
		nameLen = 0xFFF
	}
	flags := uint16(stage&0x3)<<12 | uint16(nameLen)
	binary.BigEndian.PutUint16(u16[:], flags)
	buf.Write(u16[:])

	buf.WriteString(path)
	buf.WriteByte(0)

	raw := buf.Bytes()
	padded := ((len(raw) + indexEntryAlignment - 1) / indexEntryAlignment) * indexEntryAlignment
	for len(raw) < padded {
		raw = append(raw, 0)
	}
	return raw
}

func buildIndexFile(entries [][]byte) []byte {
	var buf bytes.Buffer
	buf.WriteString(indexMagic)
	var u32 [4]byte
	binary.BigEndian.PutUint32(u32[:], 2)
	buf.Write(u32[:])
	binary.BigEndian.PutUint32(u32[:], uint32(len(entries)))
	buf.Write(u32[:])
	for _, e := range entries {
		buf.Write(e)
	}
	return buf.Bytes()
}

func TestParseIndexBasic(t *testing.T) {
	var id [20]byte
	id[0] = 0xAB
	data := buildIndexFile([][]byte{
		buildIndexEntry("README.md", id, RegularFile, 0o644, 0),
		buildIndexEntry("src/main.go", id, RegularFile, 0o755, 0),
	})

	idx, err := parseIndex(data)
	if err != nil {
		t.Fatalf("parseIndex: %v", err)
	}
	if idx.Version != 2 {
		t.Errorf("Version = %d, want 2", idx.Version)
	}
	if len(idx.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(idx.Entries))
	}
	if idx.Entries[0].Path != "README.md" {
		t.Errorf("entry 0 path = %q", idx.Entries[0].Path)
	}
	if idx.Entries[1].Path != "src/main.go" {
		t.Errorf("entry 1 path = %q", idx.Entries[1].Path)
	}
	if idx.Entries[1].ModeType != RegularFile {
		t.Errorf("entry 1 mode type = %v", idx.Entries[1].ModeType)
	}
	if idx.Entries[1].ModePerm != 0o755 {
		t.Errorf("entry 1 perm = %#o, want %#o", idx.Entries[1].ModePerm, 0o755)
	}
}

func TestParseIndexBadMagic(t *testing.T) {
	data := buildIndexFile(nil)
	data = append([]byte("XXXX"), data[4:]...)
	if _, err := parseIndex(data); err == nil {
		t.Fatal("expected MalformedIndex for bad magic")
	}
}

func TestParseIndexBadVersion(t *testing.T) {
	data := buildIndexFile(nil)
	binary.BigEndian.PutUint32(data[4:8], 3)
	if _, err := parseIndex(data); err == nil {
		t.Fatal("expected MalformedIndex for unsupported version")
	}
}

func TestParseIndexRejectsNonZeroReserved(t *testing.T) {
	var id [20]byte
	entry := buildIndexEntry("f", id, RegularFile, 0o644, 0)
	// Reserved bits are at offset 24:26 within the entry.
	entry[24] = 0xFF
	data := buildIndexFile([][]byte{entry})
	if _, err := parseIndex(data); err == nil {
		t.Fatal("expected MalformedIndex for non-zero reserved bits")
	}
}

func TestParseIndexEntryAlignment(t *testing.T) {
	var id [20]byte
	// A 1-character name plus its NUL fills the entry to exactly 64 bytes,
	// so the second entry must start right after it with no padding.
	entry := buildIndexEntry("a", id, RegularFile, 0o644, 0)
	if len(entry)%indexEntryAlignment != 0 {
		t.Fatalf("fixture entry length %d is not 8-byte aligned", len(entry))
	}
	data := buildIndexFile([][]byte{entry, buildIndexEntry("b", id, RegularFile, 0o644, 0)})

	idx, err := parseIndex(data)
	if err != nil {
		t.Fatalf("parseIndex: %v", err)
	}
	if len(idx.Entries) != 2 || idx.Entries[1].Path != "b" {
		t.Fatalf("alignment broke subsequent entry parsing: %+v", idx.Entries)
	}
}

func TestReadIndexAbsentIsEmpty(t *testing.T) {
	r := newTestRepo(t)
	idx, err := r.ReadIndex()
	if err != nil {
		t.Fatalf("ReadIndex: %v", err)
	}
	if idx.Version != 2 || len(idx.Entries) != 0 {
		t.Errorf("expected empty version-2 index, got %+v", idx)
	}
}
