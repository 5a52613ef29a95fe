package gitcore

import (
	"encoding/binary"
	"os"
	"path/filepath"
)

const (
	indexMagic          = "DIRC"
	indexHeaderSize     = 12
	indexFixedEntrySize = 62
	indexEntryAlignment = 8

	indexNameLenSentinel = 0xFFF
)

// EntryType is an index entry's 4-bit file-type field.
type EntryType int

const (
	// RegularFile is mode-type 0b1000.
	RegularFile EntryType = 0b1000
	// Symlink is mode-type 0b1010.
	Symlink EntryType = 0b1010
	// Gitlink is mode-type 0b1110.
	Gitlink EntryType = 0b1110
)

// IndexEntry is a single staged-file record.
type IndexEntry struct {
	CtimeSec  uint32
	CtimeNsec uint32
	MtimeSec  uint32
	MtimeNsec uint32
	Device    uint32
	Inode     uint32
	ModeType  EntryType
	ModePerm  uint16
	UID       uint32
	GID       uint32
	FileSize  uint32
	ID        Hash
	AssumeValid bool
	Extended    bool
	Stage       int
	Path        string
}

// Index is the parsed staging area: a version and an ordered list of
// entries.
type Index struct {
	Version uint32
	Entries []IndexEntry
}

// ReadIndex parses gitdir/index. If the file does not exist, it returns an
// empty Index rather than an error — a fresh repository has nothing staged.
func (r *Repository) ReadIndex() (*Index, error) {
	path := filepath.Join(r.gitdir, "index")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Index{Version: 2}, nil
		}
		return nil, wrapErr(IoFailure, err, "reading index")
	}
	return parseIndex(data)
}

// parseIndex decodes the raw bytes of an index file. Any assertion failure
// (bad magic, wrong version, non-zero reserved bits, extended flag set, bad
// mode-type, missing NUL) fails MalformedIndex.
func parseIndex(data []byte) (*Index, error) {
	if len(data) < indexHeaderSize {
		return nil, newErr(MalformedIndex, "file too short for header: %d bytes", len(data))
	}
	if string(data[:4]) != indexMagic {
		return nil, newErr(MalformedIndex, "bad magic %q", data[:4])
	}

	version := binary.BigEndian.Uint32(data[4:8])
	if version != 2 {
		return nil, newErr(MalformedIndex, "unsupported version %d", version)
	}

	numEntries := binary.BigEndian.Uint32(data[8:12])

	idx := &Index{Version: version, Entries: make([]IndexEntry, 0, numEntries)}

	offset := indexHeaderSize
	for i := uint32(0); i < numEntries; i++ {
		entry, consumed, err := parseIndexEntry(data, offset)
		if err != nil {
			return nil, newErr(MalformedIndex, "entry %d at offset %d: %v", i, offset, err)
		}
		idx.Entries = append(idx.Entries, entry)
		offset += consumed
	}

	return idx, nil
}

// parseIndexEntry decodes one entry starting at startOffset, returning the
// entry and the total number of bytes consumed (fixed fields + name + NUL +
// 8-byte alignment padding).
func parseIndexEntry(data []byte, startOffset int) (IndexEntry, int, error) {
	if startOffset+indexFixedEntrySize > len(data) {
		return IndexEntry{}, 0, newErr(MalformedIndex, "not enough data for fixed fields")
	}
	p := data[startOffset:]

	var e IndexEntry
	e.CtimeSec = binary.BigEndian.Uint32(p[0:4])
	e.CtimeNsec = binary.BigEndian.Uint32(p[4:8])
	e.MtimeSec = binary.BigEndian.Uint32(p[8:12])
	e.MtimeNsec = binary.BigEndian.Uint32(p[12:16])
	e.Device = binary.BigEndian.Uint32(p[16:20])
	e.Inode = binary.BigEndian.Uint32(p[20:24])

	reserved := binary.BigEndian.Uint16(p[24:26])
	if reserved != 0 {
		return IndexEntry{}, 0, newErr(MalformedIndex, "reserved bits non-zero: %#x", reserved)
	}

	modeField := binary.BigEndian.Uint16(p[26:28])
	modeType := EntryType(modeField >> 12)
	switch modeType {
	case RegularFile, Symlink, Gitlink:
	default:
		return IndexEntry{}, 0, newErr(MalformedIndex, "bad mode type %#o", modeType)
	}
	e.ModeType = modeType
	e.ModePerm = modeField & 0x1FF

	e.UID = binary.BigEndian.Uint32(p[28:32])
	e.GID = binary.BigEndian.Uint32(p[32:36])
	e.FileSize = binary.BigEndian.Uint32(p[36:40])

	var raw [20]byte
	copy(raw[:], p[40:60])
	e.ID = NewHashFromBytes(raw)

	flags := binary.BigEndian.Uint16(p[60:62])
	e.AssumeValid = flags&0x8000 != 0
	e.Extended = flags&0x4000 != 0
	if e.Extended {
		return IndexEntry{}, 0, newErr(MalformedIndex, "extended flag set in version-2 index")
	}
	e.Stage = int((flags & 0x3000) >> 12)
	nameLen := int(flags & 0x0FFF)

	nameStart := startOffset + indexFixedEntrySize
	var nameEnd int
	if nameLen < indexNameLenSentinel {
		nameEnd = nameStart + nameLen
		if nameEnd > len(data) {
			return IndexEntry{}, 0, newErr(MalformedIndex, "name extends beyond data")
		}
		if nameEnd >= len(data) || data[nameEnd] != 0 {
			return IndexEntry{}, 0, newErr(MalformedIndex, "missing NUL terminator after name")
		}
	} else {
		scanFrom := nameStart + indexNameLenSentinel
		nulIdx := -1
		for i := scanFrom; i < len(data); i++ {
			if data[i] == 0 {
				nulIdx = i
				break
			}
		}
		if nulIdx == -1 {
			return IndexEntry{}, 0, newErr(MalformedIndex, "missing NUL terminator for long name")
		}
		nameEnd = nulIdx
	}

	e.Path = string(data[nameStart:nameEnd])

	consumedRaw := (nameEnd + 1) - startOffset
	consumed := ((consumedRaw + indexEntryAlignment - 1) / indexEntryAlignment) * indexEntryAlignment
	if startOffset+consumed > len(data) {
		return IndexEntry{}, 0, newErr(MalformedIndex, "entry extends beyond end of data")
	}

	return e, consumed, nil
}
