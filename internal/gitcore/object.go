package gitcore

const (
	kindCommit = "commit"
	kindTree   = "tree"
	kindBlob   = "blob"
	kindTag    = "tag"
)

// Object is a generic Git object: a blob, tree, commit, or tag.
type Object interface {
	// Type returns the object's kind.
	Type() ObjectType
	// Serialize returns the object's payload bytes (without the
	// "<kind> <len>\0" framing header).
	Serialize() []byte
}

// ObjectType enumerates the four object kinds. Values match the Git pack
// format's object-type numbering, which this store never writes but keeps
// as the canonical ordering for dispatch.
type ObjectType int

const (
	// NoneObject represents no object / an unknown kind.
	NoneObject ObjectType = 0
	// CommitObject is a commit.
	CommitObject ObjectType = 1
	// TreeObject is a tree.
	TreeObject ObjectType = 2
	// BlobObject is a blob.
	BlobObject ObjectType = 3
	// TagObject is an annotated tag.
	TagObject ObjectType = 4
)

// String returns the on-disk kind name ("blob", "commit", "tree", "tag").
func (t ObjectType) String() string {
	switch t {
	case CommitObject:
		return kindCommit
	case TreeObject:
		return kindTree
	case BlobObject:
		return kindBlob
	case TagObject:
		return kindTag
	default:
		return "unknown"
	}
}

// ParseObjectType converts an on-disk kind name to an ObjectType. It returns
// NoneObject for any string outside the closed set of four kinds.
func ParseObjectType(s string) ObjectType {
	switch s {
	case kindCommit:
		return CommitObject
	case kindTree:
		return TreeObject
	case kindBlob:
		return BlobObject
	case kindTag:
		return TagObject
	default:
		return NoneObject
	}
}
