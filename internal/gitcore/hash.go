// Package gitcore implements the content-addressed object store and
// reference system of a Git-compatible repository: the blob/tree/commit/tag
// codecs, the zlib-framed object store, the KVLM grammar, the reference
// resolver, the working-tree materializer, and the staging-index reader.
package gitcore

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Hash is a 40-character hex-encoded SHA-1 object identifier.
type Hash string

// NewHash validates s as a 40-character lowercase hex string and returns it
// as a Hash.
func NewHash(s string) (Hash, error) {
	if len(s) != 40 {
		return "", fmt.Errorf("invalid hash length: %d", len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", fmt.Errorf("invalid hash: %w", err)
	}
	if strings.ToLower(s) != s {
		return "", fmt.Errorf("invalid hash: not lowercase: %q", s)
	}
	return Hash(s), nil
}

// NewHashFromBytes converts a 20-byte raw SHA-1 digest into a Hash.
func NewHashFromBytes(b [20]byte) Hash {
	return Hash(hex.EncodeToString(b[:]))
}

// Bytes returns the raw 20-byte form of the hash. It panics if h is not a
// well-formed 40-hex Hash; callers that accept untrusted input should
// validate with NewHash first.
func (h Hash) Bytes() [20]byte {
	var out [20]byte
	raw, err := hex.DecodeString(string(h))
	if err != nil || len(raw) != 20 {
		panic(fmt.Sprintf("gitcore: malformed hash %q", string(h)))
	}
	copy(out[:], raw)
	return out
}

// Short returns the first 7 characters of the hash, or the full hash if
// shorter.
func (h Hash) Short() string {
	if len(h) < 7 {
		return string(h)
	}
	return string(h)[:7]
}

// String implements fmt.Stringer.
func (h Hash) String() string {
	return string(h)
}
