package gitcore

import (
	"bytes"
	"compress/zlib"
	"crypto/sha1"
	"fmt"
	"io"
	"os"
	"strconv"
)

// maxDecompressedSize bounds how much a single object is allowed to inflate
// to, guarding against a maliciously crafted zlib bomb.
const maxDecompressedSize = 256 * 1024 * 1024

// ReadObject locates, decompresses, and deserializes the object named by id.
// It returns (nil, nil) if the object file does not exist on disk.
func (r *Repository) ReadObject(id Hash) (Object, error) {
	path, ok, err := r.objectPath(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapErr(IoFailure, err, "reading object %s", id)
	}

	framed, err := inflate(raw)
	if err != nil {
		return nil, newErr(Malformed, "object %s: %v", id, err)
	}

	kind, payload, err := splitFrame(framed)
	if err != nil {
		if e, ok := err.(*Error); ok {
			return nil, newErr(e.Kind, "object %s: %s", id, e.Context)
		}
		return nil, newErr(Malformed, "object %s: %v", id, err)
	}

	return deserialize(kind, payload)
}

// splitFrame extracts the kind and payload from a framed form
// "<kind> SP <len> NUL <payload>", verifying that the declared length
// equals the payload's actual byte length.
func splitFrame(framed []byte) (ObjectType, []byte, error) {
	spaceIdx := bytes.IndexByte(framed, ' ')
	if spaceIdx == -1 {
		return NoneObject, nil, fmt.Errorf("missing space in header")
	}
	nulIdx := bytes.IndexByte(framed, 0)
	if nulIdx == -1 || nulIdx < spaceIdx {
		return NoneObject, nil, fmt.Errorf("missing NUL in header")
	}

	kindStr := string(framed[:spaceIdx])
	kind := ParseObjectType(kindStr)
	if kind == NoneObject {
		return NoneObject, nil, newErr(UnknownKind, "unrecognized kind %q", kindStr)
	}

	lenStr := string(framed[spaceIdx+1 : nulIdx])
	declared, err := strconv.Atoi(lenStr)
	if err != nil {
		return NoneObject, nil, fmt.Errorf("invalid declared length %q", lenStr)
	}

	payload := framed[nulIdx+1:]
	if declared != len(payload) {
		return NoneObject, nil, fmt.Errorf("declared length %d does not match payload length %d", declared, len(payload))
	}

	return kind, payload, nil
}

// deserialize dispatches a framed payload to the appropriate per-kind
// deserializer.
func deserialize(kind ObjectType, payload []byte) (Object, error) {
	switch kind {
	case BlobObject:
		return deserializeBlob(payload)
	case CommitObject:
		return deserializeCommit(payload)
	case TreeObject:
		return deserializeTree(payload)
	case TagObject:
		return deserializeTag(payload)
	default:
		return nil, newErr(UnknownKind, "kind %v", kind)
	}
}

// frame prepends an object's kind-and-length header to its serialized
// payload: "<kind> <decimal-length>\0<payload>".
func frame(obj Object) []byte {
	payload := obj.Serialize()
	header := fmt.Sprintf("%s %d\x00", obj.Type(), len(payload))
	out := make([]byte, 0, len(header)+len(payload))
	out = append(out, header...)
	out = append(out, payload...)
	return out
}

// HashObject computes the identifier of obj without writing it anywhere.
func HashObject(obj Object) Hash {
	framed := frame(obj)
	sum := sha1.Sum(framed)
	return NewHashFromBytes(sum)
}

// WriteObject serializes obj, computes its identifier, and — if no object
// already exists at the target path — zlib-compresses and writes it.
// Writing is idempotent: an existing object at the computed path is never
// overwritten.
func (r *Repository) WriteObject(obj Object) (Hash, error) {
	framed := frame(obj)
	sum := sha1.Sum(framed)
	id := NewHashFromBytes(sum)

	path, err := r.objectFilePath(id, true)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err == nil {
		return id, nil
	} else if !os.IsNotExist(err) {
		return "", wrapErr(IoFailure, err, "stat object %s", id)
	}

	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(framed); err != nil {
		w.Close()
		return "", wrapErr(IoFailure, err, "compressing object %s", id)
	}
	if err := w.Close(); err != nil {
		return "", wrapErr(IoFailure, err, "finalizing object %s", id)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o444); err != nil {
		return "", wrapErr(IoFailure, err, "writing object %s", id)
	}

	return id, nil
}

// objectPath returns the on-disk path for id and whether it exists.
func (r *Repository) objectPath(id Hash) (string, bool, error) {
	path, err := r.objectFilePath(id, false)
	if err != nil {
		return "", false, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, wrapErr(IoFailure, err, "stat object %s", id)
	}
	return path, true, nil
}

// objectFilePath computes objects/<aa>/<bb...> for id, optionally creating
// the <aa> directory.
func (r *Repository) objectFilePath(id Hash, mkdir bool) (string, error) {
	s := string(id)
	if len(s) != 40 {
		return "", fmt.Errorf("malformed identifier %q", s)
	}
	return r.file([]string{"objects", s[:2], s[2:]}, mkdir)
}

// inflate zlib-decompresses raw, guarding against decompression bombs via
// maxDecompressedSize.
func inflate(raw []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("zlib: %w", err)
	}
	defer zr.Close()

	limited := io.LimitReader(zr, maxDecompressedSize+1)
	out, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("zlib: %w", err)
	}
	if len(out) > maxDecompressedSize {
		return nil, fmt.Errorf("decompressed object exceeds %d bytes", maxDecompressedSize)
	}
	return out, nil
}
