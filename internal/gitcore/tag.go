package gitcore

import "fmt"

// Tag is an annotated tag: a KVLM document pointing at another object.
// As with Commit, the parsed document is the source of truth for
// Serialize; typed accessors are read-only conveniences layered on top.
type Tag struct {
	doc *kvlm
}

// NewTag builds a fresh annotated tag from typed fields.
func NewTag(object Hash, objType ObjectType, name string, tagger Signature, message string) *Tag {
	d := &kvlm{Message: []byte(message)}
	d.add("object", []byte(object))
	d.add("type", []byte(objType.String()))
	d.add("tag", []byte(name))
	d.add("tagger", []byte(tagger.String()))
	return &Tag{doc: d}
}

// Type implements Object.
func (t *Tag) Type() ObjectType { return TagObject }

// Serialize implements Object by rendering the tag's KVLM document
// verbatim.
func (t *Tag) Serialize() []byte { return serializeKVLM(t.doc) }

// Object returns the tag's object header.
func (t *Tag) Object() (Hash, error) {
	v := t.doc.first("object")
	if v == nil {
		return "", fmt.Errorf("tag missing object header")
	}
	obj, err := NewHash(string(v))
	if err != nil {
		return "", fmt.Errorf("tag has malformed object header: %w", err)
	}
	return obj, nil
}

// ObjType returns the tag's type header, or NoneObject if absent or
// unrecognized.
func (t *Tag) ObjType() ObjectType {
	v := t.doc.first("type")
	if v == nil {
		return NoneObject
	}
	return ParseObjectType(string(v))
}

// Name returns the tag's tag header (the tag's own name).
func (t *Tag) Name() string { return string(t.doc.first("tag")) }

// Tagger returns the tag's tagger header, parsed into a Signature. See
// Commit.Author for the continuation-content caveat.
func (t *Tag) Tagger() (Signature, error) {
	v := t.doc.first("tagger")
	if v == nil {
		return Signature{}, fmt.Errorf("tag missing tagger header")
	}
	return NewSignature(string(v))
}

// Message returns the tag's free-form message body.
func (t *Tag) Message() string { return string(t.doc.Message) }

// deserializeTag parses a tag's framed payload, keeping the parsed KVLM
// document intact so that Serialize can later reproduce it exactly.
func deserializeTag(payload []byte) (*Tag, error) {
	d, err := parseKVLM(payload)
	if err != nil {
		return nil, err
	}

	if d.first("object") == nil {
		return nil, fmt.Errorf("tag missing object header")
	}

	t := &Tag{doc: d}
	if _, err := t.Object(); err != nil {
		return nil, err
	}
	return t, nil
}
