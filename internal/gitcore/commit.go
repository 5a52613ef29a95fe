package gitcore

import "fmt"

// Commit is a KVLM document with conventional headers: one tree, zero or
// more parents, an author, a committer, and a free-form message. The
// document itself, not these headers, is the source of truth: Serialize
// re-emits doc verbatim so that headers this type has no typed accessor
// for (encoding, mergetag, a repeated non-parent key, ...) survive
// a parse/serialize round trip bit for bit.
type Commit struct {
	doc *kvlm
}

// NewCommit builds a fresh commit from typed fields, for callers
// constructing a commit to write rather than parsing one that was read.
func NewCommit(tree Hash, parents []Hash, author, committer Signature, message string) *Commit {
	d := &kvlm{Message: []byte(message)}
	d.add("tree", []byte(tree))
	for _, p := range parents {
		d.add("parent", []byte(p))
	}
	d.add("author", []byte(author.String()))
	d.add("committer", []byte(committer.String()))
	return &Commit{doc: d}
}

// Type implements Object.
func (c *Commit) Type() ObjectType { return CommitObject }

// Serialize implements Object by rendering the commit's KVLM document
// verbatim: whatever headers were parsed (or added via NewCommit) are
// exactly what comes back out, in the same order.
func (c *Commit) Serialize() []byte { return serializeKVLM(c.doc) }

// Tree returns the commit's tree header.
func (c *Commit) Tree() (Hash, error) {
	v := c.doc.first("tree")
	if v == nil {
		return "", fmt.Errorf("commit missing tree header")
	}
	tree, err := NewHash(string(v))
	if err != nil {
		return "", fmt.Errorf("commit has malformed tree header: %w", err)
	}
	return tree, nil
}

// Parents returns the commit's parent headers, in order.
func (c *Commit) Parents() ([]Hash, error) {
	var parents []Hash
	for _, v := range c.doc.values("parent") {
		p, err := NewHash(string(v))
		if err != nil {
			return nil, fmt.Errorf("commit has malformed parent header: %w", err)
		}
		parents = append(parents, p)
	}
	return parents, nil
}

// Author returns the commit's author header, parsed into a Signature.
// This is a convenience accessor: a multi-line author value parses with
// only its leading line recognized, since Signature cannot represent
// continuation content. Serialize never goes through this accessor, so
// that loss never reaches the stored bytes.
func (c *Commit) Author() (Signature, error) {
	v := c.doc.first("author")
	if v == nil {
		return Signature{}, fmt.Errorf("commit missing author header")
	}
	return NewSignature(string(v))
}

// Committer returns the commit's committer header, parsed into a
// Signature. See Author for the same continuation-content caveat.
func (c *Commit) Committer() (Signature, error) {
	v := c.doc.first("committer")
	if v == nil {
		return Signature{}, fmt.Errorf("commit missing committer header")
	}
	return NewSignature(string(v))
}

// GPGSig returns the raw gpgsig header value, or nil if absent.
func (c *Commit) GPGSig() []byte { return c.doc.first("gpgsig") }

// Message returns the commit's free-form message body.
func (c *Commit) Message() string { return string(c.doc.Message) }

// deserializeCommit parses a commit's framed payload, keeping the parsed
// KVLM document intact so that Serialize can later reproduce it exactly.
func deserializeCommit(payload []byte) (*Commit, error) {
	d, err := parseKVLM(payload)
	if err != nil {
		return nil, err
	}

	if d.first("tree") == nil {
		return nil, fmt.Errorf("commit missing tree header")
	}

	c := &Commit{doc: d}
	if _, err := c.Tree(); err != nil {
		return nil, err
	}
	if _, err := c.Parents(); err != nil {
		return nil, err
	}
	return c, nil
}
