package gitcore

// Blob is an uninterpreted byte payload.
type Blob struct {
	Data []byte
}

// Type implements Object.
func (b *Blob) Type() ObjectType { return BlobObject }

// Serialize implements Object: a blob's payload is its raw bytes, verbatim.
func (b *Blob) Serialize() []byte { return b.Data }

// deserializeBlob builds a Blob from a framed payload.
func deserializeBlob(payload []byte) (*Blob, error) {
	data := make([]byte, len(payload))
	copy(data, payload)
	return &Blob{Data: data}, nil
}
