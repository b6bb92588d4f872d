package snapshot

// noopCodec passes payloads through unchanged. It backs CodecNone and is
// also handy as a baseline in codec tests.
type noopCodec struct{}

var _ Codec = noopCodec{}

func (noopCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (noopCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
