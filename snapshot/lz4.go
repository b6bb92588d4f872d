package snapshot

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// lz4Codec compresses snapshots with the LZ4 frame format. The frame
// format carries the decompressed size, so Decompress needs no buffer
// size guessing.
type lz4Codec struct{}

var _ Codec = lz4Codec{}

func (lz4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}

	return buf.Bytes(), nil
}

func (lz4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}

	return out, nil
}
