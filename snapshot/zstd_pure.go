//go:build !gozstd

package snapshot

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Encoder and decoder are pooled; the klauspost zstd implementation is
// designed for reuse and allocates heavily when recreated per call.
var (
	zstdEncoderPool = sync.Pool{
		New: func() any {
			enc, err := zstd.NewWriter(nil,
				zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(zstdLevel)),
				zstd.WithEncoderConcurrency(1),
			)
			if err != nil {
				panic(fmt.Sprintf("create zstd encoder: %v", err))
			}

			return enc
		},
	}

	zstdDecoderPool = sync.Pool{
		New: func() any {
			dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
			if err != nil {
				panic(fmt.Sprintf("create zstd decoder: %v", err))
			}

			return dec
		},
	}
)

func (zstdCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	enc, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

func (zstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dec, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(dec)

	return dec.DecodeAll(data, nil)
}
