// Package snapshot exports synthesized datasets as CSV files, optionally
// compressed with a pluggable codec.
//
// Snapshots are a structured companion to the figure artifacts: they let a
// seeded run be diffed numerically without re-parsing images. The codec
// layer is deliberately symmetric so a snapshot written with any codec can
// be read back for verification.
package snapshot

import "fmt"

// CodecType is the closed set of snapshot compression codecs.
type CodecType uint8

const (
	CodecNone CodecType = 0x1 // CodecNone writes the CSV bytes as-is.
	CodecZstd CodecType = 0x2 // CodecZstd uses Zstandard compression.
	CodecS2   CodecType = 0x3 // CodecS2 uses S2 compression.
	CodecLZ4  CodecType = 0x4 // CodecLZ4 uses LZ4 frame compression.
)

func (c CodecType) String() string {
	switch c {
	case CodecNone:
		return "None"
	case CodecZstd:
		return "Zstd"
	case CodecS2:
		return "S2"
	case CodecLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// extension returns the path suffix appended to a snapshot written with
// this codec.
func (c CodecType) extension() string {
	switch c {
	case CodecZstd:
		return ".zst"
	case CodecS2:
		return ".s2"
	case CodecLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// ParseCodecType maps a codec name from configuration to its CodecType.
//
// Parameters:
//   - name: Codec name: "none", "zstd", "s2" or "lz4"
//
// Returns:
//   - CodecType: Parsed codec type
//   - error: Unknown codec name error
func ParseCodecType(name string) (CodecType, error) {
	switch name {
	case "none", "":
		return CodecNone, nil
	case "zstd":
		return CodecZstd, nil
	case "s2":
		return CodecS2, nil
	case "lz4":
		return CodecLZ4, nil
	default:
		return 0, fmt.Errorf("unknown snapshot codec %q", name)
	}
}

// Codec compresses and decompresses snapshot payloads.
//
// Implementations return newly allocated slices owned by the caller and
// never modify their input.
type Codec interface {
	// Compress compresses the payload.
	Compress(data []byte) ([]byte, error)
	// Decompress restores a payload written by the same codec.
	Decompress(data []byte) ([]byte, error)
}

// NewCodec creates the codec for the given type.
//
// Parameters:
//   - codecType: Codec type to instantiate
//
// Returns:
//   - Codec: Codec instance
//   - error: Unsupported codec type error
func NewCodec(codecType CodecType) (Codec, error) {
	switch codecType {
	case CodecNone:
		return noopCodec{}, nil
	case CodecZstd:
		return zstdCodec{}, nil
	case CodecS2:
		return s2Codec{}, nil
	case CodecLZ4:
		return lz4Codec{}, nil
	default:
		return nil, fmt.Errorf("unsupported snapshot codec: %s", codecType)
	}
}
