package snapshot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func codecPayload() []byte {
	var buf bytes.Buffer
	for range 50 {
		buf.WriteString("elevation,harvesting,climate\n137.5,97.08,Wet\n")
	}

	return buf.Bytes()
}

func TestCodecs_Roundtrip(t *testing.T) {
	payload := codecPayload()

	for _, codecType := range []CodecType{CodecNone, CodecZstd, CodecS2, CodecLZ4} {
		t.Run(codecType.String(), func(t *testing.T) {
			codec, err := NewCodec(codecType)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, restored)
		})
	}
}

func TestCodecs_CompressReducesRepetitiveInput(t *testing.T) {
	payload := codecPayload()

	for _, codecType := range []CodecType{CodecZstd, CodecS2, CodecLZ4} {
		t.Run(codecType.String(), func(t *testing.T) {
			codec, err := NewCodec(codecType)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload))
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, codecType := range []CodecType{CodecNone, CodecZstd, CodecS2, CodecLZ4} {
		codec, err := NewCodec(codecType)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Empty(t, compressed)

		restored, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}

func TestNewCodec_Unsupported(t *testing.T) {
	_, err := NewCodec(CodecType(0xFF))
	require.Error(t, err)
}

func TestParseCodecType(t *testing.T) {
	tests := []struct {
		name string
		want CodecType
	}{
		{name: "none", want: CodecNone},
		{name: "", want: CodecNone},
		{name: "zstd", want: CodecZstd},
		{name: "s2", want: CodecS2},
		{name: "lz4", want: CodecLZ4},
	}
	for _, tt := range tests {
		got, err := ParseCodecType(tt.name)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}

	_, err := ParseCodecType("gzip")
	require.Error(t, err)
}
