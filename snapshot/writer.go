package snapshot

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Save writes a dataset snapshot as CSV compressed with the given codec.
//
// The codec's extension is appended to path ("birds.csv" becomes
// "birds.csv.zst" under CodecZstd). Existing files are silently
// overwritten, matching the figure exporter.
//
// Parameters:
//   - path: Base file path, typically ending in ".csv"
//   - codecType: Compression codec for the payload
//   - columns: Column names written as the header row
//   - rows: Data rows; each must have one value per column
//
// Returns:
//   - string: Final path written, including the codec extension
//   - error: Shape, encoding, compression or write error naming the path
func Save(path string, codecType CodecType, columns []string, rows [][]string) (string, error) {
	for i, row := range rows {
		if len(row) != len(columns) {
			return "", fmt.Errorf("snapshot %s: row %d has %d values for %d columns",
				path, i, len(row), len(columns))
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return "", fmt.Errorf("snapshot %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("snapshot %s: %w", path, err)
	}

	codec, err := NewCodec(codecType)
	if err != nil {
		return "", fmt.Errorf("snapshot %s: %w", path, err)
	}
	payload, err := codec.Compress(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("snapshot %s: %w", path, err)
	}

	full := path + codecType.extension()
	if err := os.WriteFile(full, payload, 0o644); err != nil {
		return "", fmt.Errorf("snapshot %s: %w", full, err)
	}

	return full, nil
}

// Load reads back a snapshot written by Save with the given codec.
//
// Parameters:
//   - path: Full path as returned by Save
//   - codecType: Codec the snapshot was written with
//
// Returns:
//   - []string: Column names from the header row
//   - [][]string: Data rows
//   - error: Read, decompression or parse error naming the path
func Load(path string, codecType CodecType) ([]string, [][]string, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("snapshot %s: %w", path, err)
	}

	codec, err := NewCodec(codecType)
	if err != nil {
		return nil, nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("snapshot %s: %w", path, err)
	}

	records, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("snapshot %s: missing header row", path)
	}

	return records[0], records[1:], nil
}
