package snapshot

// zstdCodec compresses snapshots with Zstandard. Two implementations
// exist: a cgo binding (zstd_cgo.go, behind the gozstd build tag) and a
// pure-Go fallback (zstd_pure.go); both produce interchangeable frames.
type zstdCodec struct{}

var _ Codec = zstdCodec{}

// zstdLevel is the compression level used by both implementations.
const zstdLevel = 3
