package compress

import "github.com/EnjiRouz/Kontur.LogPacker/format"

// ZstdCodec compresses with Zstandard, the default codec for containers.
//
// Zstd consistently produces the best ratios on delta-encoded log payloads
// while decompressing several times faster than gzip. Two implementations
// are provided:
//   - the pure-Go klauspost/compress encoder (default)
//   - the libzstd-backed valyala/gozstd encoder (build tag "zstdcgo")
//
// Both produce standard zstd frames and can read each other's output.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

func (ZstdCodec) Type() format.CompressionType {
	return format.CompressionZstd
}
