// Package compress provides the generic stream codecs that wrap the
// delta-encoded payload inside a container.
//
// The delta transform removes inter-line redundancy; the codecs in this
// package remove the byte-level redundancy that remains. They are opaque to
// the core transform, which only requires byte transparency and sequential
// stream access.
//
// Available codecs:
//   - None: passthrough, useful for debugging and baseline measurements
//   - Gzip: widest compatibility, moderate ratio and speed
//   - Zstd: best ratio for log payloads, the default
//   - S2: fastest, snappy-compatible output
//   - LZ4: very fast with a standard frame format
//   - Snappy: framed snappy, legacy interoperability
//
// All codecs are registered in a built-in table keyed by
// format.CompressionType; use GetCodec to obtain one.
package compress
