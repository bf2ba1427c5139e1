package format

import "fmt"

// CompressionType identifies the generic stream codec that wraps the
// delta-encoded payload inside a container.
type CompressionType uint8

const (
	CompressionNone   CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionGzip   CompressionType = 0x2 // CompressionGzip represents gzip (DEFLATE) compression.
	CompressionZstd   CompressionType = 0x3 // CompressionZstd represents Zstandard compression.
	CompressionS2     CompressionType = 0x4 // CompressionS2 represents S2 compression.
	CompressionLZ4    CompressionType = 0x5 // CompressionLZ4 represents LZ4 frame compression.
	CompressionSnappy CompressionType = 0x6 // CompressionSnappy represents Snappy framed compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionSnappy:
		return "Snappy"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a codec name (as accepted on the command line)
// to its CompressionType. Matching is exact on the lower-case names used by
// the CLI.
func ParseCompressionType(name string) (CompressionType, error) {
	switch name {
	case "none":
		return CompressionNone, nil
	case "gzip":
		return CompressionGzip, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	case "snappy":
		return CompressionSnappy, nil
	default:
		return 0, fmt.Errorf("unknown compression type: %q", name)
	}
}

// Container framing constants shared by the pack and unpack pipelines.
const (
	// Magic is the 4-byte signature at the start of every container.
	Magic = "KLP1"

	// Version is the container format version written by this build.
	Version uint8 = 1

	// HeaderSize is the fixed byte length of the container header:
	// magic (4) + version (1) + compression (1) + flags (1) + reserved (1).
	HeaderSize = 8

	// ChecksumSize is the byte length of the xxHash64 trailer appended to
	// the delta payload when checksumming is enabled.
	ChecksumSize = 8

	// FlagChecksum marks a container whose decompressed body ends with an
	// xxHash64 trailer over the original input bytes.
	FlagChecksum uint8 = 1 << 0
)
