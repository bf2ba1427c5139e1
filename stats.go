package logpacker

import "github.com/EnjiRouz/Kontur.LogPacker/format"

// Stats summarizes one pack or unpack operation.
type Stats struct {
	// Compression identifies the codec that wrapped the container body.
	Compression format.CompressionType

	// Lines is the number of lines that passed through the transform,
	// counting a final unterminated fragment as a line.
	Lines int64

	// OriginalSize is the byte count of the raw log data.
	OriginalSize int64

	// PackedSize is the byte count of the whole container, header
	// included.
	PackedSize int64
}

// CompressionRatio returns packed size over original size. Values below 1.0
// indicate the container is smaller than the input; 0 if the input was
// empty.
func (s *Stats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.PackedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage of the original
// size. Negative when framing overhead exceeds the savings, which happens
// only for tiny inputs.
func (s *Stats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}
