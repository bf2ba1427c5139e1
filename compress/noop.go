package compress

import (
	"io"

	"github.com/EnjiRouz/Kontur.LogPacker/format"
)

// NoOpCodec passes data through without compression.
//
// Useful for measuring how much of the final ratio comes from the delta
// transform alone, and for debugging container framing without a codec in
// the way.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a passthrough codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

func (NoOpCodec) Type() format.CompressionType {
	return format.CompressionNone
}

func (NoOpCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

func (NoOpCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}
