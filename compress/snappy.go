package compress

import (
	"io"

	"github.com/golang/snappy"

	"github.com/EnjiRouz/Kontur.LogPacker/format"
)

// SnappyCodec compresses with the framed snappy format.
//
// Mostly superseded by S2, which reads snappy streams and compresses
// better; kept for containers that must be consumed by snappy-only readers.
type SnappyCodec struct{}

var _ Codec = SnappyCodec{}

// NewSnappyCodec creates a snappy codec.
func NewSnappyCodec() SnappyCodec {
	return SnappyCodec{}
}

func (SnappyCodec) Type() format.CompressionType {
	return format.CompressionSnappy
}

func (SnappyCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return snappy.NewBufferedWriter(w), nil
}

func (SnappyCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(snappy.NewReader(r)), nil
}
