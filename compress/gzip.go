package compress

import (
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/EnjiRouz/Kontur.LogPacker/format"
)

// GzipCodec compresses with gzip (DEFLATE).
//
// The slowest of the built-in codecs but readable by virtually everything;
// kept for interoperability with tooling that expects gzip inside the
// container.
type GzipCodec struct{}

var _ Codec = GzipCodec{}

// NewGzipCodec creates a gzip codec using the default compression level.
func NewGzipCodec() GzipCodec {
	return GzipCodec{}
}

func (GzipCodec) Type() format.CompressionType {
	return format.CompressionGzip
}

func (GzipCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriterLevel(w, gzip.DefaultCompression)
}

func (GzipCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}
