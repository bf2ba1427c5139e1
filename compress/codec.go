package compress

import (
	"fmt"
	"io"

	"github.com/EnjiRouz/Kontur.LogPacker/format"
)

// Codec wraps a byte stream with a standard lossless compression algorithm.
//
// The delta transform produces a flat instruction stream with no internal
// framing, so the codec must be byte-transparent (whatever is written comes
// back out unchanged) and stream-oriented (sequential writes and reads, no
// need to hold the whole payload in memory). Every implementation in this
// package satisfies both.
//
// Thread safety: a Codec value is stateless and safe for concurrent use;
// the writers and readers it produces are not.
type Codec interface {
	// Type reports the compression type this codec implements.
	Type() format.CompressionType

	// NewWriter returns a writer that compresses everything written to it
	// onto w. The caller must Close the returned writer to flush the final
	// frame; closing it does not close w.
	NewWriter(w io.Writer) (io.WriteCloser, error)

	// NewReader returns a reader that decompresses the stream in r.
	// Closing the returned reader releases codec resources; it does not
	// close r.
	NewReader(r io.Reader) (io.ReadCloser, error)
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:   NewNoOpCodec(),
	format.CompressionGzip:   NewGzipCodec(),
	format.CompressionZstd:   NewZstdCodec(),
	format.CompressionS2:     NewS2Codec(),
	format.CompressionLZ4:    NewLZ4Codec(),
	format.CompressionSnappy: NewSnappyCodec(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// nopWriteCloser adapts an io.Writer whose codec has no final frame to
// flush, keeping the underlying stream open on Close.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// readCloserFunc adapts a reader whose cleanup is not expressed as
// io.Closer (pooled decoders, cgo-backed readers).
type readCloserFunc struct {
	io.Reader
	close func() error
}

func (r readCloserFunc) Close() error { return r.close() }
