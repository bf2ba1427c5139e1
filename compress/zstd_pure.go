//go:build !zstdcgo

package compress

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// NewWriter returns a zstd stream writer using the pure-Go encoder.
//
// Concurrency is pinned to 1: the delta transform feeds the writer one line
// at a time, so parallel block encoding only adds goroutine overhead.
func (ZstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderConcurrency(1),
	)
}

// NewReader returns a zstd stream reader using the pure-Go decoder.
func (ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	decoder, err := zstd.NewReader(r,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(false),
	)
	if err != nil {
		return nil, err
	}

	return decoder.IOReadCloser(), nil
}
