//go:build zstdcgo

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

// NewWriter returns a zstd stream writer backed by libzstd.
func (ZstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return &gozstdWriter{zw: gozstd.NewWriterLevel(w, 3)}, nil
}

// NewReader returns a zstd stream reader backed by libzstd.
func (ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	zr := gozstd.NewReader(r)

	return readCloserFunc{
		Reader: zr,
		close: func() error {
			zr.Release()
			return nil
		},
	}, nil
}

// gozstdWriter pairs the frame-finishing Close with the mandatory cgo
// resource release.
type gozstdWriter struct {
	zw *gozstd.Writer
}

func (w *gozstdWriter) Write(p []byte) (int, error) {
	return w.zw.Write(p)
}

func (w *gozstdWriter) Close() error {
	err := w.zw.Close()
	w.zw.Release()

	return err
}
