package logpacker

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/hashicorp/go-multierror"

	"github.com/EnjiRouz/Kontur.LogPacker/compress"
	"github.com/EnjiRouz/Kontur.LogPacker/delta"
	"github.com/EnjiRouz/Kontur.LogPacker/format"
)

// Unpack reads a container from src and writes the original log bytes to
// dst.
//
// The codec is taken from the container header; no options are needed. If
// the container carries a checksum trailer, the reconstructed bytes are
// hashed on the way out and verified against it, failing with
// ErrChecksumMismatch on corruption.
//
// Unpack is single-pass and streams; neither src nor dst is closed. On
// error the bytes already written to dst must not be trusted.
func Unpack(dst io.Writer, src io.Reader) (*Stats, error) {
	cr := &countingReader{r: src}

	hdr, err := parseHeader(cr)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(hdr.compression)
	if err != nil {
		return nil, err
	}

	zr, err := codec.NewReader(cr)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Compression: hdr.compression}
	if err := unpackBody(dst, zr, hdr, stats); err != nil {
		if cerr := zr.Close(); cerr != nil {
			err = multierror.Append(err, cerr)
		}

		return nil, err
	}

	if err := zr.Close(); err != nil {
		return nil, err
	}

	stats.PackedSize = cr.n

	return stats, nil
}

// unpackBody replays the delta stream and verifies the checksum trailer
// when the header announces one.
func unpackBody(dst io.Writer, zr io.Reader, hdr header, stats *Stats) error {
	var trailer *trailerReader

	body := zr
	if hdr.hasChecksum() {
		trailer = newTrailerReader(zr, format.ChecksumSize)
		body = trailer
	}

	dec := delta.NewDecoder(body, delta.DefaultConfig())
	defer dec.Release()

	hasher := xxhash.New()

	for {
		line, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		stats.Lines++
		stats.OriginalSize += int64(len(line))
		if hdr.hasChecksum() {
			_, _ = hasher.Write(line)
		}

		if _, err := dst.Write(line); err != nil {
			return err
		}
	}

	if hdr.hasChecksum() {
		sum, err := trailer.Trailer()
		if err != nil {
			return err
		}
		if binary.LittleEndian.Uint64(sum) != hasher.Sum64() {
			return ErrChecksumMismatch
		}
	}

	return nil
}

// countingReader tracks how many container bytes were consumed from src.
type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)

	return n, err
}
