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
	"github.com/EnjiRouz/Kontur.LogPacker/internal/options"
	"github.com/EnjiRouz/Kontur.LogPacker/lines"
)

// Pack reads raw log data from src and writes a container to dst.
//
// The input is split into lines, delta-encoded against each preceding line,
// compressed with the configured codec (Zstd by default), and framed with
// the container header. An xxHash64 checksum of the original bytes is
// appended unless disabled.
//
// Pack is single-pass over src and streams into dst; neither is closed.
// On error the container written so far is incomplete and must be
// discarded by the caller.
func Pack(dst io.Writer, src io.Reader, opts ...PackOption) (*Stats, error) {
	cfg := defaultPackConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	hdr := header{
		version:     format.Version,
		compression: cfg.compression,
	}
	if cfg.checksum {
		hdr.flags |= format.FlagChecksum
	}

	cw := &countingWriter{w: dst}
	if _, err := cw.Write(hdr.marshal()); err != nil {
		return nil, err
	}

	zw, err := codec.NewWriter(cw)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Compression: cfg.compression}
	if err := packBody(zw, src, cfg, stats); err != nil {
		// Close regardless to release codec resources; the container is
		// broken either way.
		if cerr := zw.Close(); cerr != nil {
			err = multierror.Append(err, cerr)
		}

		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}

	stats.PackedSize = cw.n

	return stats, nil
}

// packBody runs the splitter and delta encoder, writing the instruction
// stream and optional checksum trailer into the codec writer.
func packBody(zw io.Writer, src io.Reader, cfg packConfig, stats *Stats) error {
	scanner := lines.NewScanner(src, cfg.delta.MaxLineLength)
	enc := delta.NewEncoder(cfg.delta)
	defer enc.Release()

	hasher := xxhash.New()

	for {
		line, err := scanner.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		stats.Lines++
		stats.OriginalSize += int64(len(line))
		if cfg.checksum {
			// Never errors per hash.Hash contract.
			_, _ = hasher.Write(line)
		}

		encoded, err := enc.EncodeLine(line)
		if err != nil {
			return err
		}
		if _, err := zw.Write(encoded); err != nil {
			return err
		}
	}

	if cfg.checksum {
		var trailer [format.ChecksumSize]byte
		binary.LittleEndian.PutUint64(trailer[:], hasher.Sum64())
		if _, err := zw.Write(trailer[:]); err != nil {
			return err
		}
	}

	return nil
}

// countingWriter tracks how many container bytes reached dst.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)

	return n, err
}
