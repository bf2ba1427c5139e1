package logpacker

import (
	"errors"
	"fmt"
	"io"

	"github.com/EnjiRouz/Kontur.LogPacker/format"
)

var (
	// ErrBadMagic reports input that is not a log packer container.
	ErrBadMagic = errors.New("not a log packer container")

	// ErrUnsupportedVersion reports a container written by a newer format
	// revision than this build understands.
	ErrUnsupportedVersion = errors.New("unsupported container version")

	// ErrChecksumMismatch reports that the unpacked bytes do not hash to
	// the checksum recorded at pack time.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrTruncatedContainer reports a container body shorter than its own
	// framing requires.
	ErrTruncatedContainer = errors.New("truncated container")
)

// header is the fixed 8-byte container prefix: magic, format version, the
// codec wrapping the body, and a flag byte. One reserved byte pads the
// header to a round size.
type header struct {
	version     uint8
	compression format.CompressionType
	flags       uint8
}

func (h header) hasChecksum() bool {
	return h.flags&format.FlagChecksum != 0
}

func (h header) marshal() []byte {
	buf := make([]byte, format.HeaderSize)
	copy(buf, format.Magic)
	buf[4] = h.version
	buf[5] = byte(h.compression)
	buf[6] = h.flags

	return buf
}

// parseHeader reads and validates the container prefix.
func parseHeader(r io.Reader) (header, error) {
	buf := make([]byte, format.HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return header{}, fmt.Errorf("%w: input shorter than header", ErrBadMagic)
		}

		return header{}, err
	}

	if string(buf[:4]) != format.Magic {
		return header{}, ErrBadMagic
	}

	h := header{
		version:     buf[4],
		compression: format.CompressionType(buf[5]),
		flags:       buf[6],
	}
	if h.version == 0 || h.version > format.Version {
		return header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.version)
	}

	return h, nil
}

// ContainerInfo describes a container without unpacking it.
type ContainerInfo struct {
	Version     uint8
	Compression format.CompressionType
	Checksum    bool
}

// Inspect reads a container header from r and reports its framing. Only
// format.HeaderSize bytes are consumed.
func Inspect(r io.Reader) (*ContainerInfo, error) {
	h, err := parseHeader(r)
	if err != nil {
		return nil, err
	}

	return &ContainerInfo{
		Version:     h.version,
		Compression: h.compression,
		Checksum:    h.hasChecksum(),
	}, nil
}
