package logpacker

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EnjiRouz/Kontur.LogPacker/format"
)

func TestHeader_MarshalParse(t *testing.T) {
	h := header{
		version:     format.Version,
		compression: format.CompressionS2,
		flags:       format.FlagChecksum,
	}

	buf := h.marshal()
	require.Len(t, buf, format.HeaderSize)

	parsed, err := parseHeader(bytes.NewReader(buf))
	require.NoError(t, err)
	require.Equal(t, h, parsed)
	require.True(t, parsed.hasChecksum())
}

func TestParseHeader_BadMagic(t *testing.T) {
	_, err := parseHeader(bytes.NewReader([]byte("NOPE0000")))
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestParseHeader_ShortInput(t *testing.T) {
	_, err := parseHeader(bytes.NewReader([]byte("KLP1")))
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestParseHeader_FutureVersion(t *testing.T) {
	h := header{version: format.Version + 1, compression: format.CompressionZstd}
	_, err := parseHeader(bytes.NewReader(h.marshal()))
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestParseHeader_ZeroVersion(t *testing.T) {
	h := header{version: 0, compression: format.CompressionZstd}
	_, err := parseHeader(bytes.NewReader(h.marshal()))
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}
