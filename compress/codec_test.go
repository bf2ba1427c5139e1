package compress

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EnjiRouz/Kontur.LogPacker/format"
)

var allCompressionTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionGzip,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
	format.CompressionSnappy,
}

func TestGetCodec(t *testing.T) {
	for _, ct := range allCompressionTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)
		require.Equal(t, ct, codec.Type())
	}
}

func TestGetCodec_Unsupported(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xEE))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported compression type")
}

func TestCodec_RoundTrip(t *testing.T) {
	payload := []byte(strings.Repeat("2024-01-15T10:00:01Z INFO request handled in 12ms\n", 200))

	for _, ct := range allCompressionTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			var compressed bytes.Buffer
			zw, err := codec.NewWriter(&compressed)
			require.NoError(t, err)

			_, err = zw.Write(payload)
			require.NoError(t, err)
			require.NoError(t, zw.Close())

			zr, err := codec.NewReader(bytes.NewReader(compressed.Bytes()))
			require.NoError(t, err)

			restored, err := io.ReadAll(zr)
			require.NoError(t, err)
			require.NoError(t, zr.Close())

			require.Equal(t, payload, restored)
		})
	}
}

func TestCodec_RoundTrip_ChunkedWrites(t *testing.T) {
	// The pack pipeline writes one encoded line at a time; codecs must not
	// depend on seeing the payload in a single write.
	lines := [][]byte{
		[]byte("alpha\n"),
		[]byte("alpha beta\n"),
		{},
		[]byte("gamma"),
	}

	for _, ct := range allCompressionTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			var compressed bytes.Buffer
			zw, err := codec.NewWriter(&compressed)
			require.NoError(t, err)

			var want []byte
			for _, line := range lines {
				_, err = zw.Write(line)
				require.NoError(t, err)
				want = append(want, line...)
			}
			require.NoError(t, zw.Close())

			zr, err := codec.NewReader(bytes.NewReader(compressed.Bytes()))
			require.NoError(t, err)

			restored, err := io.ReadAll(zr)
			require.NoError(t, err)
			require.Equal(t, want, restored)
		})
	}
}

func TestCodec_EmptyPayload(t *testing.T) {
	for _, ct := range allCompressionTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			var compressed bytes.Buffer
			zw, err := codec.NewWriter(&compressed)
			require.NoError(t, err)
			require.NoError(t, zw.Close())

			zr, err := codec.NewReader(bytes.NewReader(compressed.Bytes()))
			require.NoError(t, err)

			restored, err := io.ReadAll(zr)
			require.NoError(t, err)
			require.Empty(t, restored)
		})
	}
}
