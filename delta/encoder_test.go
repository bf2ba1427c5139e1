package delta

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EnjiRouz/Kontur.LogPacker/lines"
)

// encodeAll feeds each line through one encoder and returns the per-line
// instruction streams.
func encodeAll(t *testing.T, cfg Config, input ...string) [][]byte {
	t.Helper()

	enc := NewEncoder(cfg)
	defer enc.Release()

	var out [][]byte
	for _, line := range input {
		encoded, err := enc.EncodeLine([]byte(line))
		require.NoError(t, err)
		out = append(out, append(make([]byte, 0, len(encoded)), encoded...))
	}

	return out
}

func TestEncoder_FirstLineIsIdentity(t *testing.T) {
	for _, line := range []string{"", "\n", "plain\n", "no terminator", string(ControlByte) + "\n"} {
		streams := encodeAll(t, Config{}, line)
		require.Equal(t, []byte(line), streams[0])
	}
}

func TestEncoder_SingleInteriorDifference(t *testing.T) {
	// previous = "abcXdef\n", current = "abcYdef\n":
	// Copy(3), Literal 'Y', Copy(3), Literal '\n'.
	streams := encodeAll(t, Config{}, "abcXdef\n", "abcYdef\n")

	want := []byte{ControlByte, copyBase + 3, 'Y', ControlByte, copyBase + 3, '\n'}
	require.Equal(t, want, streams[1])
}

func TestEncoder_TerminatorAlwaysLiteral(t *testing.T) {
	// Identical lines still end with a literal LF; the terminator is never
	// hidden inside a Copy.
	streams := encodeAll(t, Config{}, "same\n", "same\n")

	want := []byte{ControlByte, copyBase + 4, '\n'}
	require.Equal(t, want, streams[1])
}

func TestEncoder_CRBreaksRuns(t *testing.T) {
	streams := encodeAll(t, Config{}, "ab\r\n", "ab\r\n")

	// "ab" copies, "\r" and "\n" are literals.
	want := []byte{ControlByte, copyBase + 2, '\r', '\n'}
	require.Equal(t, want, streams[1])
}

func TestEncoder_RunOfOneStaysLiteral(t *testing.T) {
	// A Copy costs 2 bytes to save 0, so a lone matching byte is emitted
	// as a literal.
	streams := encodeAll(t, Config{}, "aXc\n", "aYc\n")

	want := []byte{'a', 'Y', 'c', '\n'}
	require.Equal(t, want, streams[1])
}

func TestEncoder_ControlByteSelfEscaped(t *testing.T) {
	ctl := string(ControlByte)

	// Mismatching control byte in the current line.
	streams := encodeAll(t, Config{}, "ab_\n", "ab"+ctl+"\n")
	want := []byte{ControlByte, copyBase + 2, ControlByte, ControlByte, '\n'}
	require.Equal(t, want, streams[1])

	// A lone matched control byte flushes as a self-escaped literal.
	streams = encodeAll(t, Config{}, ctl+"x\n", ctl+"y\n")
	want = []byte{ControlByte, ControlByte, 'y', '\n'}
	require.Equal(t, want, streams[1])
}

func TestEncoder_RunCapBoundary(t *testing.T) {
	prefix127 := strings.Repeat("a", 127)

	// Exactly 127 common bytes: a single maximal Copy.
	streams := encodeAll(t, Config{}, prefix127+"X\n", prefix127+"Y\n")
	want := []byte{ControlByte, copyBase + 127, 'Y', '\n'}
	require.Equal(t, want, streams[1])

	// 128 common bytes: the run is capped at 127 and flushed, the 128th
	// matching byte becomes a run of one, emitted as a literal. No length
	// byte ever exceeds the format's headroom.
	prefix128 := strings.Repeat("a", 128)
	streams = encodeAll(t, Config{}, prefix128+"X\n", prefix128+"Y\n")
	want = []byte{ControlByte, copyBase + 127, 'a', 'Y', '\n'}
	require.Equal(t, want, streams[1])

	for _, stream := range streams[1:] {
		for i := 0; i < len(stream); i++ {
			if stream[i] == ControlByte && i+1 < len(stream) && stream[i+1] > copyBase {
				require.LessOrEqual(t, int(stream[i+1])-copyBase, MaxCopyRun)
			}
		}
	}
}

func TestEncoder_LongCommonPrefix(t *testing.T) {
	// Several hundred common bytes produce a sequence of capped Copies
	// instead of an out-of-range length byte.
	prefix := strings.Repeat("a", 300)
	streams := encodeAll(t, Config{}, prefix+"X\n", prefix+"Y\n")

	want := []byte{
		ControlByte, copyBase + 127,
		ControlByte, copyBase + 127,
		ControlByte, copyBase + 46,
		'Y', '\n',
	}
	require.Equal(t, want, streams[1])
}

func TestEncoder_CurrentLongerThanPrevious(t *testing.T) {
	streams := encodeAll(t, Config{}, "ab\n", "ab and more\n")

	// Common window is "ab"; the suffix arrives as literals.
	want := append([]byte{ControlByte, copyBase + 2}, []byte(" and more\n")...)
	require.Equal(t, want, streams[1])
}

func TestEncoder_PreviousLongerThanCurrent(t *testing.T) {
	streams := encodeAll(t, Config{}, "abcdef longer\n", "abcdef\n")

	// The previous line's tail contributes nothing; output length is
	// driven purely by the instruction stream.
	want := []byte{ControlByte, copyBase + 6, '\n'}
	require.Equal(t, want, streams[1])
}

func TestEncoder_EmptyLineBetweenLines(t *testing.T) {
	streams := encodeAll(t, Config{}, "abc\n", "\n", "abc\n")

	require.Equal(t, []byte{'\n'}, streams[1])
	// The previous line is now "\n"; nothing matches.
	require.Equal(t, []byte("abc\n"), streams[2])
}

func TestEncoder_LineTooLong(t *testing.T) {
	enc := NewEncoder(Config{MaxLineLength: 8})
	defer enc.Release()

	_, err := enc.EncodeLine([]byte("123456789"))
	require.ErrorIs(t, err, lines.ErrLineTooLong)
}

func TestEncoder_DoesNotAliasInput(t *testing.T) {
	enc := NewEncoder(Config{})
	defer enc.Release()

	line := []byte("abcXdef\n")
	_, err := enc.EncodeLine(line)
	require.NoError(t, err)

	// Clobber the caller's buffer; the encoder must have kept its own copy.
	copy(line, "ZZZZZZZZ")

	encoded, err := enc.EncodeLine([]byte("abcYdef\n"))
	require.NoError(t, err)
	require.Equal(t, []byte{ControlByte, copyBase + 3, 'Y', ControlByte, copyBase + 3, '\n'}, encoded)
}

func TestEncoder_Reset(t *testing.T) {
	enc := NewEncoder(Config{})
	defer enc.Release()

	_, err := enc.EncodeLine([]byte("abc\n"))
	require.NoError(t, err)

	enc.Reset()

	// After Reset the next line is a first line again.
	encoded, err := enc.EncodeLine([]byte("abc\n"))
	require.NoError(t, err)
	require.Equal(t, []byte("abc\n"), encoded)
}
