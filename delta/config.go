package delta

import (
	"errors"

	"github.com/EnjiRouz/Kontur.LogPacker/lines"
)

const (
	// ControlByte is the reserved sentinel value. It escapes its own
	// literal occurrence and introduces Copy instructions. 0x7F (DEL) is
	// vanishingly rare in ordinary log text, so the escape overhead is
	// negligible.
	ControlByte byte = 0x7F

	// MaxCopyRun is the longest run one Copy instruction can express. The
	// length byte encodes copyBase+N in a single byte, leaving exactly
	// this much headroom.
	MaxCopyRun = 127

	// copyBase offsets the Copy length byte; values above it are commands,
	// values at or below it following an escape are invalid.
	copyBase = 128
)

// ErrMalformedStream reports a corrupted or truncated instruction stream on
// the decode side: a control byte at end of input, an invalid command byte,
// or a Copy that would read past the previous line. The input is not
// partially trusted; no undefined bytes are ever produced.
var ErrMalformedStream = errors.New("malformed delta stream")

// Config carries the constants the encoder and decoder must agree on.
//
// These are fixed properties of the wire format, not end-user tunables; the
// struct exists so both sides are constructed from one source of truth.
// The zero value selects all defaults.
type Config struct {
	// ControlByte is the reserved sentinel value.
	ControlByte byte

	// MaxCopyRun caps the byte length of a single Copy instruction.
	// Runs longer than this are flushed and matching resumes, so lines
	// with arbitrarily long common prefixes still encode correctly.
	MaxCopyRun int

	// MaxLineLength bounds the working buffer for one line on both the
	// encode and decode side.
	MaxLineLength int
}

// DefaultConfig returns the wire-format constants used by the containers
// this module produces.
func DefaultConfig() Config {
	return Config{
		ControlByte:   ControlByte,
		MaxCopyRun:    MaxCopyRun,
		MaxLineLength: lines.DefaultCapacity,
	}
}

// normalize fills zero fields with defaults and clamps MaxCopyRun into the
// range the length byte can express.
func (c Config) normalize() Config {
	if c.ControlByte == 0 {
		c.ControlByte = ControlByte
	}
	if c.MaxCopyRun <= 1 || c.MaxCopyRun > MaxCopyRun {
		c.MaxCopyRun = MaxCopyRun
	}
	if c.MaxLineLength <= 0 {
		c.MaxLineLength = lines.DefaultCapacity
	}

	return c
}

// isTerminator reports whether b is a line terminator byte. Terminator
// positions never extend a match run, even when previous and current agree.
func isTerminator(b byte) bool {
	return b == '\n' || b == '\r'
}
