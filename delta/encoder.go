package delta

import (
	"fmt"

	"github.com/EnjiRouz/Kontur.LogPacker/internal/pool"
	"github.com/EnjiRouz/Kontur.LogPacker/lines"
)

// Encoder rewrites lines as instruction streams against their predecessor.
//
// Lines must be fed in stream order and must be single splitter lines: at
// most one LF, and only as the final byte. The encoder owns its
// previous-line buffer exclusively; input slices are copied, never aliased,
// so a caller may reuse its line buffer between calls.
//
// Not safe for concurrent use.
type Encoder struct {
	cfg     Config
	prev    *pool.ByteBuffer
	out     *pool.ByteBuffer
	started bool
}

// NewEncoder creates an Encoder with the given configuration. Zero fields
// of cfg select the defaults.
func NewEncoder(cfg Config) *Encoder {
	return &Encoder{
		cfg:  cfg.normalize(),
		prev: pool.GetLineBuffer(),
		out:  pool.GetLineBuffer(),
	}
}

// EncodeLine encodes one line and retains it as the predecessor for the
// next call. The first line is emitted raw; every later line becomes an
// instruction stream.
//
// The returned slice is the encoder's scratch buffer, valid until the next
// call. A line longer than Config.MaxLineLength is rejected with
// lines.ErrLineTooLong.
func (e *Encoder) EncodeLine(line []byte) ([]byte, error) {
	if len(line) > e.cfg.MaxLineLength {
		return nil, fmt.Errorf("%w (%d > %d bytes)", lines.ErrLineTooLong, len(line), e.cfg.MaxLineLength)
	}

	e.out.Reset()

	if !e.started {
		// No predecessor to diff against; the decoder reads the first
		// line verbatim up to its LF.
		e.started = true
		e.out.MustWrite(line)
	} else {
		e.appendDelta(e.prev.Bytes(), line)
	}

	e.prev.Reset()
	e.prev.MustWrite(line)

	return e.out.Bytes(), nil
}

// appendDelta writes the instruction stream for cur against prev into the
// output buffer.
func (e *Encoder) appendDelta(prev, cur []byte) {
	window := min(len(prev), len(cur))
	run := 0

	for j := 0; j < window; j++ {
		b := cur[j]
		if b == prev[j] && !isTerminator(b) {
			run++
			if run == e.cfg.MaxCopyRun {
				// The length byte cannot express a longer run; flush
				// and resume matching.
				e.appendCopy(run)
				run = 0
			}

			continue
		}

		e.flushRun(cur, j, run)
		run = 0
		e.appendLiteral(b)
	}

	e.flushRun(cur, window, run)

	// Suffix of a longer current line: nothing left to copy from.
	for j := window; j < len(cur); j++ {
		e.appendLiteral(cur[j])
	}
}

// flushRun emits the pending match run ending just before position j.
// A run of 1 is cheaper as a literal (a Copy costs 2 bytes to save 0).
func (e *Encoder) flushRun(cur []byte, j, run int) {
	switch {
	case run >= 2:
		e.appendCopy(run)
	case run == 1:
		e.appendLiteral(cur[j-1])
	}
}

func (e *Encoder) appendLiteral(b byte) {
	if b == e.cfg.ControlByte {
		// Self-escape: doubled control byte means one literal control byte.
		e.out.AppendByte(e.cfg.ControlByte)
	}
	e.out.AppendByte(b)
}

func (e *Encoder) appendCopy(n int) {
	e.out.AppendByte(e.cfg.ControlByte)
	e.out.AppendByte(byte(copyBase + n))
}

// Reset returns the encoder to its initial state, forgetting the previous
// line, so it can start a fresh stream.
func (e *Encoder) Reset() {
	e.prev.Reset()
	e.out.Reset()
	e.started = false
}

// Release returns the encoder's buffers to the pool. The encoder must not
// be used afterwards.
func (e *Encoder) Release() {
	pool.PutLineBuffer(e.prev)
	pool.PutLineBuffer(e.out)
	e.prev = nil
	e.out = nil
}
