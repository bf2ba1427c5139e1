// Package lines turns a raw byte stream into a lazy sequence of lines for
// the delta transform.
//
// A line is a run of bytes terminated by LF (inclusive), or by end of input
// for a final unterminated fragment. The terminator stays part of the line;
// downstream the encoder relies on seeing it to reproduce line boundaries
// exactly.
package lines

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// DefaultCapacity is the default working-buffer capacity, and therefore the
// longest line the splitter accepts. Lines are processed one at a time and
// must fit in one working buffer; this is a documented limit of the design,
// not a tunable.
const DefaultCapacity = 1 << 20 // 1MiB

// ErrLineTooLong reports a line exceeding the working-buffer capacity.
// It is returned to the caller rather than truncating the line; input with
// longer lines is unsupported.
var ErrLineTooLong = errors.New("line exceeds working buffer capacity")

// Scanner reads a byte source line by line.
//
// The scanner is read-only and single-pass: it never writes back into the
// source and cannot be restarted without reopening it.
type Scanner struct {
	r   *bufio.Reader
	cap int
	err error
}

// NewScanner creates a Scanner over r with the given working-buffer
// capacity. A capacity <= 0 selects DefaultCapacity.
func NewScanner(r io.Reader, capacity int) *Scanner {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Scanner{
		r:   bufio.NewReaderSize(r, capacity),
		cap: capacity,
	}
}

// Next returns the next line, including its LF terminator if present.
// The final line of a source without a trailing LF is returned without one.
//
// The returned slice points into the scanner's working buffer and is only
// valid until the next call to Next.
//
// Next returns io.EOF after the last line, ErrLineTooLong (wrapped) when a
// line does not fit the working buffer, and the source's error otherwise.
// All errors are sticky.
func (s *Scanner) Next() ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}

	line, err := s.r.ReadSlice('\n')
	switch {
	case err == nil:
		return line, nil

	case errors.Is(err, bufio.ErrBufferFull):
		s.err = fmt.Errorf("%w (%d bytes)", ErrLineTooLong, s.cap)
		return nil, s.err

	case errors.Is(err, io.EOF):
		s.err = io.EOF
		if len(line) > 0 {
			// Final fragment without a terminator.
			return line, nil
		}

		return nil, io.EOF

	default:
		s.err = err
		return nil, err
	}
}
