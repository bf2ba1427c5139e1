package logpacker

import (
	"fmt"
	"io"
)

// trailerReader exposes a stream minus its final n bytes, which it
// withholds as the trailer.
//
// The delta payload and the checksum trailer share one codec stream with no
// separator, so the payload's end is only knowable relative to the stream's
// end. The reader keeps the n most recently seen bytes back; once the
// source is exhausted, the held bytes are the trailer.
type trailerReader struct {
	r       io.Reader
	n       int
	hold    []byte
	scratch []byte
	err     error
	eof     bool
}

func newTrailerReader(r io.Reader, n int) *trailerReader {
	return &trailerReader{
		r:       r,
		n:       n,
		hold:    make([]byte, 0, n+512),
		scratch: make([]byte, 512),
	}
}

func (t *trailerReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	for {
		if len(t.hold) > t.n {
			release := len(t.hold) - t.n
			if release > len(p) {
				release = len(p)
			}
			copy(p, t.hold[:release])
			kept := copy(t.hold, t.hold[release:])
			t.hold = t.hold[:kept]

			return release, nil
		}

		if t.err != nil {
			if t.err == io.EOF {
				t.eof = true
			}

			return 0, t.err
		}

		k, err := t.r.Read(t.scratch)
		if k > 0 {
			t.hold = append(t.hold, t.scratch[:k]...)
		}
		if err != nil {
			t.err = err
		}
	}
}

// Trailer returns the withheld bytes. Valid only after Read has returned
// io.EOF; a source shorter than the trailer is a truncated container.
func (t *trailerReader) Trailer() ([]byte, error) {
	if !t.eof {
		return nil, fmt.Errorf("%w: trailer requested before end of stream", ErrTruncatedContainer)
	}
	if len(t.hold) < t.n {
		return nil, fmt.Errorf("%w: body shorter than %d-byte trailer", ErrTruncatedContainer, t.n)
	}

	return t.hold, nil
}
