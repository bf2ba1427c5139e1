package delta

import (
	"bufio"
	"fmt"
	"io"

	"github.com/EnjiRouz/Kontur.LogPacker/internal/pool"
)

// Decoder reconstructs original lines from a flat instruction stream.
//
// The stream carries no length prefixes; a line's boundary is recovered by
// replaying its instructions until an LF literal is produced (or the stream
// ends, for a final unterminated fragment). Lines therefore come back in
// exactly the order they were encoded, and the decoder's copy source is
// always the immediately preceding reconstructed line.
//
// Not safe for concurrent use.
type Decoder struct {
	cfg     Config
	r       io.ByteReader
	prev    *pool.ByteBuffer
	cur     *pool.ByteBuffer
	started bool
	done    bool
}

// NewDecoder creates a Decoder reading instruction bytes from r. Zero
// fields of cfg select the defaults; cfg must match the encoder's.
func NewDecoder(r io.Reader, cfg Config) *Decoder {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	return &Decoder{
		cfg:  cfg.normalize(),
		r:    br,
		prev: pool.GetLineBuffer(),
		cur:  pool.GetLineBuffer(),
	}
}

// Next reconstructs and returns the next line, including its terminator.
// It returns io.EOF after the last line, ErrMalformedStream (wrapped) for
// corrupted or truncated input, and the source's error otherwise.
//
// The returned slice is owned by the decoder and valid only until the next
// call.
func (d *Decoder) Next() ([]byte, error) {
	if d.done {
		return nil, io.EOF
	}

	d.cur.Reset()

	var err error
	if !d.started {
		err = d.readFirstLine()
	} else {
		err = d.replayLine()
	}
	if err != nil {
		return nil, err
	}

	d.started = true

	// The finished line becomes the next copy source. Swapping the two
	// buffers keeps ownership inside the decoder with no aliasing.
	d.prev, d.cur = d.cur, d.prev

	return d.prev.Bytes(), nil
}

// readFirstLine consumes the raw leading line, which was emitted without
// instruction encoding because it has no predecessor.
func (d *Decoder) readFirstLine() error {
	for {
		b, err := d.r.ReadByte()
		if err == io.EOF {
			d.done = true
			if d.cur.Len() == 0 {
				return io.EOF
			}

			return nil
		}
		if err != nil {
			return err
		}

		if err := d.emit(b); err != nil {
			return err
		}
		if b == '\n' {
			return nil
		}
	}
}

// replayLine executes instructions against the previous line until a
// terminator literal or end of stream.
func (d *Decoder) replayLine() error {
	prev := d.prev.Bytes()
	srcPos := 0
	escape := false

	for {
		b, err := d.r.ReadByte()
		if err == io.EOF {
			if escape {
				return fmt.Errorf("%w: stream ends after control byte", ErrMalformedStream)
			}

			d.done = true
			if d.cur.Len() == 0 {
				return io.EOF
			}

			// Final fragment without a terminator.
			return nil
		}
		if err != nil {
			return err
		}

		if escape {
			escape = false

			switch {
			case b == d.cfg.ControlByte:
				// Self-escaped literal; it also occupied one aligned
				// position of the previous line.
				if err := d.emit(b); err != nil {
					return err
				}
				srcPos++

			case int(b) > copyBase:
				n := int(b) - copyBase
				if srcPos+n > len(prev) {
					return fmt.Errorf("%w: copy of %d bytes at offset %d overruns previous line of %d bytes",
						ErrMalformedStream, n, srcPos, len(prev))
				}
				if d.cur.Len()+n > d.cfg.MaxLineLength {
					return d.tooLong()
				}
				d.cur.MustWrite(prev[srcPos : srcPos+n])
				srcPos += n

			default:
				return fmt.Errorf("%w: invalid command byte 0x%02x after control byte", ErrMalformedStream, b)
			}

			continue
		}

		if b == d.cfg.ControlByte {
			escape = true
			continue
		}

		if err := d.emit(b); err != nil {
			return err
		}
		srcPos++

		if b == '\n' {
			return nil
		}
	}
}

// emit appends one reconstructed byte, guarding the working-buffer bound so
// corrupt input cannot balloon memory.
func (d *Decoder) emit(b byte) error {
	if d.cur.Len() >= d.cfg.MaxLineLength {
		return d.tooLong()
	}
	d.cur.AppendByte(b)

	return nil
}

func (d *Decoder) tooLong() error {
	return fmt.Errorf("%w: reconstructed line exceeds %d bytes", ErrMalformedStream, d.cfg.MaxLineLength)
}

// Release returns the decoder's buffers to the pool. The decoder must not
// be used afterwards.
func (d *Decoder) Release() {
	pool.PutLineBuffer(d.prev)
	pool.PutLineBuffer(d.cur)
	d.prev = nil
	d.cur = nil
}
