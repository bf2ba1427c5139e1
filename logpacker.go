// Package logpacker losslessly shrinks line-oriented text logs.
//
// The core idea is a line-delta transform: consecutive log lines are highly
// redundant (timestamps, level tags, field names), so each line is rewritten
// as copy-from-previous-line and literal-byte instructions before the result
// is handed to a standard stream compressor. The transform typically
// improves the final ratio over running the generic codec alone, at a tiny
// CPU cost.
//
// # Pipelines
//
// Packing:   raw bytes -> line splitter -> delta encoder -> codec -> container
// Unpacking: container -> codec -> delta decoder -> raw bytes
//
// Both run strictly sequentially: every line depends on its immediate
// predecessor, so there is nothing to parallelize inside the transform.
//
// # Basic Usage
//
//	in, _ := os.Open("app.log")
//	out, _ := os.Create("app.log.klp")
//	stats, err := logpacker.Pack(out, in, logpacker.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d lines, %.1f%% saved\n", stats.Lines, stats.SpaceSavings())
//
// and the mirror image with logpacker.Unpack. The container records which
// codec was used and carries an xxHash64 checksum of the original bytes,
// verified during unpacking.
//
// # Package Structure
//
//   - lines: splits a byte stream into lines
//   - delta: the line-delta instruction codec (the core transform)
//   - compress: generic stream codecs wrapping the delta payload
//   - format: shared wire constants
package logpacker

import "bytes"

// PackBytes packs data into a container held in memory.
//
// Convenience wrapper around Pack for payloads that already live in memory;
// prefer Pack with streams for large files.
func PackBytes(data []byte, opts ...PackOption) ([]byte, *Stats, error) {
	var buf bytes.Buffer
	stats, err := Pack(&buf, bytes.NewReader(data), opts...)
	if err != nil {
		return nil, nil, err
	}

	return buf.Bytes(), stats, nil
}

// UnpackBytes restores the original bytes from an in-memory container.
func UnpackBytes(packed []byte) ([]byte, *Stats, error) {
	var buf bytes.Buffer
	stats, err := Unpack(&buf, bytes.NewReader(packed))
	if err != nil {
		return nil, nil, err
	}

	return buf.Bytes(), stats, nil
}
