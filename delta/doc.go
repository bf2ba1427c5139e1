// Package delta implements the line-delta transform at the core of the
// packer.
//
// Consecutive log lines tend to share long byte runs: timestamps, level
// tags, logger names, request paths. The transform rewrites every line
// (after the first) as a stream of two instruction kinds replayed against
// the immediately preceding line:
//
//   - Literal: one payload byte, emitted as-is. A payload byte equal to the
//     control byte is self-escaped by doubling it.
//   - Copy: the control byte followed by 128+N, meaning "copy N bytes from
//     the previous line at the current alignment position", N in [2,127].
//
// The first line of a stream is emitted raw; its boundary is the first LF
// byte. Line terminators (LF, CR) never participate in copies, so every
// line boundary is reproduced literally and the decoder can recover line
// framing from the instruction stream alone, with no length prefixes.
//
// Both directions are strictly sequential: line n cannot be processed until
// line n-1 is fully materialized, because the previous line is the only
// copy source. The previous-line buffer is exclusively owned by its encoder
// or decoder and swapped, never aliased, between lines.
package delta
