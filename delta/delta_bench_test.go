package delta

import (
	"bytes"
	"fmt"
	"io"
	"testing"
)

// benchLines builds a realistic log shard: timestamped lines that differ
// only in a few interior fields.
func benchLines(n int) [][]byte {
	out := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		line := fmt.Sprintf("2024-01-15T10:%02d:%02dZ INFO  worker-%02d: processed batch=%06d items=%03d\n",
			i/60%60, i%60, i%8, i, i%500)
		out = append(out, []byte(line))
	}

	return out
}

func BenchmarkEncoder_EncodeLine(b *testing.B) {
	input := benchLines(1000)

	var total int64
	for _, line := range input {
		total += int64(len(line))
	}
	b.SetBytes(total)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		enc := NewEncoder(Config{})
		for _, line := range input {
			if _, err := enc.EncodeLine(line); err != nil {
				b.Fatal(err)
			}
		}
		enc.Release()
	}
}

func BenchmarkDecoder_Next(b *testing.B) {
	input := benchLines(1000)

	enc := NewEncoder(Config{})
	var stream bytes.Buffer
	var total int64
	for _, line := range input {
		encoded, err := enc.EncodeLine(line)
		if err != nil {
			b.Fatal(err)
		}
		stream.Write(encoded)
		total += int64(len(line))
	}
	enc.Release()

	b.SetBytes(total)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		dec := NewDecoder(bytes.NewReader(stream.Bytes()), Config{})
		for {
			if _, err := dec.Next(); err == io.EOF {
				break
			} else if err != nil {
				b.Fatal(err)
			}
		}
		dec.Release()
	}
}
