package compress

import (
	"fmt"
	"testing"
)

// benchPayload builds data shaped like a real encoded message: a run of
// repeated framed records (compressible) followed by a pseudo-random tail.
func benchPayload(size int) []byte {
	data := make([]byte, size)
	pattern := []byte("field:timestamp=1732550400 field:value=3.14159 field:seq=")
	i := 0
	for ; i < size*3/4 && i < size; i++ {
		data[i] = pattern[i%len(pattern)]
	}
	for ; i < size; i++ {
		data[i] = byte((i*31 + i*i*7) % 256)
	}
	return data
}

func sizeLabel(size int) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%dB", size)
	case size < 1024*1024:
		return fmt.Sprintf("%dKB", size/1024)
	default:
		return fmt.Sprintf("%dMB", size/(1024*1024))
	}
}

// BenchmarkAllCodecs_Compress compares compression throughput across the
// payload sizes a framed message or stream segment is likely to carry.
func BenchmarkAllCodecs_Compress(b *testing.B) {
	sizes := []int{64, 1024, 16384, 262144, 1048576}

	for codecName, codec := range getAllCodecs() {
		b.Run(codecName, func(b *testing.B) {
			for _, size := range sizes {
				data := benchPayload(size)

				b.Run(sizeLabel(size), func(b *testing.B) {
					b.ReportAllocs()
					b.SetBytes(int64(len(data)))
					b.ResetTimer()

					for b.Loop() {
						if _, err := codec.Compress(data); err != nil {
							b.Fatal(err)
						}
					}
				})
			}
		})
	}
}

// BenchmarkAllCodecs_Decompress compares decompression throughput; each
// payload is pre-compressed once, outside the timed loop.
func BenchmarkAllCodecs_Decompress(b *testing.B) {
	sizes := []int{64, 1024, 16384, 262144, 1048576}

	for codecName, codec := range getAllCodecs() {
		b.Run(codecName, func(b *testing.B) {
			for _, size := range sizes {
				data := benchPayload(size)
				compressed, err := codec.Compress(data)
				if err != nil {
					b.Fatal(err)
				}

				b.Run(sizeLabel(size), func(b *testing.B) {
					b.ReportAllocs()
					b.SetBytes(int64(len(data)))
					b.ResetTimer()

					for b.Loop() {
						if _, err := codec.Decompress(compressed); err != nil {
							b.Fatal(err)
						}
					}
				})
			}
		})
	}
}

// BenchmarkAllCodecs_CompressionRatio reports the achieved ratio alongside
// compression throughput for a 1MB payload, so codec tradeoffs show up in
// one benchstat run instead of needing a separate measurement pass.
func BenchmarkAllCodecs_CompressionRatio(b *testing.B) {
	data := benchPayload(1024 * 1024)

	for codecName, codec := range getAllCodecs() {
		b.Run(codecName, func(b *testing.B) {
			compressed, err := codec.Compress(data)
			if err != nil {
				b.Fatal(err)
			}
			ratio := float64(len(compressed)) / float64(len(data)) * 100
			b.ReportMetric(ratio, "ratio%")

			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			for b.Loop() {
				if _, err := codec.Compress(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkAllCodecs_Parallel measures each codec's pooled-resource
// contention under concurrent load (lz4.Compressor and zstd encoders/decoders
// are pooled per sync.Pool; S2 and NoOp are stateless).
func BenchmarkAllCodecs_Parallel(b *testing.B) {
	data := benchPayload(64 * 1024)

	for codecName, codec := range getAllCodecs() {
		b.Run(codecName+"_Compress", func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					if _, err := codec.Compress(data); err != nil {
						b.Fatal(err)
					}
				}
			})
		})

		b.Run(codecName+"_Decompress", func(b *testing.B) {
			compressed, err := codec.Compress(data)
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					if _, err := codec.Decompress(compressed); err != nil {
						b.Fatal(err)
					}
				}
			})
		})
	}
}

// BenchmarkZstdDecompress_Sequential simulates decoding a batch of small
// stream segments back to back, the pattern that makes the decoder pool pay
// off (warmup cost amortized across many reuses).
func BenchmarkZstdDecompress_Sequential(b *testing.B) {
	const batch = 150
	data := benchPayload(12 * 1024)
	compressor := NewZstdCompressor()
	compressed, err := compressor.Compress(data)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(compressed)))
	b.ResetTimer()

	for b.Loop() {
		for range batch {
			if _, err := compressor.Decompress(compressed); err != nil {
				b.Fatal(err)
			}
		}
	}
}
