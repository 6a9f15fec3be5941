package compress

// NoOpCompressor passes data through unchanged. Useful as a baseline for
// benchmarking the other codecs, or when framing payloads that are already
// compressed (or otherwise not worth compressing) without special-casing the
// call site.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a no-op compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged; the returned slice aliases the input, so
// callers must not mutate data afterward if they still need the result.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged, mirroring Compress.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
