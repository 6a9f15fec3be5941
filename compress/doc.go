// Package compress provides compression and decompression codecs for already-encoded
// MessagePack payloads.
//
// Compression is applied after encoding, as an opaque transform over the resulting byte
// slice. Callers pick an algorithm per message or stream; the codec itself has no
// knowledge of what the bytes being compressed mean.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **NoOp Compression** (format.CompressionNone)
//
//	codec := compress.NewNoOpCompressor()
//	compressed, _ := codec.Compress(data)  // Returns data unchanged
//	original, _ := codec.Decompress(compressed)  // Returns data unchanged
//
// Use when:
//   - The payload is already well-compressed or small
//   - CPU is more critical than transfer size
//   - The payload is incompressible (random, encrypted)
//
// **Zstandard (Zstd)** (format.CompressionZstd)
//
//	codec := compress.NewZstdCompressor()
//	compressed, _ := codec.Compress(data)  // Best compression ratio
//	original, _ := codec.Decompress(compressed)
//
// Use when:
//   - Transfer or storage size is the primary concern
//   - Network bandwidth is limited
//   - Moderate compression overhead is acceptable
//
// **S2 (Snappy Alternative)** (format.CompressionS2)
//
//	codec := compress.NewS2Compressor()
//	compressed, _ := codec.Compress(data)  // Fast with good compression
//	original, _ := codec.Decompress(compressed)
//
// Use when:
//   - A balance between compression ratio and speed is needed
//   - Latency is important
//
// **LZ4** (format.CompressionLZ4)
//
//	codec := compress.NewLZ4Compressor()
//	compressed, _ := codec.Compress(data)  // Very fast decompression
//	original, _ := codec.Decompress(compressed)
//
// Use when:
//   - Read/decode performance is critical
//   - Decompression speed matters more than compression ratio
//
// # Memory Management
//
// The LZ4 and Zstd codecs pool their compressor, encoder and decoder state in
// sync.Pools; NoOp and S2 are stateless. Output buffers are not pooled: every codec
// except NoOp returns a newly allocated slice sized from the input.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use across goroutines.
//
// # Error Handling
//
// Decompression errors occur on corrupted or truncated compressed data, or, for LZ4,
// when the decompressed size would exceed its fixed 128MB ceiling. Compression errors are rare and
// generally indicate a backing allocation failure.
//
// # Integration
//
// The envelope package uses this package to optionally compress a message's payload
// before framing it; the stream package carries the same choice across a sequence of
// framed messages. Decoders on the read path select the decompressor based on the
// compression type recorded in the envelope header.
//
// # Advanced Usage
//
// Custom compression can implement the Compressor/Decompressor interfaces and be
// called directly. envelope.Wrap and envelope.Unwrap accept only a format.CompressionType
// and look the codec up with GetCodec, so they use the four built-in codecs only.
package compress
