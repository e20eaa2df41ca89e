package intcodec

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
)

// CompressionAlgorithm selects how opaque byte arrays are compressed
// (spec.md §4.4.2). Like the schema sum types, it is modeled as an
// interface with one struct per variant.
type CompressionAlgorithm interface {
	compressionAlgorithm()
}

// None passes bytes through unchanged.
type None struct{}

func (None) compressionAlgorithm() {}

// Zstd compresses bytes with zstd at the given level (1..=22).
type Zstd struct {
	Level int32
}

func (Zstd) compressionAlgorithm() {}

// CompressionConfig names the algorithm used for generic binary
// column data and the algorithm used for UTF-8 string column data.
// They may differ (spec.md §4.4.2).
type CompressionConfig struct {
	BinaryData CompressionAlgorithm
	Strings    CompressionAlgorithm
}

// DefaultCompressionConfig matches the original zbra-core default:
// zstd level 3 for both generic and string data.
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		BinaryData: Zstd{Level: 3},
		Strings:    Zstd{Level: 3},
	}
}

// CompressBytes compresses b under the given algorithm.
func CompressBytes(b []byte, alg CompressionAlgorithm) ([]byte, error) {
	switch a := alg.(type) {
	case None:
		out := make([]byte, len(b))
		copy(out, b)
		return out, nil
	case Zstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstdLevel(a.Level)))
		if err != nil {
			return nil, errorf("zstd compression failed: %v", err)
		}
		defer enc.Close()
		return enc.EncodeAll(b, make([]byte, 0, len(b))), nil
	default:
		return nil, errorf("unknown compression algorithm %T", alg)
	}
}

// DecompressBytes reverses CompressBytes.
func DecompressBytes(b []byte, alg CompressionAlgorithm) ([]byte, error) {
	switch alg.(type) {
	case None:
		out := make([]byte, len(b))
		copy(out, b)
		return out, nil
	case Zstd:
		dec, err := zstd.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, errorf("zstd decompression failed: %v", err)
		}
		defer dec.Close()
		out, err := io.ReadAll(dec)
		if err != nil {
			return nil, errorf("zstd decompression failed: %v", err)
		}
		return out, nil
	default:
		return nil, errorf("unknown compression algorithm %T", alg)
	}
}

func zstdLevel(level int32) zstd.EncoderLevel {
	switch {
	case level <= 1:
		return zstd.SpeedFastest
	case level <= 3:
		return zstd.SpeedDefault
	case level <= 9:
		return zstd.SpeedBetterCompression
	default:
		return zstd.SpeedBestCompression
	}
}
