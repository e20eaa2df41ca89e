package intcodec

import (
	"encoding/binary"
	"math/bits"
)

// BitsNeeded returns the number of bits needed to represent max, or 1
// if max is zero (spec.md §4.4.1).
func BitsNeeded(max uint64) uint {
	if max == 0 {
		return 1
	}
	return uint(bits.Len64(max))
}

// BP64Pack bit-packs values into a self-describing buffer: a one-byte
// bit-width prefix followed by either 8-byte-per-value fixed width
// data (bit_width >= 32, the fast path) or an LSB-first packed bit
// stream (spec.md §4.4.1).
func BP64Pack(values []uint64) []byte {
	var maxV uint64
	for _, v := range values {
		if v > maxV {
			maxV = v
		}
	}
	width := BitsNeeded(maxV)
	if len(values) == 0 {
		width = 1
	}

	out := make([]byte, 1, 1+len(values)*8)
	out[0] = byte(width)

	if width >= 32 {
		for _, v := range values {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], v)
			out = append(out, b[:]...)
		}
		return out
	}

	mask := uint64(1)<<width - 1
	var bitBuf uint64
	var bitCount uint
	for _, v := range values {
		bitBuf |= (v & mask) << bitCount
		bitCount += width
		for bitCount >= 8 {
			out = append(out, byte(bitBuf))
			bitBuf >>= 8
			bitCount -= 8
		}
	}
	if bitCount > 0 {
		out = append(out, byte(bitBuf))
	}
	return out
}

// BP64Unpack is the inverse of BP64Pack, given the original element
// count (stored out-of-band, per spec.md §4.4.1).
func BP64Unpack(data []byte, count int) ([]uint64, error) {
	if count == 0 {
		return nil, nil
	}
	if len(data) < 1 {
		return nil, errorf("bp64: empty packed buffer")
	}
	width := uint(data[0])
	rest := data[1:]

	if width >= 32 {
		need := count * 8
		if len(rest) != need {
			return nil, errorf("bp64: fixed-width payload has %d bytes, want %d", len(rest), need)
		}
		out := make([]uint64, count)
		for i := range out {
			out[i] = binary.LittleEndian.Uint64(rest[i*8 : i*8+8])
		}
		return out, nil
	}

	out := make([]uint64, count)
	mask := uint64(1)<<width - 1
	var bitBuf uint64
	var bitCount uint
	pos := 0
	for i := 0; i < count; i++ {
		for bitCount < width {
			if pos >= len(rest) {
				return nil, errorf("bp64: packed buffer truncated")
			}
			bitBuf |= uint64(rest[pos]) << bitCount
			pos++
			bitCount += 8
		}
		out[i] = bitBuf & mask
		bitBuf >>= width
		bitCount -= width
	}
	return out, nil
}
