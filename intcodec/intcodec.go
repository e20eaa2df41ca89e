package intcodec

import "encoding/binary"

// CompressInts runs the three-stage pipeline (frame-of-reference,
// zig-zag, BP64) over a signed integer array and returns:
// midpoint:i64-LE · packed_len:u32-LE · packed_bytes (spec.md §4.4.1).
// An empty input yields an empty output with no header.
func CompressInts(values []int64) []byte {
	if len(values) == 0 {
		return nil
	}
	midpoint := Midpoint(values)
	deltas := Deltas(values, midpoint)
	zz := make([]uint64, len(deltas))
	for i, d := range deltas {
		zz[i] = ZigZagEncode(d)
	}
	packed := BP64Pack(zz)

	out := make([]byte, 12, 12+len(packed))
	binary.LittleEndian.PutUint64(out[0:8], uint64(midpoint))
	binary.LittleEndian.PutUint32(out[8:12], uint32(len(packed)))
	return append(out, packed...)
}

// DecompressInts is the inverse of CompressInts, given the original
// element count (stored out-of-band by the binary container).
func DecompressInts(data []byte, count int) ([]int64, error) {
	if count == 0 {
		return nil, nil
	}
	if len(data) < 12 {
		return nil, errorf("int payload too short: %d bytes", len(data))
	}
	midpoint := int64(binary.LittleEndian.Uint64(data[0:8]))
	packedLen := binary.LittleEndian.Uint32(data[8:12])
	if uint64(12)+uint64(packedLen) > uint64(len(data)) {
		return nil, errorf("int payload packed_len %d exceeds buffer", packedLen)
	}
	packed := data[12 : 12+int(packedLen)]

	zz, err := BP64Unpack(packed, count)
	if err != nil {
		return nil, err
	}
	deltas := make([]int64, count)
	for i, u := range zz {
		deltas[i] = ZigZagDecode(u)
	}
	return ApplyMidpoint(deltas, midpoint), nil
}
