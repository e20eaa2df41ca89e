package binary

import (
	"math"

	"github.com/solidcoredata/zbra/intcodec"
	"github.com/solidcoredata/zbra/schema"
	"github.com/solidcoredata/zbra/striped"
)

func writeDefault(w *writer, d schema.Default) {
	switch d {
	case schema.DefaultAllow:
		w.writeU8(tagDefaultAllow)
	case schema.DefaultDeny:
		w.writeU8(tagDefaultDeny)
	default:
		w.err = errorf("unknown default %v", d)
	}
}

func writeIntEncoding(w *writer, e schema.IntEncoding) {
	switch e {
	case schema.IntEncodingInt:
		w.writeU8(tagIntEncodingInt)
	case schema.IntEncodingDate:
		w.writeU8(tagIntEncodingDate)
	case schema.IntEncodingTimeSeconds:
		w.writeU8(tagIntEncodingTimeSeconds)
	case schema.IntEncodingTimeMilliseconds:
		w.writeU8(tagIntEncodingTimeMilliseconds)
	case schema.IntEncodingTimeMicroseconds:
		w.writeU8(tagIntEncodingTimeMicroseconds)
	default:
		w.err = errorf("unknown int encoding %v", e)
	}
}

func writeBinaryEncoding(w *writer, e schema.BinaryEncoding) {
	switch e {
	case schema.BinaryEncodingBinary:
		w.writeU8(tagBinaryEncodingBinary)
	case schema.BinaryEncodingUtf8:
		w.writeU8(tagBinaryEncodingUtf8)
	default:
		w.err = errorf("unknown binary encoding %v", e)
	}
}

// algorithmFor picks the byte-array compression algorithm a Binary
// column/table should use, per spec.md §4.5.2 ("data compressed under
// config.strings" for Utf8, config.binary_data otherwise).
func algorithmFor(cfg intcodec.CompressionConfig, enc schema.BinaryEncoding) intcodec.CompressionAlgorithm {
	if enc == schema.BinaryEncodingUtf8 {
		return cfg.Strings
	}
	return cfg.BinaryData
}

func encodeTable(w *writer, cfg intcodec.CompressionConfig, t striped.Table) {
	switch v := t.(type) {
	case striped.TableBinary:
		w.writeU8(tagTableBinary)
		writeDefault(w, v.Default)
		writeBinaryEncoding(w, v.Encoding)
		w.writeCompressedBytes(v.Data, algorithmFor(cfg, v.Encoding))
	case striped.TableArray:
		w.writeU8(tagTableArray)
		writeDefault(w, v.Default)
		encodeColumn(w, cfg, v.Column)
	case striped.TableMap:
		w.writeU8(tagTableMap)
		writeDefault(w, v.Default)
		encodeColumn(w, cfg, v.KeyColumn)
		encodeColumn(w, cfg, v.ValueColumn)
	default:
		w.err = errorf("unknown table column %T", t)
	}
}

func encodeColumn(w *writer, cfg intcodec.CompressionConfig, c striped.Column) {
	switch v := c.(type) {
	case striped.Unit:
		w.writeU8(tagColumnUnit)
		w.writeU32(uint32(v.Count))
	case striped.Int:
		w.writeU8(tagColumnInt)
		writeDefault(w, v.Default)
		writeIntEncoding(w, v.Encoding)
		w.writeIntArray(v.Values)
	case striped.Double:
		w.writeU8(tagColumnDouble)
		writeDefault(w, v.Default)
		w.writeIntArray(float64sToBits(v.Values))
	case striped.Binary:
		w.writeU8(tagColumnBinary)
		writeDefault(w, v.Default)
		writeBinaryEncoding(w, v.Encoding)
		w.writeIntArray(v.Lengths)
		w.writeCompressedBytes(v.Data, algorithmFor(cfg, v.Encoding))
	case striped.Array:
		w.writeU8(tagColumnArray)
		writeDefault(w, v.Default)
		w.writeIntArray(v.Lengths)
		encodeColumn(w, cfg, v.Element)
	case striped.Struct:
		w.writeU8(tagColumnStruct)
		writeDefault(w, v.Default)
		w.writeU32(uint32(len(v.Fields)))
		for _, f := range v.Fields {
			w.writeString(f.Name)
			encodeColumn(w, cfg, f.Column)
		}
	case striped.Enum:
		w.writeU8(tagColumnEnum)
		writeDefault(w, v.Default)
		w.writeIntArray(uint32sToInt64s(v.Tags))
		w.writeU32(uint32(len(v.Variants)))
		for _, variant := range v.Variants {
			w.writeString(variant.Name)
			w.writeU32(variant.Tag)
			encodeColumn(w, cfg, variant.Column)
		}
	case striped.Nested:
		w.writeU8(tagColumnNested)
		w.writeIntArray(v.Lengths)
		encodeTable(w, cfg, v.Table)
	case striped.Reversed:
		w.writeU8(tagColumnReversed)
		encodeColumn(w, cfg, v.Inner)
	default:
		w.err = errorf("unknown column %T", c)
	}
}

func float64sToBits(values []float64) []int64 {
	out := make([]int64, len(values))
	for i, v := range values {
		out[i] = int64(math.Float64bits(v))
	}
	return out
}

func bitsToFloat64s(values []int64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Float64frombits(uint64(v))
	}
	return out
}

func uint32sToInt64s(values []uint32) []int64 {
	out := make([]int64, len(values))
	for i, v := range values {
		out[i] = int64(v)
	}
	return out
}

func int64sToUint32s(values []int64) []uint32 {
	out := make([]uint32, len(values))
	for i, v := range values {
		out[i] = uint32(v)
	}
	return out
}
