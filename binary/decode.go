package binary

import (
	"github.com/solidcoredata/zbra/intcodec"
	"github.com/solidcoredata/zbra/schema"
	"github.com/solidcoredata/zbra/striped"
)

func readDefault(r *reader) schema.Default {
	if r.err != nil {
		return 0
	}
	tag := r.readU8()
	if r.err != nil {
		return 0
	}
	switch tag {
	case tagDefaultAllow:
		return schema.DefaultAllow
	case tagDefaultDeny:
		return schema.DefaultDeny
	default:
		r.err = invalidDefaultTag(tag)
		return 0
	}
}

func readIntEncoding(r *reader) schema.IntEncoding {
	if r.err != nil {
		return 0
	}
	tag := r.readU8()
	if r.err != nil {
		return 0
	}
	switch tag {
	case tagIntEncodingInt:
		return schema.IntEncodingInt
	case tagIntEncodingDate:
		return schema.IntEncodingDate
	case tagIntEncodingTimeSeconds:
		return schema.IntEncodingTimeSeconds
	case tagIntEncodingTimeMilliseconds:
		return schema.IntEncodingTimeMilliseconds
	case tagIntEncodingTimeMicroseconds:
		return schema.IntEncodingTimeMicroseconds
	default:
		r.err = invalidIntEncodingTag(tag)
		return 0
	}
}

func readBinaryEncoding(r *reader) schema.BinaryEncoding {
	if r.err != nil {
		return 0
	}
	tag := r.readU8()
	if r.err != nil {
		return 0
	}
	switch tag {
	case tagBinaryEncodingBinary:
		return schema.BinaryEncodingBinary
	case tagBinaryEncodingUtf8:
		return schema.BinaryEncodingUtf8
	default:
		r.err = invalidBinaryEncodingTag(tag)
		return 0
	}
}

func decodeTable(r *reader, cfg intcodec.CompressionConfig) striped.Table {
	if r.err != nil {
		return nil
	}
	tag := r.readU8()
	if r.err != nil {
		return nil
	}
	switch tag {
	case tagTableBinary:
		def := readDefault(r)
		enc := readBinaryEncoding(r)
		data := r.readCompressedBytes(algorithmFor(cfg, enc))
		if r.err != nil {
			return nil
		}
		return striped.TableBinary{Default: def, Encoding: enc, Data: data}
	case tagTableArray:
		def := readDefault(r)
		col := decodeColumn(r, cfg)
		if r.err != nil {
			return nil
		}
		return striped.TableArray{Default: def, Column: col}
	case tagTableMap:
		def := readDefault(r)
		key := decodeColumn(r, cfg)
		val := decodeColumn(r, cfg)
		if r.err != nil {
			return nil
		}
		return striped.TableMap{Default: def, KeyColumn: key, ValueColumn: val}
	default:
		r.err = invalidTableTag(tag)
		return nil
	}
}

func decodeColumn(r *reader, cfg intcodec.CompressionConfig) striped.Column {
	if r.err != nil {
		return nil
	}
	tag := r.readU8()
	if r.err != nil {
		return nil
	}
	switch tag {
	case tagColumnUnit:
		count := r.readU32()
		if r.err != nil {
			return nil
		}
		return striped.Unit{Count: int64(count)}
	case tagColumnInt:
		def := readDefault(r)
		enc := readIntEncoding(r)
		values := r.readIntArray()
		if r.err != nil {
			return nil
		}
		return striped.Int{Default: def, Encoding: enc, Values: values}
	case tagColumnDouble:
		def := readDefault(r)
		bitsAsInt := r.readIntArray()
		if r.err != nil {
			return nil
		}
		return striped.Double{Default: def, Values: bitsToFloat64s(bitsAsInt)}
	case tagColumnBinary:
		def := readDefault(r)
		enc := readBinaryEncoding(r)
		lengths := r.readIntArray()
		data := r.readCompressedBytes(algorithmFor(cfg, enc))
		if r.err != nil {
			return nil
		}
		return striped.Binary{Default: def, Encoding: enc, Lengths: lengths, Data: data}
	case tagColumnArray:
		def := readDefault(r)
		lengths := r.readIntArray()
		element := decodeColumn(r, cfg)
		if r.err != nil {
			return nil
		}
		return striped.Array{Default: def, Lengths: lengths, Element: element}
	case tagColumnStruct:
		def := readDefault(r)
		count := r.readU32()
		if r.err != nil {
			return nil
		}
		fields := make([]striped.FieldColumn, count)
		for i := range fields {
			name := r.readString()
			col := decodeColumn(r, cfg)
			if r.err != nil {
				return nil
			}
			fields[i] = striped.FieldColumn{Name: name, Column: col}
		}
		return striped.Struct{Default: def, Fields: fields}
	case tagColumnEnum:
		def := readDefault(r)
		tags := r.readIntArray()
		if r.err != nil {
			return nil
		}
		variantCount := r.readU32()
		if r.err != nil {
			return nil
		}
		variants := make([]striped.VariantColumn, variantCount)
		for i := range variants {
			name := r.readString()
			tag := r.readU32()
			col := decodeColumn(r, cfg)
			if r.err != nil {
				return nil
			}
			variants[i] = striped.VariantColumn{Name: name, Tag: tag, Column: col}
		}
		return striped.Enum{Default: def, Tags: int64sToUint32s(tags), Variants: variants}
	case tagColumnNested:
		lengths := r.readIntArray()
		table := decodeTable(r, cfg)
		if r.err != nil {
			return nil
		}
		return striped.Nested{Lengths: lengths, Table: table}
	case tagColumnReversed:
		inner := decodeColumn(r, cfg)
		if r.err != nil {
			return nil
		}
		return striped.Reversed{Inner: inner}
	default:
		r.err = invalidColumnTag(tag)
		return nil
	}
}
