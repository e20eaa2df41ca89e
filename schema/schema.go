// Package schema describes the shape of tables and values: the
// algebra of schemas that the logical, striped and binary packages
// all traverse in lockstep.
//
// Go has no built-in sum type, so each schema sort (TableSchema,
// ValueSchema) is modeled as an interface with one unexported marker
// method, implemented by one struct per variant. This mirrors the
// original zbra-core schema.rs tagged enum while staying idiomatic Go.
package schema

import "fmt"

// Default says whether a schema position tolerates the type's zero
// value in place of a missing datum.
type Default int

const (
	DefaultAllow Default = iota
	DefaultDeny
)

func (d Default) String() string {
	switch d {
	case DefaultAllow:
		return "allow"
	case DefaultDeny:
		return "deny"
	default:
		return fmt.Sprintf("Default(%d)", int(d))
	}
}

// IntEncoding describes how an Int payload should be interpreted.
type IntEncoding int

const (
	IntEncodingInt IntEncoding = iota
	IntEncodingDate
	IntEncodingTimeSeconds
	IntEncodingTimeMilliseconds
	IntEncodingTimeMicroseconds
)

func (e IntEncoding) String() string {
	switch e {
	case IntEncodingInt:
		return "int"
	case IntEncodingDate:
		return "date"
	case IntEncodingTimeSeconds:
		return "time_seconds"
	case IntEncodingTimeMilliseconds:
		return "time_milliseconds"
	case IntEncodingTimeMicroseconds:
		return "time_microseconds"
	default:
		return fmt.Sprintf("IntEncoding(%d)", int(e))
	}
}

// BinaryEncoding describes how a Binary payload should be interpreted.
type BinaryEncoding int

const (
	BinaryEncodingBinary BinaryEncoding = iota
	BinaryEncodingUtf8
)

func (e BinaryEncoding) String() string {
	switch e {
	case BinaryEncodingBinary:
		return "binary"
	case BinaryEncodingUtf8:
		return "utf8"
	default:
		return fmt.Sprintf("BinaryEncoding(%d)", int(e))
	}
}

// DateMaxMillis is the inclusive upper bound for IntEncoding::Date
// values: milliseconds since the Unix epoch, up to 2100-01-01 UTC.
const DateMaxMillis int64 = 4_102_444_800_000

// TableSchema is the schema of a top-level table: the outermost axis
// the container ever strides over.
type TableSchema interface {
	tableSchema()
}

// TableBinary is a table whose rows are bytes.
type TableBinary struct {
	Default  Default
	Encoding BinaryEncoding
}

func (TableBinary) tableSchema() {}

// TableArray is a table whose rows are repeated values of one element schema.
type TableArray struct {
	Default Default
	Element ValueSchema
}

func (TableArray) tableSchema() {}

// TableMap is a table of key/value pairs.
type TableMap struct {
	Default Default
	Key     ValueSchema
	Value   ValueSchema
}

func (TableMap) tableSchema() {}

// ValueSchema is the schema of a single logical value.
type ValueSchema interface {
	valueSchema()
}

// Unit carries no payload; it is used for presence-only columns.
type Unit struct{}

func (Unit) valueSchema() {}

// Int is a 64-bit signed integer with an interpretation tag.
type Int struct {
	Default  Default
	Encoding IntEncoding
}

func (Int) valueSchema() {}

// Double is a 64-bit IEEE-754 float.
type Double struct {
	Default Default
}

func (Double) valueSchema() {}

// Binary is a byte string, optionally constrained to valid UTF-8.
type Binary struct {
	Default  Default
	Encoding BinaryEncoding
}

func (Binary) valueSchema() {}

// Array is a variable-length sequence of one element schema.
type Array struct {
	Default Default
	Element ValueSchema
}

func (Array) valueSchema() {}

// Struct is a fixed, ordered set of named fields.
type Struct struct {
	Default Default
	Fields  []FieldSchema
}

func (Struct) valueSchema() {}

// FieldSchema names one field of a Struct.
type FieldSchema struct {
	Name   string
	Schema ValueSchema
}

// Enum is a tagged union over a fixed set of variants.
type Enum struct {
	Default  Default
	Variants []VariantSchema
}

func (Enum) valueSchema() {}

// VariantSchema names and tags one variant of an Enum.
type VariantSchema struct {
	Name   string
	Tag    uint32
	Schema ValueSchema
}

// Nested embeds a whole table as a value, striped in place.
type Nested struct {
	Table TableSchema
}

func (Nested) valueSchema() {}

// Reversed is a structural marker around another schema. It round
// trips faithfully; spec.md leaves its ordering/merge/comparison
// effect as an open question, so none is invented here.
type Reversed struct {
	Inner ValueSchema
}

func (Reversed) valueSchema() {}
