// Package logical holds the row-oriented representation of data: a
// Table or Value is a tree of primitives, arrays and structs, shaped
// exactly like the schema it was built against.
package logical

// Table is a top-level logical table: the row-oriented counterpart of
// schema.TableSchema.
type Table interface {
	tableValue()
}

// TableBinary is a table whose rows are bytes.
type TableBinary struct {
	Data []byte
}

func (TableBinary) tableValue() {}

// TableArray is a table whose rows are repeated values.
type TableArray struct {
	Values []Value
}

func (TableArray) tableValue() {}

// TableMap is a table of key/value pairs. Key uniqueness is not
// enforced by this package (spec.md §9, "Open question: Map key
// duplication"); insertion order is preserved.
type TableMap struct {
	Pairs []Pair
}

func (TableMap) tableValue() {}

// Pair is one key/value entry of a TableMap.
type Pair struct {
	Key   Value
	Value Value
}

// Value is a single logical value: the row-oriented counterpart of
// schema.ValueSchema.
type Value interface {
	value()
}

// Unit carries no payload.
type Unit struct{}

func (Unit) value() {}

// Int is a 64-bit signed integer.
type Int struct {
	Value int64
}

func (Int) value() {}

// Double is a 64-bit IEEE-754 float.
type Double struct {
	Value float64
}

func (Double) value() {}

// Binary is a byte string.
type Binary struct {
	Value []byte
}

func (Binary) value() {}

// Array is a variable-length sequence of values.
type Array struct {
	Values []Value
}

func (Array) value() {}

// Struct is an ordered, named set of fields. Field order is
// significant (spec.md §4.2).
type Struct struct {
	Fields []Field
}

func (Struct) value() {}

// Field is one named value of a Struct.
type Field struct {
	Name  string
	Value Value
}

// Enum is a tagged union: the tag selects which variant's payload is
// carried.
type Enum struct {
	Tag   uint32
	Value Value
}

func (Enum) value() {}

// Nested embeds a whole table as a value.
type Nested struct {
	Table Table
}

func (Nested) value() {}

// Reversed is a structural marker around another value; it round
// trips faithfully and has no invented comparison/merge semantics
// (spec.md §9).
type Reversed struct {
	Inner Value
}

func (Reversed) value() {}

// TableLength is the row-count of a logical table: |data| for
// TableBinary, |values| for TableArray, |pairs| for TableMap.
func TableLength(t Table) int {
	switch v := t.(type) {
	case TableBinary:
		return len(v.Data)
	case TableArray:
		return len(v.Values)
	case TableMap:
		return len(v.Pairs)
	default:
		return 0
	}
}
