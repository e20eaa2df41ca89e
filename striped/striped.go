// Package striped holds the columnar representation of data: the
// same tree shape as the schema, but with every row axis transposed
// into a dense column. This is what the binary container actually
// serializes.
package striped

import "github.com/solidcoredata/zbra/schema"

// Table is a top-level striped table.
type Table interface {
	tableColumn()
	RowCount() int64
}

// TableBinary is a striped table whose rows are bytes, stored as one
// contiguous buffer.
type TableBinary struct {
	Default  schema.Default
	Encoding schema.BinaryEncoding
	Data     []byte
}

func (TableBinary) tableColumn()       {}
func (t TableBinary) RowCount() int64 { return int64(len(t.Data)) }

// TableArray is a striped table whose rows are a single dense column.
type TableArray struct {
	Default schema.Default
	Column  Column
}

func (TableArray) tableColumn()       {}
func (t TableArray) RowCount() int64 { return t.Column.RowCount() }

// TableMap is a striped table of key/value pairs, each stored as its
// own dense column.
type TableMap struct {
	Default     schema.Default
	KeyColumn   Column
	ValueColumn Column
}

func (TableMap) tableColumn()       {}
func (t TableMap) RowCount() int64 { return t.KeyColumn.RowCount() }

// Column is a single striped axis: the columnar counterpart of one
// ValueSchema node.
type Column interface {
	columnValue()
	RowCount() int64
}

// Unit is a presence-only column; it carries no data, only a count.
type Unit struct {
	Count int64
}

func (Unit) columnValue()       {}
func (c Unit) RowCount() int64 { return c.Count }

// Int is a dense column of 64-bit signed integers.
type Int struct {
	Default  schema.Default
	Encoding schema.IntEncoding
	Values   []int64
}

func (Int) columnValue()       {}
func (c Int) RowCount() int64 { return int64(len(c.Values)) }

// Double is a dense column of 64-bit floats.
type Double struct {
	Default schema.Default
	Values  []float64
}

func (Double) columnValue()       {}
func (c Double) RowCount() int64 { return int64(len(c.Values)) }

// Binary is a dense column of variable-length byte strings, stored as
// one contiguous buffer plus a parallel length-per-row array.
type Binary struct {
	Default  schema.Default
	Encoding schema.BinaryEncoding
	Lengths  []int64
	Data     []byte
}

func (Binary) columnValue()       {}
func (c Binary) RowCount() int64 { return int64(len(c.Lengths)) }

// Array is a dense column of variable-length sequences: a
// length-per-row array plus one flat child column holding every row's
// elements concatenated.
type Array struct {
	Default schema.Default
	Lengths []int64
	Element Column
}

func (Array) columnValue()       {}
func (c Array) RowCount() int64 { return int64(len(c.Lengths)) }

// Struct is a fixed, ordered set of named field columns, all sharing
// the same row count (spec.md §3 invariant 1).
type Struct struct {
	Default schema.Default
	Fields  []FieldColumn
}

// FieldColumn names one field column of a Struct.
type FieldColumn struct {
	Name   string
	Column Column
}

func (c Struct) columnValue() {}
func (c Struct) RowCount() int64 {
	if len(c.Fields) == 0 {
		return 0
	}
	return c.Fields[0].Column.RowCount()
}

// Enum is a tagged column: a dense tags array plus one child column
// per variant, holding only the rows tagged with that variant (in
// original relative order).
type Enum struct {
	Default  schema.Default
	Tags     []uint32
	Variants []VariantColumn
}

func (Enum) columnValue()       {}
func (c Enum) RowCount() int64 { return int64(len(c.Tags)) }

// VariantColumn names and tags one variant's column of an Enum.
type VariantColumn struct {
	Name   string
	Tag    uint32
	Column Column
}

// Nested embeds a whole striped table: a length-per-row array plus
// one child table holding every row's inner table concatenated.
type Nested struct {
	Lengths []int64
	Table   Table
}

func (Nested) columnValue()       {}
func (c Nested) RowCount() int64 { return int64(len(c.Lengths)) }

// Reversed is a structural marker around another column.
type Reversed struct {
	Inner Column
}

func (Reversed) columnValue()       {}
func (c Reversed) RowCount() int64 { return c.Inner.RowCount() }
