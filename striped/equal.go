package striped

import (
	"bytes"
	"math"
)

// EqualTable reports whether two striped tables are structurally
// identical, including NaN bit-pattern comparison for Double columns
// (spec.md §4.1).
func EqualTable(a, b Table) bool {
	switch x := a.(type) {
	case TableBinary:
		y, ok := b.(TableBinary)
		return ok && x.Default == y.Default && x.Encoding == y.Encoding && bytes.Equal(x.Data, y.Data)
	case TableArray:
		y, ok := b.(TableArray)
		return ok && x.Default == y.Default && EqualColumn(x.Column, y.Column)
	case TableMap:
		y, ok := b.(TableMap)
		return ok && x.Default == y.Default && EqualColumn(x.KeyColumn, y.KeyColumn) && EqualColumn(x.ValueColumn, y.ValueColumn)
	default:
		return false
	}
}

// EqualColumn reports whether two striped columns are structurally identical.
func EqualColumn(a, b Column) bool {
	switch x := a.(type) {
	case Unit:
		y, ok := b.(Unit)
		return ok && x.Count == y.Count
	case Int:
		y, ok := b.(Int)
		return ok && x.Default == y.Default && x.Encoding == y.Encoding && int64SliceEqual(x.Values, y.Values)
	case Double:
		y, ok := b.(Double)
		if !ok || x.Default != y.Default || len(x.Values) != len(y.Values) {
			return false
		}
		for i := range x.Values {
			if math.Float64bits(x.Values[i]) != math.Float64bits(y.Values[i]) {
				return false
			}
		}
		return true
	case Binary:
		y, ok := b.(Binary)
		return ok && x.Default == y.Default && x.Encoding == y.Encoding && int64SliceEqual(x.Lengths, y.Lengths) && bytes.Equal(x.Data, y.Data)
	case Array:
		y, ok := b.(Array)
		return ok && x.Default == y.Default && int64SliceEqual(x.Lengths, y.Lengths) && EqualColumn(x.Element, y.Element)
	case Struct:
		y, ok := b.(Struct)
		if !ok || x.Default != y.Default || len(x.Fields) != len(y.Fields) {
			return false
		}
		for i := range x.Fields {
			if x.Fields[i].Name != y.Fields[i].Name || !EqualColumn(x.Fields[i].Column, y.Fields[i].Column) {
				return false
			}
		}
		return true
	case Enum:
		y, ok := b.(Enum)
		if !ok || x.Default != y.Default || len(x.Variants) != len(y.Variants) {
			return false
		}
		if len(x.Tags) != len(y.Tags) {
			return false
		}
		for i := range x.Tags {
			if x.Tags[i] != y.Tags[i] {
				return false
			}
		}
		for i := range x.Variants {
			if x.Variants[i].Name != y.Variants[i].Name || x.Variants[i].Tag != y.Variants[i].Tag || !EqualColumn(x.Variants[i].Column, y.Variants[i].Column) {
				return false
			}
		}
		return true
	case Nested:
		y, ok := b.(Nested)
		return ok && int64SliceEqual(x.Lengths, y.Lengths) && EqualTable(x.Table, y.Table)
	case Reversed:
		y, ok := b.(Reversed)
		return ok && EqualColumn(x.Inner, y.Inner)
	default:
		return false
	}
}

func int64SliceEqual(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
