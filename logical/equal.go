package logical

import (
	"bytes"
	"math"
)

// EqualTable reports whether two logical tables are structurally
// identical. Double values compare bit-exact: two NaNs with the same
// bit pattern are equal, but this is not required to match IEEE-754
// `==` semantics (spec.md §4.1).
func EqualTable(a, b Table) bool {
	switch x := a.(type) {
	case TableBinary:
		y, ok := b.(TableBinary)
		return ok && bytes.Equal(x.Data, y.Data)
	case TableArray:
		y, ok := b.(TableArray)
		if !ok || len(x.Values) != len(y.Values) {
			return false
		}
		for i := range x.Values {
			if !Equal(x.Values[i], y.Values[i]) {
				return false
			}
		}
		return true
	case TableMap:
		y, ok := b.(TableMap)
		if !ok || len(x.Pairs) != len(y.Pairs) {
			return false
		}
		for i := range x.Pairs {
			if !Equal(x.Pairs[i].Key, y.Pairs[i].Key) || !Equal(x.Pairs[i].Value, y.Pairs[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Equal reports whether two logical values are structurally identical.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Unit:
		_, ok := b.(Unit)
		return ok
	case Int:
		y, ok := b.(Int)
		return ok && x.Value == y.Value
	case Double:
		y, ok := b.(Double)
		return ok && math.Float64bits(x.Value) == math.Float64bits(y.Value)
	case Binary:
		y, ok := b.(Binary)
		return ok && bytes.Equal(x.Value, y.Value)
	case Array:
		y, ok := b.(Array)
		if !ok || len(x.Values) != len(y.Values) {
			return false
		}
		for i := range x.Values {
			if !Equal(x.Values[i], y.Values[i]) {
				return false
			}
		}
		return true
	case Struct:
		y, ok := b.(Struct)
		if !ok || len(x.Fields) != len(y.Fields) {
			return false
		}
		for i := range x.Fields {
			if x.Fields[i].Name != y.Fields[i].Name || !Equal(x.Fields[i].Value, y.Fields[i].Value) {
				return false
			}
		}
		return true
	case Enum:
		y, ok := b.(Enum)
		return ok && x.Tag == y.Tag && Equal(x.Value, y.Value)
	case Nested:
		y, ok := b.(Nested)
		return ok && EqualTable(x.Table, y.Table)
	case Reversed:
		y, ok := b.(Reversed)
		return ok && Equal(x.Inner, y.Inner)
	default:
		return false
	}
}
