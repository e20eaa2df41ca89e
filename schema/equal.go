package schema

// EqualTable reports whether two TableSchema trees are structurally
// identical.
func EqualTable(a, b TableSchema) bool {
	switch x := a.(type) {
	case TableBinary:
		y, ok := b.(TableBinary)
		return ok && x.Default == y.Default && x.Encoding == y.Encoding
	case TableArray:
		y, ok := b.(TableArray)
		return ok && x.Default == y.Default && EqualValue(x.Element, y.Element)
	case TableMap:
		y, ok := b.(TableMap)
		return ok && x.Default == y.Default && EqualValue(x.Key, y.Key) && EqualValue(x.Value, y.Value)
	default:
		return false
	}
}

// EqualValue reports whether two ValueSchema trees are structurally
// identical, including field order in Struct and variant order in Enum.
func EqualValue(a, b ValueSchema) bool {
	switch x := a.(type) {
	case Unit:
		_, ok := b.(Unit)
		return ok
	case Int:
		y, ok := b.(Int)
		return ok && x.Default == y.Default && x.Encoding == y.Encoding
	case Double:
		y, ok := b.(Double)
		return ok && x.Default == y.Default
	case Binary:
		y, ok := b.(Binary)
		return ok && x.Default == y.Default && x.Encoding == y.Encoding
	case Array:
		y, ok := b.(Array)
		return ok && x.Default == y.Default && EqualValue(x.Element, y.Element)
	case Struct:
		y, ok := b.(Struct)
		if !ok || x.Default != y.Default || len(x.Fields) != len(y.Fields) {
			return false
		}
		for i := range x.Fields {
			if x.Fields[i].Name != y.Fields[i].Name || !EqualValue(x.Fields[i].Schema, y.Fields[i].Schema) {
				return false
			}
		}
		return true
	case Enum:
		y, ok := b.(Enum)
		if !ok || x.Default != y.Default || len(x.Variants) != len(y.Variants) {
			return false
		}
		for i := range x.Variants {
			if x.Variants[i].Name != y.Variants[i].Name || x.Variants[i].Tag != y.Variants[i].Tag || !EqualValue(x.Variants[i].Schema, y.Variants[i].Schema) {
				return false
			}
		}
		return true
	case Nested:
		y, ok := b.(Nested)
		return ok && EqualTable(x.Table, y.Table)
	case Reversed:
		y, ok := b.(Reversed)
		return ok && EqualValue(x.Inner, y.Inner)
	default:
		return false
	}
}
