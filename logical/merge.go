package logical

// Merge combines two logical values under the partial axioms spec.md
// §9 states and no others: associative where defined, commutative on
// Array concatenation, and conflicting primitives fail with an
// InvalidValue-kind error. This intentionally does not implement a
// full union/merge policy — spec.md scopes that out, leaving it for
// implementers of the higher-level system this codec feeds.
func Merge(a, b Value) (Value, error) {
	switch x := a.(type) {
	case Unit:
		if _, ok := b.(Unit); ok {
			return Unit{}, nil
		}
		return nil, errorf("cannot merge Unit with %T", b)
	case Array:
		y, ok := b.(Array)
		if !ok {
			return nil, errorf("cannot merge Array with %T", b)
		}
		merged := make([]Value, 0, len(x.Values)+len(y.Values))
		merged = append(merged, x.Values...)
		merged = append(merged, y.Values...)
		return Array{Values: merged}, nil
	case Struct:
		y, ok := b.(Struct)
		if !ok {
			return nil, errorf("cannot merge Struct with %T", b)
		}
		return mergeStructs(x, y)
	case Nested:
		y, ok := b.(Nested)
		if !ok {
			return nil, errorf("cannot merge Nested with %T", b)
		}
		t, err := mergeTables(x.Table, y.Table)
		if err != nil {
			return nil, err
		}
		return Nested{Table: t}, nil
	case Reversed:
		y, ok := b.(Reversed)
		if !ok {
			return nil, errorf("cannot merge Reversed with %T", b)
		}
		inner, err := Merge(x.Inner, y.Inner)
		if err != nil {
			return nil, err
		}
		return Reversed{Inner: inner}, nil
	default:
		// Int, Double, Binary, Enum: primitive merge is only valid
		// when both sides are exactly equal; otherwise it's a conflict.
		if Equal(a, b) {
			return a, nil
		}
		return nil, errorf("conflicting primitive values cannot be merged: %T", a)
	}
}

func mergeStructs(x, y Struct) (Value, error) {
	byName := make(map[string]Value, len(x.Fields))
	order := make([]string, 0, len(x.Fields))
	for _, f := range x.Fields {
		if _, ok := byName[f.Name]; !ok {
			order = append(order, f.Name)
		}
		byName[f.Name] = f.Value
	}
	for _, f := range y.Fields {
		if existing, ok := byName[f.Name]; ok {
			merged, err := Merge(existing, f.Value)
			if err != nil {
				return nil, err
			}
			byName[f.Name] = merged
			continue
		}
		order = append(order, f.Name)
		byName[f.Name] = f.Value
	}
	fields := make([]Field, len(order))
	for i, name := range order {
		fields[i] = Field{Name: name, Value: byName[name]}
	}
	return Struct{Fields: fields}, nil
}

// MergeTable combines two logical tables under the same axioms as
// Merge: Array-backed tables concatenate (commutative), Map-backed
// tables concatenate their pair sequence preserving insertion order
// (spec.md §9, "Open question: Map key duplication" — no dedup), and
// Binary-backed tables must be byte-identical to merge.
func MergeTable(a, b Table) (Table, error) {
	return mergeTables(a, b)
}

func mergeTables(a, b Table) (Table, error) {
	switch x := a.(type) {
	case TableBinary:
		y, ok := b.(TableBinary)
		if !ok || !EqualTable(x, y) {
			return nil, errorf("conflicting table binary data cannot be merged")
		}
		return x, nil
	case TableArray:
		y, ok := b.(TableArray)
		if !ok {
			return nil, errorf("cannot merge TableArray with %T", b)
		}
		merged := make([]Value, 0, len(x.Values)+len(y.Values))
		merged = append(merged, x.Values...)
		merged = append(merged, y.Values...)
		return TableArray{Values: merged}, nil
	case TableMap:
		y, ok := b.(TableMap)
		if !ok {
			return nil, errorf("cannot merge TableMap with %T", b)
		}
		merged := make([]Pair, 0, len(x.Pairs)+len(y.Pairs))
		merged = append(merged, x.Pairs...)
		merged = append(merged, y.Pairs...)
		return TableMap{Pairs: merged}, nil
	default:
		return nil, errorf("unknown table %T", a)
	}
}
