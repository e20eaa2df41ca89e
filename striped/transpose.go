package striped

import (
	"bytes"
	"fmt"

	"github.com/solidcoredata/zbra/logical"
	"github.com/solidcoredata/zbra/schema"
)

func typeMismatch(expected string, actual interface{}) error {
	return errorf("type mismatch: expected %s, got %T", expected, actual)
}

// FromLogicalTable shreds a row-oriented logical.Table into a striped
// Table, per spec.md §4.3.1.
func FromLogicalTable(t logical.Table, s schema.TableSchema) (Table, error) {
	switch sv := s.(type) {
	case schema.TableBinary:
		tb, ok := t.(logical.TableBinary)
		if !ok {
			return nil, typeMismatch("TableBinary", t)
		}
		return TableBinary{Default: sv.Default, Encoding: sv.Encoding, Data: tb.Data}, nil
	case schema.TableArray:
		ta, ok := t.(logical.TableArray)
		if !ok {
			return nil, typeMismatch("TableArray", t)
		}
		col, err := fromLogicalValues(ta.Values, sv.Element)
		if err != nil {
			return nil, err
		}
		return TableArray{Default: sv.Default, Column: col}, nil
	case schema.TableMap:
		tm, ok := t.(logical.TableMap)
		if !ok {
			return nil, typeMismatch("TableMap", t)
		}
		keys := make([]logical.Value, len(tm.Pairs))
		vals := make([]logical.Value, len(tm.Pairs))
		for i, p := range tm.Pairs {
			keys[i] = p.Key
			vals[i] = p.Value
		}
		kcol, err := fromLogicalValues(keys, sv.Key)
		if err != nil {
			return nil, err
		}
		vcol, err := fromLogicalValues(vals, sv.Value)
		if err != nil {
			return nil, err
		}
		return TableMap{Default: sv.Default, KeyColumn: kcol, ValueColumn: vcol}, nil
	default:
		return nil, errorf("unknown table schema %T", s)
	}
}

func fromLogicalValues(values []logical.Value, s schema.ValueSchema) (Column, error) {
	switch sv := s.(type) {
	case schema.Unit:
		for i, v := range values {
			if _, ok := v.(logical.Unit); !ok {
				return nil, fmt.Errorf("element %d: %w", i, typeMismatch("Unit", v))
			}
		}
		return Unit{Count: int64(len(values))}, nil

	case schema.Int:
		out := make([]int64, len(values))
		for i, v := range values {
			iv, ok := v.(logical.Int)
			if !ok {
				return nil, fmt.Errorf("element %d: %w", i, typeMismatch("Int", v))
			}
			out[i] = iv.Value
		}
		return Int{Default: sv.Default, Encoding: sv.Encoding, Values: out}, nil

	case schema.Double:
		out := make([]float64, len(values))
		for i, v := range values {
			dv, ok := v.(logical.Double)
			if !ok {
				return nil, fmt.Errorf("element %d: %w", i, typeMismatch("Double", v))
			}
			out[i] = dv.Value
		}
		return Double{Default: sv.Default, Values: out}, nil

	case schema.Binary:
		lengths := make([]int64, len(values))
		var data bytes.Buffer
		for i, v := range values {
			bv, ok := v.(logical.Binary)
			if !ok {
				return nil, fmt.Errorf("element %d: %w", i, typeMismatch("Binary", v))
			}
			lengths[i] = int64(len(bv.Value))
			data.Write(bv.Value)
		}
		return Binary{Default: sv.Default, Encoding: sv.Encoding, Lengths: lengths, Data: data.Bytes()}, nil

	case schema.Array:
		lengths := make([]int64, len(values))
		var flat []logical.Value
		for i, v := range values {
			av, ok := v.(logical.Array)
			if !ok {
				return nil, fmt.Errorf("element %d: %w", i, typeMismatch("Array", v))
			}
			lengths[i] = int64(len(av.Values))
			flat = append(flat, av.Values...)
		}
		elem, err := fromLogicalValues(flat, sv.Element)
		if err != nil {
			return nil, err
		}
		return Array{Default: sv.Default, Lengths: lengths, Element: elem}, nil

	case schema.Struct:
		fields := make([]FieldColumn, len(sv.Fields))
		for fi, fs := range sv.Fields {
			proj := make([]logical.Value, len(values))
			for i, v := range values {
				st, ok := v.(logical.Struct)
				if !ok {
					return nil, fmt.Errorf("element %d: %w", i, typeMismatch("Struct", v))
				}
				found := false
				for _, f := range st.Fields {
					if f.Name == fs.Name {
						proj[i] = f.Value
						found = true
						break
					}
				}
				if !found {
					return nil, errorf("missing field %q", fs.Name)
				}
			}
			col, err := fromLogicalValues(proj, fs.Schema)
			if err != nil {
				return nil, err
			}
			fields[fi] = FieldColumn{Name: fs.Name, Column: col}
		}
		return Struct{Default: sv.Default, Fields: fields}, nil

	case schema.Enum:
		tags := make([]uint32, len(values))
		buckets := make(map[uint32][]logical.Value, len(sv.Variants))
		known := make(map[uint32]bool, len(sv.Variants))
		for _, vs := range sv.Variants {
			known[vs.Tag] = true
		}
		for i, v := range values {
			ev, ok := v.(logical.Enum)
			if !ok {
				return nil, fmt.Errorf("element %d: %w", i, typeMismatch("Enum", v))
			}
			if !known[ev.Tag] {
				return nil, errorf("unknown enum tag %d", ev.Tag)
			}
			tags[i] = ev.Tag
			buckets[ev.Tag] = append(buckets[ev.Tag], ev.Value)
		}
		variants := make([]VariantColumn, len(sv.Variants))
		for vi, vs := range sv.Variants {
			col, err := fromLogicalValues(buckets[vs.Tag], vs.Schema)
			if err != nil {
				return nil, err
			}
			variants[vi] = VariantColumn{Name: vs.Name, Tag: vs.Tag, Column: col}
		}
		return Enum{Default: sv.Default, Tags: tags, Variants: variants}, nil

	case schema.Nested:
		lengths := make([]int64, len(values))
		concatenated, err := concatenateNestedTables(values, sv.Table, lengths)
		if err != nil {
			return nil, err
		}
		table, err := FromLogicalTable(concatenated, sv.Table)
		if err != nil {
			return nil, err
		}
		return Nested{Lengths: lengths, Table: table}, nil

	case schema.Reversed:
		unwrapped := make([]logical.Value, len(values))
		for i, v := range values {
			rv, ok := v.(logical.Reversed)
			if !ok {
				return nil, fmt.Errorf("element %d: %w", i, typeMismatch("Reversed", v))
			}
			unwrapped[i] = rv.Inner
		}
		inner, err := fromLogicalValues(unwrapped, sv.Inner)
		if err != nil {
			return nil, err
		}
		return Reversed{Inner: inner}, nil

	default:
		return nil, errorf("unknown value schema %T", s)
	}
}

func concatenateNestedTables(values []logical.Value, tableSchema schema.TableSchema, lengths []int64) (logical.Table, error) {
	switch tableSchema.(type) {
	case schema.TableBinary:
		var buf bytes.Buffer
		for i, v := range values {
			nv, ok := v.(logical.Nested)
			if !ok {
				return nil, fmt.Errorf("element %d: %w", i, typeMismatch("Nested", v))
			}
			tb, ok := nv.Table.(logical.TableBinary)
			if !ok {
				return nil, fmt.Errorf("element %d: %w", i, typeMismatch("TableBinary", nv.Table))
			}
			lengths[i] = int64(len(tb.Data))
			buf.Write(tb.Data)
		}
		return logical.TableBinary{Data: buf.Bytes()}, nil

	case schema.TableArray:
		var flat []logical.Value
		for i, v := range values {
			nv, ok := v.(logical.Nested)
			if !ok {
				return nil, fmt.Errorf("element %d: %w", i, typeMismatch("Nested", v))
			}
			ta, ok := nv.Table.(logical.TableArray)
			if !ok {
				return nil, fmt.Errorf("element %d: %w", i, typeMismatch("TableArray", nv.Table))
			}
			lengths[i] = int64(len(ta.Values))
			flat = append(flat, ta.Values...)
		}
		return logical.TableArray{Values: flat}, nil

	case schema.TableMap:
		var pairs []logical.Pair
		for i, v := range values {
			nv, ok := v.(logical.Nested)
			if !ok {
				return nil, fmt.Errorf("element %d: %w", i, typeMismatch("Nested", v))
			}
			tm, ok := nv.Table.(logical.TableMap)
			if !ok {
				return nil, fmt.Errorf("element %d: %w", i, typeMismatch("TableMap", nv.Table))
			}
			lengths[i] = int64(len(tm.Pairs))
			pairs = append(pairs, tm.Pairs...)
		}
		return logical.TableMap{Pairs: pairs}, nil

	default:
		return nil, errorf("unknown table schema %T", tableSchema)
	}
}

// ToLogicalTable re-assembles a striped Table into a row-oriented
// logical.Table, per spec.md §4.3.2. It is the exact inverse of
// FromLogicalTable on well-formed input.
func ToLogicalTable(t Table, s schema.TableSchema) (logical.Table, error) {
	switch sv := s.(type) {
	case schema.TableBinary:
		tb, ok := t.(TableBinary)
		if !ok {
			return nil, columnMismatch("TableBinary", fmt.Sprintf("%T", t))
		}
		return logical.TableBinary{Data: tb.Data}, nil
	case schema.TableArray:
		ta, ok := t.(TableArray)
		if !ok {
			return nil, columnMismatch("TableArray", fmt.Sprintf("%T", t))
		}
		values, err := toLogicalValues(ta.Column, sv.Element)
		if err != nil {
			return nil, err
		}
		return logical.TableArray{Values: values}, nil
	case schema.TableMap:
		tm, ok := t.(TableMap)
		if !ok {
			return nil, columnMismatch("TableMap", fmt.Sprintf("%T", t))
		}
		keys, err := toLogicalValues(tm.KeyColumn, sv.Key)
		if err != nil {
			return nil, err
		}
		vals, err := toLogicalValues(tm.ValueColumn, sv.Value)
		if err != nil {
			return nil, err
		}
		if len(keys) != len(vals) {
			return nil, vectorOperationFailed("map key/value column length mismatch")
		}
		pairs := make([]logical.Pair, len(keys))
		for i := range keys {
			pairs[i] = logical.Pair{Key: keys[i], Value: vals[i]}
		}
		return logical.TableMap{Pairs: pairs}, nil
	default:
		return nil, errorf("unknown table schema %T", s)
	}
}

func toLogicalValues(col Column, s schema.ValueSchema) ([]logical.Value, error) {
	switch sv := s.(type) {
	case schema.Unit:
		u, ok := col.(Unit)
		if !ok {
			return nil, columnMismatch("Unit", fmt.Sprintf("%T", col))
		}
		out := make([]logical.Value, u.Count)
		for i := range out {
			out[i] = logical.Unit{}
		}
		return out, nil

	case schema.Int:
		ic, ok := col.(Int)
		if !ok {
			return nil, columnMismatch("Int", fmt.Sprintf("%T", col))
		}
		out := make([]logical.Value, len(ic.Values))
		for i, v := range ic.Values {
			out[i] = logical.Int{Value: v}
		}
		return out, nil

	case schema.Double:
		dc, ok := col.(Double)
		if !ok {
			return nil, columnMismatch("Double", fmt.Sprintf("%T", col))
		}
		out := make([]logical.Value, len(dc.Values))
		for i, v := range dc.Values {
			out[i] = logical.Double{Value: v}
		}
		return out, nil

	case schema.Binary:
		bc, ok := col.(Binary)
		if !ok {
			return nil, columnMismatch("Binary", fmt.Sprintf("%T", col))
		}
		out := make([]logical.Value, len(bc.Lengths))
		offset := int64(0)
		for i, length := range bc.Lengths {
			if length < 0 || offset+length > int64(len(bc.Data)) {
				return nil, vectorOperationFailed("length mismatch")
			}
			out[i] = logical.Binary{Value: cloneBytes(bc.Data[offset : offset+length])}
			offset += length
		}
		if offset != int64(len(bc.Data)) {
			return nil, vectorOperationFailed("length mismatch")
		}
		return out, nil

	case schema.Array:
		ac, ok := col.(Array)
		if !ok {
			return nil, columnMismatch("Array", fmt.Sprintf("%T", col))
		}
		flat, err := toLogicalValues(ac.Element, sv.Element)
		if err != nil {
			return nil, err
		}
		out := make([]logical.Value, len(ac.Lengths))
		offset := int64(0)
		for i, length := range ac.Lengths {
			if length < 0 || offset+length > int64(len(flat)) {
				return nil, vectorOperationFailed("length mismatch")
			}
			out[i] = logical.Array{Values: cloneValues(flat[offset : offset+length])}
			offset += length
		}
		if offset != int64(len(flat)) {
			return nil, vectorOperationFailed("length mismatch")
		}
		return out, nil

	case schema.Struct:
		sc, ok := col.(Struct)
		if !ok {
			return nil, columnMismatch("Struct", fmt.Sprintf("%T", col))
		}
		if len(sc.Fields) != len(sv.Fields) {
			return nil, columnMismatch(fmt.Sprintf("%d fields", len(sv.Fields)), fmt.Sprintf("%d fields", len(sc.Fields)))
		}
		rowCount := sc.RowCount()
		fieldValues := make([][]logical.Value, len(sc.Fields))
		for fi, fc := range sc.Fields {
			vals, err := toLogicalValues(fc.Column, sv.Fields[fi].Schema)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", fc.Name, err)
			}
			if int64(len(vals)) != rowCount {
				return nil, vectorOperationFailed(fmt.Sprintf("field %q row count mismatch", fc.Name))
			}
			fieldValues[fi] = vals
		}
		out := make([]logical.Value, rowCount)
		for i := range out {
			fields := make([]logical.Field, len(sc.Fields))
			for fi, fc := range sc.Fields {
				fields[fi] = logical.Field{Name: fc.Name, Value: fieldValues[fi][i]}
			}
			out[i] = logical.Struct{Fields: fields}
		}
		return out, nil

	case schema.Enum:
		ec, ok := col.(Enum)
		if !ok {
			return nil, columnMismatch("Enum", fmt.Sprintf("%T", col))
		}
		variantValues := make(map[uint32][]logical.Value, len(ec.Variants))
		cursor := make(map[uint32]int, len(ec.Variants))
		for _, vc := range ec.Variants {
			var vs schema.ValueSchema
			found := false
			for _, svv := range sv.Variants {
				if svv.Tag == vc.Tag {
					vs = svv.Schema
					found = true
					break
				}
			}
			if !found {
				return nil, errorf("unknown enum tag %d", vc.Tag)
			}
			vals, err := toLogicalValues(vc.Column, vs)
			if err != nil {
				return nil, fmt.Errorf("variant %q: %w", vc.Name, err)
			}
			variantValues[vc.Tag] = vals
			cursor[vc.Tag] = 0
		}
		out := make([]logical.Value, len(ec.Tags))
		for i, tag := range ec.Tags {
			vals, ok := variantValues[tag]
			if !ok {
				return nil, errorf("enum tag %d not found among variant columns", tag)
			}
			c := cursor[tag]
			if c >= len(vals) {
				return nil, vectorOperationFailed(fmt.Sprintf("variant column for tag %d exhausted", tag))
			}
			out[i] = logical.Enum{Tag: tag, Value: vals[c]}
			cursor[tag] = c + 1
		}
		return out, nil

	case schema.Nested:
		nc, ok := col.(Nested)
		if !ok {
			return nil, columnMismatch("Nested", fmt.Sprintf("%T", col))
		}
		table, err := ToLogicalTable(nc.Table, sv.Table)
		if err != nil {
			return nil, err
		}
		return sliceNestedTable(table, nc.Lengths)

	case schema.Reversed:
		rc, ok := col.(Reversed)
		if !ok {
			return nil, columnMismatch("Reversed", fmt.Sprintf("%T", col))
		}
		inner, err := toLogicalValues(rc.Inner, sv.Inner)
		if err != nil {
			return nil, err
		}
		out := make([]logical.Value, len(inner))
		for i, v := range inner {
			out[i] = logical.Reversed{Inner: v}
		}
		return out, nil

	default:
		return nil, errorf("unknown value schema %T", s)
	}
}

func sliceNestedTable(table logical.Table, lengths []int64) ([]logical.Value, error) {
	switch tbl := table.(type) {
	case logical.TableBinary:
		out := make([]logical.Value, len(lengths))
		offset := int64(0)
		for i, length := range lengths {
			if length < 0 || offset+length > int64(len(tbl.Data)) {
				return nil, vectorOperationFailed("length mismatch")
			}
			out[i] = logical.Nested{Table: logical.TableBinary{Data: cloneBytes(tbl.Data[offset : offset+length])}}
			offset += length
		}
		if offset != int64(len(tbl.Data)) {
			return nil, vectorOperationFailed("length mismatch")
		}
		return out, nil

	case logical.TableArray:
		out := make([]logical.Value, len(lengths))
		offset := int64(0)
		for i, length := range lengths {
			if length < 0 || offset+length > int64(len(tbl.Values)) {
				return nil, vectorOperationFailed("length mismatch")
			}
			out[i] = logical.Nested{Table: logical.TableArray{Values: cloneValues(tbl.Values[offset : offset+length])}}
			offset += length
		}
		if offset != int64(len(tbl.Values)) {
			return nil, vectorOperationFailed("length mismatch")
		}
		return out, nil

	case logical.TableMap:
		out := make([]logical.Value, len(lengths))
		offset := int64(0)
		for i, length := range lengths {
			if length < 0 || offset+length > int64(len(tbl.Pairs)) {
				return nil, vectorOperationFailed("length mismatch")
			}
			pairs := make([]logical.Pair, length)
			copy(pairs, tbl.Pairs[offset:offset+length])
			out[i] = logical.Nested{Table: logical.TableMap{Pairs: pairs}}
			offset += length
		}
		if offset != int64(len(tbl.Pairs)) {
			return nil, vectorOperationFailed("length mismatch")
		}
		return out, nil

	default:
		return nil, errorf("unknown table %T", table)
	}
}

func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func cloneValues(v []logical.Value) []logical.Value {
	if len(v) == 0 {
		return nil
	}
	out := make([]logical.Value, len(v))
	copy(out, v)
	return out
}
