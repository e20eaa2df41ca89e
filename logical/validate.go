package logical

import (
	"fmt"
	"unicode/utf8"

	"github.com/solidcoredata/zbra/schema"
)

// Error is the logical-kind error from spec.md §7: InvalidValue,
// StructureMismatch, ValidationFailure all surface through this type.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

func errorf(format string, args ...interface{}) *Error {
	return &Error{msg: fmt.Sprintf("logical: "+format, args...)}
}

func typeMismatch(expected, actual string) error {
	return errorf("type mismatch: expected %s, got %s", expected, actual)
}

// ValidateTable checks a logical Table against a schema.TableSchema
// per spec.md §4.2.
func ValidateTable(t Table, s schema.TableSchema) error {
	switch sv := s.(type) {
	case schema.TableBinary:
		tb, ok := t.(TableBinary)
		if !ok {
			return typeMismatch("Binary", fmt.Sprintf("%T", t))
		}
		if sv.Encoding == schema.BinaryEncodingUtf8 && !utf8.Valid(tb.Data) {
			return errorf("invalid utf8 in table binary data")
		}
		return nil
	case schema.TableArray:
		ta, ok := t.(TableArray)
		if !ok {
			return typeMismatch("Array", fmt.Sprintf("%T", t))
		}
		for i, v := range ta.Values {
			if err := Validate(v, sv.Element); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
		return nil
	case schema.TableMap:
		tm, ok := t.(TableMap)
		if !ok {
			return typeMismatch("Map", fmt.Sprintf("%T", t))
		}
		for i, p := range tm.Pairs {
			if err := Validate(p.Key, sv.Key); err != nil {
				return fmt.Errorf("pair %d key: %w", i, err)
			}
			if err := Validate(p.Value, sv.Value); err != nil {
				return fmt.Errorf("pair %d value: %w", i, err)
			}
		}
		return nil
	default:
		return errorf("unknown table schema %T", s)
	}
}

// Validate checks a logical Value against a schema.ValueSchema per
// spec.md §4.2.
func Validate(v Value, s schema.ValueSchema) error {
	switch sv := s.(type) {
	case schema.Unit:
		if _, ok := v.(Unit); !ok {
			return typeMismatch("Unit", fmt.Sprintf("%T", v))
		}
		return nil
	case schema.Int:
		iv, ok := v.(Int)
		if !ok {
			return typeMismatch("Int", fmt.Sprintf("%T", v))
		}
		if sv.Encoding == schema.IntEncodingDate {
			if iv.Value < 0 || iv.Value > schema.DateMaxMillis {
				return errorf("date value %d out of range [0, %d]", iv.Value, schema.DateMaxMillis)
			}
		}
		return nil
	case schema.Double:
		if _, ok := v.(Double); !ok {
			return typeMismatch("Double", fmt.Sprintf("%T", v))
		}
		return nil
	case schema.Binary:
		bv, ok := v.(Binary)
		if !ok {
			return typeMismatch("Binary", fmt.Sprintf("%T", v))
		}
		if sv.Encoding == schema.BinaryEncodingUtf8 && !utf8.Valid(bv.Value) {
			return errorf("invalid utf8 binary value")
		}
		return nil
	case schema.Array:
		av, ok := v.(Array)
		if !ok {
			return typeMismatch("Array", fmt.Sprintf("%T", v))
		}
		for i, e := range av.Values {
			if err := Validate(e, sv.Element); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
		return nil
	case schema.Struct:
		st, ok := v.(Struct)
		if !ok {
			return typeMismatch("Struct", fmt.Sprintf("%T", v))
		}
		if len(st.Fields) != len(sv.Fields) {
			return errorf("struct has %d fields, schema has %d", len(st.Fields), len(sv.Fields))
		}
		for i, f := range st.Fields {
			if f.Name != sv.Fields[i].Name {
				return errorf("missing field %q", sv.Fields[i].Name)
			}
			if err := Validate(f.Value, sv.Fields[i].Schema); err != nil {
				return fmt.Errorf("field %q: %w", f.Name, err)
			}
		}
		return nil
	case schema.Enum:
		ev, ok := v.(Enum)
		if !ok {
			return typeMismatch("Enum", fmt.Sprintf("%T", v))
		}
		for _, variant := range sv.Variants {
			if variant.Tag == ev.Tag {
				return Validate(ev.Value, variant.Schema)
			}
		}
		return errorf("enum tag %d not found in schema", ev.Tag)
	case schema.Nested:
		nv, ok := v.(Nested)
		if !ok {
			return typeMismatch("Nested", fmt.Sprintf("%T", v))
		}
		return ValidateTable(nv.Table, sv.Table)
	case schema.Reversed:
		rv, ok := v.(Reversed)
		if !ok {
			return typeMismatch("Reversed", fmt.Sprintf("%T", v))
		}
		return Validate(rv.Inner, sv.Inner)
	default:
		return errorf("unknown value schema %T", s)
	}
}
