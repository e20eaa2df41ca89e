package schema

import "fmt"

// Error is the schema-kind error from spec.md §7: failures that mean
// the schema itself, or a value's shape against it, is invalid.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

func errorf(format string, args ...interface{}) *Error {
	return &Error{msg: fmt.Sprintf("schema: "+format, args...)}
}

// UnsupportedType reports a structurally malformed schema: an empty
// struct or enum, a duplicate field name, or a duplicate enum tag.
func UnsupportedType(reason string) error {
	return errorf("unsupported type: %s", reason)
}

// Validate checks that a TableSchema is well-formed: every Struct has
// at least one field with a unique (case-sensitive) name, every Enum
// has at least one variant with a unique tag, and these constraints
// hold recursively through every nested schema position.
func Validate(s TableSchema) error {
	switch t := s.(type) {
	case TableBinary:
		return nil
	case TableArray:
		return validateValue(t.Element)
	case TableMap:
		if err := validateValue(t.Key); err != nil {
			return err
		}
		return validateValue(t.Value)
	default:
		return errorf("unknown table schema %T", s)
	}
}

func validateValue(v ValueSchema) error {
	switch t := v.(type) {
	case Unit, Int, Double, Binary:
		return nil
	case Array:
		return validateValue(t.Element)
	case Struct:
		if len(t.Fields) == 0 {
			return UnsupportedType("struct has no fields")
		}
		seen := make(map[string]bool, len(t.Fields))
		for _, f := range t.Fields {
			if seen[f.Name] {
				return UnsupportedType(fmt.Sprintf("duplicate field name %q", f.Name))
			}
			seen[f.Name] = true
			if err := validateValue(f.Schema); err != nil {
				return err
			}
		}
		return nil
	case Enum:
		if len(t.Variants) == 0 {
			return UnsupportedType("enum has no variants")
		}
		seen := make(map[uint32]bool, len(t.Variants))
		for _, vr := range t.Variants {
			if seen[vr.Tag] {
				return UnsupportedType(fmt.Sprintf("duplicate enum tag %d", vr.Tag))
			}
			seen[vr.Tag] = true
			if err := validateValue(vr.Schema); err != nil {
				return err
			}
		}
		return nil
	case Nested:
		return Validate(t.Table)
	case Reversed:
		return validateValue(t.Inner)
	default:
		return errorf("unknown value schema %T", v)
	}
}
