package schema

import (
	"encoding/json"
)

// jsonSchema is the on-wire shape of both TableSchema and ValueSchema:
// a discriminant naming the kind, plus whichever of the optional
// fields that kind uses. This is the "structural image of §3" the
// binary container's header frame embeds (spec.md §6).
type jsonSchema struct {
	Kind     string          `json:"kind"`
	Default  *string         `json:"default,omitempty"`
	Encoding string          `json:"encoding,omitempty"`
	Element  *jsonSchema     `json:"element,omitempty"`
	Key      *jsonSchema     `json:"key,omitempty"`
	Value    *jsonSchema     `json:"value,omitempty"`
	Fields   []jsonField     `json:"fields,omitempty"`
	Variants []jsonVariant   `json:"variants,omitempty"`
	Table    *jsonSchema     `json:"table,omitempty"`
	Inner    *jsonSchema     `json:"inner,omitempty"`
}

type jsonField struct {
	Name   string     `json:"name"`
	Schema jsonSchema `json:"schema"`
}

type jsonVariant struct {
	Name   string     `json:"name"`
	Tag    uint32     `json:"tag"`
	Schema jsonSchema `json:"schema"`
}

func defaultToJSON(d Default) *string {
	s := d.String()
	return &s
}

func defaultFromJSON(s *string) (Default, error) {
	if s == nil {
		return DefaultAllow, nil
	}
	switch *s {
	case "allow":
		return DefaultAllow, nil
	case "deny":
		return DefaultDeny, nil
	default:
		return 0, errorf("invalid default tag %q", *s)
	}
}

func intEncodingToString(e IntEncoding) string    { return e.String() }
func binaryEncodingToString(e BinaryEncoding) string { return e.String() }

func intEncodingFromString(s string) (IntEncoding, error) {
	switch s {
	case "int":
		return IntEncodingInt, nil
	case "date":
		return IntEncodingDate, nil
	case "time_seconds":
		return IntEncodingTimeSeconds, nil
	case "time_milliseconds":
		return IntEncodingTimeMilliseconds, nil
	case "time_microseconds":
		return IntEncodingTimeMicroseconds, nil
	default:
		return 0, errorf("invalid int encoding tag %q", s)
	}
}

func binaryEncodingFromString(s string) (BinaryEncoding, error) {
	switch s {
	case "binary":
		return BinaryEncodingBinary, nil
	case "utf8":
		return BinaryEncodingUtf8, nil
	default:
		return 0, errorf("invalid binary encoding tag %q", s)
	}
}

func tableToJSON(t TableSchema) (jsonSchema, error) {
	switch v := t.(type) {
	case TableBinary:
		return jsonSchema{Kind: "binary", Default: defaultToJSON(v.Default), Encoding: binaryEncodingToString(v.Encoding)}, nil
	case TableArray:
		el, err := valueToJSON(v.Element)
		if err != nil {
			return jsonSchema{}, err
		}
		return jsonSchema{Kind: "array", Default: defaultToJSON(v.Default), Element: &el}, nil
	case TableMap:
		k, err := valueToJSON(v.Key)
		if err != nil {
			return jsonSchema{}, err
		}
		val, err := valueToJSON(v.Value)
		if err != nil {
			return jsonSchema{}, err
		}
		return jsonSchema{Kind: "map", Default: defaultToJSON(v.Default), Key: &k, Value: &val}, nil
	default:
		return jsonSchema{}, errorf("unknown table schema %T", t)
	}
}

func tableFromJSON(j jsonSchema) (TableSchema, error) {
	def, err := defaultFromJSON(j.Default)
	if err != nil {
		return nil, err
	}
	switch j.Kind {
	case "binary":
		enc, err := binaryEncodingFromString(j.Encoding)
		if err != nil {
			return nil, err
		}
		return TableBinary{Default: def, Encoding: enc}, nil
	case "array":
		if j.Element == nil {
			return nil, errorf("array table schema missing element")
		}
		el, err := valueFromJSON(*j.Element)
		if err != nil {
			return nil, err
		}
		return TableArray{Default: def, Element: el}, nil
	case "map":
		if j.Key == nil || j.Value == nil {
			return nil, errorf("map table schema missing key/value")
		}
		k, err := valueFromJSON(*j.Key)
		if err != nil {
			return nil, err
		}
		val, err := valueFromJSON(*j.Value)
		if err != nil {
			return nil, err
		}
		return TableMap{Default: def, Key: k, Value: val}, nil
	default:
		return nil, errorf("unknown table schema kind %q", j.Kind)
	}
}

func valueToJSON(v ValueSchema) (jsonSchema, error) {
	switch t := v.(type) {
	case Unit:
		return jsonSchema{Kind: "unit"}, nil
	case Int:
		return jsonSchema{Kind: "int", Default: defaultToJSON(t.Default), Encoding: intEncodingToString(t.Encoding)}, nil
	case Double:
		return jsonSchema{Kind: "double", Default: defaultToJSON(t.Default)}, nil
	case Binary:
		return jsonSchema{Kind: "binary", Default: defaultToJSON(t.Default), Encoding: binaryEncodingToString(t.Encoding)}, nil
	case Array:
		el, err := valueToJSON(t.Element)
		if err != nil {
			return jsonSchema{}, err
		}
		return jsonSchema{Kind: "array", Default: defaultToJSON(t.Default), Element: &el}, nil
	case Struct:
		fields := make([]jsonField, len(t.Fields))
		for i, f := range t.Fields {
			js, err := valueToJSON(f.Schema)
			if err != nil {
				return jsonSchema{}, err
			}
			fields[i] = jsonField{Name: f.Name, Schema: js}
		}
		return jsonSchema{Kind: "struct", Default: defaultToJSON(t.Default), Fields: fields}, nil
	case Enum:
		variants := make([]jsonVariant, len(t.Variants))
		for i, vr := range t.Variants {
			js, err := valueToJSON(vr.Schema)
			if err != nil {
				return jsonSchema{}, err
			}
			variants[i] = jsonVariant{Name: vr.Name, Tag: vr.Tag, Schema: js}
		}
		return jsonSchema{Kind: "enum", Default: defaultToJSON(t.Default), Variants: variants}, nil
	case Nested:
		tbl, err := tableToJSON(t.Table)
		if err != nil {
			return jsonSchema{}, err
		}
		return jsonSchema{Kind: "nested", Table: &tbl}, nil
	case Reversed:
		in, err := valueToJSON(t.Inner)
		if err != nil {
			return jsonSchema{}, err
		}
		return jsonSchema{Kind: "reversed", Inner: &in}, nil
	default:
		return jsonSchema{}, errorf("unknown value schema %T", v)
	}
}

func valueFromJSON(j jsonSchema) (ValueSchema, error) {
	def, err := defaultFromJSON(j.Default)
	if err != nil {
		return nil, err
	}
	switch j.Kind {
	case "unit":
		return Unit{}, nil
	case "int":
		enc, err := intEncodingFromString(j.Encoding)
		if err != nil {
			return nil, err
		}
		return Int{Default: def, Encoding: enc}, nil
	case "double":
		return Double{Default: def}, nil
	case "binary":
		enc, err := binaryEncodingFromString(j.Encoding)
		if err != nil {
			return nil, err
		}
		return Binary{Default: def, Encoding: enc}, nil
	case "array":
		if j.Element == nil {
			return nil, errorf("array value schema missing element")
		}
		el, err := valueFromJSON(*j.Element)
		if err != nil {
			return nil, err
		}
		return Array{Default: def, Element: el}, nil
	case "struct":
		fields := make([]FieldSchema, len(j.Fields))
		for i, f := range j.Fields {
			vs, err := valueFromJSON(f.Schema)
			if err != nil {
				return nil, err
			}
			fields[i] = FieldSchema{Name: f.Name, Schema: vs}
		}
		return Struct{Default: def, Fields: fields}, nil
	case "enum":
		variants := make([]VariantSchema, len(j.Variants))
		for i, v := range j.Variants {
			vs, err := valueFromJSON(v.Schema)
			if err != nil {
				return nil, err
			}
			variants[i] = VariantSchema{Name: v.Name, Tag: v.Tag, Schema: vs}
		}
		return Enum{Default: def, Variants: variants}, nil
	case "nested":
		if j.Table == nil {
			return nil, errorf("nested value schema missing table")
		}
		tbl, err := tableFromJSON(*j.Table)
		if err != nil {
			return nil, err
		}
		return Nested{Table: tbl}, nil
	case "reversed":
		if j.Inner == nil {
			return nil, errorf("reversed value schema missing inner")
		}
		in, err := valueFromJSON(*j.Inner)
		if err != nil {
			return nil, err
		}
		return Reversed{Inner: in}, nil
	default:
		return nil, errorf("unknown value schema kind %q", j.Kind)
	}
}

// MarshalTable encodes a TableSchema as JSON, tagged by discriminant
// name with fields by key, per spec.md §6.
func MarshalTable(t TableSchema) ([]byte, error) {
	j, err := tableToJSON(t)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(j)
	if err != nil {
		return nil, errorf("marshal table schema: %v", err)
	}
	return b, nil
}

// UnmarshalTable decodes a TableSchema previously written by MarshalTable.
func UnmarshalTable(b []byte) (TableSchema, error) {
	var j jsonSchema
	if err := json.Unmarshal(b, &j); err != nil {
		return nil, errorf("unmarshal table schema: %v", err)
	}
	t, err := tableFromJSON(j)
	if err != nil {
		return nil, err
	}
	return t, nil
}
