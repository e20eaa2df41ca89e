package schema

import "testing"

func TestValidateRejectsEmptyStruct(t *testing.T) {
	s := TableArray{Element: Struct{}}
	if err := Validate(s); err == nil {
		t.Fatal("expected error for empty struct")
	}
}

func TestValidateRejectsDuplicateField(t *testing.T) {
	s := TableArray{Element: Struct{Fields: []FieldSchema{
		{Name: "a", Schema: Int{}},
		{Name: "a", Schema: Int{}},
	}}}
	if err := Validate(s); err == nil {
		t.Fatal("expected error for duplicate field name")
	}
}

func TestValidateRejectsEmptyEnum(t *testing.T) {
	s := TableArray{Element: Enum{}}
	if err := Validate(s); err == nil {
		t.Fatal("expected error for empty enum")
	}
}

func TestValidateRejectsDuplicateEnumTag(t *testing.T) {
	s := TableArray{Element: Enum{Variants: []VariantSchema{
		{Name: "a", Tag: 0, Schema: Int{}},
		{Name: "b", Tag: 0, Schema: Int{}},
	}}}
	if err := Validate(s); err == nil {
		t.Fatal("expected error for duplicate enum tag")
	}
}

func TestValidateAcceptsWellFormed(t *testing.T) {
	s := TableArray{Element: Struct{Fields: []FieldSchema{
		{Name: "id", Schema: Int{}},
		{Name: "name", Schema: Binary{Encoding: BinaryEncodingUtf8}},
	}}}
	if err := Validate(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSchemaJSONRoundTrip(t *testing.T) {
	s := TableArray{Element: Struct{Fields: []FieldSchema{
		{Name: "id", Schema: Int{Encoding: IntEncodingDate}},
		{Name: "name", Schema: Binary{Encoding: BinaryEncodingUtf8}},
		{Name: "tags", Schema: Array{Element: Int{}}},
		{Name: "status", Schema: Enum{Variants: []VariantSchema{
			{Name: "ok", Tag: 0, Schema: Unit{}},
			{Name: "err", Tag: 1, Schema: Binary{}},
		}}},
		{Name: "rev", Schema: Reversed{Inner: Double{}}},
	}}}

	b, err := MarshalTable(s)
	if err != nil {
		t.Fatal(err)
	}
	got, err := UnmarshalTable(b)
	if err != nil {
		t.Fatal(err)
	}
	if !EqualTable(s, got) {
		t.Fatalf("round trip mismatch:\nwant %#v\ngot  %#v", s, got)
	}
}

func TestDateBound(t *testing.T) {
	if DateMaxMillis != 4_102_444_800_000 {
		t.Fatalf("unexpected DateMaxMillis: %d", DateMaxMillis)
	}
}
