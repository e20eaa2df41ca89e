package logical

import (
	"math"
	"testing"

	"github.com/solidcoredata/zbra/schema"
)

func TestValidateStructFieldOrder(t *testing.T) {
	s := schema.Struct{Fields: []schema.FieldSchema{
		{Name: "a", Schema: schema.Int{}},
		{Name: "b", Schema: schema.Int{}},
	}}
	v := Struct{Fields: []Field{
		{Name: "b", Value: Int{Value: 1}},
		{Name: "a", Value: Int{Value: 2}},
	}}
	if err := Validate(v, s); err == nil {
		t.Fatal("expected error for out-of-order struct fields")
	}
}

func TestValidateDateBounds(t *testing.T) {
	s := schema.Int{Encoding: schema.IntEncodingDate}
	if err := Validate(Int{Value: schema.DateMaxMillis}, s); err != nil {
		t.Fatalf("max date should validate: %v", err)
	}
	if err := Validate(Int{Value: schema.DateMaxMillis + 1}, s); err == nil {
		t.Fatal("expected error for date value over max")
	}
	if err := Validate(Int{Value: -1}, s); err == nil {
		t.Fatal("expected error for negative date value")
	}
}

func TestValidateUtf8(t *testing.T) {
	s := schema.Binary{Encoding: schema.BinaryEncodingUtf8}
	if err := Validate(Binary{Value: []byte{0xff, 0xfe}}, s); err == nil {
		t.Fatal("expected error for invalid utf8")
	}
}

func TestMergeArrayConcatenatesCommutatively(t *testing.T) {
	a := Array{Values: []Value{Int{Value: 1}}}
	b := Array{Values: []Value{Int{Value: 2}}}
	ab, err := Merge(a, b)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := Merge(b, a)
	if err != nil {
		t.Fatal(err)
	}
	abArr := ab.(Array)
	baArr := ba.(Array)
	if len(abArr.Values) != 2 || len(baArr.Values) != 2 {
		t.Fatalf("expected concatenation of both sides")
	}
}

func TestMergeConflictingPrimitivesFails(t *testing.T) {
	_, err := Merge(Int{Value: 1}, Int{Value: 2})
	if err == nil {
		t.Fatal("expected conflict error")
	}
}

func TestEqualNaNSurvivesBitwise(t *testing.T) {
	nan := Double{Value: math.NaN()}
	if !Equal(nan, nan) {
		t.Fatal("same NaN bit pattern should compare equal")
	}
}
