package binary

import (
	"bytes"
	"math"
	"testing"

	"github.com/solidcoredata/zbra/intcodec"
	"github.com/solidcoredata/zbra/schema"
	"github.com/solidcoredata/zbra/striped"
)

func roundTrip(t *testing.T, s schema.TableSchema, cfg intcodec.CompressionConfig, table striped.Table) (schema.TableSchema, intcodec.CompressionConfig, Block) {
	t.Helper()
	var buf bytes.Buffer
	if err := Write(&buf, s, cfg, table); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	gotSchema, gotCfg, blocks, err := Read(&buf)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("expected exactly one block, got %d", len(blocks))
	}
	return gotSchema, gotCfg, blocks[0]
}

func TestMagicNumberMismatch(t *testing.T) {
	_, _, _, err := Read(bytes.NewReader([]byte("not a zbra file at all..............")))
	if err == nil {
		t.Fatalf("expected invalid magic number error")
	}
}

// S1: array of ints round trips.
func TestContainerIntArray(t *testing.T) {
	s := schema.TableArray{Element: schema.Int{Encoding: schema.IntEncodingInt}}
	table := striped.TableArray{
		Column: striped.Int{Encoding: schema.IntEncodingInt, Values: []int64{1, 2, 3, 4, 5}},
	}
	_, _, block := roundTrip(t, s, intcodec.DefaultCompressionConfig(), table)

	got, ok := block.Table.(striped.TableArray)
	if !ok {
		t.Fatalf("expected TableArray, got %T", block.Table)
	}
	col, ok := got.Column.(striped.Int)
	if !ok {
		t.Fatalf("expected Int column, got %T", got.Column)
	}
	if !int64SliceEq(col.Values, []int64{1, 2, 3, 4, 5}) {
		t.Fatalf("got %v", col.Values)
	}
	if block.RowCount != 5 {
		t.Fatalf("row count: got %d, want 5", block.RowCount)
	}
}

// S2: struct of int + utf8 binary round trips, including the packed
// string buffer and per-row lengths.
func TestContainerStruct(t *testing.T) {
	s := schema.TableArray{
		Element: schema.Struct{Fields: []schema.FieldSchema{
			{Name: "age", Schema: schema.Int{}},
			{Name: "name", Schema: schema.Binary{Encoding: schema.BinaryEncodingUtf8}},
		}},
	}
	table := striped.TableArray{
		Column: striped.Struct{Fields: []striped.FieldColumn{
			{Name: "age", Column: striped.Int{Values: []int64{30, 40, 50}}},
			{Name: "name", Column: striped.Binary{
				Encoding: schema.BinaryEncodingUtf8,
				Lengths:  []int64{5, 3, 7},
				Data:     []byte("AliceBobCharlie"),
			}},
		}},
	}
	_, _, block := roundTrip(t, s, intcodec.DefaultCompressionConfig(), table)

	got := block.Table.(striped.TableArray).Column.(striped.Struct)
	age := got.Fields[0].Column.(striped.Int)
	name := got.Fields[1].Column.(striped.Binary)
	if !int64SliceEq(age.Values, []int64{30, 40, 50}) {
		t.Fatalf("age: got %v", age.Values)
	}
	if string(name.Data) != "AliceBobCharlie" {
		t.Fatalf("name data: got %q", name.Data)
	}
	if !int64SliceEq(name.Lengths, []int64{5, 3, 7}) {
		t.Fatalf("name lengths: got %v", name.Lengths)
	}
}

// S5: enum round trips with tag order preserved.
func TestContainerEnum(t *testing.T) {
	s := schema.TableArray{
		Element: schema.Enum{Variants: []schema.VariantSchema{
			{Name: "success", Tag: 0, Schema: schema.Binary{Encoding: schema.BinaryEncodingUtf8}},
			{Name: "error", Tag: 1, Schema: schema.Int{}},
		}},
	}
	table := striped.TableArray{
		Column: striped.Enum{
			Tags: []uint32{0, 1, 0},
			Variants: []striped.VariantColumn{
				{Name: "success", Tag: 0, Column: striped.Binary{
					Encoding: schema.BinaryEncodingUtf8,
					Lengths:  []int64{2, 4},
					Data:     []byte("OKDone"),
				}},
				{Name: "error", Tag: 1, Column: striped.Int{Values: []int64{404}}},
			},
		},
	}
	_, _, block := roundTrip(t, s, intcodec.DefaultCompressionConfig(), table)

	got := block.Table.(striped.TableArray).Column.(striped.Enum)
	if !uint32SliceEq(got.Tags, []uint32{0, 1, 0}) {
		t.Fatalf("tags: got %v", got.Tags)
	}
	if got.Variants[0].Name != "success" || got.Variants[1].Name != "error" {
		t.Fatalf("variant order not preserved: %+v", got.Variants)
	}
}

// S6: nested array-of-arrays round trips.
func TestContainerNestedArray(t *testing.T) {
	s := schema.TableArray{
		Element: schema.Array{Element: schema.Int{}},
	}
	table := striped.TableArray{
		Column: striped.Array{
			Lengths: []int64{2, 1, 3},
			Element: striped.Int{Values: []int64{1, 2, 3, 4, 5, 6}},
		},
	}
	_, _, block := roundTrip(t, s, intcodec.DefaultCompressionConfig(), table)

	if block.RowCount != 3 {
		t.Fatalf("row count: got %d, want 3", block.RowCount)
	}
	got := block.Table.(striped.TableArray).Column.(striped.Array)
	if !int64SliceEq(got.Lengths, []int64{2, 1, 3}) {
		t.Fatalf("lengths: got %v", got.Lengths)
	}
	inner := got.Element.(striped.Int)
	if !int64SliceEq(inner.Values, []int64{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("values: got %v", inner.Values)
	}
}

// Wide-spread double values exercise the fast path at the wire level.
func TestContainerDoubleNaNSurvives(t *testing.T) {
	s := schema.TableArray{Element: schema.Double{}}
	table := striped.TableArray{
		Column: striped.Double{Values: []float64{1.5, math.NaN(), -2.25}},
	}
	_, _, block := roundTrip(t, s, intcodec.DefaultCompressionConfig(), table)

	got := block.Table.(striped.TableArray).Column.(striped.Double)
	if len(got.Values) != 3 {
		t.Fatalf("expected 3 values, got %d", len(got.Values))
	}
	if !isNaN(got.Values[1]) {
		t.Fatalf("expected NaN at index 1, got %v", got.Values[1])
	}
	if got.Values[0] != 1.5 || got.Values[2] != -2.25 {
		t.Fatalf("got %v", got.Values)
	}
}

func TestContainerTableBinaryWithZstd(t *testing.T) {
	s := schema.TableBinary{Encoding: schema.BinaryEncodingUtf8}
	table := striped.TableBinary{Encoding: schema.BinaryEncodingUtf8, Data: []byte("hello world")}
	_, _, block := roundTrip(t, s, intcodec.DefaultCompressionConfig(), table)

	got := block.Table.(striped.TableBinary)
	if string(got.Data) != "hello world" {
		t.Fatalf("got %q", got.Data)
	}
}

func int64SliceEq(a, b []int64) bool {
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

func uint32SliceEq(a, b []uint32) bool {
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

func isNaN(f float64) bool { return f != f }
