package striped

import (
	"testing"

	"github.com/solidcoredata/zbra/logical"
	"github.com/solidcoredata/zbra/schema"
)

func TestS1IntArrayRoundTrip(t *testing.T) {
	s := schema.TableArray{Element: schema.Int{}}
	values := []logical.Value{}
	for _, n := range []int64{1, 2, 3, 4, 5} {
		values = append(values, logical.Int{Value: n})
	}
	table := logical.TableArray{Values: values}

	striped, err := FromLogicalTable(table, s)
	if err != nil {
		t.Fatal(err)
	}
	ta, ok := striped.(TableArray)
	if !ok {
		t.Fatalf("expected TableArray, got %T", striped)
	}
	ic, ok := ta.Column.(Int)
	if !ok {
		t.Fatalf("expected Int column, got %T", ta.Column)
	}
	want := []int64{1, 2, 3, 4, 5}
	if len(ic.Values) != len(want) {
		t.Fatalf("want %v, got %v", want, ic.Values)
	}
	for i := range want {
		if ic.Values[i] != want[i] {
			t.Fatalf("want %v, got %v", want, ic.Values)
		}
	}

	back, err := ToLogicalTable(striped, s)
	if err != nil {
		t.Fatal(err)
	}
	if !logical.EqualTable(table, back) {
		t.Fatalf("round trip mismatch: %#v vs %#v", table, back)
	}
}

func TestS2StructOfIntAndUtf8(t *testing.T) {
	s := schema.TableArray{Element: schema.Struct{Fields: []schema.FieldSchema{
		{Name: "id", Schema: schema.Int{}},
		{Name: "name", Schema: schema.Binary{Encoding: schema.BinaryEncodingUtf8}},
	}}}
	rows := []struct {
		id   int64
		name string
	}{
		{1, "Alice"}, {2, "Bob"}, {3, "Charlie"},
	}
	values := make([]logical.Value, len(rows))
	for i, r := range rows {
		values[i] = logical.Struct{Fields: []logical.Field{
			{Name: "id", Value: logical.Int{Value: r.id}},
			{Name: "name", Value: logical.Binary{Value: []byte(r.name)}},
		}}
	}
	table := logical.TableArray{Values: values}

	st, err := FromLogicalTable(table, s)
	if err != nil {
		t.Fatal(err)
	}
	ta := st.(TableArray)
	sc := ta.Column.(Struct)
	nameCol := sc.Fields[1].Column.(Binary)
	wantLengths := []int64{5, 3, 7}
	for i, l := range wantLengths {
		if nameCol.Lengths[i] != l {
			t.Fatalf("length[%d]: want %d got %d", i, l, nameCol.Lengths[i])
		}
	}
	if string(nameCol.Data) != "AliceBobCharlie" {
		t.Fatalf("unexpected data: %q", nameCol.Data)
	}

	back, err := ToLogicalTable(st, s)
	if err != nil {
		t.Fatal(err)
	}
	if !logical.EqualTable(table, back) {
		t.Fatalf("round trip mismatch")
	}
}

func TestS5EnumRoundTrip(t *testing.T) {
	s := schema.TableArray{Element: schema.Enum{Variants: []schema.VariantSchema{
		{Name: "success", Tag: 0, Schema: schema.Binary{Encoding: schema.BinaryEncodingUtf8}},
		{Name: "error", Tag: 1, Schema: schema.Int{}},
	}}}
	values := []logical.Value{
		logical.Enum{Tag: 0, Value: logical.Binary{Value: []byte("OK")}},
		logical.Enum{Tag: 1, Value: logical.Int{Value: 404}},
		logical.Enum{Tag: 0, Value: logical.Binary{Value: []byte("Done")}},
	}
	table := logical.TableArray{Values: values}

	st, err := FromLogicalTable(table, s)
	if err != nil {
		t.Fatal(err)
	}
	ta := st.(TableArray)
	ec := ta.Column.(Enum)
	wantTags := []uint32{0, 1, 0}
	for i, tg := range wantTags {
		if ec.Tags[i] != tg {
			t.Fatalf("tag[%d]: want %d got %d", i, tg, ec.Tags[i])
		}
	}
	successCol := ec.Variants[0].Column.(Binary)
	if len(successCol.Lengths) != 2 {
		t.Fatalf("expected 2 success values, got %d", len(successCol.Lengths))
	}
	errCol := ec.Variants[1].Column.(Int)
	if len(errCol.Values) != 1 || errCol.Values[0] != 404 {
		t.Fatalf("unexpected error column: %v", errCol.Values)
	}

	back, err := ToLogicalTable(st, s)
	if err != nil {
		t.Fatal(err)
	}
	if !logical.EqualTable(table, back) {
		t.Fatalf("round trip mismatch: order not preserved")
	}
}

func TestS6NestedArrayOfArrays(t *testing.T) {
	s := schema.TableArray{Element: schema.Array{Element: schema.Int{}}}
	mk := func(vs ...int64) logical.Value {
		elems := make([]logical.Value, len(vs))
		for i, v := range vs {
			elems[i] = logical.Int{Value: v}
		}
		return logical.Array{Values: elems}
	}
	table := logical.TableArray{Values: []logical.Value{
		mk(1, 2), mk(3), mk(4, 5, 6),
	}}

	st, err := FromLogicalTable(table, s)
	if err != nil {
		t.Fatal(err)
	}
	ta := st.(TableArray)
	ac := ta.Column.(Array)
	wantLengths := []int64{2, 1, 3}
	for i, l := range wantLengths {
		if ac.Lengths[i] != l {
			t.Fatalf("length[%d]: want %d got %d", i, l, ac.Lengths[i])
		}
	}
	inner := ac.Element.(Int)
	wantValues := []int64{1, 2, 3, 4, 5, 6}
	for i, v := range wantValues {
		if inner.Values[i] != v {
			t.Fatalf("value[%d]: want %d got %d", i, v, inner.Values[i])
		}
	}
	if ta.RowCount() != 3 {
		t.Fatalf("expected outer row count 3, got %d", ta.RowCount())
	}

	back, err := ToLogicalTable(st, s)
	if err != nil {
		t.Fatal(err)
	}
	if !logical.EqualTable(table, back) {
		t.Fatalf("round trip mismatch")
	}
}

func TestNestedTableRoundTrip(t *testing.T) {
	inner := schema.TableArray{Element: schema.Int{}}
	s := schema.TableArray{Element: schema.Nested{Table: inner}}
	table := logical.TableArray{Values: []logical.Value{
		logical.Nested{Table: logical.TableArray{Values: []logical.Value{logical.Int{Value: 1}, logical.Int{Value: 2}}}},
		logical.Nested{Table: logical.TableArray{Values: []logical.Value{logical.Int{Value: 3}}}},
	}}

	st, err := FromLogicalTable(table, s)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ToLogicalTable(st, s)
	if err != nil {
		t.Fatal(err)
	}
	if !logical.EqualTable(table, back) {
		t.Fatalf("round trip mismatch")
	}
}

func TestEmptyArrayRoundTrip(t *testing.T) {
	s := schema.TableArray{Element: schema.Int{}}
	table := logical.TableArray{Values: nil}
	st, err := FromLogicalTable(table, s)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ToLogicalTable(st, s)
	if err != nil {
		t.Fatal(err)
	}
	if logical.TableLength(back) != 0 {
		t.Fatalf("expected empty table, got length %d", logical.TableLength(back))
	}
}

func TestUnitColumnRoundTrip(t *testing.T) {
	s := schema.TableArray{Element: schema.Unit{}}
	table := logical.TableArray{Values: []logical.Value{logical.Unit{}, logical.Unit{}}}
	st, err := FromLogicalTable(table, s)
	if err != nil {
		t.Fatal(err)
	}
	uc := st.(TableArray).Column.(Unit)
	if uc.Count != 2 {
		t.Fatalf("expected count 2, got %d", uc.Count)
	}
	back, err := ToLogicalTable(st, s)
	if err != nil {
		t.Fatal(err)
	}
	if !logical.EqualTable(table, back) {
		t.Fatalf("round trip mismatch")
	}
}
