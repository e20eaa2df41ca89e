package zbra

import (
	"bytes"
	"testing"

	"github.com/solidcoredata/zbra/intcodec"
	"github.com/solidcoredata/zbra/logical"
	"github.com/solidcoredata/zbra/schema"
)

func TestToBytesFromBytesRoundTrip(t *testing.T) {
	tableSchema := schema.TableArray{
		Element: schema.Struct{Fields: []schema.FieldSchema{
			{Name: "id", Schema: schema.Int{}},
			{Name: "name", Schema: schema.Binary{Encoding: schema.BinaryEncodingUtf8}},
		}},
	}
	table := logical.TableArray{
		Values: []logical.Value{
			logical.Struct{Fields: []logical.Field{
				{Name: "id", Value: logical.Int{Value: 1}},
				{Name: "name", Value: logical.Binary{Value: []byte("Alice")}},
			}},
			logical.Struct{Fields: []logical.Field{
				{Name: "id", Value: logical.Int{Value: 2}},
				{Name: "name", Value: logical.Binary{Value: []byte("Bob")}},
			}},
		},
	}

	var buf bytes.Buffer
	if err := ToBytes(&buf, tableSchema, intcodec.DefaultCompressionConfig(), table); err != nil {
		t.Fatalf("ToBytes failed: %v", err)
	}

	gotSchema, gotTable, err := FromBytes(&buf)
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}
	if !schema.EqualTable(gotSchema, tableSchema) {
		t.Fatalf("schema mismatch after round trip")
	}
	if !logical.EqualTable(gotTable, table) {
		t.Fatalf("table mismatch after round trip: got %+v", gotTable)
	}
}

func TestToBytesRejectsInvalidSchema(t *testing.T) {
	badSchema := schema.TableArray{Element: schema.Struct{}}
	err := ToBytes(&bytes.Buffer{}, badSchema, intcodec.DefaultCompressionConfig(), logical.TableArray{})
	if err == nil {
		t.Fatalf("expected validation error for empty struct schema")
	}
	convErr, ok := err.(*ConversionError)
	if !ok || convErr.Layer != "schema" {
		t.Fatalf("expected schema-layer ConversionError, got %v", err)
	}
}

func TestToBytesRejectsTypeMismatch(t *testing.T) {
	s := schema.TableArray{Element: schema.Int{}}
	badTable := logical.TableArray{Values: []logical.Value{logical.Double{Value: 1.5}}}
	err := ToBytes(&bytes.Buffer{}, s, intcodec.DefaultCompressionConfig(), badTable)
	if err == nil {
		t.Fatalf("expected logical validation error")
	}
	convErr, ok := err.(*ConversionError)
	if !ok || convErr.Layer != "logical" {
		t.Fatalf("expected logical-layer ConversionError, got %v", err)
	}
}
