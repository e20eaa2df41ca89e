// Package zbra converts between logical (row-oriented) and striped
// (columnar) table representations and serializes the striped form
// to a compact binary container.
//
// The three layers compose in one direction for writing and the
// reverse for reading:
//
//	logical.Table --[striped.FromLogicalTable]--> striped.Table --[binary.Write]--> []byte
//	[]byte --[binary.Read]--> striped.Table --[striped.ToLogicalTable]--> logical.Table
//
// Schema validation (schema.Validate) gates the write direction only;
// logical validation (logical.ValidateTable) gates both directions.
package zbra

import (
	"bytes"
	"fmt"
	"io"

	"github.com/solidcoredata/zbra/binary"
	"github.com/solidcoredata/zbra/intcodec"
	"github.com/solidcoredata/zbra/logical"
	"github.com/solidcoredata/zbra/schema"
	"github.com/solidcoredata/zbra/striped"
)

// ConversionError is the top-level error kind: it wraps whichever of
// the four layer-specific error kinds (schema, logical, striped,
// binary) actually failed, so a caller can type-switch on the cause
// without losing which layer raised it.
type ConversionError struct {
	Layer string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("zbra: %s: %v", e.Layer, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

func wrap(layer string, err error) error {
	if err == nil {
		return nil
	}
	return &ConversionError{Layer: layer, Err: err}
}

// ToBytes validates table against its schema, strides it into striped
// columns, and serializes the result as a single-block container
// compressed under cfg.
func ToBytes(w io.Writer, tableSchema schema.TableSchema, cfg intcodec.CompressionConfig, table logical.Table) error {
	if err := schema.Validate(tableSchema); err != nil {
		return wrap("schema", err)
	}
	if err := logical.ValidateTable(table, tableSchema); err != nil {
		return wrap("logical", err)
	}
	stripedTable, err := striped.FromLogicalTable(table, tableSchema)
	if err != nil {
		return wrap("striped", err)
	}
	if err := binary.Write(w, tableSchema, cfg, stripedTable); err != nil {
		return wrap("binary", err)
	}
	return nil
}

// FromBytes parses a container and re-assembles its first block's
// striped table back into a logical.Table, validated against the
// schema the container itself carries.
func FromBytes(r io.Reader) (schema.TableSchema, logical.Table, error) {
	tableSchema, _, blocks, err := binary.Read(r)
	if err != nil {
		return nil, nil, wrap("binary", err)
	}
	if len(blocks) == 0 {
		return tableSchema, nil, nil
	}
	table, err := striped.ToLogicalTable(blocks[0].Table, tableSchema)
	if err != nil {
		return nil, nil, wrap("striped", err)
	}
	if err := logical.ValidateTable(table, tableSchema); err != nil {
		return nil, nil, wrap("logical", err)
	}
	return tableSchema, table, nil
}

// ToByteSlice is a convenience wrapper around ToBytes for callers that
// want an in-memory result instead of streaming to an io.Writer.
func ToByteSlice(tableSchema schema.TableSchema, cfg intcodec.CompressionConfig, table logical.Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := ToBytes(&buf, tableSchema, cfg, table); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FromByteSlice is the ToByteSlice counterpart for readers.
func FromByteSlice(b []byte) (schema.TableSchema, logical.Table, error) {
	return FromBytes(bytes.NewReader(b))
}
