// Package binary implements the container format: header framing,
// tagged pre-order encoding of the striped tree, and the
// byte-array/integer compression hookup (spec.md §4.5).
package binary

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/solidcoredata/zbra/intcodec"
	"github.com/solidcoredata/zbra/schema"
	"github.com/solidcoredata/zbra/striped"
)

// writer accumulates output in a buffer and sticks the first error it
// hits, so call sites can chain writes without checking every one.
type writer struct {
	buf bytes.Buffer
	err error
}

func (w *writer) writeBytes(b []byte) {
	if w.err != nil {
		return
	}
	w.buf.Write(b)
}

func (w *writer) writeU8(v byte) {
	if w.err != nil {
		return
	}
	w.buf.WriteByte(v)
}

func (w *writer) writeU32(v uint32) {
	if w.err != nil {
		return
	}
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

func (w *writer) writeString(s string) {
	if w.err != nil {
		return
	}
	w.writeU32(uint32(len(s)))
	w.buf.WriteString(s)
}

// writeIntArray serializes an i64 array under the §4.4.1 pipeline as
// count:u32-LE · packed_len:u32-LE · compress_int_array(values).
func (w *writer) writeIntArray(values []int64) {
	if w.err != nil {
		return
	}
	packed := intcodec.CompressInts(values)
	w.writeU32(uint32(len(values)))
	w.writeU32(uint32(len(packed)))
	w.writeBytes(packed)
}

// writeSizedBytes frames payload as uncompressed_len:u32-LE ·
// compressed_len:u32-LE · payload (spec.md §4.5.1); the two lengths
// are always equal here since no frame-level compression is applied.
func (w *writer) writeSizedBytes(payload []byte) {
	if w.err != nil {
		return
	}
	w.writeU32(uint32(len(payload)))
	w.writeU32(uint32(len(payload)))
	w.writeBytes(payload)
}

// writeCompressedBytes frames payload compressed under alg as a
// sized-bytes frame: uncompressed_len · compressed_len · compressed
// payload.
func (w *writer) writeCompressedBytes(payload []byte, alg intcodec.CompressionAlgorithm) {
	if w.err != nil {
		return
	}
	compressed, err := intcodec.CompressBytes(payload, alg)
	if err != nil {
		w.err = errorf("compression error: %v", err)
		return
	}
	w.writeU32(uint32(len(payload)))
	w.writeU32(uint32(len(compressed)))
	w.writeBytes(compressed)
}

// reader consumes a byte slice and sticks the first error it hits.
type reader struct {
	data []byte
	pos  int
	err  error
}

func newReader(data []byte) *reader { return &reader{data: data} }

func (r *reader) readBytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.pos+n > len(r.data) {
		r.err = deserializationError("unexpected end of input: need %d bytes, have %d", n, len(r.data)-r.pos)
		return nil
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *reader) readU8() byte {
	b := r.readBytes(1)
	if r.err != nil {
		return 0
	}
	return b[0]
}

func (r *reader) readU32() uint32 {
	b := r.readBytes(4)
	if r.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *reader) readString() string {
	n := r.readU32()
	if r.err != nil {
		return ""
	}
	b := r.readBytes(int(n))
	if r.err != nil {
		return ""
	}
	return string(b)
}

func (r *reader) readIntArray() []int64 {
	if r.err != nil {
		return nil
	}
	count := r.readU32()
	packedLen := r.readU32()
	if r.err != nil {
		return nil
	}
	packed := r.readBytes(int(packedLen))
	if r.err != nil {
		return nil
	}
	values, err := intcodec.DecompressInts(packed, int(count))
	if err != nil {
		r.err = errorf("deserialization error: %v", err)
		return nil
	}
	return values
}

func (r *reader) readSizedBytes() []byte {
	if r.err != nil {
		return nil
	}
	uncompressedLen := r.readU32()
	compressedLen := r.readU32()
	if r.err != nil {
		return nil
	}
	payload := r.readBytes(int(compressedLen))
	if r.err != nil {
		return nil
	}
	if uint32(len(payload)) != compressedLen {
		r.err = deserializationError("sized-bytes frame truncated")
		return nil
	}
	_ = uncompressedLen
	return payload
}

func (r *reader) readCompressedBytes(alg intcodec.CompressionAlgorithm) []byte {
	if r.err != nil {
		return nil
	}
	uncompressedLen := r.readU32()
	compressedLen := r.readU32()
	if r.err != nil {
		return nil
	}
	payload := r.readBytes(int(compressedLen))
	if r.err != nil {
		return nil
	}
	out, err := intcodec.DecompressBytes(payload, alg)
	if err != nil {
		r.err = errorf("decompression error: %v", err)
		return nil
	}
	if uint32(len(out)) != uncompressedLen {
		r.err = deserializationError("compressed frame expanded to %d bytes, want %d", len(out), uncompressedLen)
		return nil
	}
	return out
}

// Write serializes a single-block container: magic, schema header,
// compression config header, block_count=1, and one block holding
// data (spec.md §4.5.1, §9 "block policy": the writer emits exactly
// one block).
func Write(w io.Writer, tableSchema schema.TableSchema, cfg intcodec.CompressionConfig, data striped.Table) error {
	schemaJSON, err := schema.MarshalTable(tableSchema)
	if err != nil {
		return errorf("serialization error: %v", err)
	}
	configJSON, err := intcodec.MarshalConfig(cfg)
	if err != nil {
		return errorf("serialization error: %v", err)
	}

	out := &writer{}
	out.writeBytes([]byte(Magic))
	out.writeSizedBytes(schemaJSON)
	out.writeSizedBytes(configJSON)
	out.writeU32(1)
	out.writeU32(uint32(data.RowCount()))
	encodeTable(out, cfg, data)
	if out.err != nil {
		return out.err
	}

	if _, err := w.Write(out.buf.Bytes()); err != nil {
		return ioError(err)
	}
	return nil
}

// Block pairs a decoded striped table with the row count recorded
// alongside it on the wire.
type Block struct {
	RowCount int64
	Table    striped.Table
}

// Read parses a container written by Write, looping block_count times
// per spec.md §4.5.4 even though current writers only ever emit one.
func Read(src io.Reader) (schema.TableSchema, intcodec.CompressionConfig, []Block, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, intcodec.CompressionConfig{}, nil, ioError(err)
	}

	r := newReader(data)
	magic := r.readBytes(len(Magic))
	if r.err != nil {
		return nil, intcodec.CompressionConfig{}, nil, r.err
	}
	if string(magic) != Magic {
		return nil, intcodec.CompressionConfig{}, nil, invalidMagicNumber()
	}

	schemaJSON := r.readSizedBytes()
	configJSON := r.readSizedBytes()
	if r.err != nil {
		return nil, intcodec.CompressionConfig{}, nil, r.err
	}

	tableSchema, err := schema.UnmarshalTable(schemaJSON)
	if err != nil {
		return nil, intcodec.CompressionConfig{}, nil, errorf("deserialization error: %v", err)
	}
	cfg, err := intcodec.UnmarshalConfig(configJSON)
	if err != nil {
		return nil, intcodec.CompressionConfig{}, nil, errorf("deserialization error: %v", err)
	}

	blockCount := r.readU32()
	if r.err != nil {
		return nil, intcodec.CompressionConfig{}, nil, r.err
	}

	blocks := make([]Block, 0, blockCount)
	for i := uint32(0); i < blockCount; i++ {
		rowCount := r.readU32()
		if r.err != nil {
			return nil, intcodec.CompressionConfig{}, nil, r.err
		}
		table := decodeTable(r, cfg)
		if r.err != nil {
			return nil, intcodec.CompressionConfig{}, nil, r.err
		}
		blocks = append(blocks, Block{RowCount: int64(rowCount), Table: table})
	}

	return tableSchema, cfg, blocks, nil
}
