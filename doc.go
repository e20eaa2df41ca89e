// Format of a zbra container on disk:
//
//	magic            16 bytes   "||_ZBRA||00001||"
//	schema_frame     sized-bytes JSON-encoded schema.TableSchema
//	config_frame     sized-bytes JSON-encoded intcodec.CompressionConfig
//	block_count      u32-LE
//	block[0..n)      row_count:u32-LE, encoded striped table
//
// A sized-bytes frame is uncompressed_len:u32-LE, compressed_len:u32-LE,
// then compressed_len bytes. The striped table inside a block is a
// tagged pre-order tree: every Table and Column node starts with a
// one-byte tag (see binary/tags.go) followed by its fields in
// declaration order. Integer arrays (lengths, tags, Int.Values,
// Double.Values reinterpreted bitwise) go through the frame-of-reference
// + zig-zag + bit-packing pipeline in intcodec; opaque byte arrays go
// through the CompressionConfig's chosen algorithm.
//
// zbra currently writes exactly one block per container; readers loop
// block_count times so a future multi-block writer needs no format
// change.
package zbra
