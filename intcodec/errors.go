package intcodec

import "fmt"

// Error wraps a failure in the compression/decompression pipeline
// (spec.md §7: CompressionError / DecompressionError).
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

func errorf(format string, args ...interface{}) *Error {
	return &Error{msg: fmt.Sprintf("intcodec: "+format, args...)}
}
