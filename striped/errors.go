package striped

import "fmt"

// Error is the striped-kind error from spec.md §7: ColumnMismatch and
// VectorOperationFailed both surface through this type. It indicates
// a corrupted or malformed striped tree, or a shred/unshred operation
// that could not balance its row counts.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

func errorf(format string, args ...interface{}) *Error {
	return &Error{msg: fmt.Sprintf("striped: "+format, args...)}
}

func columnMismatch(expected, actual string) error {
	return errorf("column mismatch: expected %s, got %s", expected, actual)
}

func vectorOperationFailed(reason string) error {
	return errorf("vector operation failed: %s", reason)
}
