// Package intcodec implements the integer compression pipeline from
// spec.md §4.4.1 (frame-of-reference, zig-zag, BP64 bit-packing) and
// the pluggable byte-array compression pipeline from §4.4.2.
package intcodec

import "sort"

// Midpoint computes the frame-of-reference midpoint of values: the
// median, using wrapping arithmetic for the even-length average so
// that large-magnitude halves never overflow (spec.md §4.4.1).
func Midpoint(values []int64) int64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]int64(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	a, b := sorted[n/2-1], sorted[n/2]
	return a + (b-a)/2
}

// Deltas subtracts midpoint from every value, using wrapping
// subtraction.
func Deltas(values []int64, midpoint int64) []int64 {
	out := make([]int64, len(values))
	for i, v := range values {
		out[i] = v - midpoint
	}
	return out
}

// ApplyMidpoint is the inverse of Deltas.
func ApplyMidpoint(deltas []int64, midpoint int64) []int64 {
	out := make([]int64, len(deltas))
	for i, d := range deltas {
		out[i] = d + midpoint
	}
	return out
}
