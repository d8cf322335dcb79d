// Package vecmath implements the elementwise operations used on monthly
// delta vectors. Index 0 of every vector is the reference month.
package vecmath

import "errors"

// ErrLengthMismatch is returned by operations that require equal-length inputs.
var ErrLengthMismatch = errors.New("vector lengths differ")

// Add returns the elementwise sum of a and b. The longer vector is the base
// and the shorter one is added into its prefix. Neither input is modified.
func Add(a, b []float64) []float64 {
	base, ref := a, b
	if len(b) > len(a) {
		base, ref = b, a
	}
	out := make([]float64, len(base))
	copy(out, base)
	for i, v := range ref {
		out[i] += v
	}
	return out
}

// Subtract returns a[i]-b[i]. Callers must align lengths first.
func Subtract(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out, nil
}

// CumulativeSum returns the running total of v.
func CumulativeSum(v []float64) []float64 {
	out := make([]float64, len(v))
	var sum float64
	for i, x := range v {
		sum += x
		out[i] = sum
	}
	return out
}

// AllNonNegative reports whether every element is >= 0.
func AllNonNegative(v []float64) bool {
	return FirstNegative(v) < 0
}

// FirstNegative returns the index of the first negative element, or -1.
func FirstNegative(v []float64) int {
	for i, x := range v {
		if x < 0 {
			return i
		}
	}
	return -1
}

// Zeros returns a zero vector of length n (empty for n <= 0).
func Zeros(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	return make([]float64, n)
}

// Pad returns a copy of v zero-extended to length n. It never truncates.
func Pad(v []float64, n int) []float64 {
	if n < len(v) {
		n = len(v)
	}
	out := make([]float64, n)
	copy(out, v)
	return out
}

// Last returns the final element of v, or 0 when v is empty.
func Last(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return v[len(v)-1]
}
