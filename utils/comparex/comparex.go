// File: comparex.go
// Title: Range Checks and Nullable Comparisons
// Description: Inclusive range checks for ordered values and for values ordered
//              by a comparator, plus three-way comparison, Min and Max over
//              optional values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package comparex

import (
	"cmp"

	"github.com/msto63/mdwx/utils/optional"
)

// ===============================
// Range Checks
// ===============================

// IsBetween reports whether min <= v <= max
func IsBetween[T cmp.Ordered](v, min, max T) bool {
	return cmp.Compare(v, min) >= 0 && cmp.Compare(v, max) <= 0
}

// IsBetweenFunc reports whether min <= v <= max under compare, which returns a
// negative number, zero or a positive number like cmp.Compare. Use it for
// types with a Compare method, e.g. IsBetweenFunc(t, a, b, time.Time.Compare).
func IsBetweenFunc[T any](v, min, max T, compare func(a, b T) int) bool {
	return compare(v, min) >= 0 && compare(v, max) <= 0
}

// IsBetweenOptional is IsBetween for optional operands:
//
//   - an absent v is never in range
//   - an absent min leaves the range unbounded below
//   - an absent max leaves the range unbounded above
//   - with both bounds absent every present v is in range
func IsBetweenOptional[T cmp.Ordered](v, min, max optional.Value[T]) bool {
	value, ok := v.Get()
	if !ok {
		return false
	}
	if lo, ok := min.Get(); ok && cmp.Less(value, lo) {
		return false
	}
	if hi, ok := max.Get(); ok && cmp.Less(hi, value) {
		return false
	}
	return true
}

// ===============================
// Nullable Comparison
// ===============================

// Compare orders optional values: two absent values are equal and an absent
// value sorts before every present one.
func Compare[T cmp.Ordered](a, b optional.Value[T]) int {
	av, aok := a.Get()
	bv, bok := b.Get()

	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	default:
		return cmp.Compare(av, bv)
	}
}

// Min returns the smaller present operand. Absent operands are ignored; if
// both are absent the result is absent.
func Min[T cmp.Ordered](a, b optional.Value[T]) optional.Value[T] {
	if !a.HasValue() {
		return b
	}
	if !b.HasValue() {
		return a
	}
	return optional.Of(min(a.MustGet(), b.MustGet()))
}

// Max returns the larger present operand. Absent operands are ignored; if
// both are absent the result is absent.
func Max[T cmp.Ordered](a, b optional.Value[T]) optional.Value[T] {
	if !a.HasValue() {
		return b
	}
	if !b.HasValue() {
		return a
	}
	return optional.Of(max(a.MustGet(), b.MustGet()))
}

// Clamp limits v to [lo, hi]
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
