// File: optional.go
// Title: Optional Values
// Description: Implements Value, an explicit "no value" marker that keeps absent
//              input distinct from a failure. Conversion and math helpers return
//              Value so callers can tell "nothing was provided" from "what was
//              provided is invalid".
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package optional

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Value holds either a T or nothing. The zero Value is empty.
type Value[T any] struct {
	value T
	ok    bool
}

// Of returns a Value holding v
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, ok: true}
}

// None returns an empty Value
func None[T any]() Value[T] {
	return Value[T]{}
}

// FromPtr returns an empty Value for nil and a Value holding *p otherwise
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return None[T]()
	}
	return Of(*p)
}

// HasValue reports whether a value is present
func (v Value[T]) HasValue() bool {
	return v.ok
}

// Get returns the value and whether it is present
func (v Value[T]) Get() (T, bool) {
	return v.value, v.ok
}

// MustGet returns the value and panics if it is absent
func (v Value[T]) MustGet() T {
	if !v.ok {
		panic("optional: MustGet on empty value")
	}
	return v.value
}

// OrElse returns the value, or fallback if absent
func (v Value[T]) OrElse(fallback T) T {
	if v.ok {
		return v.value
	}
	return fallback
}

// Ptr returns a pointer to a copy of the value, or nil if absent
func (v Value[T]) Ptr() *T {
	if !v.ok {
		return nil
	}
	c := v.value
	return &c
}

// String renders the value, or "<no value>" if absent
func (v Value[T]) String() string {
	if !v.ok {
		return "<no value>"
	}
	return fmt.Sprint(v.value)
}

// MarshalJSON encodes an absent value as null
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}

// UnmarshalJSON decodes null as an absent value
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*v = None[T]()
		return nil
	}

	var decoded T
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*v = Of(decoded)
	return nil
}

// Map applies fn to a present value and propagates absence
func Map[T, R any](v Value[T], fn func(T) R) Value[R] {
	if !v.ok {
		return None[R]()
	}
	return Of(fn(v.value))
}

// Map2 applies fn when both values are present and propagates absence otherwise
func Map2[A, B, R any](a Value[A], b Value[B], fn func(A, B) R) Value[R] {
	if !a.ok || !b.ok {
		return None[R]()
	}
	return Of(fn(a.value, b.value))
}
