// File: dictionary.go
// Title: Map and Sequence Adapters
// Description: Lookup helpers for maps and adapters between sequences, slices
//              and maps.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package collectionx

import (
	"fmt"
	"iter"

	mdwerror "github.com/msto63/mdwx/core/error"
	"github.com/msto63/mdwx/utils/optional"
)

// ===============================
// Map Lookups
// ===============================

// GetOrDefault returns m[key], or fallback if key is not present
func GetOrDefault[K comparable, V any](m map[K]V, key K, fallback V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

// Lookup returns m[key] as an optional value
func Lookup[K comparable, V any](m map[K]V, key K) optional.Value[V] {
	if v, ok := m[key]; ok {
		return optional.Of(v)
	}
	return optional.None[V]()
}

// GetOrAdd returns m[key], storing create(key) first if the key is absent
func GetOrAdd[K comparable, V any](m map[K]V, key K, create func(K) V) (V, error) {
	if m == nil {
		var zero V
		return zero, mdwerror.ArgumentMissing("m")
	}
	if v, ok := m[key]; ok {
		return v, nil
	}
	if create == nil {
		var zero V
		return zero, mdwerror.ArgumentMissing("create")
	}

	v := create(key)
	m[key] = v
	return v, nil
}

// ===============================
// Sequence Adapters
// ===============================

// ToMap builds a map from seq using keyFn. A key produced twice fails with
// CodeDuplicateEntry.
func ToMap[T any, K comparable](seq iter.Seq[T], keyFn func(T) K) (map[K]T, error) {
	if seq == nil {
		return nil, mdwerror.ArgumentMissing("seq")
	}
	if keyFn == nil {
		return nil, mdwerror.ArgumentMissing("keyFn")
	}

	result := make(map[K]T)
	for v := range seq {
		key := keyFn(v)
		if _, exists := result[key]; exists {
			return nil, mdwerror.New(fmt.Sprintf("duplicate key %v", key)).
				WithCode(mdwerror.CodeDuplicateEntry).
				WithDetail("key", key)
		}
		result[key] = v
	}
	return result, nil
}

// ToSlice collects seq into a slice. A nil seq yields nil.
func ToSlice[T any](seq iter.Seq[T]) []T {
	if seq == nil {
		return nil
	}

	var result []T
	for v := range seq {
		result = append(result, v)
	}
	return result
}

// Count returns the number of elements produced by seq
func Count[T any](seq iter.Seq[T]) int {
	if seq == nil {
		return 0
	}

	n := 0
	for range seq {
		n++
	}
	return n
}
