// File: random.go
// Title: Random Permutations
// Description: Implements the in-place Shuffle (naive full-range swap), its
//              unbiased Fisher-Yates counterpart ShuffleFair, and Randomize,
//              which produces a lazily evaluated random ordering of any sequence.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation of Shuffle and Randomize
// - 2026-10-15 v0.1.1: Added ShuffleFair and NewRandomSource
// - 2026-10-18 v0.1.2: Reject nil pointer sources, non-nil empty RandomizeSlice

package collectionx

import (
	"iter"
	"math/rand/v2"
	"reflect"
	"slices"

	mdwerror "github.com/msto63/mdwx/core/error"
)

// RandomSource supplies uniform random numbers. *rand.Rand from math/rand/v2
// satisfies it. Passing a nil interface selects a fresh generator; a nil
// pointer such as (*rand.Rand)(nil) is reported as a missing argument.
type RandomSource interface {
	// IntN returns a uniform int in [0, n)
	IntN(n int) int
	// Float64 returns a uniform float64 in [0.0, 1.0)
	Float64() float64
}

// NewRandomSource returns a deterministic source for the given seed
func NewRandomSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// checkSource rejects a non-nil interface holding a nil pointer such as a
// nil *rand.Rand. A nil interface is valid and selects a fresh generator.
func checkSource(rng RandomSource) error {
	if rng == nil {
		return nil
	}
	if v := reflect.ValueOf(rng); v.Kind() == reflect.Pointer && v.IsNil() {
		return mdwerror.ArgumentMissing("rng")
	}
	return nil
}

// sourceOrDefault returns rng, or a fresh generator seeded from the process
// generator when rng is nil
func sourceOrDefault(rng RandomSource) RandomSource {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Shuffle permutes items in place. For every position i it swaps items[i]
// with items[j] where j is drawn from the full range [0, n). This naive
// variant is slightly biased towards some permutations; use ShuffleFair for a
// uniform permutation.
func Shuffle[T any](items []T, rng RandomSource) error {
	if items == nil {
		return mdwerror.ArgumentMissing("items")
	}
	if err := checkSource(rng); err != nil {
		return err
	}

	rng = sourceOrDefault(rng)
	n := len(items)
	for i := 0; i < n; i++ {
		j := rng.IntN(n)
		items[i], items[j] = items[j], items[i]
	}
	return nil
}

// ShuffleFair permutes items in place with the Fisher-Yates algorithm, giving
// every permutation the same probability.
func ShuffleFair[T any](items []T, rng RandomSource) error {
	if items == nil {
		return mdwerror.ArgumentMissing("items")
	}
	if err := checkSource(rng); err != nil {
		return err
	}

	rng = sourceOrDefault(rng)
	for i := len(items) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
	return nil
}

type keyed[T any] struct {
	key   float64
	value T
}

// Randomize returns a lazily evaluated random ordering of seq. Nothing is read
// from seq until the result is iterated; each iteration enumerates seq again,
// gives every element an independent uniform key and yields the elements
// ordered by that key. seq itself is never modified.
func Randomize[T any](seq iter.Seq[T], rng RandomSource) (iter.Seq[T], error) {
	if seq == nil {
		return nil, mdwerror.ArgumentMissing("seq")
	}
	if err := checkSource(rng); err != nil {
		return nil, err
	}

	return func(yield func(T) bool) {
		src := sourceOrDefault(rng)

		var entries []keyed[T]
		for v := range seq {
			entries = append(entries, keyed[T]{key: src.Float64(), value: v})
		}

		slices.SortStableFunc(entries, func(a, b keyed[T]) int {
			switch {
			case a.key < b.key:
				return -1
			case a.key > b.key:
				return 1
			default:
				return 0
			}
		})

		for _, e := range entries {
			if !yield(e.value) {
				return
			}
		}
	}, nil
}

// RandomizeSlice is Randomize over the elements of items, collected into a new
// slice. An empty input gives an empty, non-nil slice.
func RandomizeSlice[T any](items []T, rng RandomSource) ([]T, error) {
	if items == nil {
		return nil, mdwerror.ArgumentMissing("items")
	}

	seq, err := Randomize(slices.Values(items), rng)
	if err != nil {
		return nil, err
	}
	return slices.AppendSeq(make([]T, 0, len(items)), seq), nil
}
