package collectionx

import (
	"maps"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/mdwx/core/error"
)

// scriptedSource replays fixed draws so swap sequences can be asserted exactly
type scriptedSource struct {
	ints   []int
	floats []float64
}

func (s *scriptedSource) IntN(n int) int {
	v := s.ints[0] % n
	s.ints = s.ints[1:]
	return v
}

func (s *scriptedSource) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func sizes() []int { return []int{0, 1, 2, 3, 10, 257} }

func sequence(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func assertPermutation(t *testing.T, want, got []int) {
	t.Helper()
	require.Len(t, got, len(want))
	assert.ElementsMatch(t, want, got)
}

func TestShuffle(t *testing.T) {
	t.Run("preserves elements", func(t *testing.T) {
		for _, n := range sizes() {
			items := sequence(n)
			require.NoError(t, Shuffle(items, NewRandomSource(uint64(n))))
			assertPermutation(t, sequence(n), items)
		}
	})

	t.Run("swaps with full range draws", func(t *testing.T) {
		items := []string{"a", "b", "c"}
		// [a b c] -> swap(0,2) [c b a] -> swap(1,2) [c a b] -> swap(2,0) [b a c]
		src := &scriptedSource{ints: []int{2, 2, 0}}

		require.NoError(t, Shuffle(items, src))
		assert.Equal(t, []string{"b", "a", "c"}, items)
	})

	t.Run("nil rng uses a default source", func(t *testing.T) {
		items := sequence(20)
		require.NoError(t, Shuffle(items, nil))
		assertPermutation(t, sequence(20), items)
	})

	t.Run("nil slice is missing", func(t *testing.T) {
		err := Shuffle[int](nil, nil)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeArgumentMissing), "error = %v", err)
	})

	t.Run("empty slice is fine", func(t *testing.T) {
		assert.NoError(t, Shuffle([]int{}, nil))
	})

	t.Run("deterministic for a seed", func(t *testing.T) {
		a, b := sequence(50), sequence(50)
		require.NoError(t, Shuffle(a, NewRandomSource(99)))
		require.NoError(t, Shuffle(b, NewRandomSource(99)))
		assert.Equal(t, a, b)
	})
}

func TestShuffleFair(t *testing.T) {
	for _, n := range sizes() {
		items := sequence(n)
		require.NoError(t, ShuffleFair(items, NewRandomSource(uint64(n)+1)))
		assertPermutation(t, sequence(n), items)
	}

	err := ShuffleFair[string](nil, nil)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeArgumentMissing))

	t.Run("covers all permutations of three", func(t *testing.T) {
		rng := NewRandomSource(2026)
		seen := map[string]int{}
		for i := 0; i < 6000; i++ {
			items := []byte("abc")
			require.NoError(t, ShuffleFair(items, rng))
			seen[string(items)]++
		}
		assert.Len(t, seen, 6)
		for perm, count := range seen {
			assert.InDelta(t, 1000, count, 200, "permutation %s", perm)
		}
	})
}

func TestRandomize(t *testing.T) {
	t.Run("preserves elements", func(t *testing.T) {
		for _, n := range sizes() {
			input := sequence(n)
			seq, err := Randomize(slices.Values(input), NewRandomSource(uint64(n)))
			require.NoError(t, err)
			assertPermutation(t, sequence(n), slices.Collect(seq))
			assert.Equal(t, sequence(n), input, "input must not be modified")
		}
	})

	t.Run("orders by drawn key", func(t *testing.T) {
		src := &scriptedSource{floats: []float64{0.9, 0.1, 0.5}}
		seq, err := Randomize(slices.Values([]string{"a", "b", "c"}), src)
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "c", "a"}, slices.Collect(seq))
	})

	t.Run("is lazy", func(t *testing.T) {
		pulled := 0
		source := func(yield func(int) bool) {
			for i := 0; i < 3; i++ {
				pulled++
				if !yield(i) {
					return
				}
			}
		}

		seq, err := Randomize(source, nil)
		require.NoError(t, err)
		assert.Zero(t, pulled, "nothing is read before iteration")

		slices.Collect(seq)
		assert.Equal(t, 3, pulled)
	})

	t.Run("early break", func(t *testing.T) {
		seq, err := Randomize(slices.Values(sequence(10)), nil)
		require.NoError(t, err)
		count := 0
		for range seq {
			count++
			if count == 2 {
				break
			}
		}
		assert.Equal(t, 2, count)
	})

	t.Run("works over map keys", func(t *testing.T) {
		m := map[string]int{"x": 1, "y": 2, "z": 3}
		seq, err := Randomize(maps.Keys(m), nil)
		require.NoError(t, err)
		got := slices.Collect(seq)
		slices.Sort(got)
		assert.Equal(t, []string{"x", "y", "z"}, got)
	})

	t.Run("nil seq is missing", func(t *testing.T) {
		_, err := Randomize[int](nil, nil)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeArgumentMissing))
	})
}

func TestRandomizeSlice(t *testing.T) {
	input := sequence(30)
	got, err := RandomizeSlice(input, NewRandomSource(5))
	require.NoError(t, err)
	assertPermutation(t, sequence(30), got)

	_, err = RandomizeSlice[int](nil, nil)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeArgumentMissing))
}

func TestRandomizeEmptyInput(t *testing.T) {
	seq, err := Randomize(slices.Values([]int{}), NewRandomSource(1))
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(seq))

	got, err := RandomizeSlice([]int{}, NewRandomSource(1))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNilPointerSource(t *testing.T) {
	var rng *rand.Rand

	err := Shuffle([]int{1, 2, 3}, rng)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeArgumentMissing))

	err = ShuffleFair([]int{1, 2, 3}, rng)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeArgumentMissing))

	_, err = Randomize(slices.Values([]int{1}), rng)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeArgumentMissing))

	_, err = RandomizeSlice([]int{1}, rng)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeArgumentMissing))
}
