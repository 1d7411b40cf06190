// Package collectionx provides random permutations, map lookups and sequence
// adapters.
//
// Shuffle and ShuffleFair permute a slice in place; Randomize returns a new,
// lazily evaluated random ordering of any iter.Seq. All three accept a
// RandomSource; passing nil uses a fresh generator for the call.
//
//	deck := []string{"a", "b", "c", "d"}
//	if err := collectionx.ShuffleFair(deck, nil); err != nil {
//	    return err
//	}
//
//	seq, _ := collectionx.Randomize(maps.Keys(index), collectionx.NewRandomSource(7))
//	for key := range seq {
//	    fmt.Println(key)
//	}
package collectionx
