// Package mathx provides math wrappers with null propagation.
//
// Every function takes and returns optional.Value[float64] (aliased as Float).
// If any operand is absent, the result is absent:
//
//	mathx.Sin(optional.Of(math.Pi / 2))      // 1
//	mathx.Sin(optional.None[float64]())      // <no value>
//	mathx.Pow(optional.Of(2.0), optional.Of(10.0)) // 1024
package mathx
