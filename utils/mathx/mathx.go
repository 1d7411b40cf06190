// File: mathx.go
// Title: Null-Propagating Math Wrappers
// Description: Wraps the trigonometric, exponential and rounding functions of the
//              math package for optional.Value operands. An absent operand yields
//              an absent result instead of a failure.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: RoundTo returns zero when the scale underflows

package mathx

import (
	"math"

	"github.com/msto63/mdwx/utils/optional"
)

// Float is an optional float64 operand
type Float = optional.Value[float64]

// ===============================
// Trigonometry
// ===============================

// Sin returns the sine of x (radians)
func Sin(x Float) Float { return optional.Map(x, math.Sin) }

// Cos returns the cosine of x (radians)
func Cos(x Float) Float { return optional.Map(x, math.Cos) }

// Tan returns the tangent of x (radians)
func Tan(x Float) Float { return optional.Map(x, math.Tan) }

// Asin returns the arcsine of x in radians
func Asin(x Float) Float { return optional.Map(x, math.Asin) }

// Acos returns the arccosine of x in radians
func Acos(x Float) Float { return optional.Map(x, math.Acos) }

// Atan returns the arctangent of x in radians
func Atan(x Float) Float { return optional.Map(x, math.Atan) }

// Atan2 returns the arctangent of y/x using the signs of both to pick the quadrant
func Atan2(y, x Float) Float { return optional.Map2(y, x, math.Atan2) }

// ===============================
// Exponential and Powers
// ===============================

// Exp returns e**x
func Exp(x Float) Float { return optional.Map(x, math.Exp) }

// Log returns the natural logarithm of x
func Log(x Float) Float { return optional.Map(x, math.Log) }

// Log10 returns the decimal logarithm of x
func Log10(x Float) Float { return optional.Map(x, math.Log10) }

// Sqrt returns the square root of x
func Sqrt(x Float) Float { return optional.Map(x, math.Sqrt) }

// Pow returns x**y; absent if either operand is absent
func Pow(x, y Float) Float { return optional.Map2(x, y, math.Pow) }

// ===============================
// Rounding
// ===============================

// Abs returns the absolute value of x
func Abs(x Float) Float { return optional.Map(x, math.Abs) }

// Floor returns the greatest integer value less than or equal to x
func Floor(x Float) Float { return optional.Map(x, math.Floor) }

// Ceiling returns the least integer value greater than or equal to x
func Ceiling(x Float) Float { return optional.Map(x, math.Ceil) }

// Truncate returns the integer part of x
func Truncate(x Float) Float { return optional.Map(x, math.Trunc) }

// Round rounds x to the given number of decimal digits, half away from zero.
// Negative digits round to tens, hundreds and so on.
func Round(x Float, digits int) Float {
	return optional.Map(x, func(v float64) float64 {
		return RoundTo(v, digits)
	})
}

// RoundTo rounds v to the given number of decimal digits, half away from zero
func RoundTo(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	scale := math.Pow(10, float64(digits))
	if scale == 0 {
		// rounding to a power of ten far beyond any float64
		return math.Copysign(0, v)
	}
	scaled := v * scale
	if math.IsInf(scaled, 0) {
		return v
	}
	return math.Round(scaled) / scale
}
