// Package conv provides checked narrowing conversions for the regex
// engine's compact node encoding.
//
// The compiler stores quantifier bounds and class-buffer offsets in uint16
// fields. Its capacity ceilings keep every value in range, so an overflow
// here is a programming error and panics rather than wrapping silently.
package conv

import "math"

// IntToUint16 safely converts an int to uint16.
// Panics if n < 0 or n > math.MaxUint16.
//
//go:inline
func IntToUint16(n int) uint16 {
	if n < 0 || n > math.MaxUint16 {
		panic("integer overflow: int value out of uint16 range")
	}
	return uint16(n)
}
