// Package simd provides the byte-search primitive used by the prefilter
// layer.
//
// Memchr is implemented with the SWAR (SIMD Within A Register) technique:
// eight haystack bytes are examined per step using uint64 bitwise
// operations, which beats a byte-by-byte loop by a wide margin on
// medium and large inputs without any platform-specific assembly.
package simd

import (
	"encoding/binary"
	"math/bits"
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)

	// Below one word the setup costs more than it saves.
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	// Broadcast the needle into every byte of a word, then use the
	// zero-byte detection formula (Hacker's Delight): after XOR with the
	// broadcast mask, a matching byte is 0x00, and
	// (v - lo8) & ^v & hi8 sets the high bit of exactly the zero bytes.
	const (
		lo8 = 0x0101010101010101
		hi8 = 0x8080808080808080
	)
	mask := uint64(needle) * lo8

	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		v := chunk ^ mask
		if hit := (v - lo8) & ^v & hi8; hit != 0 {
			return i + bits.TrailingZeros64(hit)/8
		}
	}

	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}
