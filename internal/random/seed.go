// Package random provides the stable seed helpers every deterministic
// selection in astrokit is built on.
//
// Nothing here draws entropy. Seeds are hashes of canonical input strings,
// so the same inputs select the same table entries on every platform and
// across process restarts. The hashes are index selectors, not identifiers:
// they carry no uniqueness or security guarantee.
package random

import (
	"hash/fnv"
	"unicode/utf16"
)

// FNV1a32 hashes input with 32-bit FNV-1a over its UTF-8 bytes
// (offset basis 0x811C9DC5, prime 0x01000193) and returns the sum as a
// signed 32-bit value. Callers reduce it with PositiveMod.
func FNV1a32(input string) int32 {
	hasher := fnv.New32a()
	_, _ = hasher.Write([]byte(input))
	return int32(hasher.Sum32())
}

// StableSeed hashes input with the polynomial h = (h*31 + c) & 0x7fffffff
// over its UTF-16 code units. The result is always in [0, 2^31).
func StableSeed(input string) int {
	var h uint32
	for _, unit := range utf16.Encode([]rune(input)) {
		h = (h*31 + uint32(unit)) & 0x7fffffff
	}
	return int(h)
}

// PositiveMod maps value into [0, modulus), including negative values.
func PositiveMod(value int, modulus int) int {
	if modulus <= 0 {
		panic("random: modulus must be positive")
	}
	r := value % modulus
	if r < 0 {
		r += modulus
	}
	return r
}

// Index selects a slot in [0, size) for key using FNV1a32.
func Index(key string, size int) int {
	return PositiveMod(int(FNV1a32(key)), size)
}
