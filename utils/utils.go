package utils

///////////////////////////////////////////////////////////////////////////////
// Hash Primitives — Key Mixing & Bucket Reduction
///////////////////////////////////////////////////////////////////////////////

// Mix64 applies a Murmur3-style avalanche to a 64-bit value.
// Bijective and deterministic; spreads adjacent keys across the full range.
//
//go:nosplit
//go:inline
func Mix64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

// BucketIndex reduces a key to a bucket index in [0, capacity).
// Capacity is an arbitrary positive count (not power-of-two), so the
// reduction is a modulo over the mixed value rather than a mask.
// ⚠️ Caller must ensure capacity > 0.
//
//go:nosplit
//go:inline
func BucketIndex(x uint64, capacity int) int {
	return int(Mix64(x) % uint64(capacity))
}
