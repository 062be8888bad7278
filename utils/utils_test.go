package utils

import (
	"math/bits"
	"testing"
)

// -----------------------------------------------------------------------------
// ░░ Mix64: Determinism & Avalanche ░░
// -----------------------------------------------------------------------------

func TestMix64Deterministic(t *testing.T) {
	for _, x := range []uint64{1, 42, 1 << 32, ^uint64(0)} {
		if Mix64(x) != Mix64(x) {
			t.Fatalf("Mix64(%d) not deterministic", x)
		}
	}
}

func TestMix64Avalanche(t *testing.T) {
	// Adjacent inputs must diverge in a substantial fraction of output bits,
	// otherwise sequential keys would pile into neighboring buckets.
	for x := uint64(0); x < 1000; x++ {
		diff := bits.OnesCount64(Mix64(x) ^ Mix64(x+1))
		if diff < 16 {
			t.Fatalf("Mix64(%d) vs Mix64(%d): only %d differing bits", x, x+1, diff)
		}
	}
}

// -----------------------------------------------------------------------------
// ░░ BucketIndex: Range & Coverage ░░
// -----------------------------------------------------------------------------

func TestBucketIndexInRange(t *testing.T) {
	// Awkward capacities on purpose: nothing here is a power of two.
	for _, capacity := range []int{1, 3, 5, 7, 100, 1023} {
		for x := uint64(0); x < 10_000; x++ {
			if i := BucketIndex(x, capacity); i < 0 || i >= capacity {
				t.Fatalf("BucketIndex(%d, %d) = %d, out of range", x, capacity, i)
			}
		}
	}
}

func TestBucketIndexCoversAllBuckets(t *testing.T) {
	const capacity = 16
	hit := make([]bool, capacity)
	for x := uint64(0); x < 10_000; x++ {
		hit[BucketIndex(x, capacity)] = true
	}
	for i, ok := range hit {
		if !ok {
			t.Fatalf("bucket %d never hit across 10k sequential keys", i)
		}
	}
}

func TestBucketIndexCapacityOne(t *testing.T) {
	for x := uint64(0); x < 100; x++ {
		if i := BucketIndex(x, 1); i != 0 {
			t.Fatalf("BucketIndex(%d, 1) = %d, want 0", x, i)
		}
	}
}
