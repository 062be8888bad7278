// ─────────────────────────────────────────────────────────────────────────────
// snapshot.go — JSON snapshot codec for Table contents
//
// Purpose:
//   - Encodes the stored pairs to a JSON object and restores them back.
//   - Serialization only: no I/O here, callers own the bytes.
//
// Notes:
//   - Layout (capacity, bucket order) is not part of the snapshot; the key
//     set and per-key values are the contract.
// ─────────────────────────────────────────────────────────────────────────────

package chainidx

import "github.com/sugawarayuuta/sonnet"

// Defaults used when restoring into a zero-value Table.
const (
	DefaultCapacity   = 8
	DefaultLoadFactor = 0.75
)

// MarshalJSON encodes the stored pairs as a JSON object keyed by the
// decimal form of each key, e.g. {"1":"a","-7":"b"}.
func (t *Table) MarshalJSON() ([]byte, error) {
	m := make(map[int64]string, t.nkeys)
	for _, b := range t.buckets {
		for _, p := range b {
			m[p.key] = p.val
		}
	}
	return sonnet.Marshal(m)
}

// UnmarshalJSON decodes a pair object and Puts every pair into the
// receiver, growing through the ordinary insert path as the threshold is
// crossed. A zero-value receiver is first initialized with
// DefaultCapacity/DefaultLoadFactor. Malformed input leaves the receiver
// unchanged.
func (t *Table) UnmarshalJSON(data []byte) error {
	var m map[int64]string
	if err := sonnet.Unmarshal(data, &m); err != nil {
		return err
	}
	if t.buckets == nil {
		t.buckets = make([]bucket, DefaultCapacity)
		t.maxLoad = DefaultLoadFactor
	}
	for k, v := range m {
		t.Put(k, v)
	}
	return nil
}
