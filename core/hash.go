// Package core - solution hashing used by memory-based engines (tabu search).
//
// The default is a byte-wise FNV-1a mix over the raw buffer. Callers with
// canonical forms (e.g., rotation-invariant tours) may substitute their own
// HashFunc; the engines treat hashes as opaque 64-bit identities.
package core

// HashFunc maps a solution buffer to a 64-bit identity.
// It must be a pure function of the buffer contents: Hash(x)==Hash(x) for an
// unmodified buffer.
type HashFunc func(buf []byte) uint64

// FNV-1a parameters (64-bit).
const (
	fnvOffset64 uint64 = 0xcbf29ce484222325
	fnvPrime64  uint64 = 0x100000001b3
)

// FNV1a hashes buf with the 64-bit FNV-1a scheme.
//
// Complexity: O(len(buf)) time, O(1) space.
func FNV1a(buf []byte) uint64 {
	var (
		h uint64
		b byte
	)
	h = fnvOffset64
	for _, b = range buf {
		h ^= uint64(b)
		h *= fnvPrime64
	}

	return h
}
