package bitstore

import "math/bits"

// fnvOffset64/fnvPrime64 are the FNV-1a constants, reused here (rather
// than pulling in hash/fnv) because the hash is folded word-at-a-time over
// raw uint64s, not bytes.
const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// Hash returns a 64-bit digest of the store's contents: an FNV-1a fold over
// its words, each additionally bit-rotated by its word index before mixing
// so that two stores differing only in which word holds a given pattern
// still hash differently, XORed with the store's bit size so stores of
// different lengths rarely collide even when one is a zero-padded prefix
// of the other. Used by tabu-state search to fingerprint a whole
// assignment tensor cheaply.
func (s *Store) Hash() uint64 {
	h := uint64(fnvOffset64)
	for i, w := range s.words {
		mixed := bits.RotateLeft64(w, i%64)
		h ^= mixed
		h *= fnvPrime64
	}
	return h ^ s.size
}

// XORHash returns a digest of (s XOR other)'s set bits, mixed with the
// signed population-count delta between the two stores. Used by tabu-move
// search to fingerprint a move by the change it made rather than the
// resulting state, so that two different states reached by the same move
// shape collide in the tabu list.
func (s *Store) XORHash(other *Store) uint64 {
	h := uint64(fnvOffset64)
	n := len(s.words)
	if len(other.words) < n {
		n = len(other.words)
	}
	for i := 0; i < n; i++ {
		delta := s.words[i] ^ other.words[i]
		h ^= bits.RotateLeft64(delta, i%64)
		h *= fnvPrime64
	}
	popDelta := int64(other.Count()) - int64(s.Count())
	h ^= uint64(popDelta)
	h *= fnvPrime64
	return h
}
