package bitstore

// Words returns the store's backing word slice. Callers must treat it as
// read-only except through NewFromWords's copy — used by the checkpoint
// store to persist a snapshot without reaching into package-private state.
func (s *Store) Words() []uint64 { return s.words }

// NewFromWords reconstructs a Store of the given bit size from a
// previously-serialized word slice. The slice is copied so the returned
// Store owns independent storage.
func NewFromWords(words []uint64, size uint64) *Store {
	n := (size + wordBits - 1) / wordBits
	out := make([]uint64, n)
	copy(out, words)
	return &Store{words: out, size: size}
}
