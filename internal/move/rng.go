package move

import "math/rand/v2"

// rng is the shared source every autonomous/repair move draws randomness
// from. It defaults to a runtime-seeded generator but can be pinned with
// Seed so a whole search run — and therefore the move sequence the
// HeuristicProvider synthesizes — is reproducible given a fixed seed, as
// the search task family requires.
var rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

// Seed pins the package-level RNG to a deterministic sequence.
func Seed(seed1, seed2 uint64) {
	rng = rand.New(rand.NewPCG(seed1, seed2))
}
