package search

import "math/rand/v2"

// rng backs every probabilistic acceptance decision in the task family
// (Simulated Annealing's Boltzmann draws). It mirrors internal/move's
// package-level rng so a whole run — move selection and acceptance alike
// — is reproducible from one seed pair.
var rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

// Seed pins the package-level RNG to a deterministic sequence.
func Seed(seed1, seed2 uint64) {
	rng = rand.New(rand.NewPCG(seed1, seed2))
}
