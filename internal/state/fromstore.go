package state

import (
	"time"

	"github.com/KristiansKaneps/nrp-algo-sub000/internal/bitstore"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/domain"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/timemodel"
)

// NewFromStore constructs a State that takes ownership of an
// already-populated bitstore.Store — used when restoring a checkpointed
// roster, where the bits come pre-filled rather than starting cleared.
func NewFromStore(size Size, horizon timemodel.Range, location *time.Location, axes *domain.Axes, bits *bitstore.Store) *State {
	return &State{size: size, horizon: horizon, location: location, axes: axes, bits: bits}
}
