// Package checkpoint persists the best-known roster and its run
// statistics to an embedded key-value store, JSON-encoded under
// per-instance keys, so a solver run can resume or be inspected after
// the process exits.
package checkpoint

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/KristiansKaneps/nrp-algo-sub000/internal/bitstore"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/constraint"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/domain"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/search"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/timemodel"
)

// RosterSnapshot is the on-disk representation of a saved best-known
// roster: the bitstore's raw words (not the State itself, which also
// carries a borrowed axes/horizon reference that must be supplied fresh on
// load), its tensor size, and the score it evaluated to when saved.
type RosterSnapshot struct {
	Words   []uint64     `json:"words"`
	SizeX   uint64       `json:"size_x"`
	SizeY   uint64       `json:"size_y"`
	SizeZ   uint64       `json:"size_z"`
	SizeW   uint64       `json:"size_w"`
	Score   constraint.Score `json:"score"`
	SavedAt time.Time    `json:"saved_at"`
}

// statSnapshot is the JSON-serializable shadow of search.ScoreStatistics,
// whose fields are intentionally unexported in that package.
type statSnapshot struct {
	Samples []search.StatSample `json:"samples"`
}

// Store wraps a badger.DB keyed by an arbitrary instance identifier the
// caller chooses (e.g. a hash of the instance file), with two keys per
// instance: "<id>/roster" and "<id>/stats".
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) a badger database rooted at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func rosterKey(id string) []byte { return []byte(id + "/roster") }
func statsKey(id string) []byte  { return []byte(id + "/stats") }

// SaveRoster persists the given state's bits and score under id, replacing
// any previously saved roster for the same id.
func (s *Store) SaveRoster(id string, st *state.State, score constraint.Score) error {
	snap := RosterSnapshot{
		Words:   st.BitStore().Words(),
		SizeX:   st.SizeX(),
		SizeY:   st.SizeY(),
		SizeZ:   st.SizeZ(),
		SizeW:   st.SizeW(),
		Score:   score,
		SavedAt: time.Now(),
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(rosterKey(id), data)
	})
}

// LoadRoster reconstructs the roster saved under id, attaching the given
// axes/horizon/location (which are never themselves persisted — they come
// from re-parsing the same instance file). ok is false if nothing was
// saved under id.
func (s *Store) LoadRoster(id string, axes *domain.Axes, horizon timemodel.Range, loc *time.Location) (st *state.State, score constraint.Score, ok bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, getErr := txn.Get(rosterKey(id))
		if getErr == badger.ErrKeyNotFound {
			return nil
		}
		if getErr != nil {
			return getErr
		}
		return item.Value(func(val []byte) error {
			var snap RosterSnapshot
			if unmarshalErr := json.Unmarshal(val, &snap); unmarshalErr != nil {
				return unmarshalErr
			}
			size := state.Size{X: snap.SizeX, Y: snap.SizeY, Z: snap.SizeZ, W: snap.SizeW}
			bits := bitstore.NewFromWords(snap.Words, size.Volume())
			st = state.NewFromStore(size, horizon, loc, axes, bits)
			score = snap.Score
			ok = true
			return nil
		})
	})
	return st, score, ok, err
}

// AppendStat persists the full statistics series under id, overwriting any
// prior value — the series itself is already append-only in memory, so a
// whole-object overwrite on every checkpoint is equivalent to incremental
// append without needing a read-modify-write cycle.
func (s *Store) AppendStat(id string, stats *search.ScoreStatistics) error {
	data, err := json.Marshal(statSnapshot{Samples: stats.Samples()})
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(statsKey(id), data)
	})
}

// LoadStats returns the statistics series saved under id, or an empty one
// if none was saved.
func (s *Store) LoadStats(id string) (*search.ScoreStatistics, error) {
	stats := search.NewScoreStatistics()
	err := s.db.View(func(txn *badger.Txn) error {
		item, getErr := txn.Get(statsKey(id))
		if getErr == badger.ErrKeyNotFound {
			return nil
		}
		if getErr != nil {
			return getErr
		}
		return item.Value(func(val []byte) error {
			var snap statSnapshot
			if unmarshalErr := json.Unmarshal(val, &snap); unmarshalErr != nil {
				return unmarshalErr
			}
			for _, sample := range snap.Samples {
				stats.Record(time.Duration(sample.ElapsedMillis)*time.Millisecond, sample.Score)
			}
			return nil
		})
	})
	return stats, err
}
