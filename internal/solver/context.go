// Package solver wires a search.Task to a single worker goroutine and
// exposes its progress to an observer goroutine (typically a CLI status
// loop) through a lock-free-checked, mutex-guarded update slot: the
// worker publishes latest-wins snapshots, the observer polls without
// ever blocking the search.
package solver

import (
	"sync"
	"sync/atomic"

	"github.com/KristiansKaneps/nrp-algo-sub000/internal/constraint"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/move"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/search"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

const (
	updateNone int32 = iota
	updatePending
)

// Update is one snapshot the worker publishes to the observer: the
// best-known roster at the time of publication, its score, the running
// statistics series, and whether the task has finished.
type Update struct {
	State *state.State
	Score constraint.Score
	Stats *search.ScoreStatistics
	Done  bool
}

// Context is the shared state between one search worker goroutine and one
// observer goroutine. The worker polls StopRequested() every step and
// publishes a new Update whenever its task finds a new best; the observer
// calls TryAcquireUpdate on its own cadence without ever blocking on the
// worker.
type Context struct {
	stopRequested atomic.Bool
	updateFlag    atomic.Int32

	mu     sync.Mutex
	update Update
}

func NewContext() *Context {
	return &Context{}
}

// RequestStop asks the worker to stop at its next step boundary. Safe to
// call from the observer at any time.
func (c *Context) RequestStop() { c.stopRequested.Store(true) }

// StopRequested is polled by the worker loop.
func (c *Context) StopRequested() bool { return c.stopRequested.Load() }

// Publish is called by the worker when its task reports a new best. It
// deep-copies the state and statistics so the published snapshot is
// independent of the worker's subsequent mutations, locks the update
// slot, stores the snapshot, and raises the pending flag.
func (c *Context) Publish(s *state.State, score constraint.Score, stats *search.ScoreStatistics, done bool) {
	snapshot := s.Clone()
	statsCopy := stats.Snapshot()
	c.mu.Lock()
	c.update = Update{State: snapshot, Score: score, Stats: statsCopy, Done: done}
	c.mu.Unlock()
	c.updateFlag.Store(updatePending)
}

// TryAcquireUpdate is called by the observer. It first checks the atomic
// flag so the common case (no update since the last tick) never touches
// the mutex; on a pending update it locks, copies the slot out, clears the
// flag, and returns true.
func (c *Context) TryAcquireUpdate() (Update, bool) {
	if c.updateFlag.Load() != updatePending {
		return Update{}, false
	}
	c.mu.Lock()
	u := c.update
	c.mu.Unlock()
	c.updateFlag.Store(updateNone)
	return u, true
}

// RunWorker drives task to completion, publishing every new-best event to
// ctx and honoring ctx.StopRequested between steps. It returns the task's
// final output state and score. hp supplies the perturbator chains each
// step draws from.
func RunWorker(ctx *Context, task search.Task, hp *move.HeuristicProvider) (*state.State, constraint.Score) {
	for task.ShouldStep() && !ctx.StopRequested() {
		task.Step(hp)
		if task.NewBestFound() {
			ctx.Publish(task.GetOutputState(), task.GetOutputScore(), task.Stats(), false)
		}
	}
	ctx.Publish(task.GetOutputState(), task.GetOutputScore(), task.Stats(), true)
	return task.GetOutputState(), task.GetOutputScore()
}
