package state

import (
	"testing"
	"time"

	"github.com/KristiansKaneps/nrp-algo-sub000/internal/bitstore"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/domain"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/timemodel"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	size := Size{X: 2, Y: 3, Z: 4, W: 2}
	horizon := timemodel.Range{Start: time.Now(), End: time.Now().AddDate(0, 0, 4)}
	axes := &domain.Axes{}
	return New(size, horizon, time.UTC, axes)
}

func TestGetSetClear(t *testing.T) {
	s := newTestState(t)
	s.Set(1, 2, 3, 1)
	if !s.Get(1, 2, 3, 1) {
		t.Fatalf("expected bit set")
	}
	s.Clear(1, 2, 3, 1)
	if s.Get(1, 2, 3, 1) {
		t.Fatalf("expected bit clear")
	}
}

func TestGetXYZAndXZ(t *testing.T) {
	s := newTestState(t)
	if s.GetXYZ(0, 0, 0) {
		t.Fatalf("expected no assignment initially")
	}
	s.Set(0, 0, 0, 1)
	if !s.GetXYZ(0, 0, 0) {
		t.Fatalf("expected GetXYZ true after setting a skill bit")
	}
	if !s.GetXZ(0, 0) {
		t.Fatalf("expected GetXZ true, some employee covers shift 0 on day 0")
	}
	if s.GetXZ(1, 0) {
		t.Fatalf("expected GetXZ false for uncovered shift")
	}
}

func TestFillPlaneYWAndClear(t *testing.T) {
	s := newTestState(t)
	s.FillPlaneYW(0, 0, 1)
	for y := uint64(0); y < s.SizeY(); y++ {
		for w := uint64(0); w < s.SizeW(); w++ {
			if !s.Get(0, y, 0, w) {
				t.Fatalf("expected (0,%d,0,%d) set", y, w)
			}
		}
	}
	s.ClearPlaneYW(0, 0)
	for y := uint64(0); y < s.SizeY(); y++ {
		for w := uint64(0); w < s.SizeW(); w++ {
			if s.Get(0, y, 0, w) {
				t.Fatalf("expected (0,%d,0,%d) cleared", y, w)
			}
		}
	}
}

func TestCloneIndependence(t *testing.T) {
	s := newTestState(t)
	s.Set(0, 0, 0, 0)
	c := s.Clone()
	c.Set(1, 1, 1, 1)
	if s.Get(1, 1, 1, 1) {
		t.Fatalf("clone should not affect original")
	}
	if !c.Get(0, 0, 0, 0) {
		t.Fatalf("clone should carry over original bits")
	}
}

func TestPlaneProjectionsMirrorGet(t *testing.T) {
	s := newTestState(t)
	s.Random(0.4)
	size := s.Size()

	xw := bitstore.New(size.X * size.W)
	s.GetPlaneXW(xw, 1, 2)
	for x := uint64(0); x < size.X; x++ {
		for w := uint64(0); w < size.W; w++ {
			if xw.Get(x*size.W+w) != s.Get(x, 1, 2, w) {
				t.Fatalf("GetPlaneXW mismatch at (%d,%d)", x, w)
			}
		}
	}

	yw := bitstore.New(size.Y * size.W)
	s.GetPlaneYW(yw, 0, 3)
	for y := uint64(0); y < size.Y; y++ {
		for w := uint64(0); w < size.W; w++ {
			if yw.Get(y*size.W+w) != s.Get(0, y, 3, w) {
				t.Fatalf("GetPlaneYW mismatch at (%d,%d)", y, w)
			}
		}
	}

	xy := bitstore.New(size.X * size.Y)
	s.GetPlaneXY(xy, 1, 0)
	for x := uint64(0); x < size.X; x++ {
		for y := uint64(0); y < size.Y; y++ {
			if xy.Get(x*size.Y+y) != s.Get(x, y, 1, 0) {
				t.Fatalf("GetPlaneXY mismatch at (%d,%d)", x, y)
			}
		}
	}
}

func TestAssignPlaneYWRoundTrips(t *testing.T) {
	s := newTestState(t)
	s.Random(0.4)
	size := s.Size()

	plane := bitstore.New(size.Y * size.W)
	s.GetPlaneYW(plane, 1, 2)
	s.ClearPlaneYW(1, 2)
	if s.GetXZ(1, 2) {
		t.Fatalf("expected plane cleared")
	}
	s.AssignPlaneYW(plane, 1, 2)
	for y := uint64(0); y < size.Y; y++ {
		for w := uint64(0); w < size.W; w++ {
			if s.Get(1, y, 2, w) != plane.Get(y*size.W+w) {
				t.Fatalf("AssignPlaneYW did not restore (%d,%d)", y, w)
			}
		}
	}
}

func TestCollectSetW(t *testing.T) {
	s := newTestState(t)
	s.Set(0, 0, 0, 1)
	ws := s.CollectSetW(0, 0, 0)
	if len(ws) != 1 || ws[0] != 1 {
		t.Fatalf("expected [1], got %v", ws)
	}
}
