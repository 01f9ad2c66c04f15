package bitstore

import "testing"

func TestSetClearGet(t *testing.T) {
	s := New(130)
	s.Set(0)
	s.Set(63)
	s.Set(64)
	s.Set(129)

	for _, idx := range []uint64{0, 63, 64, 129} {
		if !s.Get(idx) {
			t.Errorf("bit %d expected set", idx)
		}
	}
	if s.Get(1) || s.Get(65) {
		t.Errorf("unexpected bit set")
	}

	s.Clear(63)
	if s.Get(63) {
		t.Errorf("bit 63 expected clear after Clear")
	}
}

func TestAssignToggle(t *testing.T) {
	s := New(8)
	s.Assign(3, 1)
	if !s.Get(3) {
		t.Fatalf("expected bit 3 set")
	}
	s.Assign(3, 0)
	if s.Get(3) {
		t.Fatalf("expected bit 3 cleared")
	}
	s.Toggle(3)
	if !s.Get(3) {
		t.Fatalf("expected bit 3 toggled on")
	}
}

func TestSetAllClearAllTailFragment(t *testing.T) {
	s := New(70)
	s.SetAll()
	if s.Count() != 70 {
		t.Fatalf("expected 70 bits set, got %d", s.Count())
	}
	// The six in-range bits of the partial last word read back set via WordN.
	tail := s.WordN(64, 6)
	if tail != (1<<6)-1 {
		t.Fatalf("expected tail fragment fully set, got %b", tail)
	}
	s.ClearAll()
	if s.Count() != 0 {
		t.Fatalf("expected 0 bits set after ClearAll, got %d", s.Count())
	}
}

func TestWordCrossesBoundary(t *testing.T) {
	s := New(128)
	s.Set(60)
	s.Set(70)
	w := s.Word(60)
	if w&1 == 0 {
		t.Fatalf("expected low bit set at offset 60")
	}
	if w&(1<<10) == 0 {
		t.Fatalf("expected bit 10 (global bit 70) set at offset 60")
	}
}

func TestAssignWordCrossesBoundary(t *testing.T) {
	s := New(128)
	s.AssignWord(60, 0xFF, 8)
	for i := uint64(60); i < 68; i++ {
		if !s.Get(i) {
			t.Errorf("bit %d expected set after AssignWord", i)
		}
	}
	if s.Get(59) || s.Get(68) {
		t.Errorf("AssignWord wrote outside its span")
	}
}

func TestCountRange(t *testing.T) {
	s := New(200)
	for i := uint64(0); i < 200; i += 3 {
		s.Set(i)
	}
	var want uint64
	for i := uint64(10); i < 150; i++ {
		if i%3 == 0 {
			want++
		}
	}
	if got := s.CountRange(10, 140); got != want {
		t.Fatalf("CountRange: want %d, got %d", want, got)
	}
}

func TestTest(t *testing.T) {
	s := New(200)
	if s.Test(0, 200) {
		t.Fatalf("expected no bits set")
	}
	s.Set(150)
	if !s.Test(0, 200) {
		t.Fatalf("expected Test to find bit 150")
	}
	if s.Test(0, 150) {
		t.Fatalf("Test should not see bit 150 outside its span")
	}
}

func TestCopyToContiguousAndStrided(t *testing.T) {
	s := New(20)
	s.Set(2)
	s.Set(5)
	dst := New(10)
	s.CopyTo(dst, 0, 1, 0, 10)
	if !dst.Get(2) || !dst.Get(5) {
		t.Fatalf("contiguous CopyTo missed source bits")
	}

	strided := New(20)
	strided.Set(0)
	strided.Set(2)
	strided.Set(4)
	strided.Set(6)
	strided.Set(8)
	out := New(5)
	strided.CopyTo(out, 0, 2, 0, 5)
	for i := uint64(0); i < 5; i++ {
		if !out.Get(i) {
			t.Errorf("strided CopyTo: expected bit %d set", i)
		}
	}
}

func TestRandomDensityTracksProbability(t *testing.T) {
	const n = 100_000
	s := New(n)
	s.Random(0.3)
	density := float64(s.Count()) / n
	if density < 0.27 || density > 0.33 {
		t.Fatalf("expected density near 0.3, got %f", density)
	}
	s.Random(0)
	if s.Count() != 0 {
		t.Fatalf("Random(0) must clear every bit")
	}
	s.Random(1)
	if s.Count() != n {
		t.Fatalf("Random(1) must set every bit")
	}
}

func TestClone(t *testing.T) {
	s := New(64)
	s.Set(10)
	c := s.Clone()
	c.Set(20)
	if s.Get(20) {
		t.Fatalf("Clone should be independent of source")
	}
	if !c.Get(10) {
		t.Fatalf("Clone should carry over source bits")
	}
}

func TestSymmetricalMatrix(t *testing.T) {
	m := NewSymmetricalMatrix(5)
	m.Set(1, 3)
	if !m.Get(3, 1) {
		t.Fatalf("symmetrical matrix should be order-independent")
	}
	if m.Get(0, 4) {
		t.Fatalf("unrelated pair should be clear")
	}
}

func TestMatrix3D(t *testing.T) {
	m := NewMatrix3D(3, 4, 5)
	m.Set(1, 2, 3)
	if !m.Get(1, 2, 3) {
		t.Fatalf("expected (1,2,3) set")
	}
	if m.Get(1, 2, 4) {
		t.Fatalf("unrelated cell should be clear")
	}
}
