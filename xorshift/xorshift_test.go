// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xorshift

import "testing"

func TestDefaultSequence(t *testing.T) {
	s := NewDefault()
	first := s.Next()
	if first == 0 {
		t.Fatalf("expected nonzero first draw")
	}
	// Same constants, reconstructed, must reproduce the same sequence.
	s2 := NewDefault()
	if b := s2.Next(); b != first {
		t.Fatalf("first draw diverged: %d != %d", first, b)
	}
	for i := 0; i < 10; i++ {
		a := s.Next()
		b := s2.Next()
		if a != b {
			t.Fatalf("draw %d diverged: %d != %d", i, a, b)
		}
	}
}

func TestZeroSeedFallsBackToDefault(t *testing.T) {
	s := New(0, 0, 0)
	d := NewDefault()
	for i := 0; i < 5; i++ {
		if s.Next() != d.Next() {
			t.Fatalf("zero seed did not fall back to default sequence at draw %d", i)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewDefault()
	s.Next()
	s.Next()
	clone := s.Clone()

	// Advancing the clone must not affect s.
	clone.Next()
	x1, y1, z1 := s.State()
	clone.Next()
	x2, y2, z2 := s.State()
	if x1 != x2 || y1 != y2 || z1 != z2 {
		t.Fatalf("advancing clone mutated original state")
	}

	// A clone taken from s's current state must draw the same sequence
	// that s itself then draws.
	replay := s.Clone()
	for i := 0; i < 3; i++ {
		if a, b := replay.Next(), s.Next(); a != b {
			t.Fatalf("clone diverged from original at draw %d: %d != %d", i, a, b)
		}
	}
}

func TestSubStreamDeterministic(t *testing.T) {
	s := NewDefault()
	a := s.SubStream(42)
	b := s.SubStream(42)
	for i := 0; i < 8; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("same key produced diverging sub-streams at draw %d", i)
		}
	}
}

func TestSubStreamDiffersByKey(t *testing.T) {
	s := NewDefault()
	a := s.SubStream(1)
	b := s.SubStream(2)
	same := true
	for i := 0; i < 8; i++ {
		if a.Next() != b.Next() {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("different keys produced identical sub-streams")
	}
}
