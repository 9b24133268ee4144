// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xorshift provides a small, fast, deterministic 96-bit xorshift
// pseudo-random stream. It is not cryptographic: it exists purely to drive
// reproducible stochastic decisions inside the cortex tick kernel (neighbor
// candidacy gating and synapse-birth polarity), where two runs fed the
// identical seed and the identical stimulus schedule must produce bit
// identical results.
package xorshift

// defaultX, defaultY, defaultZ are the historical seed constants carried
// over from the reference implementation. Any nonzero triple is a valid
// seed; these are simply the default one.
const (
	defaultX uint32 = 123456789
	defaultY uint32 = 362436069
	defaultZ uint32 = 521288629
)

// Source is one xorshift96 stream. A Source is not safe for concurrent use
// by multiple goroutines -- the tick kernel hands each parallel worker its
// own Source (see cortex.Tick), rather than sharing one behind a lock, so
// that a fixed work partition always reproduces the same sequence of draws.
type Source struct {
	x, y, z uint32
}

// New returns a Source seeded with the given state triple. A zero triple is
// replaced with the default seed, since an all-zero xorshift state never
// leaves zero.
func New(x, y, z uint32) *Source {
	if x == 0 && y == 0 && z == 0 {
		x, y, z = defaultX, defaultY, defaultZ
	}
	return &Source{x: x, y: y, z: z}
}

// NewDefault returns a Source seeded with the historical default constants.
func NewDefault() *Source {
	return &Source{x: defaultX, y: defaultY, z: defaultZ}
}

// Next draws the next 32-bit word from the stream.
func (s *Source) Next() uint32 {
	s.x ^= s.x << 16
	s.x ^= s.x >> 5
	s.x ^= s.x << 1

	t := s.x
	s.x = s.y
	s.y = s.z
	s.z = t ^ s.x ^ s.y

	return s.z
}

// Clone returns an independent copy of the stream's current state, such
// that drawing from the clone does not advance the original.
func (s *Source) Clone() *Source {
	c := *s
	return &c
}

// SubStream derives an independent, deterministic stream from s's current
// state and key, without disturbing s. It is used to hand each tick-kernel
// worker batch its own reproducible stream keyed on (ticks count, batch
// index), per the concurrency contract: the same seed and the same key
// always yield the same stream -- mixing in s's own state (rather than key
// alone) is what makes that stream depend on the Cortex's configured seed
// at all, for NumWorkers > 1.
func (s *Source) SubStream(key uint64) *Source {
	k0 := uint32(key)
	k1 := uint32(key >> 32)
	mix := New(
		s.x^k0^0x9e3779b9,
		s.y^k1^0x85ebca6b,
		s.z^(k0+k1)^0xc2b2ae35,
	)
	// Burn a few words so close seeds/keys decorrelate quickly.
	mix.Next()
	mix.Next()
	mix.Next()
	return mix
}

// State returns the current internal (x, y, z) triple, chiefly for tests
// that need to assert determinism across two independently constructed
// streams.
func (s *Source) State() (x, y, z uint32) {
	return s.x, s.y, s.z
}
