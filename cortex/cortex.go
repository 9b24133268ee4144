// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cortex implements a 2D spiking neural-field: a toroidal grid of
// integer-valued neurons exchanging pulses through bitmask-encoded local
// synaptic neighborhoods, with structural plasticity (synapse birth and
// death) driven by local firing statistics.
//
// A Cortex is constructed with NewCortex, configured through its setters,
// driven by the five Feed variants and SampleSquareFeed, and advanced one
// discrete step at a time with Tick. Tick is double-buffered: it reads only
// from a source Cortex and writes only into a destination Cortex, never
// both at once -- callers own the buffer-swap between ticks.
package cortex

import (
	"fmt"
	"math/bits"

	"cogentcore.org/core/math32"

	"github.com/cortexsim/cortex2d/xorshift"
)

// Default construction parameters, carried over from the reference
// implementation's documented defaults.
const (
	DefaultFireThreshold     int16   = 63
	DefaultRecoveryValue     int16   = -20
	DefaultChargeValue       int16   = 8
	DefaultDecayValue        int16   = 1
	DefaultPulseWindow       uint8   = 16
	DefaultSynGenPulsesCount uint8   = 8
	DefaultMaxTouch          float32 = 0.5
	DefaultEvolStep          uint16  = 0
	DefaultInhExcRatio       uint16  = 1
	DefaultSampleWindow      uint16  = 10
	DefaultStartingValue     int16   = 0
)

// MaxPulseWindow is the largest allowed PulseWindow: the pulse mask is a
// 32-bit shift register and bit PulseWindow must remain addressable for the
// eviction check in Tick.
const MaxPulseWindow uint8 = 31

// Cortex is a 2D toroidal grid of Neurons plus the global parameters that
// govern how they integrate, decay, fire, and rewire.
type Cortex struct {
	Width, Height int

	// TicksCount monotonically increases by one every Tick.
	TicksCount uint64

	// NeighborhoodRadius is the Chebyshev radius of the square neighborhood
	// around each neuron, excluding the neuron itself. Diameter = 2r+1, and
	// diameter*diameter must fit in the 32-bit synaptic masks, so this is
	// restricted to 1 or 2.
	NeighborhoodRadius int

	FireThreshold int16
	RecoveryValue int16
	ChargeValue   int16 // a.k.a. ExcValue: the per-active-synapse increment
	DecayValue    int16

	// PulseWindow is the length of the pulse shift-register window, at most
	// MaxPulseWindow.
	PulseWindow uint8

	// SynGenPulsesCount is the pulse-count threshold (over the same
	// PulseWindow denominator as Neuron.Pulse) above which a missing
	// synapse may be born, and below which an existing synapse may die.
	SynGenPulsesCount uint8

	// MaxSynCount upper-bounds SynapseCount per neuron; set indirectly via
	// SetMaxTouch.
	MaxSynCount uint8

	// EvolStep controls the tick cadence of structural plasticity: it runs
	// when TicksCount mod (EvolStep+1) == 0. 0 means every tick; 0xFFFF
	// means never.
	EvolStep uint16

	// InhExcRatio governs the excitatory/inhibitory split of newly spawned
	// synapses: a new synapse is excitatory with probability
	// InhExcRatio/(InhExcRatio+1).
	InhExcRatio uint16

	// SampleWindow is the length of a stimulus sub-cycle used by
	// SampleSquareFeed.
	SampleWindow uint16

	PulseMapping PulseMapping

	Neurons []Neuron

	// NumWorkers is the number of goroutines Tick fans out to; <= 0 means
	// runtime.GOMAXPROCS(0). See SetNumWorkers.
	NumWorkers int

	rng *xorshift.Source
}

// SetNumWorkers stores the Tick fan-out width; n <= 0 restores the default
// (runtime.GOMAXPROCS(0)).
func (c *Cortex) SetNumWorkers(n int) {
	c.NumWorkers = n
}

// NewCortex allocates and initializes a w x h field with neighborhood
// radius r, seeded with the package's historical default PRNG state. All
// neurons start zeroed (value 0, no pulses) with the default synaptic
// mask: every neighborhood position connected, all excitatory. It fails if
// r is not 1 or 2, or if w or h is zero.
func NewCortex(w, h, r int) (*Cortex, error) {
	return NewSeededCortex(w, h, r, 0, 0, 0)
}

// NewSeededCortex is NewCortex with an explicit PRNG seed triple, so that
// two simulations sharing a seed and a stimulus schedule reproduce
// identical results even when run as separate processes -- spec.md §4.1
// requires the per-field stream to be seedable, not merely deterministic
// from a single hardcoded default. A zero triple falls back to the
// historical default seed, same as xorshift.New.
func NewSeededCortex(w, h, r int, seedX, seedY, seedZ uint32) (*Cortex, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("cortex: width and height must be positive, got %dx%d", w, h)
	}
	if r != 1 && r != 2 {
		return nil, fmt.Errorf("cortex: neighborhood radius must be 1 or 2, got %d", r)
	}

	c := &Cortex{
		Width:              w,
		Height:             h,
		NeighborhoodRadius: r,
		FireThreshold:      DefaultFireThreshold,
		RecoveryValue:      DefaultRecoveryValue,
		ChargeValue:        DefaultChargeValue,
		DecayValue:         DefaultDecayValue,
		PulseWindow:        DefaultPulseWindow,
		SynGenPulsesCount:  DefaultSynGenPulsesCount,
		EvolStep:           DefaultEvolStep,
		InhExcRatio:        DefaultInhExcRatio,
		SampleWindow:       DefaultSampleWindow,
		PulseMapping:       LinearMapping,
		Neurons:            make([]Neuron, w*h),
		rng:                xorshift.New(seedX, seedY, seedZ),
	}
	c.MaxSynCount = uint8(math32.Round(DefaultMaxTouch * float32(neighborhoodPositions(r))))

	mask := defaultSynapticMask(r)
	for i := range c.Neurons {
		c.Neurons[i] = Neuron{
			Value:          DefaultStartingValue,
			SynapticMask:   mask,
			ExcitatoryMask: mask, // field2d_t degenerate case: all synapses excitatory
		}
		c.Neurons[i].SynapseCount = uint8(bits.OnesCount32(mask))
	}

	return c, nil
}

// SetSeed reseeds c's PRNG stream in place. It is meant to be called right
// after construction, before any Feed or Tick -- reseeding mid-run is legal
// but makes the run's stochastic history depend on exactly when it was
// called, same as re-seeding any PRNG mid-stream.
func (c *Cortex) SetSeed(x, y, z uint32) {
	c.rng = xorshift.New(x, y, z)
}

// Copy returns a new Cortex with identical parameters and a bit-identical
// neuron buffer. The copy owns its own neuron slice and PRNG stream --
// there is no aliasing between src and the result.
func (c *Cortex) Copy() *Cortex {
	dup := *c
	dup.Neurons = make([]Neuron, len(c.Neurons))
	copy(dup.Neurons, c.Neurons)
	dup.rng = c.rng.Clone()
	return &dup
}

// diameter returns 2*NeighborhoodRadius + 1.
func (c *Cortex) diameter() int {
	return 2*c.NeighborhoodRadius + 1
}

func neighborhoodPositions(r int) int {
	d := 2*r + 1
	return d*d - 1
}

// defaultSynapticMask returns a mask with every neighborhood position bit
// set except the center, sized relative to r rather than a hardcoded
// constant (spec.md §9).
func defaultSynapticMask(r int) uint32 {
	d := 2*r + 1
	var mask uint32
	for j := 0; j < d; j++ {
		for i := 0; i < d; i++ {
			if i == r && j == r {
				continue
			}
			mask |= 1 << uint(j*d+i)
		}
	}
	return mask
}

// index returns the row-major neuron index for (x, y); callers must ensure
// 0 <= x < Width and 0 <= y < Height.
func (c *Cortex) index(x, y int) int {
	return y*c.Width + x
}

// wrap folds v into [0, n) toroidally, without the sign bug of Go's %
// operator on negative v.
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
