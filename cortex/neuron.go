// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cortex

// Neuron is one cell of a Cortex field. All neurons in a field share this
// same fixed-size record; there is no per-neuron variation in layout.
type Neuron struct {

	// Value is the current membrane potential.
	Value int16

	// PulseMask is a shift register: bit 0 records whether the neuron fired
	// on the most recent tick; bits 1..PulseWindow record earlier ticks.
	PulseMask uint32

	// Pulse is the population count of PulseMask within the active
	// PulseWindow -- kept consistent by Tick, see invariant 2.
	Pulse uint8

	// SynapticMask has one bit per neighborhood position; a set bit means an
	// incoming synapse is active at that position.
	SynapticMask uint32

	// ExcitatoryMask has one bit per neighborhood position, meaningful only
	// where the corresponding SynapticMask bit is set: 1 means that synapse
	// is excitatory, 0 means inhibitory. Bits where SynapticMask is clear
	// must also be clear here (invariant 3) -- a stale excitatory label must
	// never leak into a later synapse-birth decision.
	ExcitatoryMask uint32

	// SynapseCount is the population count of SynapticMask -- kept
	// consistent by Tick, see invariant 1.
	SynapseCount uint8
}
