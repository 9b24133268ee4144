// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cortex

import "cogentcore.org/core/math32"

// SetNeighborhoodRadius sets r if r > 0; otherwise the Cortex is left
// unchanged. Note this does not resize existing synaptic masks -- it is
// intended for use immediately after construction, before any Feed or Tick.
func (c *Cortex) SetNeighborhoodRadius(r int) {
	if r > 0 {
		c.NeighborhoodRadius = r
	}
}

// SetFireThreshold stores the firing threshold.
func (c *Cortex) SetFireThreshold(threshold int16) {
	c.FireThreshold = threshold
}

// SetRecoveryValue stores the post-fire recovery value.
func (c *Cortex) SetRecoveryValue(v int16) {
	c.RecoveryValue = v
}

// SetChargeValue stores the per-active-synapse charge increment.
func (c *Cortex) SetChargeValue(v int16) {
	c.ChargeValue = v
}

// SetDecayValue stores the per-tick decay magnitude.
func (c *Cortex) SetDecayValue(v int16) {
	c.DecayValue = v
}

// SetMaxTouch requires touch in [0, 1] and sets
// MaxSynCount = floor(touch * (d*d - 1)); out-of-range values leave
// MaxSynCount unchanged.
func (c *Cortex) SetMaxTouch(touch float32) {
	if touch < 0 || touch > 1 {
		return
	}
	c.MaxSynCount = uint8(math32.Floor(touch * float32(neighborhoodPositions(c.NeighborhoodRadius))))
}

// SetInhExcRatio stores the excitatory/inhibitory split ratio for newly
// spawned synapses.
func (c *Cortex) SetInhExcRatio(ratio uint16) {
	c.InhExcRatio = ratio
}

// SetEvolStep stores the structural-plasticity tick cadence.
func (c *Cortex) SetEvolStep(step uint16) {
	c.EvolStep = step
}

// SetPulseWindow requires window <= MaxPulseWindow; out-of-range values
// leave PulseWindow unchanged.
func (c *Cortex) SetPulseWindow(window uint8) {
	if window > MaxPulseWindow {
		return
	}
	c.PulseWindow = window
}

// SetSynGenPulsesCount stores the synaptogenesis pulse-count threshold.
func (c *Cortex) SetSynGenPulsesCount(count uint8) {
	c.SynGenPulsesCount = count
}

// SetSampleWindow stores the sampling sub-cycle length.
func (c *Cortex) SetSampleWindow(window uint16) {
	c.SampleWindow = window
}

// SetPulseMapping stores the stimulus-to-pulse-pattern mapping used by
// SampleSquareFeed.
func (c *Cortex) SetPulseMapping(mapping PulseMapping) {
	c.PulseMapping = mapping
}
