// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fieldio

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/cortexsim/cortex2d/cortex"
)

// Params mirrors every Cortex scalar construction parameter (everything but
// the neuron buffer), so a simulation's starting configuration can be
// version-controlled as a text file instead of baked into a program.
type Params struct {
	Width, Height      int
	NeighborhoodRadius int

	FireThreshold int16
	RecoveryValue int16
	ChargeValue   int16
	DecayValue    int16

	PulseWindow       uint8
	SynGenPulsesCount uint8

	// MaxSynCount is stored directly (rather than as the MaxTouch fraction
	// Cortex's own setter takes) so a round trip through Params never loses
	// a bit to floating-point rounding.
	MaxSynCount uint8

	EvolStep     uint16
	InhExcRatio  uint16
	SampleWindow uint16
	PulseMapping cortex.PulseMapping
}

// ParamsFrom captures c's current scalar configuration.
func ParamsFrom(c *cortex.Cortex) Params {
	return Params{
		Width:              c.Width,
		Height:             c.Height,
		NeighborhoodRadius: c.NeighborhoodRadius,
		FireThreshold:      c.FireThreshold,
		RecoveryValue:      c.RecoveryValue,
		ChargeValue:        c.ChargeValue,
		DecayValue:         c.DecayValue,
		PulseWindow:        c.PulseWindow,
		SynGenPulsesCount:  c.SynGenPulsesCount,
		MaxSynCount:        c.MaxSynCount,
		EvolStep:           c.EvolStep,
		InhExcRatio:        c.InhExcRatio,
		SampleWindow:       c.SampleWindow,
		PulseMapping:       c.PulseMapping,
	}
}

// NewCortex allocates a Cortex of p's dimensions and radius, then applies
// every remaining scalar except MaxSynCount through the normal Cortex
// setters -- so a file-sourced Params is bound by the exact same validation
// (silent no-op on an out-of-range value) as a programmatic call would be.
// MaxSynCount has no setter of its own and is assigned as stored.
func (p Params) NewCortex() (*cortex.Cortex, error) {
	c, err := cortex.NewCortex(p.Width, p.Height, p.NeighborhoodRadius)
	if err != nil {
		return nil, err
	}
	c.SetFireThreshold(p.FireThreshold)
	c.SetRecoveryValue(p.RecoveryValue)
	c.SetChargeValue(p.ChargeValue)
	c.SetDecayValue(p.DecayValue)
	c.SetPulseWindow(p.PulseWindow)
	c.SetSynGenPulsesCount(p.SynGenPulsesCount)
	c.MaxSynCount = p.MaxSynCount
	c.SetEvolStep(p.EvolStep)
	c.SetInhExcRatio(p.InhExcRatio)
	c.SetSampleWindow(p.SampleWindow)
	c.SetPulseMapping(p.PulseMapping)
	return c, nil
}

// SaveParams writes p to path in TOML. BurntSushi/toml is used instead of
// pelletier/go-toml/v2, which produces bad output on maps -- not a concern
// for this flat struct, but kept consistent with the rest of this stack.
func SaveParams(path string, p Params) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fieldio: create %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(p); err != nil {
		return fmt.Errorf("fieldio: encode %s: %w", path, err)
	}
	return nil
}

// LoadParams reads a Params file previously written by SaveParams.
func LoadParams(path string) (Params, error) {
	var p Params
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return Params{}, fmt.Errorf("fieldio: decode %s: %w", path, err)
	}
	return p, nil
}
