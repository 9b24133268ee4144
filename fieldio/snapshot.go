// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fieldio persists a cortex.Cortex to and from disk: a fixed-layout
// binary snapshot of the whole field, and a TOML-encoded file of its scalar
// construction parameters.
package fieldio

import (
	"encoding/binary"
	"fmt"
	"log"
	"os"

	"github.com/c2h5oh/datasize"

	"github.com/cortexsim/cortex2d/cortex"
)

// Header field widths are fixed for the lifetime of the snapshot format;
// changing one is a breaking format change (there is intentionally no
// magic number or version field, per the snapshot codec's design).
var byteOrder = binary.LittleEndian

// SaveSnapshot writes c's full state -- scalar header followed by
// width*height neuron records -- to path in the fixed layout written below
// (field widths summed in headerSize and neuronRecordSize). It overwrites any existing file. On a write failure, path may be
// left truncated or partially written; the caller is responsible for
// cleanup.
func SaveSnapshot(path string, c *cortex.Cortex) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fieldio: create %s: %w", path, err)
	}
	defer f.Close()

	header := []any{
		uint32(c.Width),
		uint32(c.Height),
		c.TicksCount,
		c.EvolStep,
		c.PulseWindow,
		uint8(c.NeighborhoodRadius),
		c.FireThreshold,
		c.RecoveryValue,
		c.ChargeValue,
		c.DecayValue,
		c.SynGenPulsesCount,
		c.MaxSynCount,
		c.InhExcRatio,
		c.SampleWindow,
		uint8(c.PulseMapping),
	}
	for _, field := range header {
		if err := binary.Write(f, byteOrder, field); err != nil {
			return fmt.Errorf("fieldio: write header: %w", err)
		}
	}

	var neuronBytes int64
	for _, n := range c.Neurons {
		record := []any{n.SynapticMask, n.ExcitatoryMask, n.Value, n.PulseMask, n.Pulse, n.SynapseCount}
		for _, field := range record {
			if err := binary.Write(f, byteOrder, field); err != nil {
				return fmt.Errorf("fieldio: write neuron: %w", err)
			}
		}
		neuronBytes += neuronRecordSize
	}

	log.Printf("fieldio: wrote %s: %v header + %v neurons", path,
		datasize.ByteSize(headerSize).HumanReadable(), datasize.ByteSize(neuronBytes).HumanReadable())

	return nil
}

// headerSize and neuronRecordSize are the fixed byte widths of the header
// and of each neuron record, derived from the field widths above.
const (
	headerSize       = 4 + 4 + 8 + 2 + 1 + 1 + 2 + 2 + 2 + 2 + 1 + 1 + 2 + 2 + 1
	neuronRecordSize = 4 + 4 + 2 + 4 + 1 + 1
)

// LoadSnapshot reads a snapshot previously written by SaveSnapshot and
// returns the reconstructed Cortex. It fails on a file-open error, a short
// read, or a neuron-record count that does not match width*height.
func LoadSnapshot(path string) (*cortex.Cortex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fieldio: open %s: %w", path, err)
	}
	defer f.Close()

	var width, height uint32
	var ticksCount uint64
	var evolStep, inhExcRatio, sampleWindow uint16
	var pulseWindow, radius, synGen, maxSyn, pulseMapping uint8
	var fireThreshold, recoveryValue, chargeValue, decayValue int16

	fields := []any{
		&width, &height, &ticksCount, &evolStep, &pulseWindow, &radius,
		&fireThreshold, &recoveryValue, &chargeValue, &decayValue,
		&synGen, &maxSyn, &inhExcRatio, &sampleWindow, &pulseMapping,
	}
	for _, field := range fields {
		if err := binary.Read(f, byteOrder, field); err != nil {
			return nil, fmt.Errorf("fieldio: read header: %w", err)
		}
	}

	c, err := cortex.NewCortex(int(width), int(height), int(radius))
	if err != nil {
		return nil, fmt.Errorf("fieldio: reconstruct header: %w", err)
	}
	c.TicksCount = ticksCount
	c.SetEvolStep(evolStep)
	c.SetPulseWindow(pulseWindow)
	c.SetFireThreshold(fireThreshold)
	c.SetRecoveryValue(recoveryValue)
	c.SetChargeValue(chargeValue)
	c.SetDecayValue(decayValue)
	c.SetSynGenPulsesCount(synGen)
	c.SetInhExcRatio(inhExcRatio)
	c.SetSampleWindow(sampleWindow)
	c.SetPulseMapping(cortex.PulseMapping(pulseMapping))
	c.MaxSynCount = maxSyn

	for i := range c.Neurons {
		var n cortex.Neuron
		if err := binary.Read(f, byteOrder, &n.SynapticMask); err != nil {
			return nil, fmt.Errorf("fieldio: read neuron %d: %w", i, err)
		}
		if err := binary.Read(f, byteOrder, &n.ExcitatoryMask); err != nil {
			return nil, fmt.Errorf("fieldio: read neuron %d: %w", i, err)
		}
		if err := binary.Read(f, byteOrder, &n.Value); err != nil {
			return nil, fmt.Errorf("fieldio: read neuron %d: %w", i, err)
		}
		if err := binary.Read(f, byteOrder, &n.PulseMask); err != nil {
			return nil, fmt.Errorf("fieldio: read neuron %d: %w", i, err)
		}
		if err := binary.Read(f, byteOrder, &n.Pulse); err != nil {
			return nil, fmt.Errorf("fieldio: read neuron %d: %w", i, err)
		}
		if err := binary.Read(f, byteOrder, &n.SynapseCount); err != nil {
			return nil, fmt.Errorf("fieldio: read neuron %d: %w", i, err)
		}
		c.Neurons[i] = n
	}
	if n, _ := f.Read(make([]byte, 1)); n != 0 {
		return nil, fmt.Errorf("fieldio: %s has data past its %d neuron records", path, len(c.Neurons))
	}

	return c, nil
}
