// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fieldio

import (
	"path/filepath"
	"testing"

	"github.com/cortexsim/cortex2d/cortex"
)

func TestSnapshotRoundTrip(t *testing.T) {
	c, err := cortex.NewCortex(5, 4, 2)
	if err != nil {
		t.Fatalf("NewCortex: %v", err)
	}
	c.SetFireThreshold(100)
	c.SetEvolStep(7)
	c.SetPulseMapping(cortex.FastProportionalMapping)
	for i := range c.Neurons {
		c.RFeed(i, 1, 120)
	}
	c.TicksCount = 42

	next, _ := cortex.NewCortex(5, 4, 2)
	if _, err := c.Tick(next); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	path := filepath.Join(t.TempDir(), "snapshot.bin")
	if err := SaveSnapshot(path, next); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	if loaded.Width != next.Width || loaded.Height != next.Height {
		t.Fatalf("dimensions mismatch: got %dx%d, want %dx%d", loaded.Width, loaded.Height, next.Width, next.Height)
	}
	if loaded.TicksCount != next.TicksCount {
		t.Fatalf("TicksCount mismatch: got %d, want %d", loaded.TicksCount, next.TicksCount)
	}
	if loaded.FireThreshold != next.FireThreshold || loaded.EvolStep != next.EvolStep || loaded.PulseMapping != next.PulseMapping {
		t.Fatalf("scalar header mismatch: got %+v", loaded)
	}
	if len(loaded.Neurons) != len(next.Neurons) {
		t.Fatalf("neuron count mismatch: got %d, want %d", len(loaded.Neurons), len(next.Neurons))
	}
	for i := range next.Neurons {
		a, b := next.Neurons[i], loaded.Neurons[i]
		if a.Value != b.Value || a.PulseMask != b.PulseMask || a.Pulse != b.Pulse ||
			a.SynapticMask != b.SynapticMask || a.ExcitatoryMask != b.ExcitatoryMask || a.SynapseCount != b.SynapseCount {
			t.Fatalf("neuron %d mismatch: got %+v, want %+v", i, b, a)
		}
	}
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	if _, err := LoadSnapshot(filepath.Join(t.TempDir(), "does-not-exist.bin")); err == nil {
		t.Fatalf("expected an error for a missing snapshot file")
	}
}
