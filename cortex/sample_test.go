// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cortex

import "testing"

// S4: sample_window = 10, input value 3, linear mapping. Across sub-steps
// 0..9 the neuron receives exc_value on exactly 3 sub-steps (the first
// three).
func TestSampleSquareFeedLinearMapping(t *testing.T) {
	c, _ := NewCortex(1, 1, 1)
	c.SetSampleWindow(10)
	c.SetPulseMapping(LinearMapping)

	fired := 0
	for step := uint16(0); step < 10; step++ {
		before := c.Neurons[0].Value
		c.SampleSquareFeed(0, 0, 1, 1, step, []uint16{3}, 5)
		if c.Neurons[0].Value != before {
			fired++
		}
	}
	if fired != 3 {
		t.Fatalf("linear mapping fired %d times, want 3", fired)
	}
}

func TestSampleSquareFeedLinearMappingOrder(t *testing.T) {
	c, _ := NewCortex(1, 1, 1)
	c.SetSampleWindow(10)
	c.SetPulseMapping(LinearMapping)

	for step := uint16(0); step < 10; step++ {
		before := c.Neurons[0].Value
		c.SampleSquareFeed(0, 0, 1, 1, step, []uint16{3}, 5)
		fired := c.Neurons[0].Value != before
		wantFired := step < 3
		if fired != wantFired {
			t.Fatalf("step %d: fired=%v, want %v", step, fired, wantFired)
		}
	}
}

func TestSampleSquareFeedFastProportionalSpreadsFirings(t *testing.T) {
	c, _ := NewCortex(1, 1, 1)
	c.SetSampleWindow(10)
	c.SetPulseMapping(FastProportionalMapping)

	input := uint16(4)
	var firedSteps []uint16
	for step := uint16(0); step < c.SampleWindow; step++ {
		before := c.Neurons[0].Value
		c.SampleSquareFeed(0, 0, 1, 1, step, []uint16{input}, 1)
		if c.Neurons[0].Value != before {
			firedSteps = append(firedSteps, step)
		}
	}

	// The average firing fraction over the sub-cycle must track
	// input/(SampleWindow-1) to within rounding, per spec.md §4.4.
	wantFraction := float64(input) / float64(c.SampleWindow-1)
	gotFraction := float64(len(firedSteps)) / float64(c.SampleWindow)
	if d := gotFraction - wantFraction; d < -0.15 || d > 0.15 {
		t.Fatalf("fired fraction %.3f too far from expected %.3f (fired steps: %v)", gotFraction, wantFraction, firedSteps)
	}

	// Unlike linear mapping, firings must not all clump at the start of
	// the sub-cycle.
	allAtStart := true
	for _, s := range firedSteps {
		if s >= input {
			allAtStart = false
			break
		}
	}
	if allAtStart && len(firedSteps) > 1 {
		t.Fatalf("fast-proportional firings clumped at the start like linear mapping: %v", firedSteps)
	}
}

func TestSampleSquareFeedRejectsBadRect(t *testing.T) {
	c, _ := NewCortex(4, 4, 1)
	before := make([]Neuron, len(c.Neurons))
	copy(before, c.Neurons)

	c.SampleSquareFeed(0, 0, 5, 1, 0, []uint16{1, 1, 1, 1, 1}, 1) // x1 > Width
	c.SampleSquareFeed(2, 2, 1, 1, 0, []uint16{1}, 1)              // x1 <= x0
	c.SampleSquareFeed(0, 0, 2, 2, 0, []uint16{1, 1, 1}, 1)        // wrong length

	for i := range c.Neurons {
		if c.Neurons[i] != before[i] {
			t.Fatalf("invalid SampleSquareFeed call mutated neuron %d", i)
		}
	}
}

func TestSampleSquareFeedSubregion(t *testing.T) {
	c, _ := NewCortex(4, 4, 1)
	c.SetSampleWindow(2)
	c.SetPulseMapping(LinearMapping)
	// 2x2 subregion at (1,1)-(3,3); input 1 everywhere fires at step 0 only.
	c.SampleSquareFeed(1, 1, 3, 3, 0, []uint16{1, 1, 1, 1}, 9)

	inside := map[int]bool{
		c.index(1, 1): true, c.index(2, 1): true,
		c.index(1, 2): true, c.index(2, 2): true,
	}
	for i, n := range c.Neurons {
		if inside[i] {
			if n.Value != 9 {
				t.Fatalf("neuron %d inside subregion = %d, want 9", i, n.Value)
			}
		} else if n.Value != 0 {
			t.Fatalf("neuron %d outside subregion = %d, want 0", i, n.Value)
		}
	}
}
