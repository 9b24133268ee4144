// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cortex

// SampleSquareFeed drives the rectangular subregion [x0,x1) x [y0,y1) over
// sub-step step of the current SampleWindow sub-cycle. inputs must be
// row-major with length (x1-x0)*(y1-y0), each entry in
// [0, SampleWindow-1] -- it is the caller's responsibility to range-map an
// external sample (e.g. 8-bit grayscale) into that interval. The caller is
// expected to advance step from 0 to SampleWindow-1 and then refresh
// inputs from a new external sample.
//
// It is a silent no-op if the rectangle falls outside the field or inputs
// has the wrong length, matching the feed contract of Feed/DFeed/etc.
func (c *Cortex) SampleSquareFeed(x0, y0, x1, y1 int, step uint16, inputs []uint16, excValue int16) {
	if x0 < 0 || y0 < 0 || x1 <= x0 || y1 <= y0 || x1 > c.Width || y1 > c.Height {
		return
	}
	rw := x1 - x0
	rh := y1 - y0
	if len(inputs) != rw*rh {
		return
	}
	if c.SampleWindow == 0 {
		return
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			input := inputs[(y-y0)*rw+(x-x0)]
			if c.shouldFireAt(step, input) {
				c.Neurons[c.index(x, y)].Value += excValue
			}
		}
	}
}

// shouldFireAt reports whether sub-step step should deliver a pulse for a
// stimulus of magnitude input, per the configured PulseMapping.
func (c *Cortex) shouldFireAt(step, input uint16) bool {
	switch c.PulseMapping {
	case FastProportionalMapping:
		if c.SampleWindow <= 1 {
			return false
		}
		return (step*input)%(c.SampleWindow-1) < input
	default: // LinearMapping
		return step < input
	}
}
