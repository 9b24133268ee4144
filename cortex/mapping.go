// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cortex

// PulseMapping selects how SampleSquareFeed turns an integer stimulus value
// into a binary firing pattern spread across a sample sub-cycle.
type PulseMapping uint8

const (
	// LinearMapping fires on the first Input sub-steps of the sub-cycle:
	// step < input.
	LinearMapping PulseMapping = iota

	// FastProportionalMapping fires on about input/(SampleWindow-1) of the
	// sub-steps, spread across the sub-cycle instead of clumped at the start:
	// (step*input) mod (SampleWindow-1) < input.
	FastProportionalMapping
)

// String names a PulseMapping for logging; unknown values print as such
// rather than panicking, since pulse mapping is stored on disk (see
// fieldio) and a future variant must not crash an older reader.
func (m PulseMapping) String() string {
	switch m {
	case LinearMapping:
		return "Linear"
	case FastProportionalMapping:
		return "FastProportional"
	default:
		return "Unknown"
	}
}
