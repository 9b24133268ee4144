// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fieldstats computes read-only summary statistics over a
// cortex.Cortex snapshot, for operational visibility into a running
// simulation. It takes no part in Tick and has no dependency back onto the
// cortex package's hot path.
package fieldstats

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"

	"github.com/cortexsim/cortex2d/cortex"
)

// Summary reports aggregate neuron statistics for one Cortex snapshot.
type Summary struct {
	NeuronCount int

	MeanValue float64
	VarValue  float64

	// FiringFraction is the population mean of Pulse/PulseWindow: the
	// fraction of the active pulse window, averaged across all neurons,
	// during which neurons fired.
	FiringFraction float64

	MeanSynapseCount float64
}

// Summarize computes a Summary over every neuron in c. Called with a field
// of width*height == 0 it returns a zero Summary.
func Summarize(c *cortex.Cortex) Summary {
	n := len(c.Neurons)
	if n == 0 {
		return Summary{}
	}

	values := make([]float64, n)
	synCounts := make([]float64, n)
	var firingSum float64
	for i, nr := range c.Neurons {
		values[i] = float64(nr.Value)
		synCounts[i] = float64(nr.SynapseCount)
		if c.PulseWindow > 0 {
			firingSum += float64(nr.Pulse) / float64(c.PulseWindow)
		}
	}

	meanValue, varValue := stat.MeanVariance(values, nil)
	meanSyn := stat.Mean(synCounts, nil)

	return Summary{
		NeuronCount:      n,
		MeanValue:        meanValue,
		VarValue:         varValue,
		FiringFraction:   firingSum / float64(n),
		MeanSynapseCount: meanSyn,
	}
}

// TopFiring returns the indices of the k neurons with the highest Pulse
// count, highest-first, ties broken by ascending index. It is a debug
// listing, not part of any simulation decision.
func TopFiring(c *cortex.Cortex, k int) []int {
	idx := make([]int, len(c.Neurons))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return c.Neurons[idx[a]].Pulse > c.Neurons[idx[b]].Pulse
	})
	if k > len(idx) {
		k = len(idx)
	}
	return slices.Clone(idx[:k])
}

// String renders a Summary as a one-line report, mirroring the teacher's
// own SizeReport-style human-readable diagnostics.
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "neurons: %d\tmean value: %.3f\tvar: %.3f\tfiring: %.3f%%\tmean synapses: %.2f",
		s.NeuronCount, s.MeanValue, s.VarValue, 100*s.FiringFraction, s.MeanSynapseCount)
	return b.String()
}
