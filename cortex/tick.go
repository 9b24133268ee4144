// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cortex

import (
	"fmt"
	"math/bits"
	"runtime"
	"sync"

	"github.com/emer/emergent/v2/timer"

	"github.com/cortexsim/cortex2d/xorshift"
)

// candidacyModulus and candidacyThreshold implement the ~1% per-position
// structural-plasticity candidacy gate: a neighborhood position is only
// considered for synapse birth/death this tick if
// (draw+position) mod candidacyModulus < candidacyThreshold.
const (
	candidacyModulus   = 1000
	candidacyThreshold = 10
)

// knuthHash decorrelates a PRNG draw from a neighborhood position index,
// so the same per-neuron draw can drive both the candidacy gate and the
// synapse-birth excitatory/inhibitory choice without a second call to the
// PRNG -- Tick draws exactly one word per neuron per tick (spec
// invariant on PRNG consumption).
func knuthHash(draw uint32, pos int) uint32 {
	return draw ^ (uint32(pos)*2654435761 + 0x9e3779b9)
}

// NumWorkers is the number of goroutines Tick fans its row batches out to.
// A value <= 0 (the zero value) means runtime.GOMAXPROCS(0).
//
// TickStats reports, per batch, how long that batch took to compute --
// purely for operational visibility, mirroring how a threaded layer
// network reports per-thread timings.
type TickStats struct {
	BatchTimes []timer.Time
}

// Tick advances the field by one discrete step: next is overwritten
// entirely from prev, which is read but never modified. prev and next must
// have identical dimensions and neighborhood radius; next takes over all of
// prev's parameters, its own prior neuron values are discarded, and it
// keeps its own PRNG stream.
//
// Iteration is data-parallel across output rows: prev.NumWorkers
// goroutines (default runtime.GOMAXPROCS(0)) each own a disjoint batch of
// rows of next and read prev freely. Each batch gets its own PRNG
// sub-stream, deterministically derived from (TicksCount, batch index), so
// that a fixed NumWorkers setting always reproduces the same sequence of
// stochastic decisions -- see xorshift.Source.SubStream.
func (prev *Cortex) Tick(next *Cortex) (*TickStats, error) {
	if next.Width != prev.Width || next.Height != prev.Height {
		return nil, fmt.Errorf("cortex: Tick dimension mismatch: prev %dx%d, next %dx%d",
			prev.Width, prev.Height, next.Width, next.Height)
	}
	if next.NeighborhoodRadius != prev.NeighborhoodRadius {
		return nil, fmt.Errorf("cortex: Tick neighborhood radius mismatch: prev %d, next %d",
			prev.NeighborhoodRadius, next.NeighborhoodRadius)
	}

	neurons, nextRng := next.Neurons, next.rng
	*next = *prev
	next.Neurons, next.rng = neurons, nextRng

	numWorkers := prev.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	if numWorkers > prev.Height {
		numWorkers = prev.Height
	}
	if numWorkers <= 1 {
		var batch timer.Time
		batch.Start()
		prev.tickRows(next, 0, prev.Height, prev.rng)
		batch.Stop()
		next.TicksCount = prev.TicksCount + 1
		return &TickStats{BatchTimes: []timer.Time{batch}}, nil
	}

	rowsPerWorker := (prev.Height + numWorkers - 1) / numWorkers
	stats := &TickStats{BatchTimes: make([]timer.Time, numWorkers)}
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		y0 := w * rowsPerWorker
		if y0 >= prev.Height {
			break
		}
		y1 := y0 + rowsPerWorker
		if y1 > prev.Height {
			y1 = prev.Height
		}

		key := prev.TicksCount*uint64(numWorkers) + uint64(w)
		batchRng := prev.rng.SubStream(key)

		wg.Add(1)
		go func(w, y0, y1 int, rng *xorshift.Source) {
			defer wg.Done()
			stats.BatchTimes[w].Start()
			prev.tickRows(next, y0, y1, rng)
			stats.BatchTimes[w].Stop()
		}(w, y0, y1, batchRng)
	}
	wg.Wait()

	next.TicksCount = prev.TicksCount + 1
	return stats, nil
}

// tickRows computes next's neurons for rows [y0, y1), reading only from
// prev and drawing from rng, which is exclusive to this call.
func (prev *Cortex) tickRows(next *Cortex, y0, y1 int, rng *xorshift.Source) {
	d := prev.diameter()
	r := prev.NeighborhoodRadius
	evolPeriod := uint64(prev.EvolStep) + 1
	evolving := prev.EvolStep != 0xFFFF && (prev.TicksCount%evolPeriod) == 0
	synGenThreshold := uint32(prev.SynGenPulsesCount)
	maxSyn := uint32(prev.MaxSynCount)

	for y := y0; y < y1; y++ {
		for x := 0; x < prev.Width; x++ {
			idx := prev.index(x, y)
			prevN := prev.Neurons[idx]
			nextN := prevN // copy prev values onto next, per step 1

			draw := rng.Next()

			prevMask := prevN.SynapticMask
			excMask := prevN.ExcitatoryMask

			for j := 0; j < d; j++ {
				for i := 0; i < d; i++ {
					if i == r && j == r {
						continue // center is never a neighbor
					}
					pos := j*d + i
					bit := (prevMask >> uint(pos)) & 1

					nx := wrap(x+i-r, prev.Width)
					ny := wrap(y+j-r, prev.Height)
					neighbor := prev.Neurons[prev.index(nx, ny)]

					if bit == 1 && neighbor.Value > prev.FireThreshold {
						if (excMask>>uint(pos))&1 == 1 {
							nextN.Value += prev.ChargeValue
						} else {
							nextN.Value -= prev.ChargeValue
						}
					}

					if evolving && (draw+uint32(pos))%candidacyModulus < candidacyThreshold {
						nbPulse := uint32(neighbor.Pulse)
						switch {
						case bit == 1 && nbPulse < synGenThreshold:
							// Synapse death.
							nextN.SynapticMask &^= 1 << uint(pos)
							nextN.ExcitatoryMask &^= 1 << uint(pos) // invariant 3
						case bit == 0 && nbPulse > synGenThreshold && uint32(prevN.SynapseCount) < maxSyn:
							// Synapse birth; polarity biased by InhExcRatio,
							// drawn from the same per-neuron word so Tick
							// still consumes exactly one PRNG word here.
							nextN.SynapticMask |= 1 << uint(pos)
							mixed := knuthHash(draw, pos)
							if mixed%(uint32(prev.InhExcRatio)+1) < uint32(prev.InhExcRatio) {
								nextN.ExcitatoryMask |= 1 << uint(pos)
							} else {
								nextN.ExcitatoryMask &^= 1 << uint(pos)
							}
						}
					}
				}
			}

			// syn_count is recounted from next's mask, after this tick's
			// birth/death decisions have been applied to it -- see
			// SPEC_FULL.md §4.5 and DESIGN.md for the resolved Open Question.
			nextN.SynapseCount = uint8(bits.OnesCount32(nextN.SynapticMask))

			decayToward(&nextN.Value, prevN.Value, prev.DecayValue)

			if prevN.Value > prev.FireThreshold {
				nextN.Value = prev.RecoveryValue
				nextN.PulseMask |= 1
				nextN.Pulse++
			}

			if (prevN.PulseMask>>uint(prev.PulseWindow))&1 == 1 {
				nextN.Pulse--
			}

			nextN.PulseMask <<= 1

			next.Neurons[idx] = nextN
		}
	}
}

// decayToward mutates *value (already holding this tick's integrated
// value) by decayValue in the direction of zero, using priorSign's sign to
// decide direction, and clamps at zero rather than overshooting past it.
// The clamp is what makes the "decay to exactly zero" testable property
// hold even when decayValue does not evenly divide the starting
// magnitude -- see DESIGN.md.
func decayToward(value *int16, priorSign int16, decayValue int16) {
	switch {
	case priorSign > 0:
		v := *value - decayValue
		if *value >= 0 && v < 0 {
			v = 0
		}
		*value = v
	case priorSign < 0:
		v := *value + decayValue
		if *value <= 0 && v > 0 {
			v = 0
		}
		*value = v
	}
}
