// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cortex

// Feed adds values[i] to the value of the i-th neuron in
// [start, start+len(values)), in row-major order. It is a no-op if the
// range exceeds Width*Height.
func (c *Cortex) Feed(start int, values []int16) {
	count := len(values)
	if !c.inRange(start, count) {
		return
	}
	for i, v := range values {
		c.Neurons[start+i].Value += v
	}
}

// DFeed adds the constant v to every neuron in [start, start+count). It is
// a no-op if the range exceeds Width*Height.
func (c *Cortex) DFeed(start, count int, v int16) {
	if !c.inRange(start, count) {
		return
	}
	for i := start; i < start+count; i++ {
		c.Neurons[i].Value += v
	}
}

// RFeed adds a pseudo-random value in [0, max) to every neuron in
// [start, start+count). It is a no-op if the range exceeds Width*Height or
// if max <= 0.
func (c *Cortex) RFeed(start, count int, max int16) {
	if max <= 0 || !c.inRange(start, count) {
		return
	}
	for i := start; i < start+count; i++ {
		c.Neurons[i].Value += int16(c.rng.Next() % uint32(max))
	}
}

// SFeed adds v to every spread-th neuron, starting at start, for count
// neurons. It is a no-op if the spread-out range exceeds Width*Height.
func (c *Cortex) SFeed(start, count int, v int16, spread int) {
	if spread <= 0 || !c.inRange(start, count*spread) {
		return
	}
	for i := 0; i < count; i++ {
		c.Neurons[start+i*spread].Value += v
	}
}

// RSFeed is SFeed with a pseudo-random value in [0, max) in place of a
// constant.
func (c *Cortex) RSFeed(start, count int, max int16, spread int) {
	if max <= 0 || spread <= 0 || !c.inRange(start, count*spread) {
		return
	}
	for i := 0; i < count; i++ {
		c.Neurons[start+i*spread].Value += int16(c.rng.Next() % uint32(max))
	}
}

// inRange reports whether [start, start+count) lies within
// [0, Width*Height).
func (c *Cortex) inRange(start, count int) bool {
	if start < 0 || count < 0 {
		return false
	}
	return start+count <= c.Width*c.Height
}
