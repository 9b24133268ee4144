// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package cortex2d is the overall repository for a 2D spiking neural-field
simulator, organized into the following sub-packages:

* xorshift: the deterministic 96-bit PRNG that drives every stochastic
decision made during a tick (neighborhood candidacy gating, synapse
birth polarity).

* cortex: the core field model -- Cortex and Neuron types, construction
and configuration, the five feed primitives, the time-quantized
sampling feed, and the parallel tick kernel.

* fieldio: binary snapshot serialization of a Cortex, and TOML-backed
load/save of its construction parameters.

* fieldstats: read-only summary statistics over a Cortex's neuron
population, for operational visibility into a running simulation.

The repository contains no example programs.
*/
package cortex2d
