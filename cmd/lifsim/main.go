// Copyright 2025 The Extended LIF Neurons Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Command lifsim runs a leaky integrate-and-fire simulation and prints a
// spike raster to stdout: one row per timestep, one column per neuron,
// '|' marking a spike.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/NullPointerExcy/Extended-LIF-Neurons/backend/cpu"
	"github.com/NullPointerExcy/Extended-LIF-Neurons/lif"
	"github.com/NullPointerExcy/Extended-LIF-Neurons/tensor"
)

func main() {
	var (
		neurons  = flag.Int("neurons", 40, "number of neurons in the group")
		steps    = flag.Int("steps", 80, "number of timesteps to simulate")
		current  = flag.Float64("current", 2.0, "constant input current per neuron")
		seed     = flag.Int64("seed", 1, "random seed for stochastic spiking")
		det      = flag.Bool("deterministic", false, "use deterministic threshold crossing instead of Bernoulli sampling")
		dynamic  = flag.Bool("dynamic-prob", false, "enable the self-locking dynamic spike probability")
		noiseStd = flag.Float64("noise", 0.1, "membrane noise standard deviation")
	)
	flag.Parse()

	backend := cpu.New()
	cfg := lif.Defaults[*cpu.Backend](*neurons)
	cfg.Rand = rand.New(rand.NewSource(*seed))
	cfg.NoiseStd = float32(*noiseStd)
	cfg.DynamicSpikeProbability = *dynamic
	if *det {
		cfg.Stochastic = false
		cfg.NoiseStd = 0
	}

	group, err := lif.New(cfg, backend)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lifsim:", err)
		os.Exit(1)
	}

	input := tensor.Full[float32](tensor.Shape{1, *neurons}, float32(*current), backend)
	counts := make([]int, *neurons)

	for t := 0; t < *steps; t++ {
		spikes := group.Step(input, nil)
		row := make([]byte, *neurons)
		for i, s := range spikes.Data() {
			if s {
				row[i] = '|'
				counts[i]++
			} else {
				row[i] = '.'
			}
		}
		fmt.Printf("%4d %s\n", t, row)
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	rate := float64(total) / float64(*steps*(*neurons))
	fmt.Printf("\n%d spikes over %d steps, mean firing rate %.3f spikes/neuron/step\n", total, *steps, rate)
	fmt.Printf("mean threshold after run: %.3f (range [%.2f, %.2f])\n",
		group.Thresholds().Mean(), group.ThresholdRange().Min, group.ThresholdRange().Max)
}
