/*
NAME
  correlate.go

DESCRIPTION
  correlate.go provides the dot-product symbol correlator and the preamble
  synchronization search used for ather frame boundary recovery.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package signal

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DotProduct is the standard inner product of a and b, truncated to the
// shorter of the two. A positive result indicates phase agreement with
// reference symbol S0; a non-positive result indicates the opposite phase
// (bit 1 under the BPSK convention used throughout this module).
func DotProduct(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}
	af := make([]float64, n)
	bf := make([]float64, n)
	for i := 0; i < n; i++ {
		af[i] = float64(a[i])
		bf[i] = float64(b[i])
	}
	return float32(floats.Dot(af, bf))
}

// Synchronize slides preamble across samples and returns the index of
// maximum normalized cross-correlation together with its peak value.
// index is -1 when samples is shorter than preamble.
func Synchronize(preamble, samples []float32) (index int, peak float32) {
	if len(samples) < len(preamble) {
		return -1, 0
	}
	preambleEnergy := float32(0)
	for _, s := range preamble {
		preambleEnergy += s * s
	}
	if preambleEnergy == 0 {
		return -1, 0
	}

	index = -1
	var best float32
	windows := len(samples) - len(preamble) + 1
	for i := 0; i < windows; i++ {
		window := samples[i : i+len(preamble)]
		windowEnergy := float32(0)
		for _, s := range window {
			windowEnergy += s * s
		}
		if windowEnergy == 0 {
			continue
		}
		corr := DotProduct(preamble, window) / sqrt32(preambleEnergy*windowEnergy)
		if index == -1 || corr > best {
			best = corr
			index = i
		}
	}
	if index == -1 {
		return -1, 0
	}
	return index, best
}

func sqrt32(v float32) float32 {
	if v <= 0 {
		return 0
	}
	return float32(math.Sqrt(float64(v)))
}
