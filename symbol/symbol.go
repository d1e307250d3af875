/*
NAME
  symbol.go

DESCRIPTION
  symbol.go maps bits to and from BPSK symbol waveforms: two fixed tones at
  the carrier frequency, 180 degrees out of phase.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package symbol provides the BPSK symbol codec shared by the ather
// modulator and demodulator.
package symbol

import (
	"math"

	"github.com/ausocean/athernet/signal"
)

// Pair holds the two symbol waveforms used to encode a single bit: S0 for
// bit 0, S1 (180 degrees out of phase) for bit 1.
type Pair struct {
	S0, S1 []float32
}

// New synthesizes the symbol pair for a carrier at frequency Hz, sampled at
// sampleRate for duration seconds.
func New(frequency, sampleRate float64, duration float64) Pair {
	n := int(sampleRate * duration)
	s0 := make([]float32, n)
	s1 := make([]float32, n)
	w := 2 * math.Pi * frequency / sampleRate
	for i := 0; i < n; i++ {
		s0[i] = float32(math.Sin(w * float64(i)))
		s1[i] = float32(math.Sin(w*float64(i) + math.Pi))
	}
	return Pair{S0: s0, S1: s1}
}

// Len returns the sample length of a single symbol.
func (p Pair) Len() int { return len(p.S0) }

// Encode concatenates one symbol waveform per bit, MSB-to-LSB as supplied.
func (p Pair) Encode(bits []bool) []float32 {
	out := make([]float32, 0, len(bits)*p.Len())
	for _, bit := range bits {
		if bit {
			out = append(out, p.S1...)
		} else {
			out = append(out, p.S0...)
		}
	}
	return out
}

// Decode returns the bit (sign of the correlation against S0) carried by a
// single symbol-length window of samples. window shorter than a symbol is
// still accepted; DotProduct truncates to the shorter length.
func (p Pair) Decode(window []float32) bool {
	return signal.DotProduct(p.S0, window) <= 0
}
