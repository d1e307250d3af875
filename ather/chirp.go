/*
NAME
  chirp.go

DESCRIPTION
  chirp.go generates the warmup and preamble sample vectors used to prime
  the audio hardware and to synchronize on ather frame boundaries.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package ather

import "math"

// WarmupSymbols and PreambleSymbols are the canonical lengths from the
// acoustic frame layout, expressed in symbol-durations rather than raw
// sample counts so they track whatever bit rate a Config chooses.
const (
	WarmupSymbols   = 8
	PreambleSymbols = 48
)

// chirp synthesizes a linear frequency sweep from 0.5*fc to 1.5*fc over
// symbols symbol-durations, sampled at sampleRate. A swept tone gives the
// correlator in Synchronize a sharp, singular peak that a fixed single
// tone would not: a receiver tuned to a narrow carrier band could
// otherwise false-trigger on the data symbols themselves.
func chirp(symbols int, sampleRate, symbolDuration, fc float64) []float32 {
	n := int(float64(symbols) * symbolDuration * sampleRate)
	out := make([]float32, n)
	duration := float64(symbols) * symbolDuration
	lo, hi := fc*0.5, fc*1.5
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		// Instantaneous frequency sweeps linearly from lo to hi; phase is
		// the integral of frequency over time.
		phase := 2 * math.Pi * (lo*t + (hi-lo)*t*t/(2*duration))
		out[i] = float32(math.Sin(phase))
	}
	return out
}

// newWarmup builds the fixed warmup chirp for a Config.
func newWarmup(sampleRate, symbolDuration, fc float64) []float32 {
	return chirp(WarmupSymbols, sampleRate, symbolDuration, fc)
}

// newPreamble builds the fixed synchronization preamble chirp for a Config.
func newPreamble(sampleRate, symbolDuration, fc float64) []float32 {
	return chirp(PreambleSymbols, sampleRate, symbolDuration, fc)
}
