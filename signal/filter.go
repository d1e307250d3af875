/*
NAME
  filter.go

DESCRIPTION
  filter.go provides the band-pass filter used to isolate the BPSK carrier
  band before symbol correlation and demodulation.

AUTHOR
  AusOcean athernet contributors

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package signal provides the pure sample-domain primitives shared by the
// athernet modulator and demodulator: band-pass filtering, the dot-product
// correlator, preamble synchronization and channel energy estimation.
package signal

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// BandPass suppresses energy outside [low, high] Hz in samples, in place.
// The filter is a windowed-sinc FIR band-pass applied by fast convolution,
// the same technique as (*pcm.SelectiveFrequencyFilter).Apply, just kept
// in the float32 domain athernet already works in.
func BandPass(samples []float32, sampleRate float64, low, high float64) {
	if len(samples) == 0 {
		return
	}
	if nyquist := sampleRate / 2; high > nyquist {
		high = nyquist
	}
	taps := filterTaps(sampleRate)
	coeffs := bandPassCoeffs(sampleRate, low, high, taps)

	x := make([]float64, len(samples))
	for i, s := range samples {
		x[i] = float64(s)
	}
	y := convolveSame(x, coeffs)
	for i := range samples {
		samples[i] = float32(y[i])
	}
}

// filterTaps picks a FIR length proportional to the sample rate: one tap
// per 750Hz of sample rate, so 64 taps at 48kHz.
func filterTaps(sampleRate float64) int {
	taps := int(sampleRate / 750)
	if taps%2 == 1 {
		taps++
	}
	if taps < 16 {
		taps = 16
	}
	return taps
}

// bandPassCoeffs builds a band-pass filter from the difference of two
// windowed-sinc low-pass filters, mirroring newBandFilter/newLoHiFilter in
// the teacher's pcm filter package but without the intermediate allocation
// of stop-band helpers this module has no use for.
func bandPassCoeffs(sampleRate, low, high float64, taps int) []float64 {
	size := taps + 1
	win := window.FlatTop(size)
	lo := sincLowPass(low/sampleRate, size, win)
	hi := sincLowPass(high/sampleRate, size, win)
	coeffs := make([]float64, size)
	for i := range coeffs {
		coeffs[i] = hi[i] - lo[i]
	}
	return coeffs
}

func sincLowPass(fd float64, size int, win []float64) []float64 {
	coeffs := make([]float64, size)
	b := 2 * math.Pi * fd
	for n := 0; n < size/2; n++ {
		c := float64(n) - float64(size-1)/2
		coeffs[n] = math.Sin(c*b) / (math.Pi * c) * win[n]
		coeffs[size-1-n] = coeffs[n]
	}
	coeffs[size/2] = 2 * fd * win[size/2]
	return coeffs
}

// convolveSame computes the linear convolution of x and h via FFT, the same
// fast-convolution trick as fastConvolve in the teacher's pcm package, and
// trims the result back down to len(x) so filtering never changes buffer
// length.
func convolveSame(x, h []float64) []float64 {
	if len(x) == 0 || len(h) == 0 {
		return x
	}
	convLen := len(x) + len(h) - 1
	padLen := nextPow2(convLen)

	xp := make([]float64, padLen)
	copy(xp, x)
	hp := make([]float64, padLen)
	copy(hp, h)

	xFFT := fft.FFTReal(xp)
	hFFT := fft.FFTReal(hp)

	yFFT := make([]complex128, padLen)
	for i := range xFFT {
		yFFT[i] = xFFT[i] * hFFT[i]
	}

	iy := fft.IFFT(yFFT)

	// Group delay of a symmetric FIR filter of length len(h) is (len(h)-1)/2
	// samples; shift the convolution back so the filtered buffer still
	// lines up with the original sample boundaries.
	delay := (len(h) - 1) / 2
	y := make([]float64, len(x))
	for i := range y {
		y[i] = real(iy[i+delay])
	}
	return y
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
