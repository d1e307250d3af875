/*
NAME
  filter_test.go

DESCRIPTION
  filter_test.go tests the band-pass filter's ability to suppress energy
  outside its pass band while preserving length and in-band amplitude.

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
	"testing"
)

func TestBandPassPreservesLength(t *testing.T) {
	samples := sineTone(24000, 48000, 4096)
	n := len(samples)
	BandPass(samples, 48000, 12000, 36000)
	if len(samples) != n {
		t.Fatalf("BandPass changed length from %d to %d", n, len(samples))
	}
}

func TestBandPassSuppressesOutOfBandTone(t *testing.T) {
	const sampleRate = 48000.0
	inBand := sineTone(18000, sampleRate, 4096)
	outOfBand := sineTone(2000, sampleRate, 4096)

	BandPass(inBand, sampleRate, 12000, 36000)
	BandPass(outOfBand, sampleRate, 12000, 36000)

	if rms(inBand) < 0.3 {
		t.Errorf("in-band RMS = %v, want close to original amplitude", rms(inBand))
	}
	if rms(outOfBand) > 0.1 {
		t.Errorf("out-of-band RMS = %v, want suppressed well below 1", rms(outOfBand))
	}
}

func rms(samples []float32) float64 {
	var sum float64
	for _, s := range samples {
		sum += float64(s) * float64(s)
	}
	return math.Sqrt(sum / float64(len(samples)))
}

func TestEnergyZeroForSilence(t *testing.T) {
	silence := make([]float32, 1024)
	if got := Energy(silence, 48000, nil); got != 0 {
		t.Errorf("Energy(silence) = %v, want 0", got)
	}
}

func TestEnergyPositiveForTone(t *testing.T) {
	tone := sineTone(6000, 48000, 1024)
	if got := Energy(tone, 48000, nil); got <= 0 {
		t.Errorf("Energy(tone) = %v, want > 0", got)
	}
}
