/*
NAME
  correlate_test.go

DESCRIPTION
  correlate_test.go tests the dot-product correlator and preamble
  synchronization search.

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

func TestDotProduct(t *testing.T) {
	cases := []struct {
		name     string
		a, b     []float32
		wantSign int
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"opposite", []float32{1, 2, 3}, []float32{-1, -2, -3}, -1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DotProduct(c.a, c.b)
			switch {
			case c.wantSign > 0 && got <= 0:
				t.Errorf("DotProduct(%v, %v) = %v, want positive", c.a, c.b, got)
			case c.wantSign < 0 && got >= 0:
				t.Errorf("DotProduct(%v, %v) = %v, want negative", c.a, c.b, got)
			case c.wantSign == 0 && math.Abs(float64(got)) > 1e-6:
				t.Errorf("DotProduct(%v, %v) = %v, want ~0", c.a, c.b, got)
			}
		})
	}
}

func TestDotProductTruncatesToShorter(t *testing.T) {
	a := []float32{1, 1, 1, 1}
	b := []float32{1, 1}
	if got, want := DotProduct(a, b), float32(2); got != want {
		t.Errorf("DotProduct = %v, want %v", got, want)
	}
}

func sineTone(freq, sampleRate float64, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(math.Sin(2 * math.Pi * freq * float64(i) / sampleRate))
	}
	return out
}

func TestSynchronizeFindsEmbeddedPreamble(t *testing.T) {
	const sampleRate = 48000.0
	preamble := sineTone(6000, sampleRate, 480)

	noise := make([]float32, 1000)
	samples := append(append([]float32{}, noise...), preamble...)
	samples = append(samples, noise...)

	index, peak := Synchronize(preamble, samples)
	if index != len(noise) {
		t.Errorf("Synchronize index = %d, want %d", index, len(noise))
	}
	if peak < 0.99 {
		t.Errorf("Synchronize peak = %v, want close to 1", peak)
	}
}

func TestSynchronizeShortSamplesReturnsNotFound(t *testing.T) {
	preamble := make([]float32, 100)
	samples := make([]float32, 10)
	index, _ := Synchronize(preamble, samples)
	if index != -1 {
		t.Errorf("Synchronize index = %d, want -1", index)
	}
}
