/*
NAME
  energy.go

DESCRIPTION
  energy.go estimates channel occupancy from raw or band-limited samples,
  used by the CSMA/CA layer to decide whether the medium is free.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package signal

import "gonum.org/v1/gonum/stat"

// Energy returns the mean squared amplitude of samples. When band is
// non-nil, samples are band-pass filtered into a scratch copy first so the
// estimate reflects only the carrier band of interest.
func Energy(samples []float32, sampleRate float64, band *[2]float64) float32 {
	if len(samples) == 0 {
		return 0
	}
	s := samples
	if band != nil {
		s = append([]float32(nil), samples...)
		BandPass(s, sampleRate, band[0], band[1])
	}
	sq := make([]float64, len(s))
	for i, v := range s {
		sq[i] = float64(v) * float64(v)
	}
	return float32(stat.Mean(sq, nil))
}
