/*
NAME
  symbol_test.go

DESCRIPTION
  symbol_test.go tests the BPSK symbol codec.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package symbol

import "testing"

const (
	testFreq       = 6000.0
	testSampleRate = 48000.0
	testDuration   = 1.0 / 1000.0
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	pair := New(testFreq, testSampleRate, testDuration)
	bits := []bool{false, true, true, false, true, false, false, true}

	samples := pair.Encode(bits)
	if got, want := len(samples), len(bits)*pair.Len(); got != want {
		t.Fatalf("Encode length = %d, want %d", got, want)
	}

	for i, want := range bits {
		window := samples[i*pair.Len() : (i+1)*pair.Len()]
		if got := pair.Decode(window); got != want {
			t.Errorf("Decode(symbol %d) = %v, want %v", i, got, want)
		}
	}
}

func TestLenMatchesSampleRateAndDuration(t *testing.T) {
	pair := New(testFreq, testSampleRate, testDuration)
	want := int(testSampleRate * testDuration)
	if got := pair.Len(); got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

func TestS0AndS1AreOutOfPhase(t *testing.T) {
	pair := New(testFreq, testSampleRate, testDuration)
	for i := range pair.S0 {
		got := pair.S0[i] + pair.S1[i]
		if got > 1e-3 || got < -1e-3 {
			t.Fatalf("S0[%d] + S1[%d] = %v, want ~0 (180 degrees out of phase)", i, i, got)
		}
	}
}
