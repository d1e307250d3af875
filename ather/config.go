/*
NAME
  config.go

DESCRIPTION
  config.go holds the immutable configuration and derived symbol/preamble
  tables shared by Output and Input.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package ather

import "github.com/ausocean/athernet/symbol"

// LengthLen is the width, in bits, of the audio frame's length field.
const LengthLen = 7

// PayloadLen is the maximum payload bits carried by one audio frame:
// 2^LengthLen - 1, matching the 7-bit length field's largest encodable
// value.
const PayloadLen = (1 << LengthLen) - 1

// CorrThreshold is the minimum normalized correlation peak that counts as
// a genuine preamble detection.
const CorrThreshold = 0.15

// Config is the fixed, process-lifetime configuration of an ather stream:
// carrier frequency, symbol rate and the derived symbol/preamble/warmup
// waveforms. Two Config values built from the same parameters are
// interchangeable.
type Config struct {
	Frequency  float64 // Carrier frequency, Hz.
	BitRate    float64 // Symbol rate, bits/s.
	SampleRate float64 // Audio sample rate, Hz.

	Symbols  symbol.Pair
	Warmup   []float32
	Preamble []float32
}

// NewConfig derives the symbol pair, warmup chirp and preamble chirp for
// the given carrier frequency, bit rate and sample rate.
func NewConfig(frequency, bitRate, sampleRate float64) Config {
	duration := 1 / bitRate
	return Config{
		Frequency:  frequency,
		BitRate:    bitRate,
		SampleRate: sampleRate,
		Symbols:    symbol.New(frequency, sampleRate, duration),
		Warmup:     newWarmup(sampleRate, duration, frequency),
		Preamble:   newPreamble(sampleRate, duration, frequency),
	}
}

// SymbolLen is the sample length of a single symbol.
func (c Config) SymbolLen() int { return c.Symbols.Len() }
