/*
NAME
  config.go

DESCRIPTION
  config.go defines the configuration recognized by the MAC layer: local
  address, ather timing parameters and audio stream format.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package atherconf holds the configuration recognized by the athernet
// socket layer. This module does not load configuration from a file or
// flags (out of scope); Config is the shape a loader populates.
package atherconf

// Default values for AtherConfig, matching the canonical 24kHz carrier on
// a 48kHz sample rate setup described in the design document.
const (
	DefaultFrequency  = 24000.0
	DefaultBitRate    = 1000.0
	DefaultSampleRate = 48000.0
)

// StreamConfig is the audio format an athernet socket runs over: mono,
// native sample rate, 32-bit float samples.
type StreamConfig struct {
	Channels   int
	SampleRate int
	BufferSize int
}

// AtherConfig holds the acoustic physical-layer parameters.
type AtherConfig struct {
	Frequency    float64 // Carrier frequency, Hz.
	BitRate      float64 // Symbol rate, bits/s.
	StreamConfig StreamConfig
}

// DefaultAtherConfig returns the canonical 24kHz-carrier, 1kbit/s,
// 48kHz-sample-rate configuration.
func DefaultAtherConfig() AtherConfig {
	return AtherConfig{
		Frequency: DefaultFrequency,
		BitRate:   DefaultBitRate,
		StreamConfig: StreamConfig{
			Channels:   1,
			SampleRate: DefaultSampleRate,
			BufferSize: 4096,
		},
	}
}

// Config is the full configuration of one athernet socket.
type Config struct {
	Address     uint8
	AtherConfig AtherConfig
}
