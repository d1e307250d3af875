/*
NAME
  device.go

DESCRIPTION
  device.go defines the sample source/sink collaborator contracts that the
  ather layer is built against. Concrete audio device enumeration and
  capture/playback are out of scope for this module; callers provide an
  implementation of Source and Sink backed by whatever audio hardware or
  loopback fixture they have.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ather implements the acoustic framing layer: preamble detection,
// BPSK symbol-level modulation and demodulation, and frame boundary
// recovery from a continuous audio sample stream.
package ather

import (
	"context"

	"github.com/go-audio/audio"
)

// Format describes the audio stream format athernet runs over. NumChannels
// is always 1 and samples are always float32 for this module; the type
// simply reuses go-audio/audio's Format so a Sink/Source can be backed by
// a real audio.Buffer implementation without a translation layer.
type Format = audio.Format

// Track is a contiguous run of samples with an attached format, the unit
// Sink.Write operates on.
type Track struct {
	Format  Format
	Samples []float32
}

// Sink accepts a contiguous track of samples and signals completion once
// the hardware (or fixture) has drained them. Writes are serialized by the
// sink; the ather layer never issues overlapping writes.
type Sink interface {
	Write(ctx context.Context, track Track) error
}

// Source is a lazy, restartable sequence of sample buffers at the native
// sample rate. Suspend parks the source without discarding in-flight
// state; Resume reverses it. Next returns false once the source is
// permanently closed.
type Source interface {
	Next(ctx context.Context) ([]float32, bool)
	Suspend()
	Resume()
	SampleRate() float64
}
