/*
NAME
  output.go

DESCRIPTION
  output.go serializes a bit string into framed audio and pushes it to a
  Sink: a warmup chirp, followed by one audio frame per PayloadLen-bit
  chunk of the payload.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package ather

import (
	"context"
	"time"

	"github.com/ausocean/utils/logging"
)

// Output serializes bit vectors into ather frames and writes them to a
// Sink.
type Output struct {
	config Config
	sink   Sink
	log    logging.Logger
}

// NewOutput returns an Output bound to sink.
func NewOutput(config Config, sink Sink, l logging.Logger) *Output {
	return &Output{config: config, sink: sink, log: l}
}

// Sink returns the underlying Sink, so callers can probe it for optional
// capabilities such as acsma.CollisionDetector.
func (o *Output) Sink() Sink { return o.sink }

// Write always prepends a single warmup frame, then appends one audio
// frame per PayloadLen-bit chunk of bits. When len(bits) is an exact
// multiple of PayloadLen, an extra empty frame is appended: its zero
// length tells the decoder no further payload follows this burst. Write
// blocks until the sink has drained every sample.
func (o *Output) Write(ctx context.Context, bits []bool) error {
	samples := o.encode(bits)
	return o.sink.Write(ctx, Track{Format: Format{NumChannels: 1, SampleRate: int(o.config.SampleRate)}, Samples: samples})
}

// WriteTimeout races Write against dur and returns as soon as either
// completes. It never reports a timeout as an error: a caller that needs
// to know whether the write actually landed should use Write directly.
func (o *Output) WriteTimeout(ctx context.Context, bits []bool, dur time.Duration) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		o.Write(ctx, bits)
	}()
	timer := time.NewTimer(dur)
	defer timer.Stop()
	select {
	case <-done:
	case <-timer.C:
	}
}

// encode builds the full sample track: warmup, then one audio frame per
// chunk of PayloadLen bits.
func (o *Output) encode(bits []bool) []float32 {
	var out []float32
	out = append(out, o.config.Warmup...)

	for i := 0; i < len(bits); i += PayloadLen {
		end := i + PayloadLen
		if end > len(bits) {
			end = len(bits)
		}
		out = append(out, o.encodeFrame(bits[i:end])...)
	}
	if len(bits)%PayloadLen == 0 {
		out = append(out, o.encodeFrame(nil)...)
	}
	return out
}

// encodeFrame assembles a single physical audio frame: preamble, 7-symbol
// length field, then payload symbols.
func (o *Output) encodeFrame(payload []bool) []float32 {
	length := lengthBits(len(payload))

	frame := make([]float32, 0, len(o.config.Preamble)+LengthLen*o.config.SymbolLen()+len(payload)*o.config.SymbolLen())
	frame = append(frame, o.config.Preamble...)
	frame = append(frame, o.config.Symbols.Encode(length)...)
	frame = append(frame, o.config.Symbols.Encode(payload)...)
	return frame
}

// lengthBits encodes n (0..127) as LengthLen bits, LSB-first, matching how
// Input reassembles the length field during decode.
func lengthBits(n int) []bool {
	bits := make([]bool, LengthLen)
	for i := range bits {
		bits[i] = n&(1<<i) != 0
	}
	return bits
}
