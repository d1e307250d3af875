/*
NAME
  input.go

DESCRIPTION
  input.go consumes a continuous sample stream from a Source and decodes
  it into a lazy sequence of bit payloads, one per successfully decoded
  ather frame. This is the hardest single component of the module: it
  recovers frame boundaries from a free-running sample stream with no
  external clock reference, using preamble correlation for synchronization.

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

	"github.com/ausocean/athernet/signal"
	"github.com/ausocean/utils/logging"
)

// Input decodes ather frames from a Source. The rolling sample buffer
// persists across calls to Next: a preamble search or a symbol decode
// that runs out of samples mid-frame picks up exactly where it left off
// on the next call, rather than restarting from scratch. This replaces
// the original implementation's Pending/Running/Completed/Suspended task
// state machine with a stored waker; context.Context cancellation is the
// idiomatic Go equivalent of racing a poll against a timeout, and a plain
// resumable buffer replaces the waker bookkeeping the Rust stream needed
// to park a half-finished decode.
type Input struct {
	config Config
	source Source
	log    logging.Logger

	buf []float32
}

// NewInput returns an Input bound to source.
func NewInput(config Config, source Source, l logging.Logger) *Input {
	return &Input{config: config, source: source, log: l}
}

// Next decodes the next ather frame and returns its payload bits. It
// returns ok=false when ctx is done before a frame completes (the caller,
// typically the MAC daemon's receive phase, should simply call Next
// again) or when the underlying Source is permanently closed.
func (in *Input) Next(ctx context.Context) (bits []bool, ok bool) {
	if !in.acquirePreamble(ctx) {
		return nil, false
	}

	length, ok := in.decodeLength(ctx)
	if !ok {
		return nil, false
	}

	payload, ok := in.decodeBits(ctx, length)
	if !ok {
		return nil, false
	}

	return payload, true
}

// Suspend parks the underlying sample source without discarding the
// rolling decode buffer.
func (in *Input) Suspend() { in.source.Suspend() }

// Resume reverses Suspend.
func (in *Input) Resume() { in.source.Resume() }

// acquirePreamble pulls samples until the rolling buffer contains a
// correlation peak above CorrThreshold, then discards everything through
// the end of the matched preamble. It returns false if ctx is cancelled
// or the source closes before a preamble is found.
func (in *Input) acquirePreamble(ctx context.Context) bool {
	preambleLen := len(in.config.Preamble)
	for {
		if len(in.buf) >= preambleLen {
			index, peak := signal.Synchronize(in.config.Preamble, in.buf)
			if index >= 0 && peak > CorrThreshold && index+preambleLen <= len(in.buf) {
				in.buf = in.buf[index+preambleLen:]
				return true
			}
		}
		if !in.pull(ctx) {
			return false
		}
	}
}

// decodeLength reads LengthLen BPSK symbols from the buffer, LSB-first,
// band-pass filtering each symbol window before correlating against S0.
func (in *Input) decodeLength(ctx context.Context) (int, bool) {
	bits, ok := in.decodeSymbols(ctx, LengthLen)
	if !ok {
		return 0, false
	}
	n := 0
	for i, bit := range bits {
		if bit {
			n |= 1 << i
		}
	}
	return n, true
}

// decodeBits reads n payload symbols from the buffer.
func (in *Input) decodeBits(ctx context.Context, n int) ([]bool, bool) {
	return in.decodeSymbols(ctx, n)
}

// decodeSymbols reads n symbol windows from the rolling buffer, pulling
// more samples from the source as needed, and demodulates each one.
func (in *Input) decodeSymbols(ctx context.Context, n int) ([]bool, bool) {
	symbolLen := in.config.SymbolLen()
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		for len(in.buf) < symbolLen {
			if !in.pull(ctx) {
				return nil, false
			}
		}
		window := append([]float32(nil), in.buf[:symbolLen]...)
		signal.BandPass(window, in.config.SampleRate, in.config.Frequency*0.5, in.config.Frequency*1.5)
		bits[i] = in.config.Symbols.Decode(window)
		in.buf = in.buf[symbolLen:]
	}
	return bits, true
}

// pull fetches the next sample buffer from the Source and appends it to
// the rolling buffer. It returns false when ctx is cancelled or the
// Source has closed permanently; in the latter case any bytes already
// accumulated stay in the buffer so a subsequent call can still finish a
// frame once more samples arrive.
func (in *Input) pull(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}
	samples, open := in.source.Next(ctx)
	in.buf = append(in.buf, samples...)
	return open
}
