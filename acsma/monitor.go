/*
NAME
  monitor.go

DESCRIPTION
  monitor.go runs the write-monitor sampler: a background goroutine that
  continuously replaces a single-slot "last sample" cache from the local
  microphone/loopback input, so the daemon can sense channel energy on
  demand without blocking on the sample stream itself.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package acsma

import (
	"context"
	"sync"

	"github.com/ausocean/athernet/ather"
	"github.com/ausocean/athernet/signal"
)

// monitor owns a sample source dedicated to channel sensing. The cache is
// guarded by a plain mutex, touched only on the sampler goroutine's writes
// and the daemon's reads -- never in a hot per-sample loop, since the
// cache holds whole buffers rather than individual samples.
type monitor struct {
	source     ather.Source
	sampleRate float64
	band       [2]float64

	mu   sync.Mutex
	last []float32
}

func newMonitor(source ather.Source, sampleRate float64, band [2]float64) *monitor {
	return &monitor{source: source, sampleRate: sampleRate, band: band}
}

// run pulls samples from the source until ctx is done or the source
// closes, replacing the cached "last sample" buffer each time.
func (m *monitor) run(ctx context.Context) {
	for {
		samples, open := m.source.Next(ctx)
		if len(samples) > 0 {
			m.mu.Lock()
			m.last = samples
			m.mu.Unlock()
		}
		if !open {
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

// energy returns the energy of the most recently cached sample buffer. An
// empty cache (no samples observed yet) reads as a free channel.
func (m *monitor) energy() float32 {
	m.mu.Lock()
	last := m.last
	m.mu.Unlock()
	if len(last) == 0 {
		return 0
	}
	return signal.Energy(last, m.sampleRate, &m.band)
}

// isFree reports whether the channel energy is below FreeThreshold.
func (m *monitor) isFree() bool {
	return m.energy() < FreeThreshold
}
