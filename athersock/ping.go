/*
NAME
  ping.go

DESCRIPTION
  ping.go implements the MAC-layer ping probe: round-trip latency
  measurement using MacPingReq/MacPingResp frames.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package athersock

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/ausocean/athernet/acsma"
	"github.com/ausocean/athernet/macframe"
)

// Ping repeatedly probes dest with a MacPingReq every acsma.PingInterval,
// logging the measured round-trip time in milliseconds, or "timeout" when
// no MacPingResp arrives within acsma.PingTimeout. It runs until ctx is
// cancelled.
func (w *Writer) Ping(ctx context.Context, dest uint8) error {
	ticker := time.NewTicker(acsma.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.pingOnce(ctx, dest)
		}
	}
}

func (w *Writer) pingOnce(ctx context.Context, dest uint8) {
	seq := uint8(rand.Intn(int(macframe.MaxSeq)))
	frame := macframe.NewPingReq(dest, w.address, seq)
	task := acsma.NewTask(frame)

	start := time.Now()
	if !w.daemon.Enqueue(task) {
		return
	}

	timer := time.NewTimer(acsma.PingTimeout)
	defer timer.Stop()
	select {
	case <-task.Done:
		w.log.Info("athersock: ping", "dest", dest, "rtt_ms", formatMillis(time.Since(start)))
	case <-timer.C:
		w.log.Info("athersock: ping", "dest", dest, "rtt", "timeout")
	case <-ctx.Done():
	}
}

// formatMillis renders d in milliseconds to one decimal place, matching
// the original implementation's ping output precision.
func formatMillis(d time.Duration) string {
	return fmt.Sprintf("%.1f", float64(d)/float64(time.Millisecond))
}
