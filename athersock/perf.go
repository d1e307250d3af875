/*
NAME
  perf.go

DESCRIPTION
  perf.go implements the throughput probe: a sender loop continuously
  transmitting full, all-zero-payload Data frames to dest, and a reporter
  loop printing a rolling window of recent interval throughputs.

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
	"sync"
	"time"

	"github.com/ausocean/athernet/acsma"
	"github.com/ausocean/athernet/macframe"
)

// perfWindow bounds how many past interval throughputs the reporter
// keeps for its rolling average, smoothing over a single noisy interval.
const perfWindow = 8

// Perf transmits full, all-zero-payload Data frames to dest back-to-back,
// measuring throughput. The sender and reporter loops run concurrently;
// the first time the sender fails to receive an Ack within
// acsma.PerfTimeout, both loops stop and Perf returns a
// *acsma.PerfTimeoutError. Cancelling ctx stops the probe cleanly with
// ctx.Err().
func (w *Writer) Perf(ctx context.Context, dest uint8) error {
	pctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sent := make(chan int, 64)
	errCh := make(chan error, 2)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		defer close(sent)
		errCh <- w.perfSend(pctx, dest, sent)
	}()
	go func() {
		defer wg.Done()
		w.perfReport(pctx, sent)
	}()

	err := <-errCh
	cancel()
	wg.Wait()
	return err
}

// perfSend repeatedly writes a PayloadBits-long all-zero Data frame to
// dest, reporting each payload's true bit length on sent once Acked. It
// returns on the first Ack timeout, ctx cancellation, or a non-timeout
// LinkError.
func (w *Writer) perfSend(ctx context.Context, dest uint8, sent chan<- int) error {
	payload := make([]bool, macframe.PayloadBits)
	for {
		frame, _ := macframe.NewData(dest, w.address, 0, false, payload)
		task := acsma.NewTask(frame)
		if !w.daemon.Enqueue(task) {
			return &acsma.LinkError{Retries: 0}
		}

		timer := time.NewTimer(acsma.PerfTimeout)
		select {
		case err := <-task.Done:
			timer.Stop()
			if err != nil {
				return err
			}
			select {
			case sent <- len(frame.Payload):
			case <-ctx.Done():
				return ctx.Err()
			}
		case <-timer.C:
			return &acsma.PerfTimeoutError{Timeout: acsma.PerfTimeout}
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
}

// perfReport accumulates bits received on sent and logs a rolling-window
// throughput figure every acsma.PerfInterval, until sent closes or ctx is
// cancelled.
func (w *Writer) perfReport(ctx context.Context, sent <-chan int) {
	ticker := time.NewTicker(acsma.PerfInterval)
	defer ticker.Stop()

	var window []float64
	bits := 0
	for {
		select {
		case n, open := <-sent:
			if !open {
				return
			}
			bits += n
		case <-ticker.C:
			kbps := float64(bits) / (1000 * acsma.PerfInterval.Seconds())
			window = append(window, kbps)
			if len(window) > perfWindow {
				window = window[len(window)-perfWindow:]
			}
			w.log.Info("athersock: perf", "kbps", kbps, "avg_kbps", average(window))
			bits = 0
		case <-ctx.Done():
			return
		}
	}
}

func average(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
