/*
NAME
  task.go

DESCRIPTION
  task.go defines the write task: a single outstanding transmission
  request carrying a reply channel the daemon signals on completion.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package acsma

import (
	"fmt"
	"time"

	"github.com/ausocean/athernet/macframe"
)

// LinkError reports that a write task exhausted MaxResends retransmissions
// without receiving an Ack.
type LinkError struct{ Retries int }

func (e *LinkError) Error() string {
	return fmt.Sprintf("acsma: link error after %d attempts", e.Retries)
}

// PerfTimeoutError reports that a throughput probe's sender loop went
// Timeout without receiving an Ack, ending the probe.
type PerfTimeoutError struct{ Timeout time.Duration }

func (e *PerfTimeoutError) Error() string {
	return fmt.Sprintf("acsma: perf timeout after %s", e.Timeout)
}

// Task is a single outstanding transmission request. Done receives exactly
// one result: nil on success, a *LinkError on exhausted retries.
type Task struct {
	Frame macframe.Frame
	Done  chan error
}

// NewTask returns a Task with a ready reply channel.
func NewTask(frame macframe.Frame) Task {
	return Task{Frame: frame, Done: make(chan error, 1)}
}

// complete signals t's reply channel without blocking. Per the design
// notes, a caller that dropped its Done channel (lost interest) must not
// wedge or panic the daemon; the channel is created with capacity 1 for
// exactly this reason, so this send never blocks regardless of whether
// anyone is still listening.
func (t Task) complete(err error) {
	t.Done <- err
}
