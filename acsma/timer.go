/*
NAME
  timer.go

DESCRIPTION
  timer.go models the write timer: the daemon's record of what it is
  currently waiting on -- an ACK, or a contention back-off window -- and
  the task, if any, that wait is guarding.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package acsma

import "time"

// timerKind discriminates the write timer's states. Kept as an explicit
// tagged union with a kindEmpty member rather than a nullable pointer, per
// the design notes: mixing "no timer" with "timer with no task" as two
// different flavors of nil invites exactly the class of bug this type
// exists to prevent.
type timerKind int

const (
	kindEmpty timerKind = iota
	kindTimeout
	kindBackoff
)

// writeTimer is the daemon's single outstanding wait. At most one exists
// at a time; it is replaced wholesale on every state transition rather
// than mutated in place. resends tracks how many times task's frame has
// been transmitted so far and carries through both Timeout and Backoff,
// mirroring the original implementation's shared "inner" record.
type writeTimer struct {
	kind     timerKind
	start    time.Time
	task     *Task // nil only for kindBackoff with no task (pure contention wait).
	resends  int
	retry    int // kindBackoff: exponential back-off exponent.
	duration time.Duration
}

func emptyTimer() writeTimer { return writeTimer{kind: kindEmpty} }

func timeoutTimer(now time.Time, task *Task, resends int) writeTimer {
	return writeTimer{kind: kindTimeout, start: now, task: task, resends: resends, duration: AckTimeout}
}

func backoffTimer(now time.Time, task *Task, resends, retry int, duration time.Duration) writeTimer {
	return writeTimer{kind: kindBackoff, start: now, task: task, resends: resends, retry: retry, duration: duration}
}

func (t writeTimer) isExpired(now time.Time) bool {
	return t.kind != kindEmpty && now.Sub(t.start) >= t.duration
}
