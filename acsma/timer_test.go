/*
NAME
  timer_test.go

DESCRIPTION
  timer_test.go tests the write timer's expiry arithmetic and resend
  counter bookkeeping across Timeout/Backoff transitions.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package acsma

import (
	"testing"
	"time"

	"github.com/ausocean/athernet/macframe"
)

func TestEmptyTimerNeverExpires(t *testing.T) {
	timer := emptyTimer()
	if timer.isExpired(time.Now().Add(time.Hour)) {
		t.Errorf("emptyTimer isExpired = true, want false")
	}
}

func TestTimeoutTimerExpiresAfterDuration(t *testing.T) {
	task := NewTask(macframe.NewAck(1, 2, 0))
	now := time.Now()
	timer := timeoutTimer(now, &task, 0)

	if timer.isExpired(now) {
		t.Errorf("isExpired at start = true, want false")
	}
	if !timer.isExpired(now.Add(AckTimeout + time.Millisecond)) {
		t.Errorf("isExpired after AckTimeout = false, want true")
	}
}

func TestResendsCarriesThroughBackoffAndTimeout(t *testing.T) {
	task := NewTask(macframe.NewAck(1, 2, 0))
	now := time.Now()

	backoff := backoffTimer(now, &task, 3, 1, SlotTimeout)
	if backoff.resends != 3 {
		t.Fatalf("backoffTimer resends = %d, want 3", backoff.resends)
	}

	next := timeoutTimer(now, backoff.task, backoff.resends+1)
	if next.resends != 4 {
		t.Errorf("timeoutTimer resends after backoff = %d, want 4", next.resends)
	}
}
