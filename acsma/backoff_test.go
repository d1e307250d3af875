/*
NAME
  backoff_test.go

DESCRIPTION
  backoff_test.go tests the randomized back-off duration stays within its
  exponentially growing, range-capped window across many draws.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package acsma

import (
	"math/rand"
	"testing"
	"time"
)

func TestBackoffDurationWithinWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for retry := 0; retry < 10; retry++ {
		window := 1 << retry
		if window > MaxRange {
			window = MaxRange
		}
		max := time.Duration(window) * SlotTimeout
		for i := 0; i < 100; i++ {
			d := backoffDuration(rng, retry)
			if d < 0 || d > max {
				t.Fatalf("backoffDuration(retry=%d) = %v, want in [0, %v]", retry, d, max)
			}
		}
	}
}

func TestBackoffDurationCapsAtMaxRange(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	max := time.Duration(MaxRange) * SlotTimeout
	for i := 0; i < 100; i++ {
		d := backoffDuration(rng, 20) // retry far beyond MaxRange's exponent.
		if d > max {
			t.Fatalf("backoffDuration(retry=20) = %v, want capped at %v", d, max)
		}
	}
}
