/*
NAME
  backoff.go

DESCRIPTION
  backoff.go draws the randomized contention window used between
  collision-avoidance retries.

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
	"time"
)

// backoffDuration draws k uniformly from [0, min(2^retry, MaxRange)] and
// returns k * SlotTimeout.
func backoffDuration(rng *rand.Rand, retry int) time.Duration {
	window := 1 << retry
	if window > MaxRange || window <= 0 {
		window = MaxRange
	}
	k := rng.Intn(window + 1)
	return time.Duration(k) * SlotTimeout
}
