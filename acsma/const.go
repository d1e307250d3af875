/*
NAME
  const.go

DESCRIPTION
  const.go collects the tunable constants of the CSMA/CA MAC layer. Values
  match the canonical defaults from the design document; implementations
  are expected to retune FreeThreshold for their actual hardware.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package acsma implements the CSMA/CA medium-access layer: a
// single-threaded state machine coordinating transmit back-off, ACK
// timers, retransmission, collision avoidance via channel energy sensing,
// deduplication of received frames, and the ping/throughput control
// plane.
package acsma

import "time"

const (
	// AckTimeout bounds how long the daemon waits for an Ack after
	// transmitting a Data frame before declaring the ACK missed.
	AckTimeout = 1000 * time.Millisecond

	// SlotTimeout is the quantum of back-off delay.
	SlotTimeout = 100 * time.Millisecond

	// MaxRange caps the exponential back-off window.
	MaxRange = 16

	// MaxResends is the number of retransmissions attempted after the
	// first transmission before a write task surfaces LinkError.
	MaxResends = 10

	// FreeThreshold is the channel-energy level below which the medium is
	// considered idle. Calibrated for a quiet acoustic loopback; real
	// hardware deployments should retune this against measured ambient
	// energy.
	FreeThreshold = 0.01

	// JarCapacity bounds the receive dedup ring buffer.
	JarCapacity = 128

	// ReceiveTimeout bounds each iteration's wait for the next decoded
	// ather frame, so the daemon's timer and enqueue phases run at a
	// bounded cadence even when the channel is silent.
	ReceiveTimeout = 200 * time.Millisecond

	// PingInterval is the delay between successive ping probes.
	PingInterval = 1 * time.Second

	// PingTimeout bounds how long a ping probe waits for MacPingResp.
	PingTimeout = 2 * time.Second

	// PerfInterval is the throughput reporting cadence of Perf.
	PerfInterval = 1 * time.Second

	// PerfTimeout bounds how long Perf waits for a single frame's Ack
	// before giving up.
	PerfTimeout = 2 * time.Second
)
