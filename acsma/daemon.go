/*
NAME
  daemon.go

DESCRIPTION
  daemon.go is the CSMA/CA core: a single task owning all mutable MAC
  state, running the receive / timer / enqueue phases every iteration with
  no locking inside the loop.

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
	"math/rand"
	"time"

	"github.com/ausocean/athernet/ather"
	"github.com/ausocean/athernet/macframe"
	"github.com/ausocean/utils/logging"
)

// Daemon is the MAC socket daemon: the single task that owns the write
// timer, the dedup jar and the channel-sensing monitor.
type Daemon struct {
	address uint8
	output  *ather.Output
	input   *ather.Input
	monitor *monitor
	log     logging.Logger

	writeCh    chan Task
	readCh     chan macframe.Frame
	readerDone chan struct{}

	rng *rand.Rand
}

// NewDaemon returns a Daemon for address, built on output/input for the
// ather layer and monitorSource for channel sensing. The monitor source is
// deliberately independent of input: spec section 5 calls out the
// write-monitor sample cache as its own piece of per-socket shared state.
func NewDaemon(address uint8, output *ather.Output, input *ather.Input, monitorSource ather.Source, sampleRate float64, band [2]float64, l logging.Logger) *Daemon {
	return &Daemon{
		address:    address,
		output:     output,
		input:      input,
		monitor:    newMonitor(monitorSource, sampleRate, band),
		log:        l,
		writeCh:    make(chan Task, 256),
		readCh:     make(chan macframe.Frame, 256),
		readerDone: make(chan struct{}),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Enqueue submits a write task to the daemon. It returns false if the
// daemon has stopped accepting writes (the writer handle was closed).
func (d *Daemon) Enqueue(task Task) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	d.writeCh <- task
	return true
}

// CloseWriter signals that no further write tasks will be enqueued. The
// daemon exits once both the writer and the reader have been closed.
func (d *Daemon) CloseWriter() { close(d.writeCh) }

// CloseReader signals that nobody is listening on Frames() any more.
func (d *Daemon) CloseReader() { close(d.readerDone) }

// Frames returns the channel Data frames addressed to this socket and not
// already seen are forwarded to.
func (d *Daemon) Frames() <-chan macframe.Frame { return d.readCh }

// Address returns the daemon's local MAC address.
func (d *Daemon) Address() uint8 { return d.address }

// Run executes the daemon's main loop until both the writer and reader
// have been closed, or ctx is cancelled.
func (d *Daemon) Run(ctx context.Context) error {
	go d.monitor.run(ctx)

	timer := emptyTimer()
	jar := newJar(JarCapacity)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		timer = d.receivePhase(ctx, timer, jar)
		timer = d.timerPhase(ctx, timer)

		if timer.kind == kindEmpty {
			next, exit := d.enqueuePhase(ctx)
			if exit {
				return nil
			}
			timer = next
		}
	}
}

// receivePhase is Step A: await the next decoded bit-frame under
// ReceiveTimeout and react to it.
func (d *Daemon) receivePhase(ctx context.Context, timer writeTimer, jar *jar) writeTimer {
	rctx, cancel := context.WithTimeout(ctx, ReceiveTimeout)
	bits, ok := d.input.Next(rctx)
	cancel()
	if !ok {
		return timer
	}

	frame, err := macframe.Decode(bits)
	if err != nil {
		return timer // Checksum failure: drop.
	}
	if !isForSelf(d.address, frame.Header) {
		return timer
	}

	switch frame.Header.Type {
	case macframe.TypeDataFrame, macframe.TypePingReqFrame:
		d.respond(ctx, frame)
		if frame.Header.Type == macframe.TypeDataFrame {
			d.forward(ctx, frame, jar)
		}
		return timer
	case macframe.TypeAckFrame, macframe.TypePingRespFrame:
		return d.clearTimer(timer, frame)
	default:
		return timer
	}
}

// respond synthesizes and sends the Ack or MacPingResp for a received
// Data or MacPingReq frame. This write is urgent and bypasses CSMA
// back-off entirely: the peer is already sitting in its ACK window.
func (d *Daemon) respond(ctx context.Context, frame macframe.Frame) {
	var resp macframe.Frame
	switch frame.Header.Type {
	case macframe.TypeDataFrame:
		resp = macframe.NewAck(frame.Header.Src, d.address, frame.Header.Seq)
	case macframe.TypePingReqFrame:
		resp = macframe.NewPingResp(frame.Header.Src, d.address, frame.Header.Seq)
	default:
		return
	}
	if err := d.output.Write(ctx, resp.Encode()); err != nil {
		d.log.Warning("acsma: failed to send response", "type", resp.Header.Type.String(), "err", err)
	}
}

// forward dedups a Data frame against the jar and, if new, pushes it to
// the reader channel. Every occurrence is ACKed by respond regardless of
// dedup outcome.
func (d *Daemon) forward(ctx context.Context, frame macframe.Frame, j *jar) {
	if j.contains(frame.Header.Src, frame.Header.Seq) {
		return
	}
	j.push(frame.Header.Src, frame.Header.Seq)
	select {
	case d.readCh <- frame:
	case <-ctx.Done():
	case <-d.readerDone:
	}
}

// clearTimer consults the current write timer against a received Ack or
// MacPingResp and, if it matches the pending task, completes it and
// clears the timer.
func (d *Daemon) clearTimer(timer writeTimer, resp macframe.Frame) writeTimer {
	if timer.kind != kindTimeout || timer.task == nil {
		return timer
	}
	if !acknowledges(timer.task.Frame, resp) {
		return timer
	}
	timer.task.complete(nil)
	return emptyTimer()
}

// acknowledges reports whether resp is the Ack/MacPingResp that matches
// sent: same type family, same sequence number.
func acknowledges(sent, resp macframe.Frame) bool {
	switch sent.Header.Type {
	case macframe.TypeDataFrame:
		return resp.Header.Type == macframe.TypeAckFrame && resp.Header.Seq == sent.Header.Seq
	case macframe.TypePingReqFrame:
		return resp.Header.Type == macframe.TypePingRespFrame && resp.Header.Seq == sent.Header.Seq
	default:
		return false
	}
}

// isForSelf reports whether a frame addressed to dest should be accepted
// by a socket at address: either unicast to address, or broadcast from
// somebody other than address itself.
func isForSelf(address uint8, h macframe.Header) bool {
	if h.Dest == address {
		return true
	}
	return h.Dest == macframe.BroadcastAddress && h.Src != address
}

// timerPhase is Step B: react to the write timer's expiry, if any.
func (d *Daemon) timerPhase(ctx context.Context, timer writeTimer) writeTimer {
	if timer.kind == kindEmpty || !timer.isExpired(time.Now()) {
		return timer
	}

	now := time.Now()
	switch timer.kind {
	case kindTimeout:
		return backoffTimer(now, timer.task, timer.resends, 0, backoffDuration(d.rng, 0))

	case kindBackoff:
		if timer.task == nil {
			return emptyTimer()
		}
		if !d.monitor.isFree() {
			return backoffTimer(now, timer.task, timer.resends, timer.retry+1, backoffDuration(d.rng, timer.retry+1))
		}
		if timer.resends > MaxResends {
			timer.task.complete(&LinkError{Retries: timer.resends})
			return emptyTimer()
		}
		if d.transmit(ctx, timer.task.Frame) {
			return timeoutTimer(now, timer.task, timer.resends+1)
		}
		return backoffTimer(now, timer.task, timer.resends, timer.retry+1, backoffDuration(d.rng, timer.retry+1))

	default:
		return emptyTimer()
	}
}

// enqueuePhase is Step C: non-blockingly poll the write-task queue when no
// timer is active. exit reports whether both the writer and reader have
// been closed and the daemon should stop.
func (d *Daemon) enqueuePhase(ctx context.Context) (timer writeTimer, exit bool) {
	select {
	case task, open := <-d.writeCh:
		if !open {
			select {
			case <-d.readerDone:
				return emptyTimer(), true
			default:
				return emptyTimer(), false
			}
		}
		now := time.Now()
		if !d.monitor.isFree() {
			return backoffTimer(now, &task, 0, 0, backoffDuration(d.rng, 0)), false
		}
		if d.transmit(ctx, task.Frame) {
			return timeoutTimer(now, &task, 1), false
		}
		return backoffTimer(now, &task, 0, 1, backoffDuration(d.rng, 1)), false
	default:
		return emptyTimer(), false
	}
}

// transmit writes frame's encoded bits to the ather output and reports
// whether the write landed without a detected collision. The original
// implementation's write_bits always reports success -- collision
// detection on the sink is stubbed -- and this module preserves that
// regression by default; see CollisionDetector for the opt-in hook a
// real sink or test can provide instead.
func (d *Daemon) transmit(ctx context.Context, frame macframe.Frame) bool {
	err := d.output.Write(ctx, frame.Encode())
	if err != nil {
		d.log.Error("acsma: transmit failed", "err", err)
		return false
	}
	if cd, ok := d.monitorSink(); ok {
		return !cd.DetectCollision()
	}
	return true
}

// monitorSink returns the output's sink as a CollisionDetector when it
// implements the optional interface, so a test fixture can opt into real
// collision signaling instead of the stubbed always-succeeds write.
func (d *Daemon) monitorSink() (CollisionDetector, bool) {
	cd, ok := d.output.Sink().(CollisionDetector)
	return cd, ok
}

// CollisionDetector is an optional capability a Sink can implement to
// report a genuine transmit collision instead of the default stub, which
// always reports a clean send.
type CollisionDetector interface {
	DetectCollision() bool
}
