/*
NAME
  writer.go

DESCRIPTION
  writer.go implements the writer handle: chunking a bit vector into Data
  frames, stamping sequence numbers and the EOP flag, and driving them
  through the MAC daemon one at a time (stop-and-wait).

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
	"math/rand"

	"github.com/ausocean/athernet/acsma"
	"github.com/ausocean/athernet/macframe"
	"github.com/ausocean/utils/logging"
)

// Writer is the public write-side handle of a Socket.
type Writer struct {
	daemon  *acsma.Daemon
	address uint8
	log     logging.Logger
}

// Write chunks bits into Data frames addressed to dest, assigns a random
// base sequence number, stamps the last frame with EOP, and enqueues each
// frame in turn, waiting for completion before sending the next (stop-
// and-wait). It returns on the first frame's LinkError, if any.
func (w *Writer) Write(ctx context.Context, dest uint8, bits []bool) error {
	return w.write(ctx, dest, bits)
}

// WriteUnchecked frames bits exactly like Write but addresses them to
// macframe.BroadcastAddress. The daemon still enqueues each frame and
// waits for an Ack, synthesized independently by every recipient; with
// more than two peers on the channel this is best-effort only; see
// DESIGN.md for the broadcast-ACK ambiguity this module does not attempt
// to resolve beyond matching the first Ack that arrives.
func (w *Writer) WriteUnchecked(ctx context.Context, bits []bool) error {
	return w.write(ctx, macframe.BroadcastAddress, bits)
}

// Close signals the daemon that no further write tasks will be enqueued.
func (w *Writer) Close() { w.daemon.CloseWriter() }

func (w *Writer) write(ctx context.Context, dest uint8, bits []bool) error {
	frames := frameBits(dest, w.address, bits)
	for _, frame := range frames {
		task := acsma.NewTask(frame)
		if !w.daemon.Enqueue(task) {
			return &acsma.LinkError{Retries: 0}
		}
		select {
		case err := <-task.Done:
			if err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// frameBits chunks bits into PayloadBits-sized Data frames, assigning a
// random base sequence in [0, MaxSeq - n) and marking the last frame EOP.
// A bit vector of zero length still produces a single empty, EOP-marked
// frame so the peer always observes a packet boundary.
func frameBits(dest, src uint8, bits []bool) []macframe.Frame {
	n := (len(bits) + macframe.PayloadBits - 1) / macframe.PayloadBits
	if n == 0 {
		n = 1
	}
	span := macframe.MaxSeq - n
	if span < 1 {
		span = 1
	}
	base := uint8(rand.Intn(span))

	frames := make([]macframe.Frame, 0, n)
	for i := 0; i < n; i++ {
		start := i * macframe.PayloadBits
		end := start + macframe.PayloadBits
		if end > len(bits) {
			end = len(bits)
		}
		eop := i == n-1
		frame, _ := macframe.NewData(dest, src, base+uint8(i), eop, bits[start:end])
		frames = append(frames, frame)
	}
	return frames
}
