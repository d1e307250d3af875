/*
NAME
  reader.go

DESCRIPTION
  reader.go implements the reader handle: draining the daemon's decoded
  frame channel into a seq-ordered reassembly bucket until EOP.

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
	"sort"

	"github.com/ausocean/athernet/acsma"
	"github.com/ausocean/utils/logging"
)

// Reader is the public read-side handle of a Socket.
type Reader struct {
	daemon *acsma.Daemon
	log    logging.Logger
}

// Read drains frames addressed from src into a reassembly bucket keyed by
// sequence number, until a frame with EOP set arrives, then concatenates
// the bucket's payloads in sequence order into a single bit vector. It
// returns early if ctx is cancelled or the daemon's frame channel closes
// before an EOP frame is seen.
func (r *Reader) Read(ctx context.Context, src uint8) ([]bool, error) {
	bucket := make(map[uint8][]bool)

	for {
		select {
		case frame, open := <-r.daemon.Frames():
			if !open {
				return assemble(bucket), ctx.Err()
			}
			if frame.Header.Src != src {
				continue
			}
			if _, seen := bucket[frame.Header.Seq]; !seen {
				bucket[frame.Header.Seq] = frame.Payload
			}
			if frame.Header.EOP {
				r.log.Info("athersock: read complete", "src", src, "frames", len(bucket))
				return assemble(bucket), nil
			}
		case <-ctx.Done():
			return assemble(bucket), ctx.Err()
		}
	}
}

// Close signals the daemon that nobody is listening on Frames() any more.
func (r *Reader) Close() { r.daemon.CloseReader() }

// assemble concatenates bucket's payloads in ascending sequence order.
func assemble(bucket map[uint8][]bool) []bool {
	seqs := make([]uint8, 0, len(bucket))
	for seq := range bucket {
		seqs = append(seqs, seq)
	}
	sort.Slice(seqs, func(i, j int) bool { return seqs[i] < seqs[j] })

	var result []bool
	for _, seq := range seqs {
		result = append(result, bucket[seq]...)
	}
	return result
}
