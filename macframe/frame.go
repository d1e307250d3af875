/*
NAME
  frame.go

DESCRIPTION
  frame.go defines the MAC frame taxonomy -- Data, Ack, MacPingReq and
  MacPingResp -- as a single tagged type discriminated by Header.Type, and
  its encode/decode to and from a bit vector.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package macframe

import (
	"errors"

	"github.com/ausocean/athernet/ather"
)

// PayloadBits is the maximum payload length, in bits, of a Data frame:
// whatever is left of a single 127-bit ather audio frame once HeaderBits
// and ChecksumBits are taken out (127 - 27 - 8 = 92). A Data frame always
// fits in exactly one audio frame, so receivePhase's single Input.Next
// call per iteration is enough to recover it.
const PayloadBits = ather.PayloadLen - HeaderBits - ChecksumBits

// ErrChecksum is returned by Decode when a frame's checksum does not match
// its contents; the caller drops the frame silently per the MAC layer's
// error handling design.
var ErrChecksum = errors.New("macframe: checksum mismatch")

// ErrPayloadTooLong is returned by NewData when payload exceeds PayloadBits.
var ErrPayloadTooLong = errors.New("macframe: payload exceeds PayloadBits")

// ErrShortFrame is returned by Decode when bits is too short to contain a
// well-formed header and checksum.
var ErrShortFrame = errors.New("macframe: frame too short")

// Frame is a single tagged MAC frame. Payload is only meaningful when
// Header.Type is TypeDataFrame; the nested enum hierarchy the original
// implementation used collapses here into one struct with a discriminator,
// the idiomatic Go rendition of a closed sum type noted in the design
// notes.
type Frame struct {
	Header  Header
	Payload []bool // Data only; len(Payload) <= PayloadBits.
}

// NewData returns a Data frame. EOP marks the frame as the last of a
// higher-level Write call.
func NewData(dest, src, seq uint8, eop bool, payload []bool) (Frame, error) {
	if len(payload) > PayloadBits {
		return Frame{}, ErrPayloadTooLong
	}
	return Frame{
		Header:  Header{Type: TypeDataFrame, Dest: dest, Src: src, Seq: seq, EOP: eop},
		Payload: payload,
	}, nil
}

// NewAck returns an Ack frame mirroring the dest/src/seq of the frame it
// acknowledges, with dest and src swapped relative to the original.
func NewAck(dest, src, seq uint8) Frame {
	return Frame{Header: Header{Type: TypeAckFrame, Dest: dest, Src: src, Seq: seq}}
}

// NewPingReq returns a MacPingReq frame.
func NewPingReq(dest, src, seq uint8) Frame {
	return Frame{Header: Header{Type: TypePingReqFrame, Dest: dest, Src: src, Seq: seq}}
}

// NewPingResp returns a MacPingResp frame mirroring a MacPingReq.
func NewPingResp(dest, src, seq uint8) Frame {
	return Frame{Header: Header{Type: TypePingRespFrame, Dest: dest, Src: src, Seq: seq}}
}

// IsControl reports whether f carries no payload (Ack, MacPingReq or
// MacPingResp).
func (f Frame) IsControl() bool { return f.Header.Type != TypeDataFrame }

// Encode serializes f to a bit vector: header, payload (Data only), then
// an 8-bit CRC over everything preceding it.
func (f Frame) Encode() []bool {
	bits := make([]bool, 0, HeaderBits+len(f.Payload)+ChecksumBits)
	bits = f.Header.encode(bits)
	if f.Header.Type == TypeDataFrame {
		bits = append(bits, f.Payload...)
	}
	sum := checksum(bits)
	bits = putUint(bits, uint64(sum), ChecksumBits)
	return bits
}

// Decode parses a Frame from bits, validating its checksum. A Data frame
// is assumed to carry every bit between the header and the trailing
// checksum as payload; control frames carry none.
func Decode(bits []bool) (Frame, error) {
	if len(bits) < HeaderBits+ChecksumBits {
		return Frame{}, ErrShortFrame
	}

	body := bits[:len(bits)-ChecksumBits]
	wantSum := uint8(takeUint(bits, len(bits)-ChecksumBits, ChecksumBits))
	if checksum(body) != wantSum {
		return Frame{}, ErrChecksum
	}

	header := decodeHeader(body)
	var payload []bool
	if header.Type == TypeDataFrame {
		payload = append([]bool(nil), body[HeaderBits:]...)
	}
	return Frame{Header: header, Payload: payload}, nil
}
