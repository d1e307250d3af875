/*
NAME
  header.go

DESCRIPTION
  header.go defines the fixed-width frame header shared by every MAC frame
  variant: destination and source address, sequence number, the EOP flag
  and the variant discriminator.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package macframe

// Field widths, in bits, of the fixed-width frame header. These are
// implementation-chosen but fixed at compile time, as required by the
// frame layout. Address and sequence width are each one byte. A MAC frame
// -- header, payload and checksum together -- must fit inside a single
// ather audio frame (ather.PayloadLen bits), since Input.Next hands
// receivePhase exactly one audio frame's bits at a time; PayloadBits in
// frame.go is sized accordingly. See DESIGN.md for the header-width/
// 127-bit sizing.
const (
	TypeBits     = 2
	FlagBits     = 1
	AddrBits     = 8
	SeqBits      = 8
	ChecksumBits = 8

	// HeaderBits is the width of a Header once encoded, excluding checksum.
	HeaderBits = TypeBits + FlagBits + AddrBits + AddrBits + SeqBits

	// MaxSeq is one past the largest representable sequence number.
	MaxSeq = 1 << SeqBits

	// BroadcastAddress is the reserved address meaning "every peer".
	BroadcastAddress = 0
)

// Type discriminates the four MAC frame variants.
type Type uint8

const (
	TypeDataFrame Type = iota
	TypeAckFrame
	TypePingReqFrame
	TypePingRespFrame
)

func (t Type) String() string {
	switch t {
	case TypeDataFrame:
		return "Data"
	case TypeAckFrame:
		return "Ack"
	case TypePingReqFrame:
		return "MacPingReq"
	case TypePingRespFrame:
		return "MacPingResp"
	default:
		return "Unknown"
	}
}

// Header is the fixed-width record common to every frame variant.
type Header struct {
	Type Type
	EOP  bool // Marks the last Data frame of a writer's Write call.
	Dest uint8
	Src  uint8
	Seq  uint8
}

// encode appends the header's bits to dst, LSB-first per field.
func (h Header) encode(dst []bool) []bool {
	dst = putUint(dst, uint64(h.Type), TypeBits)
	dst = putUint(dst, boolToUint(h.EOP), FlagBits)
	dst = putUint(dst, uint64(h.Dest), AddrBits)
	dst = putUint(dst, uint64(h.Src), AddrBits)
	dst = putUint(dst, uint64(h.Seq), SeqBits)
	return dst
}

// decodeHeader reads a Header from the front of bits.
func decodeHeader(bits []bool) Header {
	off := 0
	h := Header{}
	h.Type = Type(takeUint(bits, off, TypeBits))
	off += TypeBits
	h.EOP = takeUint(bits, off, FlagBits) != 0
	off += FlagBits
	h.Dest = uint8(takeUint(bits, off, AddrBits))
	off += AddrBits
	h.Src = uint8(takeUint(bits, off, AddrBits))
	off += AddrBits
	h.Seq = uint8(takeUint(bits, off, SeqBits))
	return h
}

func boolToUint(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
