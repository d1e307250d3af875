/*
NAME
  bits.go

DESCRIPTION
  bits.go provides little-endian bit/uint conversions shared by the MAC
  frame header encoder and decoder.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package macframe implements the link-layer frame taxonomy: Data, Ack,
// MacPingReq and MacPingResp, their fixed-width bit-packed header, and
// encode/decode to and from BitVec-style []bool payloads.
package macframe

// putUint appends the low width bits of v to bits, least-significant bit
// first, matching the little-endian-within-field convention used by the
// symbol codec's bit order.
func putUint(bits []bool, v uint64, width int) []bool {
	for i := 0; i < width; i++ {
		bits = append(bits, v&(1<<i) != 0)
	}
	return bits
}

// takeUint reads width bits from bits starting at offset, least-significant
// bit first, and returns the decoded value.
func takeUint(bits []bool, offset, width int) uint64 {
	var v uint64
	for i := 0; i < width; i++ {
		if bits[offset+i] {
			v |= 1 << i
		}
	}
	return v
}
