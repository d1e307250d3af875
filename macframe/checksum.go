/*
NAME
  checksum.go

DESCRIPTION
  checksum.go computes the 8-bit CRC guarding every MAC frame against
  corruption introduced by the acoustic channel.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package macframe

// crc8Table is the lookup table for CRC-8-CCITT (polynomial 0x07), built
// once at init so checksum computation over a frame's bits is a handful of
// table lookups rather than a bit-at-a-time loop.
var crc8Table [256]byte

func init() {
	const poly = 0x07
	for i := 0; i < 256; i++ {
		crc := byte(i)
		for bit := 0; bit < 8; bit++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
		crc8Table[i] = crc
	}
}

// checksum computes the CRC-8 of bits, packed LSB-first into bytes; a
// final partial byte is padded with zero bits.
func checksum(bits []bool) byte {
	var crc byte
	for i := 0; i < len(bits); i += 8 {
		var b byte
		for j := 0; j < 8 && i+j < len(bits); j++ {
			if bits[i+j] {
				b |= 1 << j
			}
		}
		crc = crc8Table[crc^b]
	}
	return crc
}
