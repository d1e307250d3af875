/*
NAME
  bits_test.go

DESCRIPTION
  bits_test.go tests the little-endian bit-field packing helpers.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package macframe

import "testing"

func TestPutTakeUintRoundTrip(t *testing.T) {
	cases := []struct {
		v     uint64
		width int
	}{
		{0, 8}, {255, 8}, {1, 1}, {0, 1}, {42, 8}, {127, 7},
	}
	for _, c := range cases {
		bits := putUint(nil, c.v, c.width)
		if len(bits) != c.width {
			t.Fatalf("putUint(%d, %d) produced %d bits, want %d", c.v, c.width, len(bits), c.width)
		}
		got := takeUint(bits, 0, c.width)
		if got != c.v {
			t.Errorf("takeUint(putUint(%d, %d)) = %d, want %d", c.v, c.width, got, c.v)
		}
	}
}

func TestTakeUintAtOffset(t *testing.T) {
	var bits []bool
	bits = putUint(bits, 5, 4)
	bits = putUint(bits, 9, 4)
	if got := takeUint(bits, 4, 4); got != 9 {
		t.Errorf("takeUint at offset 4 = %d, want 9", got)
	}
}
