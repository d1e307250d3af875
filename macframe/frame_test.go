/*
NAME
  frame_test.go

DESCRIPTION
  frame_test.go tests MAC frame encode/decode round trips and checksum
  rejection of corrupted frames.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package macframe

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDataFrameRoundTrip(t *testing.T) {
	payload := []bool{true, false, true, true, false, false, true, false}
	frame, err := NewData(2, 1, 42, true, payload)
	if err != nil {
		t.Fatalf("NewData: %v", err)
	}

	bits := frame.Encode()
	got, err := Decode(bits)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(frame, got); diff != "" {
		t.Errorf("Decode round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestControlFrameRoundTrips(t *testing.T) {
	cases := []struct {
		name  string
		frame Frame
	}{
		{"ack", NewAck(1, 2, 7)},
		{"ping-req", NewPingReq(3, 1, 9)},
		{"ping-resp", NewPingResp(1, 3, 9)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			bits := c.frame.Encode()
			got, err := Decode(bits)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if diff := cmp.Diff(c.frame, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
			if !c.frame.IsControl() {
				t.Errorf("IsControl() = false, want true for %s", c.name)
			}
		})
	}
}

func TestDecodeRejectsCorruptedChecksum(t *testing.T) {
	frame := NewAck(1, 2, 7)
	bits := frame.Encode()
	bits[0] = !bits[0]

	if _, err := Decode(bits); err != ErrChecksum {
		t.Errorf("Decode(corrupted) error = %v, want ErrChecksum", err)
	}
}

func TestDecodeRejectsShortFrame(t *testing.T) {
	if _, err := Decode(make([]bool, 3)); err != ErrShortFrame {
		t.Errorf("Decode(short) error = %v, want ErrShortFrame", err)
	}
}

func TestNewDataRejectsOversizePayload(t *testing.T) {
	_, err := NewData(1, 2, 0, false, make([]bool, PayloadBits+1))
	if err != ErrPayloadTooLong {
		t.Errorf("NewData(oversize) error = %v, want ErrPayloadTooLong", err)
	}
}

func TestTypeStringUnknown(t *testing.T) {
	if got := Type(255).String(); got != "Unknown" {
		t.Errorf("Type(255).String() = %q, want %q", got, "Unknown")
	}
}
