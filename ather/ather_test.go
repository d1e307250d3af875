/*
NAME
  ather_test.go

DESCRIPTION
  ather_test.go tests Output/Input round tripping a bit string through an
  in-memory sample buffer, standing in for the acoustic channel.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package ather

import (
	"context"
	"testing"

	"github.com/ausocean/utils/logging"
)

const (
	testFrequency  = 6000.0
	testBitRate    = 1000.0
	testSampleRate = 48000.0
)

// memSink collects every written track's samples into a single buffer.
type memSink struct{ samples []float32 }

func (m *memSink) Write(ctx context.Context, track Track) error {
	m.samples = append(m.samples, track.Samples...)
	return nil
}

// memSource replays a fixed buffer in chunk-sized pulls.
type memSource struct {
	samples []float32
	chunk   int
	pos     int
}

func (m *memSource) Next(ctx context.Context) ([]float32, bool) {
	if m.pos >= len(m.samples) {
		return nil, false
	}
	end := m.pos + m.chunk
	if end > len(m.samples) {
		end = len(m.samples)
	}
	out := m.samples[m.pos:end]
	m.pos = end
	return out, true
}

func (m *memSource) Suspend()            {}
func (m *memSource) Resume()             {}
func (m *memSource) SampleRate() float64 { return testSampleRate }

func TestOutputInputRoundTrip(t *testing.T) {
	config := NewConfig(testFrequency, testBitRate, testSampleRate)
	log := (*logging.TestLogger)(t)

	sink := &memSink{}
	output := NewOutput(config, sink, log)

	bits := []bool{true, false, true, true, false, false, true, false, true, true}
	if err := output.Write(context.Background(), bits); err != nil {
		t.Fatalf("Write: %v", err)
	}

	source := &memSource{samples: sink.samples, chunk: 64}
	input := NewInput(config, source, log)

	got, ok := input.Next(context.Background())
	if !ok {
		t.Fatalf("Next() ok = false, want true")
	}
	if len(got) != len(bits) {
		t.Fatalf("decoded %d bits, want %d", len(got), len(bits))
	}
	for i, want := range bits {
		if got[i] != want {
			t.Errorf("bit %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestOutputInputRoundTripEmptyPayload(t *testing.T) {
	config := NewConfig(testFrequency, testBitRate, testSampleRate)
	log := (*logging.TestLogger)(t)

	sink := &memSink{}
	output := NewOutput(config, sink, log)
	if err := output.Write(context.Background(), nil); err != nil {
		t.Fatalf("Write: %v", err)
	}

	source := &memSource{samples: sink.samples, chunk: 64}
	input := NewInput(config, source, log)

	got, ok := input.Next(context.Background())
	if !ok {
		t.Fatalf("Next() ok = false, want true")
	}
	if len(got) != 0 {
		t.Errorf("decoded %d bits, want 0", len(got))
	}
}
