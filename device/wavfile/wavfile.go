/*
NAME
  wavfile.go

DESCRIPTION
  wavfile.go provides a WAV-file-backed implementation of ather.Source and
  ather.Sink, adapted from the file AVDevice pattern for athernet's
  sample-stream collaborators rather than a byte-oriented io.Reader.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package wavfile backs the athernet physical layer with a WAV file
// instead of a sound card: Source reads recorded samples for replay
// against a decoder, and Sink appends transmitted samples to a file for
// later inspection or loopback testing.
package wavfile

import (
	"context"
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"

	"github.com/ausocean/athernet/ather"
	"github.com/ausocean/utils/logging"
)

// Source reads mono float32 samples out of a WAV file, the stand-in for a
// live capture device in tests and offline replay.
type Source struct {
	f          *os.File
	dec        *wav.Decoder
	sampleRate float64
	chunk      int
	log        logging.Logger

	mu        sync.Mutex
	suspended bool
	closed    bool
}

// NewSource opens path for reading and returns a Source that yields chunk
// samples per Next call.
func NewSource(path string, chunk int, l logging.Logger) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "wavfile: could not open %s", path)
	}
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		f.Close()
		return nil, errors.Errorf("wavfile: %s is not a valid WAV file", path)
	}
	dec.ReadInfo()
	return &Source{f: f, dec: dec, sampleRate: float64(dec.SampleRate), chunk: chunk, log: l}, nil
}

// SampleRate returns the WAV file's native sample rate.
func (s *Source) SampleRate() float64 { return s.sampleRate }

// Next returns up to chunk samples normalized to [-1, 1], or false once the
// file is exhausted or closed.
func (s *Source) Next(ctx context.Context) ([]float32, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.suspended {
		return nil, false
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: int(s.sampleRate)},
		Data:           make([]int, s.chunk),
		SourceBitDepth: int(s.dec.BitDepth),
	}
	n, err := s.dec.PCMBuffer(buf)
	if err != nil || n == 0 {
		if err != nil {
			s.log.Warning("wavfile: read failed", "err", err)
		}
		return nil, false
	}

	full := 1 << (buf.SourceBitDepth - 1)
	samples := make([]float32, n)
	for i := 0; i < n; i++ {
		samples[i] = float32(buf.Data[i]) / float32(full)
	}
	return samples, true
}

// Suspend parks the Source; Next returns false until Resume.
func (s *Source) Suspend() {
	s.mu.Lock()
	s.suspended = true
	s.mu.Unlock()
}

// Resume reverses Suspend.
func (s *Source) Resume() {
	s.mu.Lock()
	s.suspended = false
	s.mu.Unlock()
}

// Close releases the underlying file.
func (s *Source) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return s.f.Close()
}

// Sink appends every written track's samples to a WAV file as 16-bit PCM,
// a durable record of everything the physical layer transmitted.
type Sink struct {
	f   *os.File
	enc *wav.Encoder
	mu  sync.Mutex
	log logging.Logger
}

// NewSink creates (or truncates) path and returns a Sink encoding mono
// 16-bit PCM at sampleRate.
func NewSink(path string, sampleRate int, l logging.Logger) (*Sink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "wavfile: could not create %s", path)
	}
	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	return &Sink{f: f, enc: enc, log: l}, nil
}

// Write appends track's samples to the file, scaling from [-1, 1] float32
// to 16-bit PCM.
func (s *Sink) Write(ctx context.Context, track ather.Track) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ints := make([]int, len(track.Samples))
	for i, v := range track.Samples {
		ints[i] = int(v * 32767)
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: track.Format.SampleRate},
		Data:           ints,
		SourceBitDepth: 16,
	}
	if err := s.enc.Write(buf); err != nil {
		return errors.Wrap(err, "wavfile: write failed")
	}
	return nil
}

// Close flushes the WAV header and closes the file. It must be called for
// the file to be a valid, playable WAV.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enc.Close(); err != nil {
		return err
	}
	return s.f.Close()
}
