/*
NAME
  socket.go

DESCRIPTION
  socket.go assembles the ather physical layer and the acsma MAC daemon
  into a Socket, and exposes the public Writer and Reader handles.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package athersock is the public socket facade over the acsma MAC layer:
// Writer and Reader handles exposing write, read, ping and a throughput
// probe.
package athersock

import (
	"context"

	"github.com/ausocean/athernet/acsma"
	"github.com/ausocean/athernet/ather"
	"github.com/ausocean/athernet/atherconf"
	"github.com/ausocean/utils/logging"
)

// Socket owns one acsma.Daemon and hands out Writer/Reader handles bound
// to it.
type Socket struct {
	daemon *acsma.Daemon
	log    logging.Logger
}

// New builds the ather input/output streams from config, wires them into
// a new acsma.Daemon and returns the Socket. sink and source are the
// primary transmit/receive pair; monitorSource is the independent sample
// stream the daemon uses for channel-energy sensing (spec section 5 keeps
// the write-monitor's sample cache separate from the main receive path).
func New(config atherconf.Config, sink ather.Sink, source, monitorSource ather.Source, l logging.Logger) *Socket {
	sampleRate := float64(config.AtherConfig.StreamConfig.SampleRate)
	atherConfig := ather.NewConfig(config.AtherConfig.Frequency, config.AtherConfig.BitRate, sampleRate)

	output := ather.NewOutput(atherConfig, sink, l)
	input := ather.NewInput(atherConfig, source, l)

	band := [2]float64{atherConfig.Frequency * 0.5, atherConfig.Frequency * 1.5}
	daemon := acsma.NewDaemon(config.Address, output, input, monitorSource, sampleRate, band, l)

	return &Socket{daemon: daemon, log: l}
}

// Run executes the MAC daemon's main loop. It blocks until ctx is
// cancelled or both the Writer and Reader handles have been closed.
func (s *Socket) Run(ctx context.Context) error { return s.daemon.Run(ctx) }

// Writer returns the write-side handle.
func (s *Socket) Writer() *Writer {
	return &Writer{daemon: s.daemon, address: s.daemon.Address(), log: s.log}
}

// Reader returns the read-side handle.
func (s *Socket) Reader() *Reader { return &Reader{daemon: s.daemon, log: s.log} }
