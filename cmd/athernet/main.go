/*
DESCRIPTION
  athernet is a command-line client for the acoustic data-link socket: it
  opens a WAV-file-backed physical layer and runs the CSMA/CA daemon. With
  -ping it pings the -dest address; otherwise it runs the daemon until
  interrupted. It does not send or read file data.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main is the athernet command-line client.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/athernet/atherconf"
	"github.com/ausocean/athernet/athersock"
	"github.com/ausocean/athernet/device/wavfile"
	"github.com/ausocean/utils/logging"
)

const (
	logPath      = "/var/log/athernet/athernet.log"
	logMaxSize   = 100 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = true
)

func main() {
	var (
		addr    = flag.Uint("addr", 0, "local MAC address")
		dest    = flag.Uint("dest", 0, "destination MAC address for -ping")
		inPath  = flag.String("in", "", "WAV file to read captured audio from")
		outPath = flag.String("out", "out.wav", "WAV file to write transmitted audio to")
		ping    = flag.Bool("ping", false, "ping -dest instead of idling until interrupted")
	)
	flag.Parse()

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	log := logging.New(logVerbosity, fileLog, logSuppress)

	cfg := atherconf.Config{
		Address:     uint8(*addr),
		AtherConfig: atherconf.DefaultAtherConfig(),
	}

	source, err := wavfile.NewSource(*inPath, cfg.AtherConfig.StreamConfig.BufferSize, log)
	if err != nil {
		log.Fatal("could not open input WAV", "err", err)
	}
	defer source.Close()

	sink, err := wavfile.NewSink(*outPath, cfg.AtherConfig.StreamConfig.SampleRate, log)
	if err != nil {
		log.Fatal("could not open output WAV", "err", err)
	}
	defer sink.Close()

	monitorSource, err := wavfile.NewSource(*inPath, cfg.AtherConfig.StreamConfig.BufferSize, log)
	if err != nil {
		log.Fatal("could not open monitor WAV", "err", err)
	}
	defer monitorSource.Close()

	sock := athersock.New(cfg, sink, source, monitorSource, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		if err := sock.Run(ctx); err != nil {
			log.Warning("socket run exited", "err", err)
		}
	}()

	writer := sock.Writer()
	if *ping {
		if err := writer.Ping(ctx, uint8(*dest)); err != nil {
			fmt.Fprintln(os.Stderr, "ping:", err)
			os.Exit(1)
		}
		return
	}

	<-ctx.Done()
}
