package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	simulatecmd "github.com/isakal/briskula/internal/cmd/simulate"
	platformcmd "github.com/isakal/briskula/internal/platform/cmd"
)

func main() {
	cfg, err := simulatecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[SIMULATE] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceSimulate, func(ctx context.Context) error {
		return simulatecmd.Run(ctx, cfg, os.Stdout)
	})
	if err != nil {
		log.Fatalf("simulate: %v", err)
	}
}
