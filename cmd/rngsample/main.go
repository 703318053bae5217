package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/otelrand/frandrng"
	platformcmd "github.com/louisbranch/otelrand/internal/platform/cmd"
	"github.com/louisbranch/otelrand/internal/platform/config"
	"github.com/louisbranch/otelrand/internal/tools/rngsample"
	"github.com/louisbranch/otelrand/setup"
)

func main() {
	cfg, err := rngsample.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source := frandrng.New()
	options := platformcmd.RunOptions{Rng: source}
	err = platformcmd.RunWithTelemetryAndOptions(ctx, platformcmd.ServiceSample, options, func(ctx context.Context, rt *setup.Runtime) error {
		return rngsample.Run(ctx, cfg, os.Stdout, source, rt.Tracer(platformcmd.ServiceSample))
	})
	if err != nil {
		config.Exitf("sample: %v", err)
	}
}
