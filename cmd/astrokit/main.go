// Package main runs the astrokit command line.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	astrokitcmd "github.com/louisbranch/astrokit/internal/cmd/astrokit"
	"github.com/louisbranch/astrokit/internal/platform/config"
)

func main() {
	cfg, args, err := astrokitcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse config: %v", err)
	}
	log.SetPrefix("[ASTROKIT] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err = astrokitcmd.Run(ctx, cfg, args, os.Stdout)
	stop()
	if err != nil {
		config.ExitWithCode(astrokitcmd.ExitCode(err), "%s", astrokitcmd.Describe(cfg.Locale, err))
	}
}
