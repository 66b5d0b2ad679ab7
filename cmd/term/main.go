// Package main runs CHIP-8 programs inside a text terminal
package main

import (
	"context"
	"errors"
	"os"

	"github.com/mnafees/chopper/internal"
	"github.com/mnafees/chopper/internal/config"
	"github.com/mnafees/chopper/pkg/beeper"
	"github.com/mnafees/chopper/pkg/term"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := config.Parse("chopper-term", os.Args[1:])
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *config.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		}
		if err.Error() != "" {
			logger.Error("Invalid options", log.Err(err))
		}
		os.Exit(1)
	}
	printBanner(logger, opts)

	if err := run(ctx, logger, opts); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, opts config.Options) error {
	vm, err := internal.NewC8VM(opts.Settings, logger)
	if err != nil {
		return err
	}
	if err := vm.LoadProgram(opts.ROM); err != nil {
		return err
	}

	var buzzer term.Beeper
	if !opts.Settings.Mute {
		b, err := beeper.New()
		if err != nil {
			logger.Warn("Audio disabled", log.Err(err))
		} else {
			defer func() { _ = b.Close() }()
			buzzer = b
		}
	}

	terminal, err := term.New(buzzer)
	if err != nil {
		return err
	}
	defer terminal.Close()

	return vm.Run(ctx, terminal)
}

func printBanner(logger *log.Logger, opts config.Options) {
	if opts.Quiet {
		return
	}
	logger.Info("chopper", log.String("version", buildinfo.Version(version, commit, date)))
}
