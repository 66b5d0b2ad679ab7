// Package main implements the chopper ROM tool. It dumps and disassembles
// CHIP-8 programs and runs them headless for a fixed number of cycles.
package main

// Follows the CHIP-8 technical reference found at http://devernay.free.fr/hacks/chip8/C8TECH10.HTM

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mnafees/chopper/internal"
	"github.com/mnafees/chopper/internal/config"
	"github.com/mnafees/chopper/pkg/headless"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	opts, err := config.ParseTool("chopper", os.Args[1:])
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *config.UsageError
		if errors.As(err, &usageErr) {
			fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
			usageErr.ShowUsage()
		}
		if err.Error() != "" {
			logger.Error("Invalid options", log.Err(err))
		}
		os.Exit(1)
	}

	if err := run(os.Stdout, logger, opts); err != nil {
		logger.Error("Processing program failed", log.Err(err))
		os.Exit(1)
	}
}

func run(w io.Writer, logger *log.Logger, opts config.Options) error {
	data, err := os.ReadFile(opts.ROM)
	if err != nil {
		return &internal.ROMError{Path: opts.ROM, Err: err}
	}

	if opts.Settings.DumpROM {
		if _, err := fmt.Fprint(w, internal.HexDump(data, 0x200)); err != nil {
			return fmt.Errorf("writing hex dump: %w", err)
		}
	}
	if opts.Disassemble {
		if err := internal.Disassemble(w, data, 0x200); err != nil {
			return fmt.Errorf("writing disassembly: %w", err)
		}
	}
	if opts.Cycles == 0 {
		return nil
	}

	settings := opts.Settings
	settings.DumpROM = false
	vm, err := internal.NewC8VM(settings, logger)
	if err != nil {
		return err
	}
	if err := vm.LoadProgram(opts.ROM); err != nil {
		return err
	}

	platform := headless.New()
	runErr := vm.RunCycles(platform, opts.Cycles)

	cpu := vm.CPU()
	logger.Info("Run finished",
		log.Int("cycles", opts.Cycles),
		log.Hex("pc", cpu.PC()),
		log.Hex("i", cpu.I()),
		log.Int("frames", platform.Presents))
	if _, err := fmt.Fprint(w, vm.Display().String()); err != nil {
		return fmt.Errorf("writing display: %w", err)
	}
	return runErr
}
