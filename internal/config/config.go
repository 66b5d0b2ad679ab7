// Package config handles logger setup and command line options of the commands
package config

import (
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger returns a logger for the verbosity selected on the command line
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
