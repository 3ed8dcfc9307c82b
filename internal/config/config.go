// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/asm4004/internal/arch"
	"github.com/retroenv/asm4004/internal/arch/i4004"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateCatalog returns the instruction catalog of the supported architecture.
func CreateCatalog() arch.Catalog {
	return i4004.New()
}
