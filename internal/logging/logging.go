// Package logging provides the prover's structured logger, built on
// hashicorp/go-hclog the way hashicorp-nomad's agent command test wires its
// logger (hclog.NewInterceptLogger with a LoggerOptions{Name, Level}),
// and named per component for filter-scoped verbosity.
package logging

import (
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Env variables controlling verbosity. DEBUG_PROVER turns logging on at
// all; DEBUG_PROVER_LEVEL picks an hclog level name (default "info");
// DEBUG_PROVER_FILTER restricts output to a comma-separated allowlist of
// component names (empty means all components).
const (
	EnvEnable = "DEBUG_PROVER"
	EnvLevel  = "DEBUG_PROVER_LEVEL"
	EnvFilter = "DEBUG_PROVER_FILTER"
)

// root is the process-wide logger, built from the environment at package
// init. Components obtain their own named sub-logger via Named.
var root hclog.Logger

func init() {
	root = FromEnv()
}

// FromEnv builds a fresh root logger from the current environment. Tests
// call this directly rather than relying on process-start init timing.
func FromEnv() hclog.Logger {
	level := hclog.Info
	if os.Getenv(EnvEnable) == "" {
		level = hclog.Off
	} else if lv := os.Getenv(EnvLevel); lv != "" {
		level = hclog.LevelFromString(lv)
	}

	return hclog.NewInterceptLogger(&hclog.LoggerOptions{
		Name:  "prover",
		Level: level,
	})
}

// Named returns a sub-logger scoped to component, discarding output
// entirely if DEBUG_PROVER_FILTER names a nonempty allowlist that omits
// it. An empty filter allows every component through.
func Named(component string) hclog.Logger {
	if !allowed(component) {
		return hclog.NewNullLogger()
	}
	return root.Named(component)
}

func allowed(component string) bool {
	filter := os.Getenv(EnvFilter)
	if filter == "" {
		return true
	}
	for _, name := range strings.Split(filter, ",") {
		if strings.TrimSpace(name) == component {
			return true
		}
	}
	return false
}
