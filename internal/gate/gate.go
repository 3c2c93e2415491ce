// Package gate decides whether the aggregation pipeline runs for a build invocation.
package gate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for values outside dev|prod|both|off.
var ErrUnknownMode = errors.New("unknown mode")

// Mode controls in which host environments the pipeline runs.
type Mode string

const (
	ModeDev  Mode = "dev"
	ModeProd Mode = "prod"
	ModeBoth Mode = "both"
	ModeOff  Mode = "off"
)

// DefaultMode is used when no mode is configured.
const DefaultMode = ModeBoth

// ParseMode normalizes s into a Mode. An empty string yields DefaultMode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return DefaultMode, nil
	case ModeDev, ModeProd, ModeBoth, ModeOff:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q (want dev, prod, both or off)", ErrUnknownMode, s)
	}
}

// HostEnv is what the host reports about the current invocation.
type HostEnv struct {
	Dev  bool
	Prod bool
}

// Environment names accepted by ParseHostEnv.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// ParseHostEnv maps an environment name to HostEnv. Empty means production.
func ParseHostEnv(name string) (HostEnv, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EnvProduction, "prod":
		return HostEnv{Prod: true}, nil
	case EnvDevelopment, "dev":
		return HostEnv{Dev: true}, nil
	default:
		return HostEnv{}, fmt.Errorf("unknown environment %q (want development or production)", name)
	}
}

func (e HostEnv) String() string {
	switch {
	case e.Dev && e.Prod:
		return "development+production"
	case e.Dev:
		return EnvDevelopment
	case e.Prod:
		return EnvProduction
	default:
		return "none"
	}
}

// ShouldRun evaluates the gate.
func ShouldRun(mode Mode, env HostEnv) bool {
	switch mode {
	case ModeBoth:
		return true
	case ModeDev:
		return env.Dev
	case ModeProd:
		return env.Prod
	default:
		return false
	}
}
