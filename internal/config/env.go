package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joeycumines/logiface"

	"github.com/govalues/bigdec"
)

var (
	errPolicyConflict = errors.New("max-dp and max-precision are mutually exclusive")
	errLogLevel       = errors.New("unknown log level")
)

// Config holds the calculator settings.
// Every field can be set from the environment and overridden by a flag.
type Config struct {
	Rounding     string `env:"BIGCALC_ROUNDING"      envDefault:"round"`
	MaxDp        string `env:"BIGCALC_MAX_DP"`
	MaxPrecision string `env:"BIGCALC_MAX_PRECISION"`
	LogLevel     string `env:"BIGCALC_LOG_LEVEL"     envDefault:"err"`
	JSON         bool   `env:"BIGCALC_JSON"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the configuration found in the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options converts the rounding and overflow settings to decimal options.
// MaxDp and MaxPrecision are mutually exclusive; if neither is set the
// library default applies.
func (c Config) Options() ([]bigdec.Option, error) {
	mode, err := bigdec.ParseRoundingMode(c.Rounding)
	if err != nil {
		return nil, fmt.Errorf("rounding: %w", err)
	}
	opts := []bigdec.Option{bigdec.WithRounding(mode)}
	switch {
	case c.MaxDp != "" && c.MaxPrecision != "":
		return nil, errPolicyConflict
	case c.MaxDp != "":
		n, err := strconv.Atoi(c.MaxDp)
		if err != nil {
			return nil, fmt.Errorf("max-dp: %w", err)
		}
		opts = append(opts, bigdec.WithMaxDp(n))
	case c.MaxPrecision != "":
		p, err := strconv.Atoi(c.MaxPrecision)
		if err != nil {
			return nil, fmt.Errorf("max-precision: %w", err)
		}
		if p < 1 {
			return nil, fmt.Errorf("max-precision: %d is not positive", p)
		}
		opts = append(opts, bigdec.WithMaxDecimalPrecision(p))
	}
	return opts, nil
}

// Level returns the configured log level.
func (c Config) Level() (logiface.Level, error) {
	return ParseLevel(c.LogLevel)
}

// ParseLevel converts a syslog keyword, as printed by [logiface.Level.String],
// to a level. A few common aliases are accepted as well.
func ParseLevel(s string) (logiface.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "disabled", "off", "none":
		return logiface.LevelDisabled, nil
	case "emerg", "emergency":
		return logiface.LevelEmergency, nil
	case "alert":
		return logiface.LevelAlert, nil
	case "crit", "critical":
		return logiface.LevelCritical, nil
	case "err", "error":
		return logiface.LevelError, nil
	case "warning", "warn":
		return logiface.LevelWarning, nil
	case "notice":
		return logiface.LevelNotice, nil
	case "info", "informational":
		return logiface.LevelInformational, nil
	case "debug":
		return logiface.LevelDebug, nil
	case "trace":
		return logiface.LevelTrace, nil
	}
	return logiface.LevelDisabled, fmt.Errorf("%q: %w", s, errLogLevel)
}
