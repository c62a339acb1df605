// Package config provides run configuration for gravity-games.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/gravity-games-go/internal/errors"
)

// Variant selects which game is played.
type Variant string

const (
	Gravity  Variant = "gravity"
	Football Variant = "football"
)

// Variants lists the supported variants in display order.
var Variants = []Variant{Gravity, Football}

// ParseVariant converts a variant name to a Variant.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown variant %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=match summary, 2=per-match commentary

	Variant Variant

	// Grouped settings
	Match  *MatchConfig
	Rules  *RulesConfig
	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Variant:    Gravity,
		Match:      NewMatchConfig(),
		Rules:      NewRulesConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer for match results.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer for diagnostics.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every group of settings.
func (c *Config) Validate() error {
	if _, err := ParseVariant(string(c.Variant)); err != nil {
		return err
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity must be >= 0, got %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Match.Validate(); err != nil {
		return err
	}
	return c.Rules.Validate()
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...any) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
