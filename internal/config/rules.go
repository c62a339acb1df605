package config

import (
	"fmt"

	"github.com/lgbarn/gravity-games-go/internal/engine"
	"github.com/lgbarn/gravity-games-go/internal/errors"
)

// RulesConfig holds the variant rule parameters.
type RulesConfig struct {
	// Gravity chess
	GravitySweeps int
	DrawPlies     int

	// Hop football grid size
	Rows int
	Cols int
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		GravitySweeps: engine.DefaultGravitySweeps,
		DrawPlies:     engine.DefaultDrawPlies,
		Rows:          7,
		Cols:          7,
	}
}

// Gravity returns the gravity chess rules described by the configuration.
func (r *RulesConfig) Gravity() engine.Rules {
	return engine.Rules{
		GravitySweeps: r.GravitySweeps,
		DrawPlies:     r.DrawPlies,
	}
}

// Validate checks that the rule parameters are usable.
func (r *RulesConfig) Validate() error {
	if err := r.Gravity().Validate(); err != nil {
		return err
	}
	if r.Rows < 1 || r.Cols < 3 {
		return fmt.Errorf("football grid %dx%d needs at least 1 row and 3 columns: %w",
			r.Rows, r.Cols, errors.ErrInvalidConfig)
	}
	return nil
}
