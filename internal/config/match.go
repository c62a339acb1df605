package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/gravity-games-go/internal/errors"
	"github.com/lgbarn/gravity-games-go/internal/player"
)

// Player names accepted for White and Black.
const (
	RandomPlayer = player.RandomName
	GreedyPlayer = player.GreedyName
)

// MatchConfig holds settings for a batch of self-play matches.
type MatchConfig struct {
	// Games is the number of matches to play.
	Games int

	// Workers is the number of matches played concurrently.
	Workers int

	// MaxPlies stops a match that runs this long; 0 means no limit.
	MaxPlies int

	// Seed feeds the random players. Match i derives its players from Seed+i.
	Seed uint64

	// White and Black name the players.
	White string
	Black string

	// ExactDuplicates flags a match as a repeat only when its moves match an
	// earlier one as well as its final position.
	ExactDuplicates bool
}

// NewMatchConfig creates a MatchConfig with default values.
func NewMatchConfig() *MatchConfig {
	return &MatchConfig{
		Games:    1,
		Workers:  runtime.NumCPU(),
		MaxPlies: 1000,
		Seed:     1,
		White:    RandomPlayer,
		Black:    RandomPlayer,
	}
}

// Validate checks that the match configuration is valid.
func (m *MatchConfig) Validate() error {
	if m.Games < 1 {
		return fmt.Errorf("games must be >= 1, got %d: %w", m.Games, errors.ErrInvalidConfig)
	}
	if m.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d: %w", m.Workers, errors.ErrInvalidConfig)
	}
	if m.MaxPlies < 0 {
		return fmt.Errorf("max plies must be >= 0, got %d: %w", m.MaxPlies, errors.ErrInvalidConfig)
	}
	for _, name := range []string{m.White, m.Black} {
		if _, err := player.New(name); err != nil {
			return err
		}
	}
	return nil
}
