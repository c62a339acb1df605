// Package player provides automatic players that choose actions through the
// harness interface.
package player

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/lgbarn/gravity-games-go/internal/errors"
	"github.com/lgbarn/gravity-games-go/internal/harness"
)

// Player names.
const (
	RandomName = "random"
	GreedyName = "greedy"
)

// Player chooses an action for the side to move.
type Player interface {
	Name() string
	Play(game harness.Game, g harness.Grid, player int) (int, error)
}

// Factory creates a player. Seeded players derive all their choices from seed.
type Factory func(seed uint64) Player

var factories = map[string]Factory{
	RandomName: func(seed uint64) Player { return NewRandom(seed) },
	GreedyName: func(uint64) Player { return NewGreedy() },
}

// New returns the factory for a player name.
func New(name string) (Factory, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown player %q: %w", name, errors.ErrInvalidConfig)
	}
	return f, nil
}

// Names returns the known player names in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// legalActions returns the legal actions of the side to move, or an error
// when there are none.
func legalActions(game harness.Game, g harness.Grid, player int) ([]int, error) {
	mask, err := game.ValidMoves(g, player)
	if err != nil {
		return nil, err
	}
	actions := harness.LegalActions(mask)
	if len(actions) == 0 {
		return nil, fmt.Errorf("no legal action for player %d: %w", player, errors.ErrGameOver)
	}
	return actions, nil
}

// Random plays a uniformly random legal action.
// A Random is not safe for concurrent use.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random player with a fixed seed.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *Random) Name() string { return RandomName }

func (r *Random) Play(game harness.Game, g harness.Grid, player int) (int, error) {
	actions, err := legalActions(game, g, player)
	if err != nil {
		return 0, err
	}
	return actions[r.rng.IntN(len(actions))], nil
}

// Greedy plays the action with the best Score one step ahead. Ties go to
// the lowest action index.
type Greedy struct{}

// NewGreedy returns a greedy player.
func NewGreedy() *Greedy {
	return &Greedy{}
}

func (Greedy) Name() string { return GreedyName }

func (Greedy) Play(game harness.Game, g harness.Grid, player int) (int, error) {
	actions, err := legalActions(game, g, player)
	if err != nil {
		return 0, err
	}

	best, bestScore := actions[0], 0.0
	for i, a := range actions {
		next, _, err := game.NextState(g, player, a)
		if err != nil {
			return 0, fmt.Errorf("greedy lookahead: %w", err)
		}
		score, err := game.Score(next, player)
		if err != nil {
			return 0, err
		}
		if i == 0 || score > bestScore {
			best, bestScore = a, score
		}
	}
	return best, nil
}
