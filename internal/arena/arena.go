// Package arena plays self-play matches between automatic players, in
// parallel on a worker pool, and tallies the results.
package arena

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/gravity-games-go/internal/config"
	"github.com/lgbarn/gravity-games-go/internal/errors"
	"github.com/lgbarn/gravity-games-go/internal/harness"
	"github.com/lgbarn/gravity-games-go/internal/hashing"
	"github.com/lgbarn/gravity-games-go/internal/player"
	"github.com/lgbarn/gravity-games-go/internal/worker"
)

// MatchResult is the outcome of one match.
type MatchResult struct {
	ID      string // Unique match identifier
	Index   int    // Position in the batch
	Variant string
	White   string // Player names
	Black   string

	Winner    int  // +1 White, -1 Black, 0 none
	Draw      bool // Drawn by the rules or stopped at the ply limit
	Truncated bool // Stopped at the ply limit
	Plies     int  // Actions played
	Duplicate bool // Repeats an earlier match of the batch

	Moves      []int // Action indices in order
	MoveText   []string
	FinalBoard harness.Grid

	Err error // Set when the match could not be completed
}

// Arena plays matches of one game between two kinds of player.
type Arena struct {
	Game  harness.Game
	White player.Factory
	Black player.Factory

	// MaxPlies stops a match after this many actions; 0 means no limit.
	MaxPlies int

	// Seed derives the players of every match: match i uses Seed+i.
	Seed uint64

	// OnResult, if set, is called with every finished match. Calls come
	// from a single goroutine.
	OnResult func(MatchResult)

	// Duplicates, if set, flags matches of RunMatches that repeat an
	// earlier match of the batch.
	Duplicates *hashing.ThreadSafeDuplicateDetector
}

// NewGame builds the game selected by the configuration.
func NewGame(cfg *config.Config) (harness.Game, error) {
	switch cfg.Variant {
	case config.Gravity:
		return harness.NewGravityGame(cfg.Rules.Gravity()), nil
	case config.Football:
		return harness.NewFootballGame(cfg.Rules.Rows, cfg.Rules.Cols)
	}
	return nil, fmt.Errorf("unknown variant %q: %w", cfg.Variant, errors.ErrInvalidConfig)
}

// New builds an arena from the configuration.
func New(cfg *config.Config) (*Arena, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	game, err := NewGame(cfg)
	if err != nil {
		return nil, err
	}
	white, err := player.New(cfg.Match.White)
	if err != nil {
		return nil, err
	}
	black, err := player.New(cfg.Match.Black)
	if err != nil {
		return nil, err
	}
	return &Arena{
		Game:       game,
		White:      white,
		Black:      black,
		MaxPlies:   cfg.Match.MaxPlies,
		Seed:       cfg.Match.Seed,
		Duplicates: hashing.NewThreadSafeDuplicateDetector(cfg.Match.ExactDuplicates, 0),
	}, nil
}

// PlayMatch plays match number index to the end, to the ply limit, or
// until ctx is cancelled.
func (a *Arena) PlayMatch(ctx context.Context, index int) (res MatchResult) {
	seed := a.Seed + uint64(index)
	white, black := a.White(2*seed), a.Black(2*seed+1)

	res = MatchResult{
		ID:      uuid.New().String(),
		Index:   index,
		Variant: a.Game.Name(),
		White:   white.Name(),
		Black:   black.Name(),
	}

	g, turn := a.Game.InitBoard(), 1
	defer func() { res.FinalBoard = g }()

	for {
		if err := ctx.Err(); err != nil {
			res.Err = err
			return res
		}

		ended, err := a.Game.GameEnded(g, turn)
		if err != nil {
			res.Err = a.moveError(res, err, "")
			return res
		}
		if ended != 0 {
			if ended == harness.DrawValue {
				res.Draw = true
			} else {
				res.Winner = int(ended)
			}
			return res
		}

		if a.MaxPlies > 0 && res.Plies >= a.MaxPlies {
			res.Draw = true
			res.Truncated = true
			return res
		}

		mover := white
		if turn == -1 {
			mover = black
		}
		action, err := mover.Play(a.Game, a.Game.CanonicalForm(g, turn), turn)
		if err != nil {
			res.Err = a.moveError(res, err, "")
			return res
		}

		text := a.Game.ActionString(action)
		next, nextTurn, err := a.Game.NextState(g, turn, action)
		if err != nil {
			res.Err = a.moveError(res, err, text)
			return res
		}

		res.Moves = append(res.Moves, action)
		res.MoveText = append(res.MoveText, text)
		res.Plies++
		g, turn = next, nextTurn
	}
}

func (a *Arena) moveError(res MatchResult, err error, move string) error {
	return &errors.MoveError{
		Err:     err,
		Variant: res.Variant,
		Match:   res.ID,
		Ply:     res.Plies + 1,
		Move:    move,
	}
}

// RunMatches plays n matches on workers goroutines and returns the results
// in match order. When ctx is cancelled the matches still running stop, no
// new ones start, and the finished results are returned with ctx.Err().
func (a *Arena) RunMatches(ctx context.Context, n, workers int) ([]MatchResult, error) {
	if n < 1 {
		return nil, nil
	}

	processFunc := func(item worker.WorkItem[int]) worker.ProcessResult[MatchResult] {
		res := a.PlayMatch(ctx, item.Job)
		return worker.ProcessResult[MatchResult]{Value: res, Index: item.Index, Error: res.Err}
	}

	bufferSize := n
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPoolWithOptions(processFunc, worker.WithWorkers(workers), worker.WithBufferSize(bufferSize))
	pool.Start()

	go func() {
		for i := 0; i < n; i++ {
			if ctx.Err() != nil {
				pool.Stop()
				break
			}
			pool.Submit(worker.WorkItem[int]{Job: i, Index: i})
		}
		pool.Close()
	}()

	// Results are only touched from this goroutine.
	results := make([]MatchResult, n)
	done := make([]bool, n)
	for r := range pool.Results() {
		if ctx.Err() != nil {
			pool.Stop()
		}
		results[r.Index] = r.Value
		done[r.Index] = true
		if a.OnResult != nil {
			a.OnResult(r.Value)
		}
	}

	if err := ctx.Err(); err != nil {
		finished := results[:0]
		for i, ok := range done {
			if ok && results[i].Err == nil {
				finished = append(finished, results[i])
			}
		}
		a.markDuplicates(finished)
		return finished, err
	}
	a.markDuplicates(results)
	return results, nil
}

// markDuplicates flags, in match order, every result that repeats an
// earlier one.
func (a *Arena) markDuplicates(results []MatchResult) {
	if a.Duplicates == nil {
		return
	}
	for i := range results {
		if results[i].Err != nil {
			continue
		}
		sig := hashing.Sign(results[i].FinalBoard, results[i].Moves)
		results[i].Duplicate = a.Duplicates.CheckAndAdd(sig)
	}
}
