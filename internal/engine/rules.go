// Package engine provides gravity chess move generation, move execution and
// terminal-state detection.
package engine

import (
	"fmt"

	"github.com/lgbarn/gravity-games-go/internal/chess"
	"github.com/lgbarn/gravity-games-go/internal/errors"
)

// Default rule parameters.
const (
	// DefaultGravitySweeps is the number of gravity sweeps applied after each move.
	DefaultGravitySweeps = 1

	// DefaultDrawPlies is the ply count at which the game is drawn.
	DefaultDrawPlies = 100

	// DrawIncrement is the amount the fractional draw counter grows per ply.
	DrawIncrement = 0.1
)

// Rules holds the tunable parameters of move execution and draw detection.
type Rules struct {
	// GravitySweeps is the number of gravity sweeps run after every move.
	// Pieces are not settled to a fixed point unless enough sweeps are asked for.
	GravitySweeps int

	// DrawPlies is the ply count at which the game is declared drawn.
	DrawPlies int
}

// DefaultRules returns the standard rule parameters.
func DefaultRules() Rules {
	return Rules{
		GravitySweeps: DefaultGravitySweeps,
		DrawPlies:     DefaultDrawPlies,
	}
}

// Validate checks the rule parameters.
func (r Rules) Validate() error {
	if r.GravitySweeps < 0 {
		return fmt.Errorf("gravity sweeps must be >= 0, got %d: %w", r.GravitySweeps, errors.ErrInvalidConfig)
	}
	if r.DrawPlies < 1 {
		return fmt.Errorf("draw plies must be >= 1, got %d: %w", r.DrawPlies, errors.ErrInvalidConfig)
	}
	return nil
}

// Winner returns +1 if White has won, -1 if Black has won and 0 otherwise.
// A colour loses when it has no king left.
func Winner(board *chess.Board) int {
	whiteLost := board.KingCount(chess.White) == 0
	blackLost := board.KingCount(chess.Black) == 0

	switch {
	case blackLost:
		return int(chess.White)
	case whiteLost:
		return int(chess.Black)
	}
	return 0
}

// DrawCounter returns the fractional draw counter of the board.
func DrawCounter(board *chess.Board) float64 {
	return float64(board.Plies) * DrawIncrement
}

// IsDraw reports whether the game is drawn: the ply limit has been reached,
// or nobody has won and the side to move has no move at all.
func (r Rules) IsDraw(board *chess.Board) bool {
	if Winner(board) != 0 {
		return false
	}
	if board.Plies >= r.DrawPlies {
		return true
	}
	return !HasLegalMoves(board, board.ToMove)
}

// IsTerminal reports whether the game is over.
func (r Rules) IsTerminal(board *chess.Board) bool {
	return Winner(board) != 0 || r.IsDraw(board)
}

// IsDraw reports whether the game is drawn under the default rules.
func IsDraw(board *chess.Board) bool {
	return DefaultRules().IsDraw(board)
}

// IsTerminal reports whether the game is over under the default rules.
func IsTerminal(board *chess.Board) bool {
	return DefaultRules().IsTerminal(board)
}
