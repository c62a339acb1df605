// Package harness adapts the rule engines to a flat, numeric interface: a
// game state is a grid of float64 values and a move is an integer action
// index. Players and the arena drive both variants through Game.
package harness

import (
	"fmt"
	"math"
	"strings"

	"github.com/lgbarn/gravity-games-go/internal/errors"
)

// DrawValue is returned by GameEnded for a drawn game. It is small and
// non-zero so that it cannot be confused with an undecided game.
const DrawValue = 1e-4

// Grid is an encoded game state, indexed [row][col].
type Grid [][]float64

// NewGrid returns a zeroed grid.
func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for i := range g {
		g[i] = make([]float64, cols)
	}
	return g
}

// Clone returns an independent copy of the grid.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for i, row := range g {
		c[i] = append([]float64(nil), row...)
	}
	return c
}

// Dims returns the number of rows and the length of the first row.
func (g Grid) Dims() (rows, cols int) {
	if len(g) == 0 {
		return 0, 0
	}
	return len(g), len(g[0])
}

// Fill sets every value of a row.
func (g Grid) Fill(row int, v float64) {
	for i := range g[row] {
		g[row][i] = v
	}
}

// String renders the raw values, one row per line.
func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g {
		for i, v := range row {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// checkShape verifies that g is a rows x cols rectangle.
func (g Grid) checkShape(rows, cols int) error {
	if len(g) != rows {
		return &errors.PositionError{
			Err:      errors.ErrInvalidPosition,
			Field:    "grid",
			Expected: fmt.Sprintf("%d rows", rows),
			Got:      fmt.Sprintf("%d", len(g)),
		}
	}
	for i, row := range g {
		if len(row) != cols {
			return &errors.PositionError{
				Err:      errors.ErrInvalidPosition,
				Field:    "grid",
				Offset:   i,
				Expected: fmt.Sprintf("%d columns", cols),
				Got:      fmt.Sprintf("%d", len(row)),
			}
		}
	}
	return nil
}

// intAt reads an integral value from the grid.
func (g Grid) intAt(row, col int) (int, error) {
	v := g[row][col]
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, &errors.PositionError{
			Err:      errors.ErrInvalidPosition,
			Field:    fmt.Sprintf("cell %d,%d", row, col),
			Expected: "integer",
			Got:      fmt.Sprintf("%g", v),
		}
	}
	return int(v), nil
}

// flagAt reads a 0/1 value from the grid.
func (g Grid) flagAt(row, col int) (bool, error) {
	v, err := g.intAt(row, col)
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, &errors.PositionError{
		Err:      errors.ErrInvalidPosition,
		Field:    fmt.Sprintf("cell %d,%d", row, col),
		Expected: "0 or 1",
		Got:      fmt.Sprintf("%d", v),
	}
}

// Game is the flat interface shared by both variants. Players are +1 and -1.
type Game interface {
	// Name returns the variant name.
	Name() string

	// BoardSize returns the dimensions of an encoded grid.
	BoardSize() (rows, cols int)

	// ActionSize returns the number of action indices.
	ActionSize() int

	// InitBoard returns the encoded starting position.
	InitBoard() Grid

	// NextState applies action for player and returns the new grid and the
	// player to move next. The input grid is not modified.
	NextState(g Grid, player, action int) (Grid, int, error)

	// ValidMoves returns a mask of length ActionSize with true at every
	// legal action of the side to move.
	ValidMoves(g Grid, player int) ([]bool, error)

	// GameEnded returns 0 while the game is undecided, +1 or -1 for the
	// winner and DrawValue for a draw.
	GameEnded(g Grid, player int) (float64, error)

	// CanonicalForm returns the grid as seen by player.
	CanonicalForm(g Grid, player int) Grid

	// Score rates a grid from player's point of view.
	Score(g Grid, player int) (float64, error)

	// Display renders the grid for humans.
	Display(g Grid) string

	// ActionString describes an action index in the variant's move notation.
	ActionString(action int) string
}

var (
	_ Game = (*GravityGame)(nil)
	_ Game = (*FootballGame)(nil)
)

// checkPlayer rejects anything but +1 and -1.
func checkPlayer(player int) error {
	if player != 1 && player != -1 {
		return fmt.Errorf("player %d: %w", player, errors.ErrInvalidMove)
	}
	return nil
}

// checkAction rejects indices outside [0, size).
func checkAction(action, size int) error {
	if action < 0 || action >= size {
		return fmt.Errorf("action %d outside [0, %d): %w", action, size, errors.ErrInvalidAction)
	}
	return nil
}

// LegalActions returns the indices set in a ValidMoves mask, in increasing order.
func LegalActions(mask []bool) []int {
	var out []int
	for a, ok := range mask {
		if ok {
			out = append(out, a)
		}
	}
	return out
}
