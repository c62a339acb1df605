// Package football implements hop football (philosopher's football): players
// place neutral tokens on a grid and hop a single ball over runs of tokens
// towards the goal columns at either edge.
package football

import (
	"fmt"
	"strings"

	"github.com/lgbarn/gravity-games-go/internal/errors"
)

// Cell is the content of one grid cell.
// The numeric values double as the encoded grid values.
type Cell int8

const (
	Empty Cell = iota
	Token
	Ball
)

// String returns the name of the cell content.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Token:
		return "Token"
	case Ball:
		return "Ball"
	}
	return "Unknown"
}

// Symbol returns the single character used when rendering a board.
func (c Cell) Symbol() byte {
	switch c {
	case Token:
		return 'x'
	case Ball:
		return 'O'
	}
	return '.'
}

// Colour identifies a side. White scores in the last column, Black in column 0.
type Colour int

const (
	Black Colour = -1
	White Colour = 1
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "NoColour"
}

// Valid reports whether c is White or Black.
func (c Colour) Valid() bool {
	return c == White || c == Black
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Minimum grid dimensions. Two goal columns need at least one playing column
// between them.
const (
	MinRows = 1
	MinCols = 3
)

// Board is a hop football position: the grid, the side to move and whether
// that side has already hopped this turn.
type Board struct {
	rows, cols int
	cells      []Cell
	ballRow    int
	ballCol    int
	hopped     bool
	turn       Colour
}

// New creates a board with the ball in the centre cell and White to move.
func New(rows, cols int) (*Board, error) {
	if err := validateSize(rows, cols); err != nil {
		return nil, err
	}
	b := &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
		turn:  White,
	}
	b.ballRow, b.ballCol = rows/2, cols/2
	b.cells[b.index(b.ballRow, b.ballCol)] = Ball
	return b, nil
}

// FromCells builds a board from row-major cell contents. The grid must hold
// exactly one ball and no token in a goal column.
func FromCells(rows, cols int, cells []Cell, hopped bool, turn Colour) (*Board, error) {
	if err := validateSize(rows, cols); err != nil {
		return nil, err
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("got %d cells for a %dx%d grid: %w", len(cells), rows, cols, errors.ErrInvalidPosition)
	}
	if !turn.Valid() {
		return nil, fmt.Errorf("unknown side to move %d: %w", int(turn), errors.ErrInvalidPosition)
	}

	b := &Board{
		rows:   rows,
		cols:   cols,
		cells:  make([]Cell, len(cells)),
		hopped: hopped,
		turn:   turn,
	}
	copy(b.cells, cells)

	balls := 0
	for i, c := range b.cells {
		row, col := i/cols, i%cols
		switch c {
		case Empty:
		case Token:
			if b.IsGoalColumn(col) {
				return nil, fmt.Errorf("token in goal column at %d,%d: %w", row, col, errors.ErrInvalidPosition)
			}
		case Ball:
			balls++
			b.ballRow, b.ballCol = row, col
		default:
			return nil, fmt.Errorf("bad cell value %d at %d,%d: %w", int(c), row, col, errors.ErrInvalidPosition)
		}
	}
	if balls != 1 {
		return nil, fmt.Errorf("found %d balls, want 1: %w", balls, errors.ErrInvalidPosition)
	}
	return b, nil
}

func validateSize(rows, cols int) error {
	if rows < MinRows || cols < MinCols {
		return fmt.Errorf("grid %dx%d is smaller than %dx%d: %w", rows, cols, MinRows, MinCols, errors.ErrInvalidConfig)
	}
	return nil
}

func (b *Board) index(row, col int) int {
	return row*b.cols + col
}

// Rows returns the number of grid rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of grid columns, goal columns included.
func (b *Board) Cols() int { return b.cols }

// OnGrid reports whether (row, col) lies on the grid.
func (b *Board) OnGrid(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns the cell at (row, col), or Empty when off the grid.
func (b *Board) At(row, col int) Cell {
	if !b.OnGrid(row, col) {
		return Empty
	}
	return b.cells[b.index(row, col)]
}

// Cells returns a row-major copy of the grid.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Ball returns the ball position. ok is false only for a board that was
// never initialised.
func (b *Board) Ball() (row, col int, ok bool) {
	if b.At(b.ballRow, b.ballCol) != Ball {
		return 0, 0, false
	}
	return b.ballRow, b.ballCol, true
}

// AlreadyHopped reports whether the side to move has hopped this turn.
func (b *Board) AlreadyHopped() bool { return b.hopped }

// Turn returns the side to move.
func (b *Board) Turn() Colour { return b.turn }

// IsGoalColumn reports whether col is column 0 or the last column.
func (b *Board) IsGoalColumn(col int) bool {
	return col == 0 || col == b.cols-1
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	c := *b
	c.cells = make([]Cell, len(b.cells))
	copy(c.cells, b.cells)
	return &c
}

// Equal reports whether two boards hold the same position.
func (b *Board) Equal(o *Board) bool {
	if b.rows != o.rows || b.cols != o.cols || b.hopped != o.hopped || b.turn != o.turn {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid with row 0 at the top and goal columns marked.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			if col == 1 {
				sb.WriteByte('|')
			}
			sb.WriteByte(b.At(row, col).Symbol())
			if col == b.cols-2 {
				sb.WriteByte('|')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
