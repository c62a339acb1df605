package football

import (
	"fmt"
	"slices"
)

// MoveKind distinguishes the three move families.
type MoveKind int

const (
	Place MoveKind = iota
	Hop
	Skip
)

// String returns the name of the move kind.
func (k MoveKind) String() string {
	switch k {
	case Place:
		return "place"
	case Hop:
		return "hop"
	case Skip:
		return "skip"
	}
	return "unknown"
}

// Move is a placement target, a hop destination, or a skip.
// Row and Col are unused for a skip.
type Move struct {
	Kind MoveKind
	Row  int
	Col  int
}

// PlaceAt returns the move that puts a token on (row, col).
func PlaceAt(row, col int) Move {
	return Move{Kind: Place, Row: row, Col: col}
}

// HopTo returns the move that hops the ball to (row, col).
func HopTo(row, col int) Move {
	return Move{Kind: Hop, Row: row, Col: col}
}

// SkipMove returns the move that ends the turn after hopping.
func SkipMove() Move {
	return Move{Kind: Skip}
}

// String returns a readable form such as "place 2,3", "hop 3,6" or "skip".
func (m Move) String() string {
	if m.Kind == Skip {
		return "skip"
	}
	return fmt.Sprintf("%s %d,%d", m.Kind, m.Row, m.Col)
}

// directions lists the eight hop directions as (row, col) deltas, in the
// order hops are reported.
var directions = [8][2]int{
	{1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, 1},
}

// LegalMoves returns the moves available to the side to move: placements
// (row-major, only before a hop this turn), then hops in direction order,
// then skip (only after a hop). A won position has no legal moves; otherwise
// the list is never empty, as a side with nothing else to do is given a skip.
func LegalMoves(b *Board) []Move {
	if Winner(b) != 0 {
		return nil
	}

	var moves []Move

	if !b.hopped {
		for row := 0; row < b.rows; row++ {
			for col := 1; col < b.cols-1; col++ {
				if b.At(row, col) == Empty {
					moves = append(moves, PlaceAt(row, col))
				}
			}
		}
	}

	moves = append(moves, Hops(b)...)

	if b.hopped || len(moves) == 0 {
		moves = append(moves, SkipMove())
	}
	return moves
}

// Hops returns every destination the ball can reach with one hop.
func Hops(b *Board) []Move {
	row, col, ok := b.Ball()
	if !ok {
		return nil
	}

	var hops []Move
	for _, dir := range directions {
		if to, ok := hopTarget(b, row, col, dir); ok {
			hops = append(hops, HopTo(to[0], to[1]))
		}
	}
	return hops
}

// hopTarget follows one direction from the ball. A neighbour in a goal
// column is a scoring hop. Otherwise the neighbour must hold a token and the
// ball lands on the first empty cell past the run, which must be on the grid.
func hopTarget(b *Board, row, col int, dir [2]int) ([2]int, bool) {
	r, c := row+dir[0], col+dir[1]
	if r < 0 || r >= b.rows {
		return [2]int{}, false
	}
	if b.IsGoalColumn(c) {
		return [2]int{r, c}, true
	}
	if b.At(r, c) != Token {
		return [2]int{}, false
	}

	for b.At(r, c) == Token {
		r += dir[0]
		c += dir[1]
		if !b.OnGrid(r, c) {
			return [2]int{}, false
		}
	}
	if b.At(r, c) != Empty {
		return [2]int{}, false
	}
	return [2]int{r, c}, true
}

// HasMove reports whether m is in LegalMoves(b).
func HasMove(b *Board, m Move) bool {
	return slices.Contains(LegalMoves(b), m)
}
