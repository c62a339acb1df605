package football

import (
	"fmt"

	"github.com/lgbarn/gravity-games-go/internal/errors"
)

// ApplyMove applies a move for the given colour. The move must be in
// LegalMoves(b) and colour must be the side to move; otherwise an error
// wrapping errors.ErrInvalidMove is returned and the board is not modified.
func ApplyMove(b *Board, m Move, colour Colour) error {
	if err := checkMove(b, m, colour); err != nil {
		return err
	}

	switch m.Kind {
	case Place:
		b.cells[b.index(m.Row, m.Col)] = Token
		b.passTurn()
	case Hop:
		b.hop(m.Row, m.Col)
	case Skip:
		b.passTurn()
	}
	return nil
}

// Next returns the position after m without modifying b.
func Next(b *Board, m Move, colour Colour) (*Board, error) {
	next := b.Copy()
	if err := ApplyMove(next, m, colour); err != nil {
		return nil, err
	}
	return next, nil
}

func checkMove(b *Board, m Move, colour Colour) error {
	if !colour.Valid() {
		return fmt.Errorf("move %s: unknown colour %d: %w", m, int(colour), errors.ErrInvalidMove)
	}
	if colour != b.turn {
		return fmt.Errorf("move %s by %v, %v to move: %w", m, colour, b.turn, errors.ErrWrongTurn)
	}
	if Winner(b) != 0 {
		return fmt.Errorf("move %s: %w", m, errors.ErrGameOver)
	}
	if !HasMove(b, m) {
		return fmt.Errorf("move %s for %v: %w", m, colour, errors.ErrInvalidMove)
	}
	return nil
}

// hop moves the ball to (row, col), capturing every token strictly between
// the old and new positions. The turn does not pass. Destinations always lie
// on the grid, since Hops stops a run at the goal column, so there is no
// overrun to resolve.
func (b *Board) hop(row, col int) {
	fromRow, fromCol := b.ballRow, b.ballCol
	dr, dc := sign(row-fromRow), sign(col-fromCol)

	for r, c := fromRow+dr, fromCol+dc; r != row || c != col; r, c = r+dr, c+dc {
		b.cells[b.index(r, c)] = Empty
	}

	b.cells[b.index(fromRow, fromCol)] = Empty
	b.cells[b.index(row, col)] = Ball
	b.ballRow, b.ballCol = row, col
	b.hopped = true
}

func (b *Board) passTurn() {
	b.turn = b.turn.Opposite()
	b.hopped = false
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
