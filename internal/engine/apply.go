package engine

import (
	"fmt"

	"github.com/lgbarn/gravity-games-go/internal/chess"
	"github.com/lgbarn/gravity-games-go/internal/errors"
)

// ApplyMove applies a move for the given colour under the default rules.
// The board is left untouched when an error is returned.
func ApplyMove(board *chess.Board, move chess.Move, colour chess.Colour) error {
	return DefaultRules().Apply(board, move, colour)
}

// Next returns the position after move without modifying board.
func Next(board *chess.Board, move chess.Move, colour chess.Colour) (*chess.Board, error) {
	return DefaultRules().Next(board, move, colour)
}

// Next returns the position after move without modifying board.
func (r Rules) Next(board *chess.Board, move chess.Move, colour chess.Colour) (*chess.Board, error) {
	next := board.Copy()
	if err := r.Apply(next, move, colour); err != nil {
		return nil, err
	}
	return next, nil
}

// Apply applies a move to the board and updates the board state.
//
// The move must belong to LegalMoves(board, colour) and colour must be the
// side to move; otherwise an error wrapping errors.ErrInvalidMove is returned
// and the board is not modified.
func (r Rules) Apply(board *chess.Board, move chess.Move, colour chess.Colour) error {
	if err := checkMove(board, move, colour); err != nil {
		return err
	}

	executeMove(board, move)

	for i := 0; i < r.GravitySweeps; i++ {
		if !ApplyGravity(board) {
			break
		}
	}

	board.ToMove = colour.Opposite()
	board.Plies++
	return nil
}

// checkMove validates a move request without modifying the board.
func checkMove(board *chess.Board, move chess.Move, colour chess.Colour) error {
	if !colour.Valid() {
		return fmt.Errorf("move %s: unknown colour %d: %w", move, int(colour), errors.ErrInvalidMove)
	}
	if colour != board.ToMove {
		return fmt.Errorf("move %s by %v, %v to move: %w", move, colour, board.ToMove, errors.ErrWrongTurn)
	}
	if Winner(board) != 0 {
		return fmt.Errorf("move %s: %w", move, errors.ErrGameOver)
	}
	if !HasMove(board, colour, move) {
		return fmt.Errorf("move %s for %v: %w", move, colour, errors.ErrInvalidMove)
	}
	return nil
}

// executeMove performs a validated move: captures, en passant, castling
// rights, relocation, the castling rook, the en passant window and promotion.
// Gravity and the turn are handled by the caller.
func executeMove(board *chess.Board, move chess.Move) {
	from, to := move.From(), move.To()
	mover := board.At(from)

	// Capture
	if captured := board.At(to); !captured.IsEmpty() {
		board.Set(to.Row, to.Col, chess.NoPiece)
		updateCastlingRightsForCapture(board, captured, to)
	}

	// En passant
	if mover.Kind == chess.Pawn && isEnPassantCapture(board, to, mover.Colour) {
		victim := board.EPVictim()
		board.Set(victim.Row, victim.Col, chess.NoPiece)
	}

	updateCastlingRights(board, mover, from)

	// Move the piece
	board.Set(from.Row, from.Col, chess.NoPiece)
	board.Set(to.Row, to.Col, mover)

	if mover.Kind == chess.King && isCastle(from, to) {
		moveCastlingRook(board, mover.Colour, from, to)
	}

	if mover.Kind == chess.Pawn {
		applyPawnExtras(board, from, to, mover.Colour)
	} else {
		board.ClearEnPassant()
	}
}
