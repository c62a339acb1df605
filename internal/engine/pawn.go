package engine

import "github.com/lgbarn/gravity-games-go/internal/chess"

// pawnTargets returns the pseudo-legal destinations of a pawn.
func pawnTargets(board *chess.Board, sq chess.Square, colour chess.Colour) []chess.Square {
	var targets []chess.Square
	dir := colour.Forward()

	// Forward move
	one := sq.Offset(dir, 0)
	if board.IsEmpty(one.Row, one.Col) {
		targets = append(targets, one)

		// Double push from starting row
		if sq.Row == colour.PawnRow() {
			two := sq.Offset(2*dir, 0)
			if board.IsEmpty(two.Row, two.Col) {
				targets = append(targets, two)
			}
		}
	}

	// Captures
	for dc := -1; dc <= 1; dc += 2 {
		to := sq.Offset(dir, dc)
		if !to.OnBoard() {
			continue
		}
		target := board.At(to)
		if !target.IsEmpty() {
			if target.Colour != colour {
				targets = append(targets, to)
			}
			continue
		}
		if isEnPassantCapture(board, to, colour) {
			targets = append(targets, to)
		}
	}

	return targets
}

// isEnPassantCapture reports whether a pawn of the given colour landing on to
// captures en passant: the window is open, to is the target square and the
// recorded victim is an enemy pawn.
func isEnPassantCapture(board *chess.Board, to chess.Square, colour chess.Colour) bool {
	target, open := board.EPTarget()
	if !open || to != target {
		return false
	}
	return board.At(board.EPVictim()).Is(chess.Pawn, colour.Opposite())
}

// applyPawnExtras handles the pawn-only parts of a move after the pawn has
// been relocated: opening or closing the en passant window and promotion.
func applyPawnExtras(board *chess.Board, from, to chess.Square, colour chess.Colour) {
	if abs(to.Row-from.Row) == 2 {
		board.OpenEnPassant(from, to)
	} else {
		board.ClearEnPassant()
	}

	if to.Row == colour.PromotionRow() {
		board.Set(to.Row, to.Col, chess.Piece{Kind: chess.Queen, Colour: colour})
	}
}
