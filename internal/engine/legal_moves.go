package engine

import (
	"slices"

	"github.com/lgbarn/gravity-games-go/internal/chess"
)

// MovesFor returns the pseudo-legal destinations of the piece on sq.
// Whose turn it is is not consulted; an empty or off-board square yields nil.
func MovesFor(board *chess.Board, sq chess.Square) []chess.Square {
	piece, ok := board.PieceAt(sq)
	if !ok {
		return nil
	}

	switch piece.Kind {
	case chess.Pawn:
		return pawnTargets(board, sq, piece.Colour)
	case chess.Knight:
		return leaperTargets(board, sq, piece.Colour, knightOffsets)
	case chess.Bishop:
		return slidingTargets(board, sq, piece.Colour, diagonalDirs)
	case chess.Rook:
		return slidingTargets(board, sq, piece.Colour, straightDirs)
	case chess.Queen:
		return slidingTargets(board, sq, piece.Colour, queenDirs)
	case chess.King:
		targets := leaperTargets(board, sq, piece.Colour, kingOffsets)
		return append(targets, castleTargets(board, sq, piece.Colour)...)
	}
	return nil
}

// LegalMoves returns every move available to the given colour: the union of
// MovesFor over its pieces, deduplicated and sorted by source then destination.
// A won position has no legal moves.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	if Winner(board) != 0 {
		return nil
	}

	var moves []chess.Move
	for _, loc := range board.Pieces(colour) {
		for _, to := range MovesFor(board, loc.Square) {
			moves = append(moves, chess.NewMove(loc.Square, to))
		}
	}

	slices.SortFunc(moves, compareMoves)
	return slices.Compact(moves)
}

// HasMove reports whether move is in LegalMoves(board, colour).
func HasMove(board *chess.Board, colour chess.Colour, move chess.Move) bool {
	if !move.OnBoard() || Winner(board) != 0 {
		return false
	}
	piece := board.At(move.From())
	if piece.IsEmpty() || piece.Colour != colour {
		return false
	}
	return slices.Contains(MovesFor(board, move.From()), move.To())
}

// HasLegalMoves returns true if the given colour has at least one move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	if Winner(board) != 0 {
		return false
	}
	for _, loc := range board.Pieces(colour) {
		if len(MovesFor(board, loc.Square)) > 0 {
			return true
		}
	}
	return false
}

func compareMoves(a, b chess.Move) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}
	return 0
}
