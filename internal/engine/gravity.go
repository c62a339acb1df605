package engine

import "github.com/lgbarn/gravity-games-go/internal/chess"

// FallDelta is the row delta of one gravity step. Pieces fall towards row 0,
// White's home row.
const FallDelta = -1

// ApplyGravity runs a single gravity sweep and reports whether any piece fell.
//
// Rows are visited starting from the one nearest the floor, so every non-pawn
// piece with an empty on-board square below drops exactly one row, and a
// stack of pieces falls together by one row per sweep.
func ApplyGravity(board *chess.Board) bool {
	moved := false
	for row := 1; row < chess.BoardSize; row++ {
		below := row + FallDelta
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if !piece.Kind.Falls() || !board.Squares[below][col].IsEmpty() {
				continue
			}
			board.Squares[below][col] = piece
			board.Squares[row][col] = chess.NoPiece
			moved = true
		}
	}
	return moved
}

// SettleGravity repeats gravity sweeps until nothing moves and returns the
// number of sweeps that moved at least one piece.
func SettleGravity(board *chess.Board) int {
	sweeps := 0
	for ApplyGravity(board) {
		sweeps++
	}
	return sweeps
}

// IsSettled reports whether no non-pawn piece has an empty square below it.
func IsSettled(board *chess.Board) bool {
	for row := 1; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if board.Squares[row][col].Kind.Falls() && board.Squares[row+FallDelta][col].IsEmpty() {
				return false
			}
		}
	}
	return true
}
