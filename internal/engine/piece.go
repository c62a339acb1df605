package engine

import "github.com/lgbarn/gravity-games-go/internal/chess"

// Direction tables as (row, col) deltas.
var (
	straightDirs = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs    = append(append([][2]int{}, straightDirs...), diagonalDirs...)

	knightOffsets = [][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {-1, 2}, {1, -2}, {-1, -2}}
	kingOffsets   = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}, {0, 1}, {0, -1}, {-1, 0}, {1, 0}}
)

// slidingTargets casts rays from sq along dirs. Each ray stops at the board
// edge or at the first piece, which is included only if it is an enemy.
func slidingTargets(board *chess.Board, sq chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	var targets []chess.Square
	for _, dir := range dirs {
		to := sq.Offset(dir[0], dir[1])
		for to.OnBoard() {
			target := board.At(to)
			if !target.IsEmpty() {
				if target.Colour != colour {
					targets = append(targets, to)
				}
				break // Blocked
			}
			targets = append(targets, to)
			to = to.Offset(dir[0], dir[1])
		}
	}
	return targets
}

// leaperTargets returns the on-board squares at the given offsets that are
// not occupied by a piece of the mover's colour.
func leaperTargets(board *chess.Board, sq chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	var targets []chess.Square
	for _, off := range offsets {
		to := sq.Offset(off[0], off[1])
		if !to.OnBoard() {
			continue
		}
		if target := board.At(to); target.IsEmpty() || target.Colour != colour {
			targets = append(targets, to)
		}
	}
	return targets
}
