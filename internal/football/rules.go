package football

// Winner returns +1 if the ball is in the last column, -1 if it is in
// column 0 and 0 otherwise.
func Winner(b *Board) int {
	_, col, ok := b.Ball()
	switch {
	case !ok:
		return 0
	case col == 0:
		return int(Black)
	case col == b.cols-1:
		return int(White)
	}
	return 0
}

// HasMoves reports whether any non-goal cell is still empty.
func HasMoves(b *Board) bool {
	for row := 0; row < b.rows; row++ {
		for col := 1; col < b.cols-1; col++ {
			if b.At(row, col) == Empty {
				return true
			}
		}
	}
	return false
}

// IsDraw reports whether the grid filled up without a goal.
func IsDraw(b *Board) bool {
	return Winner(b) == 0 && !HasMoves(b)
}

// IsTerminal reports whether the game is over.
func IsTerminal(b *Board) bool {
	return Winner(b) != 0 || !HasMoves(b)
}
