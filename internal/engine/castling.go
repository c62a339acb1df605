package engine

import "github.com/lgbarn/gravity-games-go/internal/chess"

// castleTargets returns the king destinations for castling. Short castling
// needs the two squares towards column 0 empty, long castling the three
// squares towards column 7. Attacked squares are not considered.
func castleTargets(board *chess.Board, sq chess.Square, colour chess.Colour) []chess.Square {
	var targets []chess.Square
	rights := board.Rights(colour)
	row, col := sq.Row, sq.Col

	if rights.Short && col-2 >= 0 &&
		board.IsEmpty(row, col-1) && board.IsEmpty(row, col-2) {
		targets = append(targets, chess.Square{Row: row, Col: col - 2})
	}

	if rights.Long && col+3 < chess.BoardSize &&
		board.IsEmpty(row, col+1) && board.IsEmpty(row, col+2) && board.IsEmpty(row, col+3) {
		targets = append(targets, chess.Square{Row: row, Col: col + 2})
	}

	return targets
}

// isCastle reports whether a king move is a castling move.
func isCastle(from, to chess.Square) bool {
	return from.Row == to.Row && abs(to.Col-from.Col) == 2
}

// moveCastlingRook moves the rook paired with a castling king onto the
// square the king passed over. A missing rook makes this a no-op.
func moveCastlingRook(board *chess.Board, colour chess.Colour, from, to chess.Square) {
	dir := sign(to.Col - from.Col)
	rookCol := chess.ShortRookCol
	if dir > 0 {
		rookCol = chess.LongRookCol
	}

	row := from.Row
	if !board.Get(row, rookCol).Is(chess.Rook, colour) {
		return
	}
	rook := board.Get(row, rookCol)
	board.Set(row, rookCol, chess.NoPiece)
	board.Set(row, from.Col+dir, rook)
}

// updateCastlingRights revokes rights for a moving king or rook.
// A king move revokes both rights; a rook leaving its home column revokes
// the matching one.
func updateCastlingRights(board *chess.Board, mover chess.Piece, from chess.Square) {
	rights := board.Rights(mover.Colour)
	switch mover.Kind {
	case chess.King:
		rights = chess.CastlingRights{}
	case chess.Rook:
		switch from.Col {
		case chess.ShortRookCol:
			rights.Short = false
		case chess.LongRookCol:
			rights.Long = false
		}
	default:
		return
	}
	board.SetRights(mover.Colour, rights)
}

// updateCastlingRightsForCapture removes a castling right when a rook is
// captured on its home corner.
func updateCastlingRightsForCapture(board *chess.Board, captured chess.Piece, at chess.Square) {
	if captured.Kind != chess.Rook || at.Row != captured.Colour.HomeRow() {
		return
	}
	rights := board.Rights(captured.Colour)
	switch at.Col {
	case chess.ShortRookCol:
		rights.Short = false
	case chess.LongRookCol:
		rights.Long = false
	default:
		return
	}
	board.SetRights(captured.Colour, rights)
}
