package testutil

import (
	"testing"

	"github.com/lgbarn/gravity-games-go/internal/chess"
)

// BoardFromRows builds a gravity chess board from eight strings of piece
// letters, row 7 first, using '.' for empty squares. White is to move and
// no castling rights are set.
func BoardFromRows(t testing.TB, rows ...string) *chess.Board {
	t.Helper()
	if len(rows) != chess.BoardSize {
		t.Fatalf("BoardFromRows: got %d rows, want %d", len(rows), chess.BoardSize)
	}

	board := chess.NewBoard()
	for i, text := range rows {
		row := chess.BoardSize - 1 - i
		if len(text) != chess.BoardSize {
			t.Fatalf("BoardFromRows: row %d is %q, want %d squares", row, text, chess.BoardSize)
		}
		for col := 0; col < chess.BoardSize; col++ {
			c := text[col]
			if c == '.' {
				continue
			}
			kind := chess.KindFromLetter(c)
			if kind == chess.None {
				t.Fatalf("BoardFromRows: bad piece letter %q at %d,%d", c, row, col)
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			board.Set(row, col, chess.Piece{Kind: kind, Colour: colour})
		}
	}
	return board
}

// Rows renders a board as eight strings, row 7 first, the inverse of
// BoardFromRows.
func Rows(board *chess.Board) []string {
	rows := make([]string, 0, chess.BoardSize)
	for row := chess.BoardSize - 1; row >= 0; row-- {
		buf := make([]byte, chess.BoardSize)
		for col := range buf {
			buf[col] = board.Get(row, col).Letter()
		}
		rows = append(rows, string(buf))
	}
	return rows
}

// CountPieces returns the number of pieces of each colour on the board.
func CountPieces(board *chess.Board) (white, black int) {
	return len(board.Pieces(chess.White)), len(board.Pieces(chess.Black))
}
