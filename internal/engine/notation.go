package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/gravity-games-go/internal/chess"
	"github.com/lgbarn/gravity-games-go/internal/errors"
)

// InitialNotation is the notation string for the gravity chess starting position.
const InitialNotation = "rnbkqbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBKQBNR w KQkq - 0"

// NewBoardFromNotation creates a board from a position string.
//
// The format follows FEN: piece placement from row 7 down to row 0, the side
// to move (w or b), castling rights (K and Q for White short and long, k and
// q for Black, or -), the en passant target as "row,col" or -, and the ply
// count. Trailing fields may be omitted.
func NewBoardFromNotation(s string) (*chess.Board, error) {
	parts := strings.Fields(s)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty position string: %w", errors.ErrInvalidPosition)
	}

	board := chess.NewBoard()

	if err := parsePlacement(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}
	if err := parsePlies(board, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// MustBoardFromNotation is like NewBoardFromNotation but panics on error.
// It is meant for fixed positions in tests and tables.
func MustBoardFromNotation(s string) *chess.Board {
	board, err := NewBoardFromNotation(s)
	if err != nil {
		panic(err)
	}
	return board
}

// NewInitialBoard creates a board with the gravity chess starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}

// parsePlacement parses the piece placement field.
func parsePlacement(board *chess.Board, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != chess.BoardSize {
		return &errors.PositionError{
			Err:      errors.ErrInvalidPosition,
			Field:    "placement",
			Expected: fmt.Sprintf("%d rows", chess.BoardSize),
			Got:      strconv.Itoa(len(rows)),
		}
	}

	offset := 0
	for i, text := range rows {
		row := chess.BoardSize - 1 - i
		col := 0
		for j := 0; j < len(text); j++ {
			c := text[j]
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				kind := chess.KindFromLetter(c)
				if kind == chess.None {
					return &errors.PositionError{
						Err:      errors.ErrInvalidPosition,
						Field:    "placement",
						Offset:   offset + j,
						Expected: "piece letter or digit",
						Got:      strconv.Quote(string(c)),
					}
				}
				colour := chess.White
				if c >= 'a' && c <= 'z' {
					colour = chess.Black
				}
				board.Set(row, col, chess.Piece{Kind: kind, Colour: colour})
				col++
			}
			if col > chess.BoardSize {
				return &errors.PositionError{
					Err:      errors.ErrInvalidPosition,
					Field:    "placement",
					Offset:   offset + j,
					Expected: fmt.Sprintf("%d squares in row %d", chess.BoardSize, row),
					Got:      strconv.Itoa(col),
				}
			}
		}
		if col != chess.BoardSize {
			return &errors.PositionError{
				Err:      errors.ErrInvalidPosition,
				Field:    "placement",
				Offset:   offset,
				Expected: fmt.Sprintf("%d squares in row %d", chess.BoardSize, row),
				Got:      strconv.Itoa(col),
			}
		}
		offset += len(text) + 1
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidPosition)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	var white, black chess.CastlingRights
	for _, c := range parts[2] {
		switch c {
		case 'K':
			white.Short = true
		case 'Q':
			white.Long = true
		case 'k':
			black.Short = true
		case 'q':
			black.Long = true
		default:
			return fmt.Errorf("invalid castling flag %q: %w", c, errors.ErrInvalidPosition)
		}
	}
	board.SetRights(chess.White, white)
	board.SetRights(chess.Black, black)
	return nil
}

// parseEnPassant parses the en passant target square field. The victim is the
// pawn of the side not to move, one row past the target.
func parseEnPassant(board *chess.Board, parts []string) error {
	board.ClearEnPassant()
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}

	r, c, ok := strings.Cut(parts[3], ",")
	row, errRow := strconv.Atoi(r)
	col, errCol := strconv.Atoi(c)
	if !ok || errRow != nil || errCol != nil || !chess.OnBoard(row, col) {
		return fmt.Errorf("invalid en passant square %q: %w", parts[3], errors.ErrInvalidPosition)
	}

	mover := board.ToMove.Opposite()
	from := chess.Square{Row: row - mover.Forward(), Col: col}
	to := chess.Square{Row: row + mover.Forward(), Col: col}
	if !to.OnBoard() || !from.OnBoard() {
		return fmt.Errorf("en passant square %q has no double step behind it: %w", parts[3], errors.ErrInvalidPosition)
	}
	board.OpenEnPassant(from, to)
	return nil
}

// parsePlies parses the ply counter field.
func parsePlies(board *chess.Board, parts []string) error {
	if len(parts) < 5 {
		return nil
	}
	plies, err := strconv.Atoi(parts[4])
	if err != nil || plies < 0 {
		return fmt.Errorf("invalid ply count %q: %w", parts[4], errors.ErrInvalidPosition)
	}
	board.Plies = plies
	return nil
}

// BoardToNotation converts a board to a position string.
func BoardToNotation(board *chess.Board) string {
	var sb strings.Builder

	writePlacement(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	fmt.Fprintf(&sb, " %d", board.Plies)

	return sb.String()
}

// writePlacement writes the piece placement to the builder.
func writePlacement(sb *strings.Builder, board *chess.Board) {
	for row := chess.BoardSize - 1; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Get(row, col)
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	white, black := board.Rights(chess.White), board.Rights(chess.Black)
	hasCastling := false
	for _, flag := range []struct {
		set    bool
		letter byte
	}{
		{white.Short, 'K'},
		{white.Long, 'Q'},
		{black.Short, 'k'},
		{black.Long, 'q'},
	} {
		if flag.set {
			sb.WriteByte(flag.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if target, open := board.EPTarget(); open {
		fmt.Fprintf(sb, "%d,%d", target.Row, target.Col)
	} else {
		sb.WriteByte('-')
	}
}
