package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// Move is a source-destination square pair. Castling, en passant and
// promotion are implied by the piece on the source square.
type Move struct {
	FromRow int
	FromCol int
	ToRow   int
	ToCol   int
}

// NewMove creates a move between two squares.
func NewMove(from, to Square) Move {
	return Move{FromRow: from.Row, FromCol: from.Col, ToRow: to.Row, ToCol: to.Col}
}

// From returns the source square.
func (m Move) From() Square {
	return Square{Row: m.FromRow, Col: m.FromCol}
}

// To returns the destination square.
func (m Move) To() Square {
	return Square{Row: m.ToRow, Col: m.ToCol}
}

// OnBoard reports whether both squares lie on the board.
func (m Move) OnBoard() bool {
	return m.From().OnBoard() && m.To().OnBoard()
}

// String returns the coordinate form "fromRow,fromCol->toRow,toCol".
func (m Move) String() string {
	return fmt.Sprintf("%d,%d->%d,%d", m.FromRow, m.FromCol, m.ToRow, m.ToCol)
}

// Less orders moves row-major by source square, then by destination.
func (m Move) Less(o Move) bool {
	if m.FromRow != o.FromRow {
		return m.FromRow < o.FromRow
	}
	if m.FromCol != o.FromCol {
		return m.FromCol < o.FromCol
	}
	if m.ToRow != o.ToRow {
		return m.ToRow < o.ToRow
	}
	return m.ToCol < o.ToCol
}

// ParseMove parses the coordinate form produced by Move.String.
func ParseMove(s string) (Move, error) {
	from, to, ok := strings.Cut(strings.TrimSpace(s), "->")
	if !ok {
		return Move{}, fmt.Errorf("move %q: missing \"->\"", s)
	}
	fr, fc, err := parseSquare(from)
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", s, err)
	}
	tr, tc, err := parseSquare(to)
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", s, err)
	}
	m := Move{FromRow: fr, FromCol: fc, ToRow: tr, ToCol: tc}
	if !m.OnBoard() {
		return Move{}, fmt.Errorf("move %q: square off the board", s)
	}
	return m, nil
}

// parseSquare parses "row,col".
func parseSquare(s string) (int, int, error) {
	r, c, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("square %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return 0, 0, fmt.Errorf("square %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return 0, 0, fmt.Errorf("square %q: %w", s, err)
	}
	return row, col, nil
}
