package harness

import (
	"fmt"
	"strings"

	"github.com/lgbarn/gravity-games-go/internal/errors"
	"github.com/lgbarn/gravity-games-go/internal/football"
)

// FootballGame plays hop football on encoded grids. The grid has two rows
// more than the board: the first extra row is filled with the hopped flag,
// the second with the side to move.
type FootballGame struct {
	rows, cols int
}

// NewFootballGame returns a hop football game on a rows x cols board.
func NewFootballGame(rows, cols int) (*FootballGame, error) {
	if _, err := football.New(rows, cols); err != nil {
		return nil, err
	}
	return &FootballGame{rows: rows, cols: cols}, nil
}

func (fg *FootballGame) hoppedRow() int { return fg.rows }
func (fg *FootballGame) turnRow() int   { return fg.rows + 1 }
func (fg *FootballGame) cells() int     { return fg.rows * fg.cols }

// EncodeMove returns the action index of a hop football move.
func (fg *FootballGame) EncodeMove(m football.Move) int {
	switch m.Kind {
	case football.Hop:
		return fg.cells() + m.Row*fg.cols + m.Col
	case football.Skip:
		return 2 * fg.cells()
	}
	return m.Row*fg.cols + m.Col
}

// DecodeAction returns the move for a hop football action index.
func (fg *FootballGame) DecodeAction(action int) (football.Move, error) {
	if err := checkAction(action, fg.ActionSize()); err != nil {
		return football.Move{}, err
	}
	switch {
	case action == 2*fg.cells():
		return football.SkipMove(), nil
	case action >= fg.cells():
		a := action - fg.cells()
		return football.HopTo(a/fg.cols, a%fg.cols), nil
	}
	return football.PlaceAt(action/fg.cols, action%fg.cols), nil
}

// Encode writes a board into a fresh grid.
func (fg *FootballGame) Encode(b *football.Board) Grid {
	g := NewGrid(fg.rows+2, fg.cols)
	for row := 0; row < fg.rows; row++ {
		for col := 0; col < fg.cols; col++ {
			g[row][col] = float64(b.At(row, col))
		}
	}
	g.Fill(fg.hoppedRow(), boolValue(b.AlreadyHopped()))
	g.Fill(fg.turnRow(), float64(b.Turn()))
	return g
}

// Decode reads a board from a grid.
func (fg *FootballGame) Decode(g Grid) (*football.Board, error) {
	if err := g.checkShape(fg.rows+2, fg.cols); err != nil {
		return nil, err
	}
	cells := make([]football.Cell, 0, fg.cells())
	for row := 0; row < fg.rows; row++ {
		for col := 0; col < fg.cols; col++ {
			v, err := g.intAt(row, col)
			if err != nil {
				return nil, err
			}
			if v < int(football.Empty) || v > int(football.Ball) {
				return nil, &errors.PositionError{
					Err:      errors.ErrInvalidPosition,
					Field:    fmt.Sprintf("cell %d,%d", row, col),
					Expected: "cell value",
					Got:      fmt.Sprintf("%d", v),
				}
			}
			cells = append(cells, football.Cell(v))
		}
	}
	hopped, err := g.flagAt(fg.hoppedRow(), 0)
	if err != nil {
		return nil, err
	}
	turn, err := g.intAt(fg.turnRow(), 0)
	if err != nil {
		return nil, err
	}
	return football.FromCells(fg.rows, fg.cols, cells, hopped, football.Colour(turn))
}

func (fg *FootballGame) Name() string { return "football" }

func (fg *FootballGame) BoardSize() (rows, cols int) { return fg.rows + 2, fg.cols }

func (fg *FootballGame) ActionSize() int { return 2*fg.cells() + 1 }

func (fg *FootballGame) InitBoard() Grid {
	b, _ := football.New(fg.rows, fg.cols)
	return fg.Encode(b)
}

// NextState applies an action. A hop keeps the turn with player.
func (fg *FootballGame) NextState(g Grid, player, action int) (Grid, int, error) {
	if err := checkPlayer(player); err != nil {
		return nil, 0, err
	}
	m, err := fg.DecodeAction(action)
	if err != nil {
		return nil, 0, err
	}
	b, err := fg.Decode(g)
	if err != nil {
		return nil, 0, err
	}
	if err := football.ApplyMove(b, m, football.Colour(player)); err != nil {
		return nil, 0, err
	}
	return fg.Encode(b), int(b.Turn()), nil
}

// ValidMoves marks the legal moves of the side to move recorded in the grid.
func (fg *FootballGame) ValidMoves(g Grid, player int) ([]bool, error) {
	if err := checkPlayer(player); err != nil {
		return nil, err
	}
	b, err := fg.Decode(g)
	if err != nil {
		return nil, err
	}
	mask := make([]bool, fg.ActionSize())
	for _, m := range football.LegalMoves(b) {
		mask[fg.EncodeMove(m)] = true
	}
	return mask, nil
}

func (fg *FootballGame) GameEnded(g Grid, player int) (float64, error) {
	b, err := fg.Decode(g)
	if err != nil {
		return 0, err
	}
	if w := football.Winner(b); w != 0 {
		return float64(w), nil
	}
	if football.IsDraw(b) {
		return DrawValue, nil
	}
	return 0, nil
}

// CanonicalForm returns a copy with the turn row set to player.
func (fg *FootballGame) CanonicalForm(g Grid, player int) Grid {
	c := g.Clone()
	if len(c) > fg.turnRow() {
		c.Fill(fg.turnRow(), float64(player))
	}
	return c
}

// Score is +1 when player has scored, -1 when the opponent has and 0 otherwise.
func (fg *FootballGame) Score(g Grid, player int) (float64, error) {
	b, err := fg.Decode(g)
	if err != nil {
		return 0, err
	}
	return float64(football.Winner(b) * player), nil
}

func (fg *FootballGame) ActionString(action int) string {
	m, err := fg.DecodeAction(action)
	if err != nil {
		return fmt.Sprintf("#%d", action)
	}
	return m.String()
}

// Display renders the board with lettered rows and numbered columns,
// followed by the hopped flag and the side to move.
func (fg *FootballGame) Display(g Grid) string {
	b, err := fg.Decode(g)
	if err != nil {
		return g.String()
	}

	var sb strings.Builder
	sb.WriteString("   ")
	for col := 0; col < fg.cols; col++ {
		fmt.Fprintf(&sb, "%d ", col%10)
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 3+2*fg.cols))
	sb.WriteString("\n")
	for row := 0; row < fg.rows; row++ {
		fmt.Fprintf(&sb, "%c |", rowLabel(row))
		for col := 0; col < fg.cols; col++ {
			sb.WriteByte(b.At(row, col).Symbol())
			sb.WriteByte(' ')
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Already hopped: %v\n", b.AlreadyHopped())
	fmt.Fprintf(&sb, "Turn: %v\n", b.Turn())
	return sb.String()
}

// rowLabel names rows A-Z, then a-z, then '?'.
func rowLabel(row int) byte {
	switch {
	case row < 26:
		return byte('A' + row)
	case row < 52:
		return byte('a' + row - 26)
	}
	return '?'
}
