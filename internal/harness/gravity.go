package harness

import (
	"fmt"
	"math"
	"strings"

	"github.com/lgbarn/gravity-games-go/internal/chess"
	"github.com/lgbarn/gravity-games-go/internal/engine"
	"github.com/lgbarn/gravity-games-go/internal/errors"
)

// Gravity grid layout. Rows 0-7 hold the pieces as colour*kind.
const (
	gravityRows = chess.BoardSize + 2
	gravityCols = chess.BoardSize

	stateRow = chess.BoardSize     // turn, castling flags, en passant target
	extraRow = chess.BoardSize + 1 // en passant victim, draw counter

	// GravityActionSize is the number of (from, to) square pairs.
	GravityActionSize = chess.BoardSize * chess.BoardSize * chess.BoardSize * chess.BoardSize
)

// Columns of the state row.
const (
	colTurn = iota
	colWhiteShort
	colWhiteLong
	colBlackShort
	colBlackLong
	colEPAllowed
	colEPRow
	colEPCol
)

// Columns of the extra row.
const (
	colVictimRow   = 0
	colVictimCol   = 1
	colDrawCounter = gravityCols - 1
)

// EncodeMove returns the action index of a gravity chess move.
func EncodeMove(m chess.Move) int {
	return 512*m.FromRow + 64*m.FromCol + 8*m.ToRow + m.ToCol
}

// DecodeAction returns the move for a gravity chess action index.
func DecodeAction(action int) (chess.Move, error) {
	if err := checkAction(action, GravityActionSize); err != nil {
		return chess.Move{}, err
	}
	return chess.Move{
		FromRow: action / 512,
		FromCol: action / 64 % 8,
		ToRow:   action / 8 % 8,
		ToCol:   action % 8,
	}, nil
}

// EncodeBoard writes a gravity chess board into a fresh grid.
func EncodeBoard(b *chess.Board) Grid {
	g := NewGrid(gravityRows, gravityCols)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			g[row][col] = float64(b.Squares[row][col].Value())
		}
	}

	g[stateRow][colTurn] = float64(b.ToMove)
	g[stateRow][colWhiteShort] = boolValue(b.Rights(chess.White).Short)
	g[stateRow][colWhiteLong] = boolValue(b.Rights(chess.White).Long)
	g[stateRow][colBlackShort] = boolValue(b.Rights(chess.Black).Short)
	g[stateRow][colBlackLong] = boolValue(b.Rights(chess.Black).Long)

	if b.EnPassant {
		g[stateRow][colEPAllowed] = 1
		g[stateRow][colEPRow] = float64(b.EPRow)
		g[stateRow][colEPCol] = float64(b.EPCol)
		g[extraRow][colVictimRow] = float64(b.EPVictimRow)
		g[extraRow][colVictimCol] = float64(b.EPVictimCol)
	}

	g[extraRow][colDrawCounter] = engine.DrawCounter(b)
	return g
}

// DecodeBoard reads a gravity chess board from a grid.
func DecodeBoard(g Grid) (*chess.Board, error) {
	if err := g.checkShape(gravityRows, gravityCols); err != nil {
		return nil, err
	}

	b := chess.NewBoard()
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			v, err := g.intAt(row, col)
			if err != nil {
				return nil, err
			}
			p, ok := chess.PieceFromValue(v)
			if !ok {
				return nil, &errors.PositionError{
					Err:      errors.ErrInvalidPosition,
					Field:    fmt.Sprintf("cell %d,%d", row, col),
					Expected: "piece value",
					Got:      fmt.Sprintf("%d", v),
				}
			}
			b.Squares[row][col] = p
		}
	}

	turn, err := g.intAt(stateRow, colTurn)
	if err != nil {
		return nil, err
	}
	b.ToMove = chess.Colour(turn)
	if !b.ToMove.Valid() {
		return nil, fmt.Errorf("side to move %d: %w", turn, errors.ErrInvalidPosition)
	}

	var flags [5]bool
	for i, col := range []int{colWhiteShort, colWhiteLong, colBlackShort, colBlackLong, colEPAllowed} {
		if flags[i], err = g.flagAt(stateRow, col); err != nil {
			return nil, err
		}
	}
	b.SetRights(chess.White, chess.CastlingRights{Short: flags[0], Long: flags[1]})
	b.SetRights(chess.Black, chess.CastlingRights{Short: flags[2], Long: flags[3]})

	if flags[4] {
		if err := decodeEnPassant(g, b); err != nil {
			return nil, err
		}
	}

	counter := g[extraRow][colDrawCounter]
	plies := math.Round(counter / engine.DrawIncrement)
	if plies < 0 || math.IsNaN(plies) || math.IsInf(plies, 0) {
		return nil, fmt.Errorf("draw counter %g: %w", counter, errors.ErrInvalidPosition)
	}
	b.Plies = int(plies)
	return b, nil
}

func decodeEnPassant(g Grid, b *chess.Board) error {
	var coords [4]int
	cells := [4][2]int{
		{stateRow, colEPRow}, {stateRow, colEPCol},
		{extraRow, colVictimRow}, {extraRow, colVictimCol},
	}
	for i, cell := range cells {
		v, err := g.intAt(cell[0], cell[1])
		if err != nil {
			return err
		}
		coords[i] = v
	}
	if !chess.OnBoard(coords[0], coords[1]) || !chess.OnBoard(coords[2], coords[3]) {
		return fmt.Errorf("en passant squares %v: %w", coords, errors.ErrInvalidPosition)
	}
	b.EnPassant = true
	b.EPRow, b.EPCol = coords[0], coords[1]
	b.EPVictimRow, b.EPVictimCol = coords[2], coords[3]
	return nil
}

func boolValue(v bool) float64 {
	if v {
		return 1
	}
	return 0
}

// GravityGame plays gravity chess on encoded grids.
type GravityGame struct {
	rules engine.Rules
}

// NewGravityGame returns a gravity chess game using the given rules.
func NewGravityGame(rules engine.Rules) *GravityGame {
	return &GravityGame{rules: rules}
}

// Rules returns the rule parameters of the game.
func (gg *GravityGame) Rules() engine.Rules {
	return gg.rules
}

func (gg *GravityGame) Name() string { return "gravity" }

func (gg *GravityGame) BoardSize() (rows, cols int) { return gravityRows, gravityCols }

func (gg *GravityGame) ActionSize() int { return GravityActionSize }

func (gg *GravityGame) InitBoard() Grid {
	return EncodeBoard(engine.NewInitialBoard())
}

func (gg *GravityGame) NextState(g Grid, player, action int) (Grid, int, error) {
	if err := checkPlayer(player); err != nil {
		return nil, 0, err
	}
	m, err := DecodeAction(action)
	if err != nil {
		return nil, 0, err
	}
	b, err := DecodeBoard(g)
	if err != nil {
		return nil, 0, err
	}
	if err := gg.rules.Apply(b, m, chess.Colour(player)); err != nil {
		return nil, 0, err
	}
	return EncodeBoard(b), -player, nil
}

// ValidMoves marks the legal moves of the side to move recorded in the grid.
func (gg *GravityGame) ValidMoves(g Grid, player int) ([]bool, error) {
	if err := checkPlayer(player); err != nil {
		return nil, err
	}
	b, err := DecodeBoard(g)
	if err != nil {
		return nil, err
	}
	mask := make([]bool, GravityActionSize)
	for _, m := range engine.LegalMoves(b, b.ToMove) {
		mask[EncodeMove(m)] = true
	}
	return mask, nil
}

func (gg *GravityGame) GameEnded(g Grid, player int) (float64, error) {
	b, err := DecodeBoard(g)
	if err != nil {
		return 0, err
	}
	if gg.rules.IsDraw(b) {
		return DrawValue, nil
	}
	return float64(engine.Winner(b)), nil
}

// CanonicalForm returns a copy; the encoding is already side-independent.
func (gg *GravityGame) CanonicalForm(g Grid, player int) Grid {
	return g.Clone()
}

// Score is +1 when player has won, -1 when player has lost and 0 otherwise.
func (gg *GravityGame) Score(g Grid, player int) (float64, error) {
	b, err := DecodeBoard(g)
	if err != nil {
		return 0, err
	}
	return float64(engine.Winner(b) * player), nil
}

func (gg *GravityGame) ActionString(action int) string {
	m, err := DecodeAction(action)
	if err != nil {
		return fmt.Sprintf("#%d", action)
	}
	return m.String()
}

// Display renders row 7 at the top, as Board.String does, with column numbers,
// then the side to move and the ply count. Undecodable grids are shown raw.
func (gg *GravityGame) Display(g Grid) string {
	b, err := DecodeBoard(g)
	if err != nil {
		return g.String()
	}

	var sb strings.Builder
	sb.WriteString("   ")
	for col := 0; col < chess.BoardSize; col++ {
		fmt.Fprintf(&sb, "%d ", col)
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 3+2*chess.BoardSize))
	sb.WriteString("\n")
	for row := chess.BoardSize - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "%d |", row)
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteByte(b.Squares[row][col].Letter())
			sb.WriteByte(' ')
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Turn: %v\n", b.ToMove)
	fmt.Fprintf(&sb, "Plies: %d\n", b.Plies)
	return sb.String()
}
