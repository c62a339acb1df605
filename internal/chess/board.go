package chess

// CastlingRights holds the two castling flags of one colour.
// Short castling goes towards column 0, long castling towards column 7.
type CastlingRights struct {
	Short bool
	Long  bool
}

// Board represents a gravity chess board with all state needed for the game.
// It is a plain value: assigning or copying a Board yields an independent position.
type Board struct {
	// The board squares, indexed [row][col]. Row 0 is White's home row.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Castling flags, indexed by colour (White first).
	Castling [2]CastlingRights

	// Is en passant capture possible? If so then EPRow and EPCol hold the
	// square passed over by the double-stepping pawn, and EPVictimRow and
	// EPVictimCol the square that pawn now stands on.
	EnPassant   bool
	EPRow       int
	EPCol       int
	EPVictimRow int
	EPVictimCol int

	// Plies played so far. Drives the fractional draw counter.
	Plies int
}

// Located is a piece together with the square it stands on.
type Located struct {
	Square
	Piece Piece
}

// NewBoard creates a new empty board with White to move and no castling rights.
func NewBoard() *Board {
	return &Board{ToMove: White}
}

// SetupInitialPosition sets up the gravity chess starting position.
// The king stands on column 3 and the queen on column 4 for both colours.
func (b *Board) SetupInitialPosition() {
	*b = Board{ToMove: White}

	backRank := []Kind{Rook, Knight, Bishop, King, Queen, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[White.HomeRow()][col] = W(backRank[col])
		b.Squares[White.PawnRow()][col] = W(Pawn)
		b.Squares[Black.PawnRow()][col] = B(Pawn)
		b.Squares[Black.HomeRow()][col] = B(backRank[col])
	}

	b.Castling[White.index()] = CastlingRights{Short: true, Long: true}
	b.Castling[Black.index()] = CastlingRights{Short: true, Long: true}
}

// Get returns the piece at (row, col), or the empty piece when off the board.
func (b *Board) Get(row, col int) Piece {
	if !OnBoard(row, col) {
		return NoPiece
	}
	return b.Squares[row][col]
}

// At returns the piece on a square, or the empty piece when off the board.
func (b *Board) At(sq Square) Piece {
	return b.Get(sq.Row, sq.Col)
}

// Set places a piece at (row, col). Off-board coordinates are ignored.
func (b *Board) Set(row, col int, piece Piece) {
	if OnBoard(row, col) {
		b.Squares[row][col] = piece
	}
}

// IsEmpty reports whether (row, col) is an empty on-board square.
func (b *Board) IsEmpty(row, col int) bool {
	return OnBoard(row, col) && b.Squares[row][col].IsEmpty()
}

// PieceAt returns the piece on a square and whether there is one.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	p := b.At(sq)
	return p, !p.IsEmpty()
}

// Pieces returns every piece of the given colour in row-major order.
func (b *Board) Pieces(colour Colour) []Located {
	var out []Located
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if !p.IsEmpty() && p.Colour == colour {
				out = append(out, Located{Square: Square{Row: row, Col: col}, Piece: p})
			}
		}
	}
	return out
}

// KingCount returns the number of kings of the given colour on the board.
func (b *Board) KingCount(colour Colour) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col].Is(King, colour) {
				n++
			}
		}
	}
	return n
}

// Rights returns the castling flags of a colour.
func (b *Board) Rights(colour Colour) CastlingRights {
	return b.Castling[colour.index()]
}

// SetRights replaces the castling flags of a colour.
func (b *Board) SetRights(colour Colour, rights CastlingRights) {
	b.Castling[colour.index()] = rights
}

// CanCastle reports whether the colour still holds the short or long castling right.
func (b *Board) CanCastle(colour Colour, long bool) bool {
	r := b.Rights(colour)
	if long {
		return r.Long
	}
	return r.Short
}

// EPTarget returns the en passant target square and whether the window is open.
func (b *Board) EPTarget() (Square, bool) {
	return Square{Row: b.EPRow, Col: b.EPCol}, b.EnPassant
}

// EPVictim returns the square of the pawn capturable en passant.
func (b *Board) EPVictim() Square {
	return Square{Row: b.EPVictimRow, Col: b.EPVictimCol}
}

// OpenEnPassant records a double pawn step from -> to.
func (b *Board) OpenEnPassant(from, to Square) {
	b.EnPassant = true
	b.EPRow = (from.Row + to.Row) / 2
	b.EPCol = to.Col
	b.EPVictimRow = to.Row
	b.EPVictimCol = to.Col
}

// ClearEnPassant closes the en passant window.
func (b *Board) ClearEnPassant() {
	b.EnPassant = false
	b.EPRow, b.EPCol = 0, 0
	b.EPVictimRow, b.EPVictimCol = 0, 0
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// String renders the board with row 7 at the top, one line per row.
func (b *Board) String() string {
	buf := make([]byte, 0, BoardSize*(BoardSize+1))
	for row := BoardSize - 1; row >= 0; row-- {
		for col := 0; col < BoardSize; col++ {
			buf = append(buf, b.Squares[row][col].Letter())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
