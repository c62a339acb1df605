// Package chess provides the core gravity chess types: colours, piece kinds,
// squares, moves and the board value that holds them.
package chess

// Colour represents the colour of a piece or player.
// The numeric values double as the sign used in encoded boards.
type Colour int

const (
	Black Colour = -1
	White Colour = 1
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "NoColour"
}

// Valid reports whether c is White or Black.
func (c Colour) Valid() bool {
	return c == White || c == Black
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta of a pawn advance: +1 for White, -1 for Black.
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRow returns the row holding the colour's back rank in the initial position.
func (c Colour) HomeRow() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRow returns the row the colour's pawns start on.
func (c Colour) PawnRow() int {
	return c.HomeRow() + c.Forward()
}

// PromotionRow returns the farthest row from the colour's home row.
func (c Colour) PromotionRow() int {
	return c.Opposite().HomeRow()
}

// index maps a colour to 0 (White) or 1 (Black) for per-colour arrays.
func (c Colour) index() int {
	if c == White {
		return 0
	}
	return 1
}

// Kind represents a chess piece type.
// The numeric values double as the magnitude used in encoded boards.
type Kind int

const (
	None Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Falls reports whether gravity acts on pieces of this kind.
func (k Kind) Falls() bool {
	return k != None && k != Pawn
}

// KindFromLetter converts a piece letter (either case) to a kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return None
}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// NoPiece is the empty square value.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty reports whether p is the empty square value.
func (p Piece) IsEmpty() bool {
	return p.Kind == None
}

// Is reports whether p has the given kind and colour.
func (p Piece) Is(kind Kind, colour Colour) bool {
	return p.Kind == kind && p.Colour == colour
}

// Letter returns the piece letter, lowercase for Black and '.' for empty.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

// String returns a readable form such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Value returns the signed encoded value colour*kind (0 for empty).
func (p Piece) Value() int {
	if p.IsEmpty() {
		return 0
	}
	return int(p.Colour) * int(p.Kind)
}

// PieceFromValue decodes a signed colour*kind value.
// Returns false if the magnitude is not a valid kind.
func PieceFromValue(v int) (Piece, bool) {
	if v == 0 {
		return NoPiece, true
	}
	colour := White
	if v < 0 {
		colour = Black
		v = -v
	}
	if v >= int(NumKinds) {
		return NoPiece, false
	}
	return Piece{Kind: Kind(v), Colour: colour}, true
}

// Board dimensions.
const (
	BoardSize = 8

	// KingCol is the king's column in the initial position.
	KingCol = 3
	// ShortRookCol is the column of the rook that castles short (towards column 0).
	ShortRookCol = 0
	// LongRookCol is the column of the rook that castles long (towards column 7).
	LongRookCol = BoardSize - 1
)

// Square is a (row, col) board coordinate.
type Square struct {
	Row int
	Col int
}

// OnBoard reports whether the square lies on the 8x8 board.
func (s Square) OnBoard() bool {
	return OnBoard(s.Row, s.Col)
}

// Offset returns the square shifted by (dr, dc).
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// OnBoard reports whether (row, col) lies on the 8x8 board.
func OnBoard(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}
