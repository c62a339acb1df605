package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/gravity-games-go/internal/chess"
	"github.com/lgbarn/gravity-games-go/internal/errors"
	"github.com/lgbarn/gravity-games-go/internal/testutil"
)

func TestNewBoardFromNotation(t *testing.T) {
	tests := []struct {
		name    string
		pos     string
		wantErr bool
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			pos:  InitialNotation,
			checkFn: func(b *chess.Board) bool {
				return b.Get(0, 3) == chess.W(chess.King) &&
					b.Get(0, 4) == chess.W(chess.Queen) &&
					b.Get(7, 3) == chess.B(chess.King) &&
					b.Get(1, 0) == chess.W(chess.Pawn) &&
					b.Get(6, 7) == chess.B(chess.Pawn) &&
					b.ToMove == chess.White &&
					b.CanCastle(chess.White, false) &&
					b.CanCastle(chess.Black, true) &&
					!b.EnPassant
			},
		},
		{
			name: "after double step",
			pos:  "rnbkqbnr/pppppppp/8/8/P7/8/1PPPPPPP/RNBKQBNR b KQkq 2,0 1",
			checkFn: func(b *chess.Board) bool {
				target, open := b.EPTarget()
				return open &&
					target == chess.Square{Row: 2, Col: 0} &&
					b.EPVictim() == chess.Square{Row: 3, Col: 0} &&
					b.ToMove == chess.Black &&
					b.Plies == 1
			},
		},
		{
			name: "black double step",
			pos:  "3k4/3p4/8/p7/1P6/8/8/3K4 w - 5,0 12",
			checkFn: func(b *chess.Board) bool {
				target, open := b.EPTarget()
				return open &&
					target == chess.Square{Row: 5, Col: 0} &&
					b.EPVictim() == chess.Square{Row: 4, Col: 0} &&
					b.Plies == 12
			},
		},
		{
			name: "partial castling rights",
			pos:  "r2k3r/pppppppp/8/8/8/8/PPPPPPPP/R2K3R w Kq - 0",
			checkFn: func(b *chess.Board) bool {
				return b.Rights(chess.White) == chess.CastlingRights{Short: true} &&
					b.Rights(chess.Black) == chess.CastlingRights{Long: true}
			},
		},
		{
			name: "placement only",
			pos:  "8/8/8/8/8/8/8/3K3k",
			checkFn: func(b *chess.Board) bool {
				return b.ToMove == chess.White &&
					b.Get(0, 7) == chess.B(chess.King) &&
					b.Rights(chess.White) == chess.CastlingRights{} &&
					b.Plies == 0
			},
		},
		{name: "empty string", pos: "", wantErr: true},
		{name: "too few rows", pos: "8/8/8/8/8/8/3K3k w - - 0", wantErr: true},
		{name: "unknown piece", pos: "8/8/8/8/8/8/8/3X3k w - - 0", wantErr: true},
		{name: "row too long", pos: "9/8/8/8/8/8/8/3K3k w - - 0", wantErr: true},
		{name: "row overflow", pos: "ppppppppp/8/8/8/8/8/8/3K3k w - - 0", wantErr: true},
		{name: "row too short", pos: "7/8/8/8/8/8/8/3K3k w - - 0", wantErr: true},
		{name: "bad side", pos: "8/8/8/8/8/8/8/3K3k x - - 0", wantErr: true},
		{name: "bad castling", pos: "8/8/8/8/8/8/8/3K3k w KZ - 0", wantErr: true},
		{name: "en passant off board", pos: "8/8/8/8/8/8/8/3K3k b - 9,9 0", wantErr: true},
		{name: "en passant malformed", pos: "8/8/8/8/8/8/8/3K3k b - e3 0", wantErr: true},
		{name: "en passant on edge row", pos: "8/8/8/8/8/8/8/3K3k b - 0,0 0", wantErr: true},
		{name: "negative plies", pos: "8/8/8/8/8/8/8/3K3k w - - -1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromNotation(tt.pos)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewBoardFromNotation(%q) error = %v, wantErr %v", tt.pos, err, tt.wantErr)
			}
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidPosition)
				return
			}
			if tt.checkFn != nil && !tt.checkFn(board) {
				t.Errorf("NewBoardFromNotation(%q) board check failed:\n%s", tt.pos, board)
			}
		})
	}
}

func TestNewBoardFromNotation_PositionError(t *testing.T) {
	_, err := NewBoardFromNotation("8/8/8/8/8/8/8/3KZ2k w - - 0")

	var posErr *errors.PositionError
	if !stderrors.As(err, &posErr) {
		t.Fatalf("error = %v, want *errors.PositionError", err)
	}
	if posErr.Field != "placement" {
		t.Errorf("Field = %q, want %q", posErr.Field, "placement")
	}
	if posErr.Offset != 16 {
		t.Errorf("Offset = %d, want 16", posErr.Offset)
	}
}

func TestBoardToNotation_RoundTrip(t *testing.T) {
	positions := []string{
		InitialNotation,
		"rnbkqbnr/pppppppp/8/8/P7/8/1PPPPPPP/RNBKQBNR b KQkq 2,0 1",
		"3k4/3p4/8/p7/1P6/8/8/3K4 w - 5,0 12",
		"r2k3r/pppppppp/8/8/8/8/PPPPPPPP/R2K3R w Kq - 0",
		"8/8/8/8/8/7k/7P/R2K3R w KQ - 99",
		"PP6/PP6/PP6/PP6/PP6/PP6/PP6/KP5k b - - 40",
	}

	for _, pos := range positions {
		t.Run(pos, func(t *testing.T) {
			board, err := NewBoardFromNotation(pos)
			if err != nil {
				t.Fatalf("NewBoardFromNotation(%q) error: %v", pos, err)
			}
			testutil.AssertEqual(t, BoardToNotation(board), pos)
		})
	}
}

func TestNewInitialBoard(t *testing.T) {
	board := NewInitialBoard()
	fromNotation := MustBoardFromNotation(InitialNotation)

	testutil.AssertEqual(t, *board, *fromNotation)
	testutil.AssertEqual(t, BoardToNotation(board), InitialNotation)
}

func TestMustBoardFromNotation_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustBoardFromNotation did not panic on a bad position")
		}
	}()
	MustBoardFromNotation("not a position")
}
