package player

import (
	"testing"

	"github.com/lgbarn/gravity-games-go/internal/chess"
	"github.com/lgbarn/gravity-games-go/internal/engine"
	"github.com/lgbarn/gravity-games-go/internal/errors"
	"github.com/lgbarn/gravity-games-go/internal/harness"
	"github.com/lgbarn/gravity-games-go/internal/testutil"
)

func gravityGrid(t *testing.T, notation string) harness.Grid {
	t.Helper()
	b, err := engine.NewBoardFromNotation(notation)
	if err != nil {
		t.Fatalf("NewBoardFromNotation(%q) error: %v", notation, err)
	}
	return harness.EncodeBoard(b)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{RandomName, false},
		{GreedyName, false},
		{"minimax", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.name)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, f(1).Name(), tt.name)
		})
	}

	testutil.AssertEqual(t, Names(), []string{GreedyName, RandomName})
}

func TestRandom_Deterministic(t *testing.T) {
	game := harness.NewGravityGame(engine.DefaultRules())
	g := game.InitBoard()

	mask, err := game.ValidMoves(g, 1)
	testutil.AssertNoError(t, err)

	a, b := NewRandom(42), NewRandom(42)
	seen := make(map[int]bool)
	for i := 0; i < 50; i++ {
		x, err := a.Play(game, g, 1)
		testutil.AssertNoError(t, err)
		y, err := b.Play(game, g, 1)
		testutil.AssertNoError(t, err)

		testutil.AssertEqual(t, x, y, "play %d", i)
		testutil.AssertTrue(t, mask[x], "action %d is legal", x)
		seen[x] = true
	}
	testutil.AssertTrue(t, len(seen) > 1, "random player varies its choice")
}

func TestRandom_Football(t *testing.T) {
	game, err := harness.NewFootballGame(7, 7)
	testutil.AssertNoError(t, err)

	g, player := game.InitBoard(), 1
	p := NewRandom(3)
	for i := 0; i < 500; i++ {
		ended, err := game.GameEnded(g, player)
		testutil.AssertNoError(t, err)
		if ended != 0 {
			return
		}
		a, err := p.Play(game, g, player)
		if err != nil {
			t.Fatalf("Play() error at action %d: %v", i, err)
		}
		g, player, err = game.NextState(g, player, a)
		if err != nil {
			t.Fatalf("NextState(%d) error: %v", a, err)
		}
	}
}

func TestGreedy_TakesTheKing(t *testing.T) {
	game := harness.NewGravityGame(engine.DefaultRules())
	g := gravityGrid(t, "8/8/8/8/8/8/3k4/3K4 w - - 0")

	a, err := NewGreedy().Play(game, g, 1)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, a, harness.EncodeMove(chess.Move{FromRow: 0, FromCol: 3, ToRow: 1, ToCol: 3}))
}

func TestGreedy_ScoresTheGoal(t *testing.T) {
	game, err := harness.NewFootballGame(7, 7)
	testutil.AssertNoError(t, err)

	g := game.InitBoard()
	g[3][4], g[3][5] = 1, 1

	a, err := NewGreedy().Play(game, g, 1)
	testutil.AssertNoError(t, err)

	move, err := game.DecodeAction(a)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, move.String(), "hop 3,6")
}

func TestGreedy_TiesGoToLowestAction(t *testing.T) {
	game := harness.NewGravityGame(engine.DefaultRules())

	a, err := NewGreedy().Play(game, game.InitBoard(), 1)
	testutil.AssertNoError(t, err)

	// Knight 0,1 -> 2,0 is the lowest encoded move in the initial position.
	testutil.AssertEqual(t, a, 80)
}

func TestPlayers_NoLegalAction(t *testing.T) {
	game := harness.NewGravityGame(engine.DefaultRules())
	g := gravityGrid(t, "PP6/PP6/PP6/PP6/PP6/PP6/PP6/KP5k w - - 0")

	for _, p := range []Player{NewRandom(1), NewGreedy()} {
		_, err := p.Play(game, g, 1)
		testutil.AssertErrorIs(t, err, errors.ErrGameOver, p.Name())
	}
}

func TestPlayers_BadGrid(t *testing.T) {
	game := harness.NewGravityGame(engine.DefaultRules())

	for _, p := range []Player{NewRandom(1), NewGreedy()} {
		_, err := p.Play(game, harness.NewGrid(3, 3), 1)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidPosition, p.Name())
	}
}
