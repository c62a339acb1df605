package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lgbarn/gravity-games-go/internal/arena"
	"github.com/lgbarn/gravity-games-go/internal/config"
	"github.com/lgbarn/gravity-games-go/internal/engine"
	"github.com/lgbarn/gravity-games-go/internal/errors"
	"github.com/lgbarn/gravity-games-go/internal/football"
	"github.com/lgbarn/gravity-games-go/internal/harness"
	"github.com/lgbarn/gravity-games-go/internal/output"
)

// newApp builds the command tree.
func newApp() *cli.Command {
	return &cli.Command{
		Name:    "gravity-games",
		Usage:   "gravity chess and hop football rule engines",
		Version: programVersion,
		Commands: []*cli.Command{
			{
				Name:   "selfplay",
				Usage:  "play matches between automatic players",
				Flags:  append(ruleFlags(), matchFlags()...),
				Action: selfplayAction,
			},
			{
				Name:   "moves",
				Usage:  "list the legal moves of the side to move",
				Flags:  append(ruleFlags(), positionFlag()),
				Action: movesAction,
			},
			{
				Name:   "show",
				Usage:  "print a board",
				Flags:  append(ruleFlags(), positionFlag()),
				Action: showAction,
			},
		},
	}
}

func positionFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagPosition,
		Aliases: []string{"p"},
		Value:   engine.InitialNotation,
		Usage:   "gravity chess position in board notation",
	}
}

func selfplayAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	closeFiles, err := setupOutputFile(cfg)
	defer closeFiles()
	if err != nil {
		return err
	}

	a, err := arena.New(cfg)
	if err != nil {
		return err
	}
	a.OnResult = func(r arena.MatchResult) {
		if r.Err != nil {
			cfg.Logf(1, "match %d failed: %v", r.Index+1, r.Err)
			return
		}
		cfg.Logf(2, "match %d: %s in %d plies", r.Index+1, output.ResultString(r), r.Plies)
	}

	cfg.Logf(2, "playing %d %s matches, %s vs %s, %d workers",
		cfg.Match.Games, cfg.Variant, cfg.Match.White, cfg.Match.Black, cfg.Match.Workers)
	results, runErr := a.RunMatches(ctx, cfg.Match.Games, cfg.Match.Workers)

	w := output.NewWriter(cfg.OutputFile, cfg, a.Game)
	for _, r := range results {
		if err := w.WriteResult(r); err != nil {
			return errors.Wrapf(err, "writing match %d", r.Index+1)
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	cfg.Logf(1, "%s", arena.Summarize(results))
	return runErr
}

func movesAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	out := cfg.OutputFile

	switch cfg.Variant {
	case config.Gravity:
		board, err := engine.NewBoardFromNotation(cmd.String(flagPosition))
		if err != nil {
			return err
		}
		moves := engine.LegalMoves(board, board.ToMove)
		fmt.Fprintf(out, "%v to move, %d moves\n", board.ToMove, len(moves))
		for _, m := range moves {
			fmt.Fprintf(out, "%s\t%d\n", m, harness.EncodeMove(m))
		}

	case config.Football:
		if cmd.IsSet(flagPosition) {
			return fmt.Errorf("football positions cannot be given as notation: %w", errors.ErrInvalidConfig)
		}
		game, err := harness.NewFootballGame(cfg.Rules.Rows, cfg.Rules.Cols)
		if err != nil {
			return err
		}
		board, err := football.New(cfg.Rules.Rows, cfg.Rules.Cols)
		if err != nil {
			return err
		}
		moves := football.LegalMoves(board)
		fmt.Fprintf(out, "%v to move, %d moves\n", board.Turn(), len(moves))
		for _, m := range moves {
			fmt.Fprintf(out, "%s\t%d\n", m, game.EncodeMove(m))
		}
	}
	return nil
}

func showAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	game, err := arena.NewGame(cfg)
	if err != nil {
		return err
	}

	g := game.InitBoard()
	if cfg.Variant == config.Gravity {
		board, err := engine.NewBoardFromNotation(cmd.String(flagPosition))
		if err != nil {
			return err
		}
		g = harness.EncodeBoard(board)
		fmt.Fprintln(cfg.OutputFile, engine.BoardToNotation(board))
	} else if cmd.IsSet(flagPosition) {
		return fmt.Errorf("football positions cannot be given as notation: %w", errors.ErrInvalidConfig)
	}

	fmt.Fprint(cfg.OutputFile, game.Display(g))
	return nil
}
