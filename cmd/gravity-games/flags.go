package main

import (
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lgbarn/gravity-games-go/internal/config"
	"github.com/lgbarn/gravity-games-go/internal/errors"
)

// Flag names shared by several commands.
const (
	flagVariant   = "variant"
	flagRows      = "rows"
	flagCols      = "cols"
	flagSweeps    = "gravity-sweeps"
	flagDrawPlies = "draw-plies"
	flagPosition  = "position"
	flagGames     = "games"
	flagWorkers   = "workers"
	flagWhite     = "white"
	flagBlack     = "black"
	flagSeed      = "seed"
	flagMaxPlies  = "max-plies"
	flagJSON      = "json"
	flagOutput    = "output"
	flagLog       = "log"
	flagVerbose   = "verbose"
	flagQuiet     = "quiet"
	flagMoves     = "show-moves"
	flagBoards    = "show-boards"
	flagExact     = "exact-repeats"
)

// ruleFlags select the variant and its rule parameters.
func ruleFlags() []cli.Flag {
	defaults := config.NewRulesConfig()
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagVariant,
			Aliases: []string{"V"},
			Value:   string(config.Gravity),
			Usage:   "game variant: gravity or football",
			Sources: cli.EnvVars("GRAVITY_GAMES_VARIANT"),
			Validator: func(s string) error {
				_, err := config.ParseVariant(s)
				return err
			},
		},
		&cli.IntFlag{Name: flagRows, Value: defaults.Rows, Usage: "football grid rows"},
		&cli.IntFlag{Name: flagCols, Value: defaults.Cols, Usage: "football grid columns, goal columns included"},
		&cli.IntFlag{Name: flagSweeps, Value: defaults.GravitySweeps, Usage: "gravity sweeps after each gravity chess move"},
		&cli.IntFlag{Name: flagDrawPlies, Value: defaults.DrawPlies, Usage: "ply count at which gravity chess is drawn"},
	}
}

// matchFlags control a batch of self-play matches.
func matchFlags() []cli.Flag {
	defaults := config.NewMatchConfig()
	return []cli.Flag{
		&cli.IntFlag{Name: flagGames, Aliases: []string{"n"}, Value: defaults.Games, Usage: "number of matches"},
		&cli.IntFlag{
			Name:    flagWorkers,
			Aliases: []string{"w"},
			Value:   defaults.Workers,
			Usage:   "matches played in parallel",
			Sources: cli.EnvVars("GRAVITY_GAMES_WORKERS"),
		},
		&cli.StringFlag{Name: flagWhite, Value: defaults.White, Usage: "white player: random or greedy"},
		&cli.StringFlag{Name: flagBlack, Value: defaults.Black, Usage: "black player: random or greedy"},
		&cli.Uint64Flag{Name: flagSeed, Value: defaults.Seed, Usage: "base seed for the random players"},
		&cli.IntFlag{Name: flagMaxPlies, Value: defaults.MaxPlies, Usage: "stop a match after this many actions (0 = no limit)"},
		&cli.BoolFlag{Name: flagJSON, Usage: "write results as JSON"},
		&cli.BoolFlag{Name: flagMoves, Usage: "list the moves of every match"},
		&cli.BoolFlag{Name: flagBoards, Usage: "show the final board of every match"},
		&cli.BoolFlag{Name: flagExact, Usage: "count a match as a repeat only when its moves match too"},
		&cli.StringFlag{Name: flagOutput, Aliases: []string{"o"}, Usage: "write results to `FILE`", TakesFile: true},
		&cli.StringFlag{Name: flagLog, Aliases: []string{"l"}, Usage: "write diagnostics to `FILE`", TakesFile: true},
		&cli.BoolFlag{Name: flagVerbose, Usage: "report every match"},
		&cli.BoolFlag{Name: flagQuiet, Aliases: []string{"q"}, Usage: "suppress the summary"},
	}
}

// buildConfig turns the flags of cmd into a validated Config. Flags that a
// command does not define keep their defaults.
func buildConfig(cmd *cli.Command) (*config.Config, error) {
	b := config.NewConfigBuilder().
		WithOutput(cmd.Root().Writer).
		WithLog(cmd.Root().ErrWriter)

	variant, err := config.ParseVariant(cmd.String(flagVariant))
	if err != nil {
		return nil, err
	}
	b.WithVariant(variant).
		WithGrid(cmd.Int(flagRows), cmd.Int(flagCols)).
		WithGravity(cmd.Int(flagSweeps), cmd.Int(flagDrawPlies))

	if hasFlag(cmd, flagGames) {
		b.WithGames(cmd.Int(flagGames), cmd.Int(flagWorkers)).
			WithPlayers(cmd.String(flagWhite), cmd.String(flagBlack)).
			WithSeed(cmd.Uint64(flagSeed)).
			WithMaxPlies(cmd.Int(flagMaxPlies)).
			WithExactDuplicates(cmd.Bool(flagExact)).
			WithJSONOutput(cmd.Bool(flagJSON))
	}

	switch {
	case cmd.Bool(flagQuiet):
		b.WithVerbosity(0)
	case cmd.Bool(flagVerbose):
		b.WithVerbosity(2)
	}

	cfg := b.Build()
	cfg.Output.ShowMoves = cmd.Bool(flagMoves)
	cfg.Output.ShowBoards = cmd.Bool(flagBoards)
	cfg.Output.Filename = cmd.String(flagOutput)
	cfg.Output.LogFilename = cmd.String(flagLog)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// hasFlag reports whether cmd defines a flag called name.
func hasFlag(cmd *cli.Command, name string) bool {
	for _, f := range cmd.Flags {
		for _, n := range f.Names() {
			if n == name {
				return true
			}
		}
	}
	return false
}

// setupOutputFile opens the result and log files named in the configuration.
// The returned function closes whatever was opened.
func setupOutputFile(cfg *config.Config) (func(), error) {
	var closers []io.Closer
	closeAll := func() {
		for _, c := range closers {
			c.Close()
		}
	}

	if name := cfg.Output.Filename; name != "" {
		f, err := os.Create(name)
		if err != nil {
			return closeAll, errors.Wrapf(err, "cannot create output file %s", name)
		}
		cfg.SetOutput(f)
		closers = append(closers, f)
	}
	if name := cfg.Output.LogFilename; name != "" {
		f, err := os.Create(name)
		if err != nil {
			closeAll()
			return func() {}, errors.Wrapf(err, "cannot create log file %s", name)
		}
		cfg.SetLog(f)
		closers = append(closers, f)
	}
	return closeAll, nil
}
