package config

import (
	"bytes"
	"os"
	"testing"

	"github.com/lgbarn/gravity-games-go/internal/engine"
	"github.com/lgbarn/gravity-games-go/internal/errors"
	"github.com/lgbarn/gravity-games-go/internal/testutil"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Variant != Gravity {
		t.Errorf("Variant = %q, want %q", cfg.Variant, Gravity)
	}
	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.OutputFile != os.Stdout {
		t.Error("OutputFile should default to stdout")
	}
	if cfg.LogFile != os.Stderr {
		t.Error("LogFile should default to stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// TestMatchConfig_Defaults verifies MatchConfig has sensible defaults
func TestMatchConfig_Defaults(t *testing.T) {
	cfg := NewMatchConfig()

	if cfg.Games != 1 {
		t.Errorf("Games = %d, want 1", cfg.Games)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want >= 1", cfg.Workers)
	}
	if cfg.White != RandomPlayer || cfg.Black != RandomPlayer {
		t.Errorf("players = %q/%q, want random/random", cfg.White, cfg.Black)
	}
}

// TestRulesConfig_Defaults verifies RulesConfig matches the engine defaults
func TestRulesConfig_Defaults(t *testing.T) {
	cfg := NewRulesConfig()

	testutil.AssertEqual(t, cfg.Gravity(), engine.DefaultRules())
	testutil.AssertEqual(t, cfg.Rows, 7)
	testutil.AssertEqual(t, cfg.Cols, 7)
}

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.JSONFormat {
		t.Error("JSONFormat should be false by default")
	}
	if cfg.Filename != "" || cfg.LogFilename != "" {
		t.Error("file names should be empty by default")
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{"gravity", Gravity, false},
		{"football", Football, false},
		{"chess", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVariant(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVariant(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseVariant(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestConfig_Validate verifies each group of settings is checked
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"football", func(c *Config) { c.Variant = Football }, false},
		{"unknown variant", func(c *Config) { c.Variant = "go" }, true},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"no games", func(c *Config) { c.Match.Games = 0 }, true},
		{"no workers", func(c *Config) { c.Match.Workers = 0 }, true},
		{"negative max plies", func(c *Config) { c.Match.MaxPlies = -5 }, true},
		{"unlimited plies", func(c *Config) { c.Match.MaxPlies = 0 }, false},
		{"unknown player", func(c *Config) { c.Match.Black = "minimax" }, true},
		{"greedy players", func(c *Config) { c.Match.White, c.Match.Black = GreedyPlayer, GreedyPlayer }, false},
		{"negative sweeps", func(c *Config) { c.Rules.GravitySweeps = -1 }, true},
		{"zero draw plies", func(c *Config) { c.Rules.DrawPlies = 0 }, true},
		{"grid too narrow", func(c *Config) { c.Rules.Cols = 2 }, true},
		{"grid without rows", func(c *Config) { c.Rules.Rows = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

func TestConfig_Logf(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}
	cfg.SetLog(buf)

	cfg.Logf(1, "played %d matches", 3)
	cfg.Logf(2, "match detail")

	testutil.AssertEqual(t, buf.String(), "played 3 matches\n")

	cfg.Verbosity = 0
	cfg.Logf(1, "quiet")
	testutil.AssertNotContains(t, buf.String(), "quiet")
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithVariant(Football).
		WithGames(10, 3).
		WithPlayers(GreedyPlayer, RandomPlayer).
		WithSeed(42).
		WithMaxPlies(300).
		WithExactDuplicates(true).
		WithGrid(9, 11).
		WithGravity(2, 80).
		WithJSONOutput(true).
		WithOutput(out).
		WithLog(out).
		WithVerbosity(2).
		Build()

	testutil.AssertEqual(t, cfg.Variant, Football)
	testutil.AssertEqual(t, *cfg.Match, MatchConfig{
		Games:           10,
		Workers:         3,
		MaxPlies:        300,
		Seed:            42,
		White:           GreedyPlayer,
		Black:           RandomPlayer,
		ExactDuplicates: true,
	})
	testutil.AssertEqual(t, *cfg.Rules, RulesConfig{GravitySweeps: 2, DrawPlies: 80, Rows: 9, Cols: 11})
	testutil.AssertTrue(t, cfg.Output.JSONFormat)
	testutil.AssertTrue(t, cfg.OutputFile == out && cfg.LogFile == out, "writers set")
	testutil.AssertEqual(t, cfg.Verbosity, 2)
	testutil.AssertNoError(t, cfg.Validate())
}
