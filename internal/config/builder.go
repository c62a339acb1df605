package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVariant sets the variant to play.
func (b *ConfigBuilder) WithVariant(v Variant) *ConfigBuilder {
	b.cfg.Variant = v
	return b
}

// WithGames sets the number of matches and how many run at once.
func (b *ConfigBuilder) WithGames(games, workers int) *ConfigBuilder {
	b.cfg.Match.Games = games
	b.cfg.Match.Workers = workers
	return b
}

// WithPlayers sets the White and Black player names.
func (b *ConfigBuilder) WithPlayers(white, black string) *ConfigBuilder {
	b.cfg.Match.White = white
	b.cfg.Match.Black = black
	return b
}

// WithSeed sets the base random seed.
func (b *ConfigBuilder) WithSeed(seed uint64) *ConfigBuilder {
	b.cfg.Match.Seed = seed
	return b
}

// WithMaxPlies sets the per-match ply cap.
func (b *ConfigBuilder) WithMaxPlies(plies int) *ConfigBuilder {
	b.cfg.Match.MaxPlies = plies
	return b
}

// WithExactDuplicates makes repeat detection compare move sequences.
func (b *ConfigBuilder) WithExactDuplicates(exact bool) *ConfigBuilder {
	b.cfg.Match.ExactDuplicates = exact
	return b
}

// WithGrid sets the football grid size.
func (b *ConfigBuilder) WithGrid(rows, cols int) *ConfigBuilder {
	b.cfg.Rules.Rows = rows
	b.cfg.Rules.Cols = cols
	return b
}

// WithGravity sets the gravity sweeps per move and the draw ply count.
func (b *ConfigBuilder) WithGravity(sweeps, drawPlies int) *ConfigBuilder {
	b.cfg.Rules.GravitySweeps = sweeps
	b.cfg.Rules.DrawPlies = drawPlies
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
