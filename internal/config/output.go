package config

// OutputConfig holds settings related to result output.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// Filename is where results go; empty means OutputFile as given
	Filename string

	// LogFilename is where diagnostics go; empty means LogFile as given
	LogFilename string

	// ShowBoards includes the final board of every match in text output
	ShowBoards bool

	// ShowMoves includes the move list of every match in text output
	ShowMoves bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{}
}
