package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/gravity-games-go/internal/arena"
	"github.com/lgbarn/gravity-games-go/internal/config"
	"github.com/lgbarn/gravity-games-go/internal/harness"
)

// ResultWriter is the interface for writing match results to output.
type ResultWriter interface {
	// WriteResult writes a single match result.
	WriteResult(r arena.MatchResult) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by the configuration.
func NewWriter(w io.Writer, cfg *config.Config, game harness.Game) ResultWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg, game)
}

// TextWriter writes one block per match: a header line, then optionally the
// move list and the final board.
type TextWriter struct {
	w    io.Writer
	cfg  *config.Config
	game harness.Game
}

// NewTextWriter creates a new text writer. game renders final boards and
// may be nil when boards are not shown.
func NewTextWriter(w io.Writer, cfg *config.Config, game harness.Game) *TextWriter {
	return &TextWriter{
		w:    w,
		cfg:  cfg,
		game: game,
	}
}

// WriteResult writes a match in text form.
func (tw *TextWriter) WriteResult(r arena.MatchResult) error {
	fmt.Fprintf(tw.w, "match %d %s: %s %s vs %s: %s in %d plies",
		r.Index+1, r.ID, r.Variant, r.White, r.Black, ResultString(r), r.Plies)
	if r.Truncated {
		fmt.Fprint(tw.w, " (ply limit)")
	}
	if r.Duplicate {
		fmt.Fprint(tw.w, " (repeat)")
	}
	if r.Err != nil {
		fmt.Fprintf(tw.w, " error: %v", r.Err)
	}
	if _, err := fmt.Fprintln(tw.w); err != nil {
		return err
	}

	if tw.cfg.Output.ShowMoves && len(r.MoveText) > 0 {
		lw := NewLineWriter(tw.w, 0)
		for i, text := range r.MoveText {
			lw.Write(fmt.Sprintf("%d.%s", i+1, text))
		}
		lw.NewLine()
	}

	if tw.cfg.Output.ShowBoards && tw.game != nil && r.FinalBoard != nil {
		fmt.Fprint(tw.w, tw.game.Display(r.FinalBoard))
	}
	return nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes matches in JSON format.
// It buffers matches and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.Config
	results []arena.MatchResult
	single  bool // If true, write each match immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches matches and writes them with a summary on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:       w,
		cfg:     cfg,
		results: make([]arena.MatchResult, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each match immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteResult buffers a match for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteResult(r arena.MatchResult) error {
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(MatchToJSON(r, jw.cfg.Output.ShowBoards))
	}

	jw.results = append(jw.results, r)
	return nil
}

// Flush writes all buffered matches as a JSON array followed by their summary.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.results) == 0 {
		return nil
	}

	out := &JSONOutput{
		Matches: make([]*JSONMatch, 0, len(jw.results)),
		Summary: SummaryToJSON(arena.Summarize(jw.results)),
	}
	for _, r := range jw.results {
		out.Matches = append(out.Matches, MatchToJSON(r, jw.cfg.Output.ShowBoards))
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(out)

	// Clear buffer after writing
	jw.results = jw.results[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
