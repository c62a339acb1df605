package output

import (
	"github.com/lgbarn/gravity-games-go/internal/arena"
)

// JSONMatch represents a match in JSON format.
type JSONMatch struct {
	ID         string      `json:"id"`
	Index      int         `json:"index"`
	Variant    string      `json:"variant"`
	White      string      `json:"white"`
	Black      string      `json:"black"`
	Result     string      `json:"result"`
	Winner     int         `json:"winner"`
	Draw       bool        `json:"draw,omitempty"`
	Truncated  bool        `json:"truncated,omitempty"`
	Duplicate  bool        `json:"duplicate,omitempty"`
	Plies      int         `json:"plies"`
	Moves      []int       `json:"moves,omitempty"`
	MoveText   []string    `json:"moveText,omitempty"`
	FinalBoard [][]float64 `json:"finalBoard,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// JSONSummary represents the tally of a batch in JSON format.
type JSONSummary struct {
	Games      int     `json:"games"`
	WhiteWins  int     `json:"whiteWins"`
	BlackWins  int     `json:"blackWins"`
	Draws      int     `json:"draws"`
	Truncated  int     `json:"truncated,omitempty"`
	Errors     int     `json:"errors,omitempty"`
	Duplicates int     `json:"duplicates,omitempty"`
	MeanPlies  float64 `json:"meanPlies"`
}

// JSONOutput holds multiple matches for array output.
type JSONOutput struct {
	Matches []*JSONMatch `json:"matches"`
	Summary *JSONSummary `json:"summary,omitempty"`
}

// MatchToJSON converts a match result to JSON format. The final board is
// included only when withBoard is set.
func MatchToJSON(r arena.MatchResult, withBoard bool) *JSONMatch {
	jm := &JSONMatch{
		ID:        r.ID,
		Index:     r.Index,
		Variant:   r.Variant,
		White:     r.White,
		Black:     r.Black,
		Result:    ResultString(r),
		Winner:    r.Winner,
		Draw:      r.Draw,
		Truncated: r.Truncated,
		Duplicate: r.Duplicate,
		Plies:     r.Plies,
		Moves:     r.Moves,
		MoveText:  r.MoveText,
	}
	if withBoard && r.FinalBoard != nil {
		jm.FinalBoard = r.FinalBoard
	}
	if r.Err != nil {
		jm.Error = r.Err.Error()
	}
	return jm
}

// SummaryToJSON converts a summary to JSON format.
func SummaryToJSON(s arena.Summary) *JSONSummary {
	return &JSONSummary{
		Games:      s.Games,
		WhiteWins:  s.WhiteWins,
		BlackWins:  s.BlackWins,
		Draws:      s.Draws,
		Truncated:  s.Truncated,
		Errors:     s.Errors,
		Duplicates: s.Duplicates,
		MeanPlies:  s.MeanPlies(),
	}
}
