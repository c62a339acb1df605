package arena

import (
	"fmt"
	"strings"
)

// Summary tallies a batch of match results.
type Summary struct {
	Games      int
	WhiteWins  int
	BlackWins  int
	Draws      int
	Truncated  int
	Errors     int
	Duplicates int
	TotalPlies int
}

// Summarize counts wins, draws and failed matches.
func Summarize(results []MatchResult) Summary {
	var s Summary
	for _, r := range results {
		s.Games++
		if r.Err != nil {
			s.Errors++
			continue
		}
		s.TotalPlies += r.Plies
		if r.Duplicate {
			s.Duplicates++
		}
		switch {
		case r.Winner > 0:
			s.WhiteWins++
		case r.Winner < 0:
			s.BlackWins++
		case r.Draw:
			s.Draws++
		}
		if r.Truncated {
			s.Truncated++
		}
	}
	return s
}

// MeanPlies returns the average length of the completed matches.
func (s Summary) MeanPlies() float64 {
	completed := s.Games - s.Errors
	if completed == 0 {
		return 0
	}
	return float64(s.TotalPlies) / float64(completed)
}

// String renders the summary on one line.
func (s Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d games: white %d, black %d, draws %d", s.Games, s.WhiteWins, s.BlackWins, s.Draws)
	if s.Truncated > 0 {
		fmt.Fprintf(&sb, " (%d at the ply limit)", s.Truncated)
	}
	if s.Errors > 0 {
		fmt.Fprintf(&sb, ", errors %d", s.Errors)
	}
	if s.Duplicates > 0 {
		fmt.Fprintf(&sb, ", repeated %d", s.Duplicates)
	}
	fmt.Fprintf(&sb, ", mean length %.1f", s.MeanPlies())
	return sb.String()
}
