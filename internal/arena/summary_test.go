package arena

import (
	"context"
	"testing"

	"github.com/lgbarn/gravity-games-go/internal/testutil"
)

func TestSummarize(t *testing.T) {
	results := []MatchResult{
		{Winner: 1, Plies: 10},
		{Winner: 1, Plies: 20},
		{Winner: -1, Plies: 30},
		{Draw: true, Plies: 40, Duplicate: true},
		{Draw: true, Truncated: true, Plies: 100},
		{Err: context.Canceled, Plies: 7},
	}

	got := Summarize(results)
	testutil.AssertEqual(t, got, Summary{
		Games:      6,
		WhiteWins:  2,
		BlackWins:  1,
		Draws:      2,
		Truncated:  1,
		Errors:     1,
		Duplicates: 1,
		TotalPlies: 200,
	})
	testutil.AssertEqual(t, got.MeanPlies(), 40.0)
}

func TestSummary_String(t *testing.T) {
	tests := []struct {
		name    string
		summary Summary
		want    string
	}{
		{
			name:    "empty",
			summary: Summary{},
			want:    "0 games: white 0, black 0, draws 0, mean length 0.0",
		},
		{
			name:    "plain",
			summary: Summary{Games: 4, WhiteWins: 1, BlackWins: 2, Draws: 1, TotalPlies: 90},
			want:    "4 games: white 1, black 2, draws 1, mean length 22.5",
		},
		{
			name:    "truncated and failed",
			summary: Summary{Games: 3, Draws: 2, Truncated: 2, Errors: 1, TotalPlies: 20},
			want:    "3 games: white 0, black 0, draws 2 (2 at the ply limit), errors 1, mean length 10.0",
		},
		{
			name:    "repeated",
			summary: Summary{Games: 2, WhiteWins: 2, Duplicates: 1, TotalPlies: 9},
			want:    "2 games: white 2, black 0, draws 0, repeated 1, mean length 4.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.summary.String(), tt.want)
		})
	}
}
