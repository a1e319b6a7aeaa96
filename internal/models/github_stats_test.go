package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergedPercentage(t *testing.T) {
	testCases := []struct {
		name     string
		merged   int
		total    int
		expected int
	}{
		{name: "No pull requests", merged: 0, total: 0, expected: 0},
		{name: "Three quarters", merged: 30, total: 40, expected: 75},
		{name: "Rounds half up", merged: 1, total: 8, expected: 13},
		{name: "Rounds down", merged: 1, total: 3, expected: 33},
		{name: "All merged", merged: 12, total: 12, expected: 100},
		{name: "Merged exceeds total", merged: 15, total: 10, expected: 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pct := MergedPercentage(tc.merged, tc.total)
			assert.Equal(t, tc.expected, pct)
			assert.GreaterOrEqual(t, pct, 0)
			assert.LessOrEqual(t, pct, 100)
		})
	}
}

func TestEstimateCommits(t *testing.T) {
	assert.Equal(t, 0, EstimateCommits(0, 0, 0))
	assert.Equal(t, 10*15+40*3+5*2, EstimateCommits(10, 40, 5))
}

func TestEstimateStreak(t *testing.T) {
	testCases := []struct {
		name     string
		repos    int
		prs      int
		issues   int
		expected StreakStats
	}{
		{
			name:     "No activity still reports one day",
			expected: StreakStats{CurrentStreak: 1, BestStreak: 1, TotalContributions: 0},
		},
		{
			name:  "Partial activity",
			repos: 4, prs: 20, issues: 10, // 20 + 10 + 20 = 50
			expected: StreakStats{CurrentStreak: 15, BestStreak: 50, TotalContributions: 50},
		},
		{
			name:  "Ratio caps at one",
			repos: 100, prs: 300, issues: 50, // 300 + 50 + 500 = 850
			expected: StreakStats{CurrentStreak: 30, BestStreak: 100, TotalContributions: 850},
		},
		{
			name:  "Small totals floor to zero but current stays at one",
			repos: 0, prs: 2, issues: 1, // 3
			expected: StreakStats{CurrentStreak: 1, BestStreak: 3, TotalContributions: 3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			streak := EstimateStreak(tc.repos, tc.prs, tc.issues)
			assert.Equal(t, tc.expected, streak)
			assert.GreaterOrEqual(t, streak.BestStreak, streak.CurrentStreak)
		})
	}
}

func TestParseShow(t *testing.T) {
	show := ParseShow(" reviews, ,prs_merged,")
	assert.Equal(t, map[string]bool{ShowReviews: true, ShowPRsMerged: true}, show)
	assert.Empty(t, ParseShow(""))
}

func TestParseLayout(t *testing.T) {
	assert.Equal(t, LayoutCompact, ParseLayout("compact"))
	assert.Equal(t, LayoutCompact, ParseLayout(" Compact "))
	assert.Equal(t, LayoutDefault, ParseLayout(""))
	assert.Equal(t, LayoutDefault, ParseLayout("grid"))
}
