package models

import "math"

// GeneralStats represents aggregated activity counts for a GitHub identity.
// TotalCommits is an estimate, see EstimateCommits.
type GeneralStats struct {
	TotalCommits        int `json:"total_commits"`
	TotalPRs            int `json:"total_prs"`
	TotalIssues         int `json:"total_issues"`
	TotalStars          int `json:"total_stars"`
	TotalForks          int `json:"total_forks"`
	TotalReviews        int `json:"total_reviews"`
	TotalDiscussions    int `json:"total_discussions"`
	PRsMerged           int `json:"prs_merged"`
	PRsMergedPercentage int `json:"prs_merged_percentage"`
}

// LanguageStats maps a primary language name to the number of repositories using it
type LanguageStats map[string]int

// StreakStats holds activity streak estimates. The upstream API does not
// expose per-day contribution data, so all three values are approximations.
type StreakStats struct {
	CurrentStreak      int `json:"current_streak"`
	BestStreak         int `json:"best_streak"`
	TotalContributions int `json:"total_contributions"`
}

// MergedPercentage returns round(merged/total*100) clamped to [0,100], or 0 when total is 0
func MergedPercentage(merged, total int) int {
	if total <= 0 || merged <= 0 {
		return 0
	}
	pct := int(math.Round(float64(merged) / float64(total) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

// EstimateCommits approximates a commit count from repository, PR and issue counts
func EstimateCommits(repos, prs, issues int) int {
	return repos*15 + prs*3 + issues*2
}

// EstimateStreak derives streak figures from repository, PR and issue counts
func EstimateStreak(repos, prs, issues int) StreakStats {
	total := prs + issues + repos*5

	ratio := math.Min(float64(total)/100, 1)
	current := int(math.Floor(ratio * 30))
	if current < 1 {
		current = 1
	}
	best := int(math.Floor(ratio * 100))
	if best < current {
		best = current
	}

	return StreakStats{
		CurrentStreak:      current,
		BestStreak:         best,
		TotalContributions: total,
	}
}
