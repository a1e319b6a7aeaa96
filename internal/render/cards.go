package render

import (
	"fmt"
	"math"
	"sort"

	"github.com/alimgiray/gstats/internal/models"
	"github.com/alimgiray/gstats/internal/themes"
)

const (
	maxLanguages        = 5
	noLanguagesLabel    = "No languages found"
	languageBarMaxWidth = cardWidth - cardPadding*2 - 100
	fixedCardHeight     = 210
	compactRowHeight    = 38
)

var (
	statsRows    = rowLayout{startY: 70, rowHeight: 45, separatorOffset: 20}
	fixedRows    = rowLayout{startY: 75, rowHeight: 50, separatorOffset: 25}
	languageRows = rowLayout{startY: 70, rowHeight: 48, separatorOffset: 30}
)

// StatsCard renders the general stats card: five base rows plus the
// optional reviews and merged PR rows enabled through opts.Show.
func StatsCard(stats *models.GeneralStats, theme themes.Theme, opts models.RenderOptions) (string, error) {
	items := []item{
		{label: "Total Commits", value: formatCount(stats.TotalCommits), icon: "commits"},
		{label: "Total PRs", value: formatCount(stats.TotalPRs), icon: "prs"},
		{label: "Total Issues", value: formatCount(stats.TotalIssues), icon: "issues"},
		{label: "Stars Earned", value: formatCount(stats.TotalStars), icon: "stars"},
		{label: "Forks", value: formatCount(stats.TotalForks), icon: "forks"},
	}
	if opts.Show[models.ShowReviews] {
		items = append(items, item{label: "Reviews", value: formatCount(stats.TotalReviews), icon: "reviews"})
	}
	if opts.Show[models.ShowPRsMerged] {
		items = append(items, item{
			label: "PRs Merged",
			value: fmt.Sprintf("%s (%d%%)", formatCount(stats.PRsMerged), stats.PRsMergedPercentage),
			icon:  "merged",
		})
	}

	view := newCardView("GitHub Stats", theme, opts, rowsHeight(len(items), statsRows.rowHeight))
	view.Rows = layoutRows(items, statsRows, opts.ShowIcons)
	return execute("card", view)
}

// LanguageEntry is one displayed row of the top languages card
type LanguageEntry struct {
	Name       string
	Count      int
	Percentage int
	BarWidth   float64
}

// TopLanguages picks the five most used languages, ordered by count and
// then by name. An empty input yields a single zero-count placeholder.
// Percentages are taken over the displayed entries only.
func TopLanguages(languages models.LanguageStats) []LanguageEntry {
	entries := make([]LanguageEntry, 0, len(languages))
	for name, count := range languages {
		entries = append(entries, LanguageEntry{Name: name, Count: count})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})
	if len(entries) > maxLanguages {
		entries = entries[:maxLanguages]
	}
	if len(entries) == 0 {
		entries = append(entries, LanguageEntry{Name: noLanguagesLabel})
	}

	total := 0
	for _, e := range entries {
		total += e.Count
	}
	if total == 0 {
		total = 1
	}

	for i := range entries {
		ratio := float64(entries[i].Count) / float64(total)
		entries[i].Percentage = int(math.Round(ratio * 100))
		entries[i].BarWidth = ratio * languageBarMaxWidth
	}
	return entries
}

// TopLanguagesCard renders the language card with one proportional bar per
// language. The compact layout only shortens the rows. Icons are not drawn
// on this card.
func TopLanguagesCard(languages models.LanguageStats, theme themes.Theme, opts models.RenderOptions) (string, error) {
	entries := TopLanguages(languages)

	layout := languageRows
	if opts.Layout == models.LayoutCompact {
		layout.rowHeight = compactRowHeight
	}

	items := make([]item, 0, len(entries))
	for _, e := range entries {
		items = append(items, item{label: e.Name, value: fmt.Sprintf("%d%%", e.Percentage)})
	}

	view := newCardView("Top Languages", theme, opts, rowsHeight(len(items), layout.rowHeight))
	view.ValueFontSize = 15
	view.Rows = layoutRows(items, layout, false)
	for i := range view.Rows {
		view.Rows[i].Bar = &barView{
			Y:     view.Rows[i].Y + 22,
			Width: formatFloat(entries[i].BarWidth),
		}
	}
	return execute("card", view)
}

// StreakCard renders the three streak rows at a fixed height
func StreakCard(streak *models.StreakStats, theme themes.Theme, opts models.RenderOptions) (string, error) {
	items := []item{
		{label: "Current Streak", value: fmt.Sprintf("%s days", formatCount(streak.CurrentStreak)), icon: "streak"},
		{label: "Best Streak", value: fmt.Sprintf("%s days", formatCount(streak.BestStreak)), icon: "streak"},
		{label: "Total Contributions", value: formatCount(streak.TotalContributions), icon: "contributions"},
	}

	view := newCardView("GitHub Streak", theme, opts, fixedCardHeight)
	view.Rows = layoutRows(items, fixedRows, opts.ShowIcons)
	return execute("card", view)
}

// AdditionalStatsCard renders reviews, discussions and merge rate at a fixed height
func AdditionalStatsCard(stats *models.GeneralStats, theme themes.Theme, opts models.RenderOptions) (string, error) {
	items := []item{
		{label: "Reviews", value: formatCount(stats.TotalReviews), icon: "reviews"},
		{label: "Discussions", value: formatCount(stats.TotalDiscussions), icon: "discussions"},
		{label: "PR Merge Rate", value: fmt.Sprintf("%d%%", stats.PRsMergedPercentage), icon: "merged"},
	}

	view := newCardView("Additional Stats", theme, opts, fixedCardHeight)
	view.Rows = layoutRows(items, fixedRows, opts.ShowIcons)
	return execute("card", view)
}
