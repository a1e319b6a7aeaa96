package models

import "strings"

type CardKind string

const (
	CardKindStats           CardKind = "stats"
	CardKindTopLanguages    CardKind = "top-langs"
	CardKindStreak          CardKind = "streak"
	CardKindAdditionalStats CardKind = "additional-stats"
)

type Layout string

const (
	LayoutDefault Layout = "default"
	LayoutCompact Layout = "compact"
)

// Optional rows on the stats card
const (
	ShowReviews   = "reviews"
	ShowPRsMerged = "prs_merged"
)

// RenderOptions controls how a card is drawn. HideProgress is accepted but
// currently has no effect on any layout.
type RenderOptions struct {
	ShowIcons    bool
	HideBorder   bool
	HideProgress bool
	Layout       Layout
	Show         map[string]bool
}

// ParseLayout returns LayoutCompact for "compact" and LayoutDefault otherwise
func ParseLayout(value string) Layout {
	if strings.EqualFold(strings.TrimSpace(value), string(LayoutCompact)) {
		return LayoutCompact
	}
	return LayoutDefault
}

// ParseShow turns a comma separated list into a set, ignoring blanks
func ParseShow(value string) map[string]bool {
	show := make(map[string]bool)
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			show[item] = true
		}
	}
	return show
}
