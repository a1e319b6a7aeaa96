// Package themes holds the named colour sets cards are drawn with.
package themes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const DefaultName = "default"

// Theme is a named set of card colours. Colours are hex strings with or
// without a leading '#'; the renderer normalises them.
type Theme struct {
	Name        string `toml:"name" json:"name"`
	BgColor     string `toml:"bg_color" json:"bg_color"`
	BorderColor string `toml:"border_color" json:"border_color"`
	TitleColor  string `toml:"title_color" json:"title_color"`
	TextColor   string `toml:"text_color" json:"text_color"`
	IconColor   string `toml:"icon_color" json:"icon_color"`
}

// WithOverrides returns a copy of t with the background and title colours
// replaced when non-empty.
func (t Theme) WithOverrides(bgColor, titleColor string) Theme {
	if bgColor != "" {
		t.BgColor = strings.TrimPrefix(bgColor, "#")
	}
	if titleColor != "" {
		t.TitleColor = strings.TrimPrefix(titleColor, "#")
	}
	return t
}

var builtin = map[string]Theme{
	"default":       {Name: "Default", BgColor: "ffffff", BorderColor: "e4e2e2", TitleColor: "2f80ed", TextColor: "434d58", IconColor: "4c71f2"},
	"dark":          {Name: "Dark", BgColor: "151515", BorderColor: "30363d", TitleColor: "ffffff", TextColor: "9f9f9f", IconColor: "79ff97"},
	"radical":       {Name: "Radical", BgColor: "141321", BorderColor: "fe428e", TitleColor: "fe428e", TextColor: "a9fef7", IconColor: "f8d847"},
	"merko":         {Name: "Merko", BgColor: "0a0f0b", BorderColor: "68b587", TitleColor: "abd200", TextColor: "68b587", IconColor: "b7d364"},
	"gruvbox":       {Name: "Gruvbox", BgColor: "282828", BorderColor: "504945", TitleColor: "fabd2f", TextColor: "8ec07c", IconColor: "fe8019"},
	"tokyonight":    {Name: "Tokyo Night", BgColor: "1a1b27", BorderColor: "414868", TitleColor: "70a5fd", TextColor: "38bdae", IconColor: "bf91f3"},
	"onedark":       {Name: "One Dark", BgColor: "282c34", BorderColor: "3e4451", TitleColor: "e4bf7a", TextColor: "df6d74", IconColor: "8eb573"},
	"cobalt":        {Name: "Cobalt", BgColor: "193549", BorderColor: "0d3a58", TitleColor: "e683d9", TextColor: "75eeb2", IconColor: "0480ef"},
	"synthwave":     {Name: "Synthwave", BgColor: "2b213a", BorderColor: "e5289e", TitleColor: "e2e9ec", TextColor: "e5289e", IconColor: "ef8539"},
	"dracula":       {Name: "Dracula", BgColor: "282a36", BorderColor: "44475a", TitleColor: "ff6e96", TextColor: "f8f8f2", IconColor: "79dafa"},
	"github_dark":   {Name: "GitHub Dark", BgColor: "0d1117", BorderColor: "30363d", TitleColor: "58a6ff", TextColor: "c9d1d9", IconColor: "1f6feb"},
	"high_contrast": {Name: "High Contrast", BgColor: "000000", BorderColor: "ffffff", TitleColor: "e7f216", TextColor: "ffffff", IconColor: "00ffff"},
}

// Table is a read-only lookup of themes by key
type Table struct {
	themes map[string]Theme
}

// NewTable builds a table from the built-in themes plus extra, which may
// add new keys or replace built-in ones.
func NewTable(extra map[string]Theme) *Table {
	merged := make(map[string]Theme, len(builtin)+len(extra))
	for key, theme := range builtin {
		merged[key] = theme
	}
	for key, theme := range extra {
		if theme.Name == "" {
			theme.Name = key
		}
		merged[key] = theme
	}
	return &Table{themes: merged}
}

// Get returns the theme for key, falling back to the default theme
func (t *Table) Get(key string) Theme {
	if theme, ok := t.themes[key]; ok {
		return theme
	}
	return t.themes[DefaultName]
}

// Has reports whether key names a theme in the table
func (t *Table) Has(key string) bool {
	_, ok := t.themes[key]
	return ok
}

// Names returns all theme keys sorted alphabetically
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.themes))
	for key := range t.themes {
		names = append(names, key)
	}
	sort.Strings(names)
	return names
}

type themeFile struct {
	Themes map[string]Theme `toml:"themes"`
}

// LoadFile reads additional themes from a TOML file of the form
//
//	[themes.midnight]
//	name = "Midnight"
//	bg_color = "0b1021"
//	...
func LoadFile(path string) (map[string]Theme, error) {
	var file themeFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to decode themes file %s: %w", path, err)
	}
	return file.Themes, nil
}
