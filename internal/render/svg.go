// Package render turns metric bundles into self-contained SVG cards.
// Everything here is pure: no I/O, and identical input yields identical bytes.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"github.com/alimgiray/gstats/internal/models"
	"github.com/alimgiray/gstats/internal/themes"
	"github.com/dustin/go-humanize"
)

const (
	cardWidth    = 550
	cardPadding  = 30
	headerHeight = 50
	footerHeight = 30
	iconSize     = 20
	iconViewBox  = 24
	iconGap      = 15

	fallbackColor = "ffffff"
)

//go:embed templates/*.svg.tmpl
var templateFS embed.FS

var cardTmpl = template.Must(
	template.New("cards").
		Funcs(template.FuncMap{
			"xml": EscapeXML,
			"add": func(a, b int) int { return a + b },
			"sub": func(a, b int) int { return a - b },
		}).
		ParseFS(templateFS, "templates/*.svg.tmpl"),
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeXML escapes the five XML metacharacters
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// NormalizeColor strips a leading '#', expands 3-digit shorthand and
// replaces anything that is not six hex digits with white.
func NormalizeColor(color string) string {
	color = strings.TrimPrefix(strings.TrimSpace(color), "#")
	if len(color) == 3 {
		var b strings.Builder
		for _, c := range color {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		color = b.String()
	}
	if !hexColor.MatchString(color) {
		return fallbackColor
	}
	return color
}

type colors struct {
	Bg     string
	Border string
	Title  string
	Text   string
	Icon   string
}

func paletteFor(theme themes.Theme) colors {
	return colors{
		Bg:     NormalizeColor(theme.BgColor),
		Border: NormalizeColor(theme.BorderColor),
		Title:  NormalizeColor(theme.TitleColor),
		Text:   NormalizeColor(theme.TextColor),
		Icon:   NormalizeColor(theme.IconColor),
	}
}

type iconView struct {
	X     int
	Y     int
	Scale string
	Path  string
}

type barView struct {
	Y     int
	Width string
}

type rowView struct {
	Label      string
	Value      string
	LabelX     int
	Y          int
	Icon       *iconView
	Bar        *barView
	Separator  bool
	SeparatorY int
}

type cardView struct {
	Width                  int
	Height                 int
	Padding                int
	HeaderHeight           int
	Title                  string
	Colors                 colors
	HideBorder             bool
	ValueFontSize          int
	HeaderSeparatorOpacity string
	RowSeparatorOpacity    string
	Rows                   []rowView
}

// item is one labelled value before layout
type item struct {
	label string
	value string
	icon  string
}

// rowLayout describes the vertical rhythm of a card's row band
type rowLayout struct {
	startY          int
	rowHeight       int
	separatorOffset int
}

func newCardView(title string, theme themes.Theme, opts models.RenderOptions, height int) cardView {
	return cardView{
		Width:                  cardWidth,
		Height:                 height,
		Padding:                cardPadding,
		HeaderHeight:           headerHeight,
		Title:                  title,
		Colors:                 paletteFor(theme),
		HideBorder:             opts.HideBorder,
		ValueFontSize:          16,
		HeaderSeparatorOpacity: "0.2",
		RowSeparatorOpacity:    "0.15",
	}
}

func layoutRows(items []item, layout rowLayout, showIcons bool) []rowView {
	rows := make([]rowView, 0, len(items))
	for i, it := range items {
		y := layout.startY + i*layout.rowHeight
		row := rowView{
			Label:      it.label,
			Value:      it.value,
			LabelX:     cardPadding,
			Y:          y,
			Separator:  i < len(items)-1,
			SeparatorY: y + layout.separatorOffset,
		}
		if showIcons {
			row.LabelX = cardPadding + iconSize + iconGap
			row.Icon = &iconView{
				X:     cardPadding,
				Y:     y - 10,
				Scale: formatFloat(float64(iconSize) / iconViewBox),
				Path:  IconPath(it.icon),
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// rowsHeight is the card height for a row band of n rows
func rowsHeight(n, rowHeight int) int {
	return headerHeight + n*rowHeight + footerHeight
}

func execute(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := cardTmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s svg: %w", name, err)
	}
	return buf.String(), nil
}

// formatCount groups thousands with commas
func formatCount(n int) string {
	return humanize.Comma(int64(n))
}

// formatFloat prints at most two decimals without trailing zeros
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
