package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alimgiray/gstats/internal/models"
	"github.com/alimgiray/gstats/internal/themes"
	"github.com/alimgiray/gstats/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStats struct {
	err error
}

func (s stubStats) GetGeneralStats(ctx context.Context, identity string) (*models.GeneralStats, error) {
	return &models.GeneralStats{TotalPRs: 4, TotalReviews: 7, TotalDiscussions: 1, PRsMergedPercentage: 50}, s.err
}

func (s stubStats) GetLanguageStats(ctx context.Context, identity string) (models.LanguageStats, error) {
	return models.LanguageStats{"Go": 1}, s.err
}

func (s stubStats) GetStreakStats(ctx context.Context, identity string) (*models.StreakStats, error) {
	return &models.StreakStats{CurrentStreak: 1, BestStreak: 3, TotalContributions: 9}, s.err
}

func TestParseCardKind(t *testing.T) {
	tests := map[string]models.CardKind{
		"stats":            models.CardKindStats,
		"top-langs":        models.CardKindTopLanguages,
		"streak":           models.CardKindStreak,
		"additional":       models.CardKindAdditionalStats,
		"additional-stats": models.CardKindAdditionalStats,
	}
	for arg, want := range tests {
		got, err := parseCardKind(arg)
		require.NoError(t, err, arg)
		assert.Equal(t, want, got)
	}

	_, err := parseCardKind("badges")
	assert.Error(t, err)
}

func TestRenderCardDispatch(t *testing.T) {
	theme := themes.NewTable(nil).Get(themes.DefaultName)
	tests := []struct {
		kind models.CardKind
		want string
	}{
		{models.CardKindStats, "GitHub Stats"},
		{models.CardKindTopLanguages, "Go"},
		{models.CardKindStreak, "3 days"},
		{models.CardKindAdditionalStats, "Discussions"},
	}
	for _, tt := range tests {
		svg, err := renderCard(context.Background(), stubStats{}, tt.kind, "octocat", theme, models.RenderOptions{})
		require.NoError(t, err, tt.kind)
		assert.Contains(t, svg, tt.want, tt.kind)
	}
}

func TestRenderCardPropagatesError(t *testing.T) {
	theme := themes.NewTable(nil).Get(themes.DefaultName)
	_, err := renderCard(context.Background(), stubStats{err: errors.New("boom")}, models.CardKindStreak, "octocat", theme, models.RenderOptions{})
	assert.EqualError(t, err, "boom")
}

func TestWriteOutput(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, writeOutput(&stdout, "", "<svg/>"))
	assert.Equal(t, "<svg/>", stdout.String())

	path := filepath.Join(t.TempDir(), "card.svg")
	require.NoError(t, writeOutput(&stdout, path, "<svg>file</svg>"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<svg>file</svg>", string(data))
}

func newFakeGitHub(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"login":"octocat"}`)
	})
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"name":"hello","language":"Go","stargazers_count":3,"forks_count":1}]`)
	})
	mux.HandleFunc("/search/issues", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"total_count":4,"incomplete_results":false,"items":[]}`)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func setTestEnv(t *testing.T, apiURL, themesFile string) {
	t.Setenv("GITHUB_API_URL", apiURL)
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("THEMES_FILE", themesFile)
	t.Setenv("LOG_LEVEL", "info")
	t.Cleanup(func() { logger.SetLogger(nil) })
}

func runRoot(t *testing.T, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRenderWritesOnlySVGToStdout(t *testing.T) {
	server := newFakeGitHub(t)
	setTestEnv(t, server.URL, "")

	stdout, stderr, err := runRoot(t, "render", "streak", "--user", "octocat", "--hide-progress")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "<svg"), "stdout should hold only the card, got %q", stdout)
	assert.NotContains(t, stdout, "Fetched streak stats")
	assert.Contains(t, stderr, "Fetched streak stats")
}

func TestRenderWritesFile(t *testing.T) {
	server := newFakeGitHub(t)
	setTestEnv(t, server.URL, "")
	path := filepath.Join(t.TempDir(), "stats.svg")

	stdout, _, err := runRoot(t, "render", "stats", "--user", "octocat", "--out", path)
	require.NoError(t, err)

	assert.Empty(t, stdout)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<svg"))
}

func TestThemesCommand(t *testing.T) {
	setTestEnv(t, "", "")

	stdout, _, err := runRoot(t, "themes")
	require.NoError(t, err)

	assert.Contains(t, stdout, "dracula")
	assert.Contains(t, stdout, "Tokyo Night")
}

func TestThemesCommandReadsConfiguredFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.toml")
	require.NoError(t, os.WriteFile(path, []byte("[themes.midnight]\nname = \"Midnight\"\nbg_color = \"0b1021\"\n"), 0o644))
	setTestEnv(t, "", path)

	stdout, _, err := runRoot(t, "themes")
	require.NoError(t, err)

	assert.Contains(t, stdout, "midnight")
	assert.Contains(t, stdout, "Midnight")
}

func TestRenderRejectsUnknownTheme(t *testing.T) {
	setTestEnv(t, "", "")

	_, _, err := runRoot(t, "render", "stats", "--user", "octocat", "--theme", "no-such-theme")
	assert.EqualError(t, err, "unknown theme: no-such-theme")
}

func TestRenderCommandRejectsUnknownCard(t *testing.T) {
	setTestEnv(t, "", "")

	_, _, err := runRoot(t, "render", "badges", "--user", "octocat")
	assert.Error(t, err)
}
