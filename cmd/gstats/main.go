package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alimgiray/gstats/internal/handlers"
	"github.com/alimgiray/gstats/internal/models"
	"github.com/alimgiray/gstats/internal/render"
	"github.com/alimgiray/gstats/internal/repositories"
	"github.com/alimgiray/gstats/internal/services"
	"github.com/alimgiray/gstats/internal/themes"
	"github.com/alimgiray/gstats/pkg/config"
	"github.com/alimgiray/gstats/pkg/logger"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "gstats",
		Short:             "Render GitHub stat cards as SVG",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	root.AddCommand(newRenderCmd())
	root.AddCommand(newThemesCmd())
	return root
}

// setup loads configuration and points logging at stderr, keeping stdout
// free for card output.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.SetLogger(logger.New(os.Getenv("LOG_LEVEL"), cmd.ErrOrStderr()))
	return nil
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "render <stats|top-langs|streak|additional>",
		Short:     "Render a card for a GitHub user",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"stats", "top-langs", "streak", "additional", "additional-stats"},
		RunE:      runRender,
	}
	cmd.Flags().String("user", "", "GitHub username")
	cmd.Flags().String("theme", themes.DefaultName, "Theme key")
	cmd.Flags().Bool("show-icons", false, "Draw row icons")
	cmd.Flags().Bool("hide-border", false, "Hide the card border")
	cmd.Flags().Bool("hide-progress", false, "Hide progress bars (accepted, currently no effect)")
	cmd.Flags().String("layout", string(models.LayoutDefault), "Language card layout (default, compact)")
	cmd.Flags().String("show", "", "Extra stats rows (reviews, prs_merged)")
	cmd.Flags().String("out", "", "Output file (default stdout)")
	cmd.Flags().Duration("timeout", 30*time.Second, "Overall fetch timeout")
	cmd.MarkFlagRequired("user")
	return cmd
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadThemes()
			if err != nil {
				return err
			}
			for _, key := range table.Names() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", key, table.Get(key).Name)
			}
			return nil
		},
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	user, _ := cmd.Flags().GetString("user")
	themeKey, _ := cmd.Flags().GetString("theme")
	showIcons, _ := cmd.Flags().GetBool("show-icons")
	hideBorder, _ := cmd.Flags().GetBool("hide-border")
	hideProgress, _ := cmd.Flags().GetBool("hide-progress")
	layout, _ := cmd.Flags().GetString("layout")
	show, _ := cmd.Flags().GetString("show")
	out, _ := cmd.Flags().GetString("out")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	kind, err := parseCardKind(args[0])
	if err != nil {
		return err
	}

	table, err := loadThemes()
	if err != nil {
		return err
	}
	if !table.Has(themeKey) {
		return fmt.Errorf("unknown theme: %s", themeKey)
	}

	githubService, err := services.NewGitHubStatsService(config.AppConfig.GitHub.Token, config.AppConfig.GitHub.APIURL)
	if err != nil {
		return fmt.Errorf("create GitHub client: %w", err)
	}
	statsCache := repositories.NewStatsCacheRepository(config.AppConfig.Cache.TTL, nil).WithComputeTimeout(timeout)
	statsService := services.NewStatsService(githubService, statsCache)

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	opts := models.RenderOptions{
		ShowIcons:    showIcons,
		HideBorder:   hideBorder,
		HideProgress: hideProgress,
		Layout:       models.ParseLayout(layout),
		Show:         models.ParseShow(show),
	}
	svg, err := renderCard(ctx, statsService, kind, user, table.Get(themeKey), opts)
	if err != nil {
		return fmt.Errorf("render %s card: %w", kind, err)
	}

	return writeOutput(cmd.OutOrStdout(), out, svg)
}

func loadThemes() (*themes.Table, error) {
	path := config.AppConfig.Themes.File
	if path == "" {
		return themes.NewTable(nil), nil
	}
	extra, err := themes.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load themes: %w", err)
	}
	return themes.NewTable(extra), nil
}

func parseCardKind(arg string) (models.CardKind, error) {
	switch arg {
	case "stats":
		return models.CardKindStats, nil
	case "top-langs":
		return models.CardKindTopLanguages, nil
	case "streak":
		return models.CardKindStreak, nil
	case "additional", "additional-stats":
		return models.CardKindAdditionalStats, nil
	default:
		return "", fmt.Errorf("unsupported card: %s (use stats, top-langs, streak or additional)", arg)
	}
}

func renderCard(ctx context.Context, stats handlers.StatsGetter, kind models.CardKind, user string, theme themes.Theme, opts models.RenderOptions) (string, error) {
	switch kind {
	case models.CardKindTopLanguages:
		languages, err := stats.GetLanguageStats(ctx, user)
		if err != nil {
			return "", err
		}
		return render.TopLanguagesCard(languages, theme, opts)
	case models.CardKindStreak:
		streak, err := stats.GetStreakStats(ctx, user)
		if err != nil {
			return "", err
		}
		return render.StreakCard(streak, theme, opts)
	case models.CardKindAdditionalStats:
		general, err := stats.GetGeneralStats(ctx, user)
		if err != nil {
			return "", err
		}
		return render.AdditionalStatsCard(general, theme, opts)
	default:
		general, err := stats.GetGeneralStats(ctx, user)
		if err != nil {
			return "", err
		}
		return render.StatsCard(general, theme, opts)
	}
}

// writeOutput writes to path, or to stdout when path is empty
func writeOutput(stdout io.Writer, path, svg string) error {
	if path == "" {
		_, err := io.WriteString(stdout, svg)
		return err
	}
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logger.WithField("path", path).Info("Wrote card")
	return nil
}
