package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alimgiray/gstats/internal/models"
	"github.com/alimgiray/gstats/pkg/logger"
	"github.com/google/go-github/v57/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"
)

const (
	reposPerPage = 100
	// maxRepoPages caps enumeration at roughly 1000 repositories
	maxRepoPages = 10
)

// GitHubStatsService aggregates GitHub REST API data into metric bundles.
// It does no caching of its own; see StatsService.
type GitHubStatsService struct {
	client *github.Client
}

// NewGitHubStatsService creates a client for the GitHub API. An empty token
// uses the unauthenticated rate limit; an empty baseURL targets api.github.com.
func NewGitHubStatsService(token, baseURL string) (*GitHubStatsService, error) {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
		httpClient.Timeout = 30 * time.Second
	}

	client := github.NewClient(httpClient)
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		parsed, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", baseURL, err)
		}
		client.BaseURL = parsed
	}

	return &GitHubStatsService{client: client}, nil
}

// FetchGeneralStats issues the profile lookup, five search counts and the
// repository enumeration concurrently. Any failure fails the whole bundle.
func (s *GitHubStatsService) FetchGeneralStats(ctx context.Context, identity string) (*models.GeneralStats, error) {
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)

	var totalPRs, totalIssues, totalReviews, totalDiscussions, prsMerged int
	var repos []*github.Repository

	g.Go(func() error {
		_, resp, err := s.client.Users.Get(gctx, identity)
		return newUpstreamError("get user", err, resp)
	})
	searches := []struct {
		op    string
		query string
		dest  *int
	}{
		{op: "search pull requests", query: fmt.Sprintf("author:%s type:pr", identity), dest: &totalPRs},
		{op: "search issues", query: fmt.Sprintf("author:%s type:issue", identity), dest: &totalIssues},
		{op: "search reviews", query: fmt.Sprintf("reviewed-by:%s type:pr", identity), dest: &totalReviews},
		{op: "search discussions", query: fmt.Sprintf("author:%s type:discussion", identity), dest: &totalDiscussions},
		{op: "search merged pull requests", query: fmt.Sprintf("author:%s type:pr is:merged", identity), dest: &prsMerged},
	}
	for _, search := range searches {
		search := search
		g.Go(func() error {
			count, err := s.searchCount(gctx, search.op, search.query)
			if err != nil {
				return err
			}
			*search.dest = count
			return nil
		})
	}
	g.Go(func() error {
		var err error
		repos, err = s.listRepositories(gctx, identity, maxRepoPages)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &models.GeneralStats{
		TotalCommits:        models.EstimateCommits(len(repos), totalPRs, totalIssues),
		TotalPRs:            totalPRs,
		TotalIssues:         totalIssues,
		TotalReviews:        totalReviews,
		TotalDiscussions:    totalDiscussions,
		PRsMerged:           prsMerged,
		PRsMergedPercentage: models.MergedPercentage(prsMerged, totalPRs),
	}
	for _, repo := range repos {
		stats.TotalStars += repo.GetStargazersCount()
		stats.TotalForks += repo.GetForksCount()
	}

	logger.WithFields(logrus.Fields{
		"identity": identity,
		"repos":    len(repos),
		"duration": time.Since(start).String(),
	}).Info("Fetched general stats")

	return stats, nil
}

// FetchLanguageStats counts repositories per primary language, skipping
// repositories without one.
func (s *GitHubStatsService) FetchLanguageStats(ctx context.Context, identity string) (models.LanguageStats, error) {
	start := time.Now()

	repos, err := s.listRepositories(ctx, identity, maxRepoPages)
	if err != nil {
		return nil, err
	}

	languages := make(models.LanguageStats)
	for _, repo := range repos {
		if language := repo.GetLanguage(); language != "" {
			languages[language]++
		}
	}

	logger.WithFields(logrus.Fields{
		"identity":  identity,
		"repos":     len(repos),
		"languages": len(languages),
		"duration":  time.Since(start).String(),
	}).Info("Fetched language stats")

	return languages, nil
}

// FetchStreakStats estimates streaks from the first page of repositories and
// the authored PR and issue counts.
func (s *GitHubStatsService) FetchStreakStats(ctx context.Context, identity string) (*models.StreakStats, error) {
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)

	var repoCount, prs, issues int
	g.Go(func() error {
		repos, err := s.listRepositories(gctx, identity, 1)
		repoCount = len(repos)
		return err
	})
	g.Go(func() error {
		var err error
		prs, err = s.searchCount(gctx, "search pull requests", fmt.Sprintf("author:%s type:pr", identity))
		return err
	})
	g.Go(func() error {
		var err error
		issues, err = s.searchCount(gctx, "search issues", fmt.Sprintf("author:%s type:issue", identity))
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	streak := models.EstimateStreak(repoCount, prs, issues)

	logger.WithFields(logrus.Fields{
		"identity": identity,
		"duration": time.Since(start).String(),
	}).Info("Fetched streak stats")

	return &streak, nil
}

// searchCount runs an issue search and returns only its total count
func (s *GitHubStatsService) searchCount(ctx context.Context, op, query string) (int, error) {
	opts := &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: 1},
	}
	result, resp, err := s.client.Search.Issues(ctx, query, opts)
	if err != nil {
		return 0, newUpstreamError(op, err, resp)
	}
	return result.GetTotal(), nil
}

// listRepositories pages through the owner's repositories in order, stopping
// at the first short page or after maxPages pages.
func (s *GitHubStatsService) listRepositories(ctx context.Context, identity string, maxPages int) ([]*github.Repository, error) {
	var all []*github.Repository
	opts := &github.RepositoryListOptions{
		Sort: "updated",
		ListOptions: github.ListOptions{
			PerPage: reposPerPage,
		},
	}

	for page := 1; page <= maxPages; page++ {
		opts.Page = page
		repos, resp, err := s.client.Repositories.List(ctx, identity, opts)
		if err != nil {
			return nil, newUpstreamError("list repositories", err, resp)
		}
		all = append(all, repos...)

		if len(repos) < reposPerPage {
			break
		}
	}

	return all, nil
}
