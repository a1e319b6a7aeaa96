package services

import (
	"context"
	"strings"
	"time"

	"github.com/alimgiray/gstats/internal/models"
	"github.com/alimgiray/gstats/internal/repositories"
	"github.com/alimgiray/gstats/pkg/logger"
	"github.com/sirupsen/logrus"
)

// StatsFetcher produces uncached metric bundles for an identity
type StatsFetcher interface {
	FetchGeneralStats(ctx context.Context, identity string) (*models.GeneralStats, error)
	FetchLanguageStats(ctx context.Context, identity string) (models.LanguageStats, error)
	FetchStreakStats(ctx context.Context, identity string) (*models.StreakStats, error)
}

// StatsService serves metric bundles through the stats cache. Returned
// values are shared between callers and must not be modified.
type StatsService struct {
	fetcher StatsFetcher
	cache   *repositories.StatsCacheRepository
}

func NewStatsService(fetcher StatsFetcher, cache *repositories.StatsCacheRepository) *StatsService {
	return &StatsService{
		fetcher: fetcher,
		cache:   cache,
	}
}

// GetGeneralStats returns cached or freshly fetched general stats
func (s *StatsService) GetGeneralStats(ctx context.Context, identity string) (*models.GeneralStats, error) {
	return getCached(ctx, s, repositories.CacheKindStats, identity, s.fetcher.FetchGeneralStats)
}

// GetLanguageStats returns cached or freshly fetched language counts
func (s *StatsService) GetLanguageStats(ctx context.Context, identity string) (models.LanguageStats, error) {
	return getCached(ctx, s, repositories.CacheKindLanguages, identity, s.fetcher.FetchLanguageStats)
}

// GetStreakStats returns cached or freshly fetched streak estimates
func (s *StatsService) GetStreakStats(ctx context.Context, identity string) (*models.StreakStats, error) {
	return getCached(ctx, s, repositories.CacheKindStreak, identity, s.fetcher.FetchStreakStats)
}

// CacheSize returns the number of entries currently held in the cache
func (s *StatsService) CacheSize() int {
	return s.cache.Len()
}

// CacheTTL returns how long cached bundles stay valid
func (s *StatsService) CacheTTL() time.Duration {
	return s.cache.TTL()
}

func getCached[T any](ctx context.Context, s *StatsService, kind, identity string, fetch func(context.Context, string) (T, error)) (T, error) {
	var zero T

	identity, err := ValidateIdentity(identity)
	if err != nil {
		return zero, err
	}

	key := repositories.CacheKey(kind, identity)
	value, err := repositories.GetOrCompute(ctx, s.cache, key, func(ctx context.Context) (T, error) {
		start := time.Now()
		logger.WithFields(logrus.Fields{"kind": kind, "identity": identity}).Debug("Cache miss, fetching from GitHub")
		value, err := fetch(ctx, identity)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"kind":     kind,
				"identity": identity,
				"duration": time.Since(start).String(),
			}).WithError(err).Warn("GitHub fetch failed")
		}
		return value, err
	})
	if err != nil {
		// the cache returns bare context errors when the caller gives up waiting
		return zero, newUpstreamError("fetch "+kind, err, nil)
	}
	return value, nil
}

// ValidateIdentity trims the identity and rejects empty values
func ValidateIdentity(identity string) (string, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return "", &ValidationError{Field: "username", Message: "Username is required"}
	}
	return identity, nil
}
