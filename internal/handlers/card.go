package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/alimgiray/gstats/internal/middleware"
	"github.com/alimgiray/gstats/internal/models"
	"github.com/alimgiray/gstats/internal/render"
	"github.com/alimgiray/gstats/internal/services"
	"github.com/alimgiray/gstats/internal/themes"
	"github.com/alimgiray/gstats/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const svgContentType = "image/svg+xml"

// StatsGetter resolves metric bundles for an identity
type StatsGetter interface {
	GetGeneralStats(ctx context.Context, identity string) (*models.GeneralStats, error)
	GetLanguageStats(ctx context.Context, identity string) (models.LanguageStats, error)
	GetStreakStats(ctx context.Context, identity string) (*models.StreakStats, error)
}

type CardHandler struct {
	stats          StatsGetter
	themes         *themes.Table
	requestTimeout time.Duration
	maxAge         time.Duration
}

func NewCardHandler(stats StatsGetter, themeTable *themes.Table, requestTimeout, maxAge time.Duration) *CardHandler {
	return &CardHandler{
		stats:          stats,
		themes:         themeTable,
		requestTimeout: requestTimeout,
		maxAge:         maxAge,
	}
}

type cardRenderer func(ctx context.Context, identity string, theme themes.Theme, opts models.RenderOptions) (string, error)

// StatsCard serves the general stats card
func (h *CardHandler) StatsCard(c *gin.Context) {
	h.serveCard(c, models.CardKindStats, func(ctx context.Context, identity string, theme themes.Theme, opts models.RenderOptions) (string, error) {
		stats, err := h.stats.GetGeneralStats(ctx, identity)
		if err != nil {
			return "", err
		}
		return render.StatsCard(stats, theme, opts)
	})
}

// TopLanguagesCard serves the top languages card
func (h *CardHandler) TopLanguagesCard(c *gin.Context) {
	h.serveCard(c, models.CardKindTopLanguages, func(ctx context.Context, identity string, theme themes.Theme, opts models.RenderOptions) (string, error) {
		languages, err := h.stats.GetLanguageStats(ctx, identity)
		if err != nil {
			return "", err
		}
		return render.TopLanguagesCard(languages, theme, opts)
	})
}

// StreakCard serves the streak card
func (h *CardHandler) StreakCard(c *gin.Context) {
	h.serveCard(c, models.CardKindStreak, func(ctx context.Context, identity string, theme themes.Theme, opts models.RenderOptions) (string, error) {
		streak, err := h.stats.GetStreakStats(ctx, identity)
		if err != nil {
			return "", err
		}
		return render.StreakCard(streak, theme, opts)
	})
}

// AdditionalStatsCard serves the reviews, discussions and merge rate card
func (h *CardHandler) AdditionalStatsCard(c *gin.Context) {
	h.serveCard(c, models.CardKindAdditionalStats, func(ctx context.Context, identity string, theme themes.Theme, opts models.RenderOptions) (string, error) {
		stats, err := h.stats.GetGeneralStats(ctx, identity)
		if err != nil {
			return "", err
		}
		return render.AdditionalStatsCard(stats, theme, opts)
	})
}

// Themes lists the available theme keys and display names
func (h *CardHandler) Themes(c *gin.Context) {
	list := make([]gin.H, 0)
	for _, key := range h.themes.Names() {
		list = append(list, gin.H{"key": key, "name": h.themes.Get(key).Name})
	}
	c.JSON(http.StatusOK, gin.H{"themes": list})
}

func (h *CardHandler) serveCard(c *gin.Context, kind models.CardKind, renderCard cardRenderer) {
	identity, err := services.ValidateIdentity(c.Query("username"))
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	theme := h.themes.Get(c.DefaultQuery("theme", themes.DefaultName)).
		WithOverrides(c.Query("bg_color"), c.Query("title_color"))
	opts := parseRenderOptions(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.requestTimeout)
	defer cancel()

	svg, err := renderCard(ctx, identity, theme, opts)
	if err != nil {
		logger.WithFields(logrus.Fields{
			"card":       kind,
			"identity":   identity,
			"request_id": middleware.GetRequestID(c),
		}).WithError(err).Error("Failed to generate card")

		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Data(http.StatusOK, svgContentType, []byte(render.ErrorCard(services.IsRateLimited(err))))
		return
	}

	seconds := int(h.maxAge.Seconds())
	c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d, s-maxage=%d", seconds, seconds))
	c.Data(http.StatusOK, svgContentType, []byte(svg))
}

func parseRenderOptions(c *gin.Context) models.RenderOptions {
	return models.RenderOptions{
		ShowIcons:    queryBool(c, "show_icons"),
		HideBorder:   queryBool(c, "hide_border"),
		HideProgress: queryBool(c, "hide_progress"),
		Layout:       models.ParseLayout(c.Query("layout")),
		Show:         models.ParseShow(c.Query("show")),
	}
}

// queryBool accepts "true" in any letter case
func queryBool(c *gin.Context, key string) bool {
	return strings.EqualFold(c.Query(key), "true")
}
