package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CacheReporter reports the stats cache occupancy and entry lifetime
type CacheReporter interface {
	CacheSize() int
	CacheTTL() time.Duration
}

type HealthHandler struct {
	cache CacheReporter
}

func NewHealthHandler(cache CacheReporter) *HealthHandler {
	return &HealthHandler{
		cache: cache,
	}
}

// HealthCheck reports liveness and cache occupancy
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":            "ok",
		"cache_entries":     h.cache.CacheSize(),
		"cache_ttl_seconds": int(h.cache.CacheTTL().Seconds()),
		"timestamp":         time.Now().UTC().Format(time.RFC3339),
	})
}
