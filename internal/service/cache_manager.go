package service

import (
	"context"
	"encoding/json"
	"math"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pulsewell/health-insights-api/internal/domain"
	"github.com/pulsewell/health-insights-api/internal/repository"
	"go.uber.org/zap"
)

// DefaultCacheTTL is the insights cache validity window.
const DefaultCacheTTL = time.Hour

// CacheManager memoizes composed insights responses per user behind a
// time-boxed row in the store.
type CacheManager interface {
	// Get returns the cached response if a fresh, schema-compatible row
	// exists, or nil on a miss. Store read failures degrade to a miss.
	Get(ctx context.Context, userID uuid.UUID) *domain.AIInsightsResponse
	// Set replaces the user's cached response with expiry now + TTL.
	Set(ctx context.Context, userID uuid.UUID, response *domain.AIInsightsResponse) error
	// Clear removes the user's cached row(s) unconditionally.
	Clear(ctx context.Context, userID uuid.UUID) error
	// Stats reports hit/miss counters for this manager instance.
	Stats() domain.CacheStats
	// ResetStats zeroes the counters.
	ResetStats()
}

type cacheManager struct {
	repo   repository.InsightsCacheRepository
	ttl    time.Duration
	logger *zap.Logger

	hits   atomic.Int64
	misses atomic.Int64
}

// NewCacheManager creates a CacheManager with the given TTL. The counters
// belong to the instance, so tests and tenants never share state.
func NewCacheManager(repo repository.InsightsCacheRepository, ttl time.Duration, logger *zap.Logger) CacheManager {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &cacheManager{
		repo:   repo,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *cacheManager) Get(ctx context.Context, userID uuid.UUID) *domain.AIInsightsResponse {
	row, err := c.repo.FindFresh(ctx, userID, time.Now().UTC())
	if err != nil {
		// A failing cache read falls through to recompute.
		c.logger.Warn("insights cache read failed, treating as miss",
			zap.String("user_id", userID.String()), zap.Error(err))
		c.misses.Add(1)
		return nil
	}
	if row == nil {
		c.misses.Add(1)
		return nil
	}

	if row.SchemaVersion != domain.InsightsSchemaVersion {
		c.logger.Info("insights cache schema mismatch, regenerating",
			zap.String("user_id", userID.String()),
			zap.Int("cached_version", row.SchemaVersion),
			zap.Int("current_version", domain.InsightsSchemaVersion))
		c.misses.Add(1)
		return nil
	}

	var response domain.AIInsightsResponse
	if err := json.Unmarshal(row.Payload, &response); err != nil {
		c.logger.Warn("insights cache payload corrupt, treating as miss",
			zap.String("user_id", userID.String()), zap.Error(err))
		c.misses.Add(1)
		return nil
	}

	c.hits.Add(1)
	return &response
}

func (c *cacheManager) Set(ctx context.Context, userID uuid.UUID, response *domain.AIInsightsResponse) error {
	payload, err := json.Marshal(response)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	return c.repo.Upsert(ctx, &domain.InsightsCacheRow{
		UserID:        userID,
		SchemaVersion: domain.InsightsSchemaVersion,
		Payload:       payload,
		GeneratedAt:   now,
		ExpiresAt:     now.Add(c.ttl),
	})
}

func (c *cacheManager) Clear(ctx context.Context, userID uuid.UUID) error {
	deleted, err := c.repo.DeleteAllForUser(ctx, userID)
	if err != nil {
		return err
	}
	c.logger.Debug("insights cache cleared",
		zap.String("user_id", userID.String()), zap.Int64("deleted", deleted))
	return nil
}

func (c *cacheManager) Stats() domain.CacheStats {
	hits := c.hits.Load()
	misses := c.misses.Load()
	total := hits + misses

	hitRate := 0.0
	if total > 0 {
		hitRate = math.Round(float64(hits)/float64(total)*1000) / 10
	}

	return domain.CacheStats{
		Hits:    hits,
		Misses:  misses,
		HitRate: hitRate,
		Total:   total,
	}
}

func (c *cacheManager) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
}
