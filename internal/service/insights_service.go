package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pulsewell/health-insights-api/internal/domain"
	"github.com/pulsewell/health-insights-api/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultAnalysisPeriodDays is the default insights window.
	DefaultAnalysisPeriodDays = 30

	// DefaultMinDataPoints is the insufficient-data guard threshold.
	DefaultMinDataPoints = 3
)

// InsightsService is the top-level coordinator for health insights:
// cache check, insufficient-data guard, concurrent computation, cache
// write, response.
type InsightsService interface {
	// GetInsights returns the composed insights bundle for a user,
	// served from cache when a fresh entry exists.
	GetInsights(ctx context.Context, userID uuid.UUID) (*domain.AIInsightsResponse, error)
	// AnalyzeTrends computes period-over-period trends directly,
	// bypassing the cache and the insufficient-data guard.
	AnalyzeTrends(ctx context.Context, userID uuid.UUID, periodDays int) ([]domain.TrendData, error)
	// ClearCache drops the user's cached insights, forcing regeneration.
	ClearCache(ctx context.Context, userID uuid.UUID) error
	// CacheStats reports cache hit/miss counters.
	CacheStats() domain.CacheStats
	// ResetCacheStats zeroes the cache counters.
	ResetCacheStats()
}

type insightsService struct {
	fetcher       HealthDataFetcher
	cache         CacheManager
	userRepo      repository.UserRepository
	logger        *zap.Logger
	periodDays    int
	minDataPoints int
	cacheTTL      time.Duration
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(
	fetcher HealthDataFetcher,
	cache CacheManager,
	userRepo repository.UserRepository,
	logger *zap.Logger,
	periodDays int,
	minDataPoints int,
	cacheTTL time.Duration,
) InsightsService {
	if periodDays <= 0 {
		periodDays = DefaultAnalysisPeriodDays
	}
	if minDataPoints <= 0 {
		minDataPoints = DefaultMinDataPoints
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &insightsService{
		fetcher:       fetcher,
		cache:         cache,
		userRepo:      userRepo,
		logger:        logger,
		periodDays:    periodDays,
		minDataPoints: minDataPoints,
		cacheTTL:      cacheTTL,
	}
}

func (s *insightsService) GetInsights(ctx context.Context, userID uuid.UUID) (*domain.AIInsightsResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	tracer := otel.Tracer("health-insights-api/insights")
	ctx, span := tracer.Start(ctx, "InsightsService.GetInsights",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("window.days", s.periodDays),
		),
	)
	defer span.End()

	if cached := s.cache.Get(ctx, userID); cached != nil {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached, nil
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	now := time.Now().UTC()
	current, previous, err := s.fetchWindows(ctx, userID, now, s.periodDays)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInsightsGeneration, err)
	}

	dataPoints := current.TotalDataPoints()
	span.SetAttributes(attribute.Int("data.points", dataPoints))

	// Too little data to say anything meaningful. The degraded response
	// is never cached so the next call re-evaluates from the store.
	if dataPoints < s.minDataPoints {
		return s.insufficientDataResponse(userID, now, dataPoints), nil
	}

	response := s.compute(userID, now, current, previous, dataPoints)

	// Best effort: a failed cache write must not fail the request.
	if err := s.cache.Set(ctx, userID, response); err != nil {
		s.logger.Warn("insights cache write failed",
			zap.String("user_id", userID.String()), zap.Error(err))
	}

	return response, nil
}

// fetchWindows reads the requested window and the immediately preceding,
// non-overlapping window of equal length, concurrently.
func (s *insightsService) fetchWindows(ctx context.Context, userID uuid.UUID, now time.Time, periodDays int) (current, previous *domain.HealthData, err error) {
	from := now.AddDate(0, 0, -periodDays)
	priorFrom := from.AddDate(0, 0, -periodDays)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.fetcher.Fetch(gctx, userID, from, now)
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = s.fetcher.Fetch(gctx, userID, priorFrom, from)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return current, previous, nil
}

// compute fans out the five independent analytics over the immutable
// snapshot, then derives recommendations from the insight list.
func (s *insightsService) compute(userID uuid.UUID, now time.Time, current, previous *domain.HealthData, dataPoints int) *domain.AIInsightsResponse {
	var (
		score    domain.HealthScore
		insights []domain.InsightCard
		trends   []domain.TrendData
		summary  domain.AISummary
		quick    domain.QuickStats
	)

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		score = CalculateHealthScore(current, previous)
	}()
	go func() {
		defer wg.Done()
		insights = GenerateInsights(current, now)
	}()
	go func() {
		defer wg.Done()
		trends = AnalyzeTrends(current, previous)
	}()
	go func() {
		defer wg.Done()
		summary = GenerateSummary(current, now)
	}()
	go func() {
		defer wg.Done()
		quick = CalculateQuickStats(current, now)
	}()
	wg.Wait()

	recommendations := BuildRecommendations(insights, current)

	return &domain.AIInsightsResponse{
		SchemaVersion:   domain.InsightsSchemaVersion,
		Summary:         summary,
		Insights:        insights,
		HealthScore:     score,
		QuickStats:      quick,
		Recommendations: recommendations,
		Trends:          trends,
		Metadata: domain.InsightsMetadata{
			UserID:             userID,
			GeneratedAt:        now,
			DataPointsAnalyzed: dataPoints,
			AnalysisPeriodDays: s.periodDays,
			CacheExpiry:        now.Add(s.cacheTTL),
		},
	}
}

// insufficientDataResponse is the canned degraded-success bundle.
func (s *insightsService) insufficientDataResponse(userID uuid.UUID, now time.Time, dataPoints int) *domain.AIInsightsResponse {
	components := make(map[string]domain.ComponentScore)
	for metric, weight := range componentWeights() {
		components[metric] = domain.ComponentScore{Score: 0, Weight: weight}
	}

	return &domain.AIInsightsResponse{
		SchemaVersion: domain.InsightsSchemaVersion,
		Summary: domain.AISummary{
			Status:     "unknown",
			Summary:    "There isn't enough health data yet to generate insights. Keep logging your vitals, sleep, exercise, and stress.",
			Confidence: 0.3,
		},
		Insights: []domain.InsightCard{{
			ID:             "insufficient-data",
			Type:           domain.InsightInfo,
			Priority:       domain.PriorityHigh,
			Title:          "We Need More Data",
			Description:    fmt.Sprintf("At least %d data points are needed to analyze your health. Start logging daily to unlock insights.", s.minDataPoints),
			Action:         "/records/journal",
			RelatedMetrics: []string{},
			GeneratedAt:    now,
		}},
		HealthScore: domain.HealthScore{
			Score:           0,
			Category:        domain.CategoryPoor,
			PreviousScore:   0,
			Change:          0,
			ChangeDirection: domain.DirectionStable,
			Components:      components,
		},
		QuickStats: domain.QuickStats{AvgBloodPressure: "--/--"},
		Recommendations: []domain.Recommendation{{
			ID:          "rec-start-tracking",
			Title:       "Start Tracking Your Health",
			Description: "Log your vitals and daily journal entries to build a picture of your health over time.",
			Category:    "general",
			Priority:    1,
		}},
		Trends: []domain.TrendData{},
		Metadata: domain.InsightsMetadata{
			UserID:             userID,
			GeneratedAt:        now,
			DataPointsAnalyzed: dataPoints,
			AnalysisPeriodDays: s.periodDays,
		},
	}
}

func (s *insightsService) AnalyzeTrends(ctx context.Context, userID uuid.UUID, periodDays int) ([]domain.TrendData, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if periodDays <= 0 {
		periodDays = s.periodDays
	}

	current, previous, err := s.fetchWindows(ctx, userID, time.Now().UTC(), periodDays)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInsightsGeneration, err)
	}

	return AnalyzeTrends(current, previous), nil
}

func (s *insightsService) ClearCache(ctx context.Context, userID uuid.UUID) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return s.cache.Clear(ctx, userID)
}

func (s *insightsService) CacheStats() domain.CacheStats {
	return s.cache.Stats()
}

func (s *insightsService) ResetCacheStats() {
	s.cache.ResetStats()
}
