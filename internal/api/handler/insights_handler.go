package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pulsewell/health-insights-api/internal/domain"
	"github.com/pulsewell/health-insights-api/internal/service"
	"github.com/pulsewell/health-insights-api/pkg/problem"
)

// InsightsHandler handles health insights endpoints.
type InsightsHandler struct {
	insightsService service.InsightsService
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(insightsService service.InsightsService) *InsightsHandler {
	return &InsightsHandler{insightsService: insightsService}
}

// GetInsights handles GET /v1/users/{userId}/insights
// @Summary Get health insights
// @Description Generate (or serve from cache) the composed health insights bundle: score, cards, trends, summary, and recommendations.
// @Tags insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.AIInsightsResponse "Composed insights"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/insights [get]
func (h *InsightsHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.insightsService.GetInsights(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to generate insights").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// ClearCache handles DELETE /v1/users/{userId}/insights/cache
// @Summary Clear cached insights
// @Description Drop the user's cached insights so the next request regenerates them.
// @Tags insights
// @Param userId path string true "User UUID" format(uuid)
// @Success 204 "Cache cleared"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/insights/cache [delete]
func (h *InsightsHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	if err := h.insightsService.ClearCache(r.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to clear insights cache").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetTrends handles GET /v1/users/{userId}/insights/trends
// @Summary Get metric trends
// @Description Compute period-over-period metric trends directly, bypassing the cache.
// @Tags insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param period_days query integer false "Analysis period in days" default(30) minimum(1) maximum(365)
// @Success 200 {array} domain.TrendData "Per-metric trends"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/insights/trends [get]
func (h *InsightsHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	periodDays := parseIntParam(r, "period_days", service.DefaultAnalysisPeriodDays)
	if periodDays < 1 || periodDays > 365 {
		problem.BadRequest("period_days must be between 1 and 365").Write(w)
		return
	}

	trends, err := h.insightsService.AnalyzeTrends(r.Context(), userID, periodDays)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to analyze trends").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(trends)
}

// GetCacheStats handles GET /v1/insights/cache/stats
// @Summary Get insights cache statistics
// @Description Report cache hit/miss counters for this service instance.
// @Tags insights
// @Produce json
// @Success 200 {object} domain.CacheStats "Cache statistics"
// @Router /insights/cache/stats [get]
func (h *InsightsHandler) GetCacheStats(w http.ResponseWriter, r *http.Request) {
	stats := h.insightsService.CacheStats()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// ResetCacheStats handles POST /v1/insights/cache/stats/reset
// @Summary Reset insights cache statistics
// @Description Zero the cache hit/miss counters.
// @Tags insights
// @Success 204 "Counters reset"
// @Router /insights/cache/stats/reset [post]
func (h *InsightsHandler) ResetCacheStats(w http.ResponseWriter, r *http.Request) {
	h.insightsService.ResetCacheStats()
	w.WriteHeader(http.StatusNoContent)
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultValue int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
