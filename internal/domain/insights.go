package domain

import (
	"time"

	"github.com/google/uuid"
)

// InsightsSchemaVersion is the serialized shape version of AIInsightsResponse.
// Cached payloads carrying a different version are discarded and regenerated.
const InsightsSchemaVersion = 1

// Metric identifiers used across insights, trends, and recommendations.
const (
	MetricBloodPressure = "blood_pressure"
	MetricHeartRate     = "heart_rate"
	MetricSleep         = "sleep"
	MetricExercise      = "exercise"
	MetricStress        = "stress"
	MetricHydration     = "hydration"
)

// InsightType classifies the tone of an insight card.
// @Description Insight card type.
type InsightType string

const (
	InsightPositive InsightType = "positive"
	InsightWarning  InsightType = "warning"
	InsightAlert    InsightType = "alert"
	InsightInfo     InsightType = "info"
)

// InsightPriority orders insight cards for display.
// @Description Insight card priority.
type InsightPriority string

const (
	PriorityHigh   InsightPriority = "high"
	PriorityMedium InsightPriority = "medium"
	PriorityLow    InsightPriority = "low"
)

// Rank maps a priority to its sort rank (high first).
func (p InsightPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// InsightCard is a typed, prioritized finding about one metric.
// Cards are immutable once produced.
// @Description Human-readable health finding.
type InsightCard struct {
	ID             string          `json:"id" example:"bp-alert"`
	Type           InsightType     `json:"type" example:"warning"`
	Priority       InsightPriority `json:"priority" example:"medium"`
	Title          string          `json:"title" example:"Elevated Blood Pressure"`
	Description    string          `json:"description"`
	Action         string          `json:"action,omitempty" example:"/records/vitals"`
	RelatedMetrics []string        `json:"related_metrics"`
	GeneratedAt    time.Time       `json:"generated_at"`
}

// ChangeDirection describes period-over-period movement.
// @Description Direction of change between periods.
type ChangeDirection string

const (
	DirectionUp     ChangeDirection = "up"
	DirectionDown   ChangeDirection = "down"
	DirectionStable ChangeDirection = "stable"
)

// ScoreCategory buckets the composite health score.
// @Description Health score category.
type ScoreCategory string

const (
	CategoryExcellent ScoreCategory = "excellent"
	CategoryGood      ScoreCategory = "good"
	CategoryFair      ScoreCategory = "fair"
	CategoryPoor      ScoreCategory = "poor"
)

// CategoryForScore maps a rounded score to its category.
// Boundaries: 81+ excellent, 61-80 good, 41-60 fair, 0-40 poor.
func CategoryForScore(score int) ScoreCategory {
	switch {
	case score >= 81:
		return CategoryExcellent
	case score >= 61:
		return CategoryGood
	case score >= 41:
		return CategoryFair
	default:
		return CategoryPoor
	}
}

// ComponentScore is one metric's contribution to the health score.
// @Description Per-metric score and its weight in the composite.
type ComponentScore struct {
	Score  float64 `json:"score" example:"80"`
	Weight float64 `json:"weight" example:"0.25"`
}

// HealthScore is the weighted composite of the five component scores,
// with a comparison against the immediately preceding window.
// @Description Composite health score with period-over-period change.
type HealthScore struct {
	Score           int                       `json:"score" example:"78"`
	Category        ScoreCategory             `json:"category" example:"good"`
	PreviousScore   int                       `json:"previous_score" example:"74"`
	Change          int                       `json:"change" example:"4"`
	ChangeDirection ChangeDirection           `json:"change_direction" example:"up"`
	Components      map[string]ComponentScore `json:"components"`
}

// TrendPoint is one charted (date, value) pair.
type TrendPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value" example:"120"`
}

// TrendData is a current-vs-prior-period comparison for one metric.
// @Description Metric trend between analysis periods.
type TrendData struct {
	Metric          string          `json:"metric" example:"blood_pressure"`
	Label           string          `json:"label" example:"Blood Pressure"`
	CurrentValue    string          `json:"current_value" example:"120 mmHg"`
	PreviousValue   string          `json:"previous_value" example:"130 mmHg"`
	ChangePercent   float64         `json:"change_percent" example:"-7.69"`
	ChangeDirection ChangeDirection `json:"change_direction" example:"down"`
	IsImproving     bool            `json:"is_improving" example:"true"`
	DataPoints      []TrendPoint    `json:"data_points"`
}

// Recommendation is one ranked action item. Lower priority value means
// more important.
// @Description Ranked health recommendation.
type Recommendation struct {
	ID          string `json:"id" example:"rec-sleep"`
	Title       string `json:"title" example:"Improve Sleep Duration"`
	Description string `json:"description"`
	Category    string `json:"category" example:"sleep"`
	Priority    int    `json:"priority" example:"2"`
}

// QuickStats are short-window raw averages for the dashboard widget.
// @Description Raw 7-day averages without scoring or interpretation.
type QuickStats struct {
	AvgHeartRate          float64 `json:"avg_heart_rate" example:"68"`
	AvgBloodPressure      string  `json:"avg_blood_pressure" example:"120/80"`
	AvgSleepHours         float64 `json:"avg_sleep_hours" example:"7.5"`
	WeeklyExerciseMinutes float64 `json:"weekly_exercise_minutes" example:"180"`
	AvgStressLevel        float64 `json:"avg_stress_level" example:"3.2"`
}

// AISummary is the templated narrative over the recent window.
// @Description Narrative health summary with a confidence score.
type AISummary struct {
	Status     string  `json:"status" example:"good"`
	Summary    string  `json:"summary"`
	Confidence float64 `json:"confidence" example:"0.9"`
}

// InsightsMetadata describes the generation run behind a response.
// @Description Metadata about the insights generation run.
type InsightsMetadata struct {
	UserID             uuid.UUID `json:"user_id"`
	GeneratedAt        time.Time `json:"generated_at"`
	DataPointsAnalyzed int       `json:"data_points_analyzed" example:"42"`
	AnalysisPeriodDays int       `json:"analysis_period_days" example:"30"`
	CacheExpiry        time.Time `json:"cache_expiry"`
}

// AIInsightsResponse is the full composed insights bundle.
// @Description Complete health insights response.
type AIInsightsResponse struct {
	SchemaVersion   int              `json:"schema_version" example:"1"`
	Summary         AISummary        `json:"summary"`
	Insights        []InsightCard    `json:"insights"`
	HealthScore     HealthScore      `json:"health_score"`
	QuickStats      QuickStats       `json:"quick_stats"`
	Recommendations []Recommendation `json:"recommendations"`
	Trends          []TrendData      `json:"trends"`
	Metadata        InsightsMetadata `json:"metadata"`
}
