package service

import (
	"sort"

	"github.com/pulsewell/health-insights-api/internal/domain"
)

// Recommendation list bounds.
const (
	maxRecommendations = 5
)

// Priority slots, ascending = more important.
const (
	recPriorityTargeted  = 1
	recPrioritySleep     = 2
	recPriorityExercise  = 3
	recPriorityHydration = 4
	recPriorityNutrition = 5
)

// targetedRecommendations maps a metric flagged by a high-priority insight
// to its action item.
var targetedRecommendations = map[string]domain.Recommendation{
	domain.MetricBloodPressure: {
		ID:          "rec-bp",
		Title:       "Get Your Blood Pressure Checked",
		Description: "Your readings have been high. Schedule a check-up and consider reducing sodium and alcohol intake.",
		Category:    domain.MetricBloodPressure,
		Priority:    recPriorityTargeted,
	},
	domain.MetricHeartRate: {
		ID:          "rec-hr",
		Title:       "Monitor Your Heart Rate",
		Description: "Your resting heart rate has been outside the expected range. Track it daily and mention it to your doctor.",
		Category:    domain.MetricHeartRate,
		Priority:    recPriorityTargeted,
	},
	domain.MetricStress: {
		ID:          "rec-stress",
		Title:       "Take Steps to Reduce Stress",
		Description: "Your stress levels have been very high. Try breathing exercises, short walks, or talking to someone you trust.",
		Category:    domain.MetricStress,
		Priority:    recPriorityTargeted,
	},
}

// BuildRecommendations synthesizes 3-5 ranked action items from the
// generated insights and the window's data gaps. The result is sorted by
// non-decreasing priority and truncated to five entries.
func BuildRecommendations(insights []domain.InsightCard, data *domain.HealthData) []domain.Recommendation {
	var recs []domain.Recommendation

	// One targeted recommendation per metric flagged at high priority.
	covered := make(map[string]bool)
	for _, card := range insights {
		if card.Priority != domain.PriorityHigh {
			continue
		}
		for _, metric := range card.RelatedMetrics {
			rec, ok := targetedRecommendations[metric]
			if ok && !covered[metric] {
				covered[metric] = true
				recs = append(recs, rec)
			}
		}
	}

	// The sleep slot is always filled: either improve or start tracking.
	// Note the tracking item also fires when sleep is adequate and already
	// tracked; the product treats this as an intentional always-present
	// slot.
	avgSleep, hasSleep := averageSleepHours(data.Sleep)
	if hasSleep && avgSleep < 7 {
		recs = append(recs, domain.Recommendation{
			ID:          "rec-sleep-improve",
			Title:       "Improve Sleep Duration",
			Description: "You're averaging under 7 hours per night. A consistent bedtime is the most effective first step.",
			Category:    domain.MetricSleep,
			Priority:    recPrioritySleep,
		})
	} else {
		recs = append(recs, domain.Recommendation{
			ID:          "rec-sleep-track",
			Title:       "Track Your Sleep",
			Description: "Logging your sleep every day gives you better insights into your recovery patterns.",
			Category:    domain.MetricSleep,
			Priority:    recPrioritySleep,
		})
	}

	weekly, hasExercise := weeklyExerciseMinutes(data.Exercise)
	if !hasExercise {
		recs = append(recs, domain.Recommendation{
			ID:          "rec-exercise-start",
			Title:       "Start Exercising",
			Description: "No workouts logged yet. Start with 20-30 minutes of walking a few times a week.",
			Category:    domain.MetricExercise,
			Priority:    recPriorityExercise,
		})
	} else if weekly < WeeklyExerciseTarget {
		recs = append(recs, domain.Recommendation{
			ID:          "rec-exercise-more",
			Title:       "Increase Exercise Volume",
			Description: "You're active, but below the recommended 150 minutes per week. Add one more session to close the gap.",
			Category:    domain.MetricExercise,
			Priority:    recPriorityExercise,
		})
	}

	if len(recs) < maxRecommendations {
		recs = append(recs, domain.Recommendation{
			ID:          "rec-hydration",
			Title:       "Stay Hydrated",
			Description: "Aim for about 2 liters of water per day. Hydration affects energy, focus, and recovery.",
			Category:    domain.MetricHydration,
			Priority:    recPriorityHydration,
		})
	}

	if len(recs) < maxRecommendations {
		recs = append(recs, domain.Recommendation{
			ID:          "rec-nutrition",
			Title:       "Eat a Balanced Diet",
			Description: "Prioritize vegetables, lean protein, and whole grains to support everything else you're working on.",
			Category:    "nutrition",
			Priority:    recPriorityNutrition,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority < recs[j].Priority
	})

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}

	return recs
}
