package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/pulsewell/health-insights-api/internal/domain"
)

// GenerateInsights evaluates each metric's window average against its
// alert/warning/positive thresholds and returns the resulting cards,
// stably sorted by priority (high first, producer order within ties).
//
// A metric without data is skipped silently, except exercise, which
// always yields a card.
func GenerateInsights(data *domain.HealthData, now time.Time) []domain.InsightCard {
	var cards []domain.InsightCard

	if card := analyzeBloodPressure(data, now); card != nil {
		cards = append(cards, *card)
	}
	if card := analyzeHeartRate(data, now); card != nil {
		cards = append(cards, *card)
	}
	if card := analyzeSleep(data, now); card != nil {
		cards = append(cards, *card)
	}
	cards = append(cards, analyzeExercise(data, now))
	if card := analyzeStress(data, now); card != nil {
		cards = append(cards, *card)
	}

	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Priority.Rank() < cards[j].Priority.Rank()
	})

	return cards
}

func analyzeBloodPressure(data *domain.HealthData, now time.Time) *domain.InsightCard {
	sys, hasSys := averageSystolic(data.Vitals)
	dia, hasDia := averageDiastolic(data.Vitals)
	if !hasSys || !hasDia {
		return nil
	}

	switch {
	case sys > 140 || dia > 90:
		return &domain.InsightCard{
			ID:       "bp-alert",
			Type:     domain.InsightAlert,
			Priority: domain.PriorityHigh,
			Title:    "High Blood Pressure",
			Description: fmt.Sprintf(
				"Your average blood pressure of %.0f/%.0f mmHg is in the hypertensive range. Consider discussing this with your doctor.",
				sys, dia),
			Action:         "/records/vitals",
			RelatedMetrics: []string{domain.MetricBloodPressure},
			GeneratedAt:    now,
		}
	case sys > 130 || dia > 85:
		return &domain.InsightCard{
			ID:       "bp-warning",
			Type:     domain.InsightWarning,
			Priority: domain.PriorityMedium,
			Title:    "Elevated Blood Pressure",
			Description: fmt.Sprintf(
				"Your average blood pressure of %.0f/%.0f mmHg is above the normal range. Reducing sodium intake and regular activity can help.",
				sys, dia),
			Action:         "/records/vitals",
			RelatedMetrics: []string{domain.MetricBloodPressure},
			GeneratedAt:    now,
		}
	case sys <= 120 && dia <= 80:
		return &domain.InsightCard{
			ID:       "bp-positive",
			Type:     domain.InsightPositive,
			Priority: domain.PriorityLow,
			Title:    "Healthy Blood Pressure",
			Description: fmt.Sprintf(
				"Your average blood pressure of %.0f/%.0f mmHg is in the healthy range. Keep it up!",
				sys, dia),
			RelatedMetrics: []string{domain.MetricBloodPressure},
			GeneratedAt:    now,
		}
	}
	return nil
}

func analyzeHeartRate(data *domain.HealthData, now time.Time) *domain.InsightCard {
	bpm, ok := averageHeartRate(data.Vitals)
	if !ok {
		return nil
	}

	switch {
	case bpm < 40 || bpm > 100:
		return &domain.InsightCard{
			ID:       "hr-alert",
			Type:     domain.InsightAlert,
			Priority: domain.PriorityHigh,
			Title:    "Abnormal Resting Heart Rate",
			Description: fmt.Sprintf(
				"Your average resting heart rate of %.0f bpm is outside the expected range. Consider consulting a clinician.",
				bpm),
			Action:         "/records/vitals",
			RelatedMetrics: []string{domain.MetricHeartRate},
			GeneratedAt:    now,
		}
	case bpm < 50 || bpm > 90:
		return &domain.InsightCard{
			ID:       "hr-warning",
			Type:     domain.InsightWarning,
			Priority: domain.PriorityMedium,
			Title:    "Heart Rate Outside Ideal Range",
			Description: fmt.Sprintf(
				"Your average resting heart rate of %.0f bpm is outside the ideal 60-80 bpm window.",
				bpm),
			Action:         "/records/vitals",
			RelatedMetrics: []string{domain.MetricHeartRate},
			GeneratedAt:    now,
		}
	case bpm >= 60 && bpm <= 80:
		return &domain.InsightCard{
			ID:       "hr-positive",
			Type:     domain.InsightPositive,
			Priority: domain.PriorityLow,
			Title:    "Healthy Heart Rate",
			Description: fmt.Sprintf(
				"Your average resting heart rate of %.0f bpm is right in the ideal range.",
				bpm),
			RelatedMetrics: []string{domain.MetricHeartRate},
			GeneratedAt:    now,
		}
	}
	return nil
}

func analyzeSleep(data *domain.HealthData, now time.Time) *domain.InsightCard {
	hours, ok := averageSleepHours(data.Sleep)
	if !ok {
		return nil
	}

	switch {
	case hours < 5 || hours > 11:
		return &domain.InsightCard{
			ID:       "sleep-alert",
			Type:     domain.InsightAlert,
			Priority: domain.PriorityHigh,
			Title:    "Unhealthy Sleep Duration",
			Description: fmt.Sprintf(
				"You average %.1f hours of sleep per night, far from the recommended 7-9 hours.",
				hours),
			Action:         "/records/journal",
			RelatedMetrics: []string{domain.MetricSleep},
			GeneratedAt:    now,
		}
	case hours < 6 || hours > 10:
		return &domain.InsightCard{
			ID:       "sleep-warning",
			Type:     domain.InsightWarning,
			Priority: domain.PriorityMedium,
			Title:    "Sleep Duration Off Target",
			Description: fmt.Sprintf(
				"You average %.1f hours of sleep per night. Aim for 7-9 hours for better recovery.",
				hours),
			Action:         "/records/journal",
			RelatedMetrics: []string{domain.MetricSleep},
			GeneratedAt:    now,
		}
	case hours >= 7 && hours <= 9:
		return &domain.InsightCard{
			ID:       "sleep-positive",
			Type:     domain.InsightPositive,
			Priority: domain.PriorityLow,
			Title:    "Great Sleep Habits",
			Description: fmt.Sprintf(
				"You average %.1f hours of sleep per night, right in the recommended range.",
				hours),
			RelatedMetrics: []string{domain.MetricSleep},
			GeneratedAt:    now,
		}
	}
	return nil
}

// analyzeExercise always produces a card: a warning when nothing is
// logged, otherwise a tier based on the normalized weekly minutes.
func analyzeExercise(data *domain.HealthData, now time.Time) domain.InsightCard {
	weekly, ok := weeklyExerciseMinutes(data.Exercise)
	if !ok {
		return domain.InsightCard{
			ID:             "exercise-none",
			Type:           domain.InsightWarning,
			Priority:       domain.PriorityMedium,
			Title:          "No Exercise Logged",
			Description:    "No exercise has been recorded this period. Even light activity like walking makes a difference.",
			Action:         "/records/journal",
			RelatedMetrics: []string{domain.MetricExercise},
			GeneratedAt:    now,
		}
	}

	switch {
	case weekly >= WeeklyExerciseTarget:
		return domain.InsightCard{
			ID:       "exercise-positive",
			Type:     domain.InsightPositive,
			Priority: domain.PriorityLow,
			Title:    "Excellent Activity Level",
			Description: fmt.Sprintf(
				"You're averaging %.0f minutes of exercise per week, meeting the recommended %d minutes.",
				weekly, WeeklyExerciseTarget),
			RelatedMetrics: []string{domain.MetricExercise},
			GeneratedAt:    now,
		}
	case weekly >= 60:
		return domain.InsightCard{
			ID:       "exercise-info",
			Type:     domain.InsightInfo,
			Priority: domain.PriorityLow,
			Title:    "Good Activity, Room to Grow",
			Description: fmt.Sprintf(
				"You're averaging %.0f minutes of exercise per week. Pushing toward %d minutes would maximize the benefit.",
				weekly, WeeklyExerciseTarget),
			Action:         "/records/journal",
			RelatedMetrics: []string{domain.MetricExercise},
			GeneratedAt:    now,
		}
	default:
		return domain.InsightCard{
			ID:       "exercise-warning",
			Type:     domain.InsightWarning,
			Priority: domain.PriorityMedium,
			Title:    "Low Activity Level",
			Description: fmt.Sprintf(
				"You're averaging %.0f minutes of exercise per week, well below the recommended %d minutes.",
				weekly, WeeklyExerciseTarget),
			Action:         "/records/journal",
			RelatedMetrics: []string{domain.MetricExercise},
			GeneratedAt:    now,
		}
	}
}

func analyzeStress(data *domain.HealthData, now time.Time) *domain.InsightCard {
	level, ok := averageStressLevel(data.Stress)
	if !ok {
		return nil
	}

	switch {
	case level > 7:
		return &domain.InsightCard{
			ID:       "stress-alert",
			Type:     domain.InsightAlert,
			Priority: domain.PriorityHigh,
			Title:    "Very High Stress",
			Description: fmt.Sprintf(
				"Your average stress level of %.1f/10 is very high. Consider relaxation techniques or talking to a professional.",
				level),
			Action:         "/records/journal",
			RelatedMetrics: []string{domain.MetricStress},
			GeneratedAt:    now,
		}
	case level > 5:
		return &domain.InsightCard{
			ID:       "stress-warning",
			Type:     domain.InsightWarning,
			Priority: domain.PriorityMedium,
			Title:    "Elevated Stress",
			Description: fmt.Sprintf(
				"Your average stress level of %.1f/10 is elevated. Regular breaks and exercise can help bring it down.",
				level),
			Action:         "/records/journal",
			RelatedMetrics: []string{domain.MetricStress},
			GeneratedAt:    now,
		}
	case level <= 3:
		return &domain.InsightCard{
			ID:       "stress-positive",
			Type:     domain.InsightPositive,
			Priority: domain.PriorityLow,
			Title:    "Well-Managed Stress",
			Description: fmt.Sprintf(
				"Your average stress level of %.1f/10 is nice and low. Whatever you're doing, it's working.",
				level),
			RelatedMetrics: []string{domain.MetricStress},
			GeneratedAt:    now,
		}
	}
	return nil
}
