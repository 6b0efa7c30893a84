package service

import (
	"strings"
	"time"

	"github.com/pulsewell/health-insights-api/internal/domain"
)

// summaryWindowDays is the recent window the narrative is built over.
const summaryWindowDays = 7

// GenerateSummary classifies each metric's recent average into a positive
// or concerning finding and assembles the templated narrative. The
// thresholds intentionally match the insight generator's bands so the
// summary never contradicts the cards.
func GenerateSummary(data *domain.HealthData, now time.Time) domain.AISummary {
	recent := recentWindow(data, now.AddDate(0, 0, -summaryWindowDays))

	var positives, concerns []string

	sys, hasSys := averageSystolic(recent.Vitals)
	dia, hasDia := averageDiastolic(recent.Vitals)
	if hasSys && hasDia {
		switch {
		case sys > 130 || dia > 85:
			concerns = append(concerns, "your blood pressure is running above the normal range")
		case sys <= 120 && dia <= 80:
			positives = append(positives, "your blood pressure is in a healthy range")
		}
	}

	if bpm, ok := averageHeartRate(recent.Vitals); ok {
		switch {
		case bpm < 50 || bpm > 90:
			concerns = append(concerns, "your resting heart rate is outside the expected range")
		case bpm >= 60 && bpm <= 80:
			positives = append(positives, "your resting heart rate looks great")
		}
	}

	if hours, ok := averageSleepHours(recent.Sleep); ok {
		switch {
		case hours < 6 || hours > 10:
			concerns = append(concerns, "your sleep duration is off the recommended 7-9 hours")
		case hours >= 7 && hours <= 9:
			positives = append(positives, "you're getting a healthy amount of sleep")
		}
	}

	if weekly, ok := weeklyExerciseMinutes(recent.Exercise); ok {
		switch {
		case weekly >= WeeklyExerciseTarget:
			positives = append(positives, "you're hitting the recommended weekly exercise target")
		case weekly < 60:
			concerns = append(concerns, "your activity level is well below the weekly target")
		}
	} else {
		concerns = append(concerns, "no exercise has been logged recently")
	}

	if level, ok := averageStressLevel(recent.Stress); ok {
		switch {
		case level > 5:
			concerns = append(concerns, "your stress levels have been elevated")
		case level <= 3:
			positives = append(positives, "your stress levels are well managed")
		}
	}

	status := summaryStatus(len(positives), len(concerns))

	return domain.AISummary{
		Status:     status,
		Summary:    buildNarrative(status, positives, concerns),
		Confidence: summaryConfidence(recent.TotalDataPoints()),
	}
}

func summaryStatus(positiveCount, concerningCount int) string {
	switch {
	case positiveCount > 2*concerningCount:
		return "excellent"
	case positiveCount > concerningCount:
		return "good"
	case positiveCount == concerningCount:
		return "fair"
	default:
		return "needs_attention"
	}
}

var summaryOpenings = map[string]string{
	"excellent":       "Your health picture over the past week looks excellent.",
	"good":            "Your health picture over the past week is good overall.",
	"fair":            "Your health picture over the past week is mixed.",
	"needs_attention": "Several areas of your health need attention this week.",
}

// buildNarrative opens with the status sentence, then lists up to two
// items from each bucket.
func buildNarrative(status string, positives, concerns []string) string {
	parts := []string{summaryOpenings[status]}

	if len(positives) > 0 {
		items := positives
		if len(items) > 2 {
			items = items[:2]
		}
		parts = append(parts, "On the bright side, "+strings.Join(items, ", and ")+".")
	}

	if len(concerns) > 0 {
		items := concerns
		if len(items) > 2 {
			items = items[:2]
		}
		parts = append(parts, "Worth watching: "+strings.Join(items, ", and ")+".")
	}

	return strings.Join(parts, " ")
}

// summaryConfidence steps with the number of recent data points.
func summaryConfidence(dataPoints int) float64 {
	switch {
	case dataPoints >= 20:
		return 0.9
	case dataPoints >= 10:
		return 0.7
	case dataPoints >= 5:
		return 0.5
	default:
		return 0.3
	}
}
