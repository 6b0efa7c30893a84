package service

import (
	"fmt"
	"math"
	"time"

	"github.com/pulsewell/health-insights-api/internal/domain"
)

// quickStatsWindowDays is the short dashboard window.
const quickStatsWindowDays = 7

// CalculateQuickStats produces raw short-window averages for the dashboard
// widget. No scoring or interpretation happens here.
func CalculateQuickStats(data *domain.HealthData, now time.Time) domain.QuickStats {
	recent := recentWindow(data, now.AddDate(0, 0, -quickStatsWindowDays))

	stats := domain.QuickStats{AvgBloodPressure: "--/--"}

	if bpm, ok := averageHeartRate(recent.Vitals); ok {
		stats.AvgHeartRate = round1(bpm)
	}

	sys, hasSys := averageSystolic(recent.Vitals)
	dia, hasDia := averageDiastolic(recent.Vitals)
	if hasSys && hasDia {
		stats.AvgBloodPressure = fmt.Sprintf("%.0f/%.0f", sys, dia)
	}

	if hours, ok := averageSleepHours(recent.Sleep); ok {
		stats.AvgSleepHours = round1(hours)
	}

	// Total logged minutes inside the window, not a normalized rate.
	total := 0
	for _, e := range recent.Exercise {
		total += e.DurationMinutes
	}
	stats.WeeklyExerciseMinutes = float64(total)

	if level, ok := averageStressLevel(recent.Stress); ok {
		stats.AvgStressLevel = round1(level)
	}

	return stats
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
