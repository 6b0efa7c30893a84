package service

import (
	"math"

	"github.com/pulsewell/health-insights-api/internal/domain"
)

// Component weights. These must sum to exactly 1.0.
const (
	WeightBloodPressure = 0.25
	WeightHeartRate     = 0.20
	WeightSleep         = 0.25
	WeightExercise      = 0.20
	WeightStress        = 0.10
)

// scoreChangeHysteresis suppresses noise in the change direction: a
// period-over-period delta within this band reads as stable.
const scoreChangeHysteresis = 2

func componentWeights() map[string]float64 {
	return map[string]float64{
		domain.MetricBloodPressure: WeightBloodPressure,
		domain.MetricHeartRate:     WeightHeartRate,
		domain.MetricSleep:         WeightSleep,
		domain.MetricExercise:      WeightExercise,
		domain.MetricStress:        WeightStress,
	}
}

// weightedTotal combines the five component scores into one 0-100 value.
func weightedTotal(scores map[string]float64) int {
	total := 0.0
	for metric, weight := range componentWeights() {
		total += scores[metric] * weight
	}
	return int(math.Round(total))
}

// CalculateHealthScore computes the weighted composite score over the
// current window and compares it against the immediately preceding,
// non-overlapping window of equal length.
func CalculateHealthScore(current, previous *domain.HealthData) domain.HealthScore {
	currentScores := componentScores(current)
	previousScores := componentScores(previous)

	score := weightedTotal(currentScores)
	previousScore := weightedTotal(previousScores)
	change := score - previousScore

	direction := domain.DirectionStable
	if change > scoreChangeHysteresis {
		direction = domain.DirectionUp
	} else if change < -scoreChangeHysteresis {
		direction = domain.DirectionDown
	}

	components := make(map[string]domain.ComponentScore, len(currentScores))
	for metric, weight := range componentWeights() {
		components[metric] = domain.ComponentScore{
			Score:  currentScores[metric],
			Weight: weight,
		}
	}

	return domain.HealthScore{
		Score:           score,
		Category:        domain.CategoryForScore(score),
		PreviousScore:   previousScore,
		Change:          change,
		ChangeDirection: direction,
		Components:      components,
	}
}
