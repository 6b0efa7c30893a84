package service

import (
	"fmt"
	"math"

	"github.com/pulsewell/health-insights-api/internal/domain"
)

// maxTrendPoints caps the charted points per metric at the most recent ten.
const maxTrendPoints = 10

// Per-metric thresholds (in percent) below which a change reads as stable.
const (
	bpTrendThreshold       = 2
	hrTrendThreshold       = 2
	sleepTrendThreshold    = 5
	exerciseTrendThreshold = 10
	stressTrendThreshold   = 10
)

// Ideal centers used for the "is improving" distance check.
const (
	bpIdealCenter    = 80 // mean-pressure proxy, mmHg
	hrIdealCenter    = 70 // bpm
	sleepIdealCenter = 8  // hours
)

// AnalyzeTrends compares the current window to the immediately preceding
// one for every metric with current data, and always appends a hydration
// placeholder since no hydration data source exists yet.
func AnalyzeTrends(current, previous *domain.HealthData) []domain.TrendData {
	trends := make([]domain.TrendData, 0, 6)

	if points := bloodPressurePoints(current); len(points) > 0 {
		cur := meanOfPoints(points)
		prev := meanOfPoints(bloodPressurePoints(previous))
		trends = append(trends, buildTrend(
			domain.MetricBloodPressure, "Blood Pressure",
			cur, prev, bpTrendThreshold,
			closerToCenter(cur, prev, bpIdealCenter),
			"%.0f mmHg", points,
		))
	}

	if points := heartRatePoints(current); len(points) > 0 {
		cur := meanOfPoints(points)
		prev := meanOfPoints(heartRatePoints(previous))
		trends = append(trends, buildTrend(
			domain.MetricHeartRate, "Heart Rate",
			cur, prev, hrTrendThreshold,
			closerToCenter(cur, prev, hrIdealCenter),
			"%.0f bpm", points,
		))
	}

	if points := sleepPoints(current); len(points) > 0 {
		cur := meanOfPoints(points)
		prev := meanOfPoints(sleepPoints(previous))
		trends = append(trends, buildTrend(
			domain.MetricSleep, "Sleep Duration",
			cur, prev, sleepTrendThreshold,
			closerToCenter(cur, prev, sleepIdealCenter),
			"%.1f hrs", points,
		))
	}

	if points := exercisePoints(current); len(points) > 0 {
		cur, _ := weeklyExerciseMinutes(current.Exercise)
		prev, _ := weeklyExerciseMinutes(previous.Exercise)
		trends = append(trends, buildTrend(
			domain.MetricExercise, "Exercise",
			cur, prev, exerciseTrendThreshold,
			cur > prev,
			"%.0f min/week", points,
		))
	}

	if points := stressPoints(current); len(points) > 0 {
		cur := meanOfPoints(points)
		prev := meanOfPoints(stressPoints(previous))
		trends = append(trends, buildTrend(
			domain.MetricStress, "Stress Level",
			cur, prev, stressTrendThreshold,
			cur < prev,
			"%.1f/10", points,
		))
	}

	// No hydration data source exists; emit the placeholder slot the
	// dashboard expects.
	trends = append(trends, domain.TrendData{
		Metric:          domain.MetricHydration,
		Label:           "Hydration",
		CurrentValue:    "No data",
		PreviousValue:   "No data",
		ChangePercent:   0,
		ChangeDirection: domain.DirectionStable,
		IsImproving:     false,
		DataPoints:      []domain.TrendPoint{},
	})

	return trends
}

func buildTrend(metric, label string, current, previous, threshold float64, improving bool, format string, points []domain.TrendPoint) domain.TrendData {
	changePct := 0.0
	if previous > 0 {
		changePct = math.Round((current-previous)/previous*100*100) / 100
	}

	direction := domain.DirectionStable
	if math.Abs(changePct) >= threshold {
		if changePct > 0 {
			direction = domain.DirectionUp
		} else {
			direction = domain.DirectionDown
		}
	}

	if len(points) > maxTrendPoints {
		points = points[len(points)-maxTrendPoints:]
	}

	return domain.TrendData{
		Metric:          metric,
		Label:           label,
		CurrentValue:    fmt.Sprintf(format, current),
		PreviousValue:   fmt.Sprintf(format, previous),
		ChangePercent:   changePct,
		ChangeDirection: direction,
		IsImproving:     improving,
		DataPoints:      points,
	}
}

// closerToCenter reports whether the current average moved toward the
// metric's ideal center relative to the previous one.
func closerToCenter(current, previous, center float64) bool {
	return math.Abs(current-center) < math.Abs(previous-center)
}

func meanOfPoints(points []domain.TrendPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range points {
		sum += p.Value
	}
	return sum / float64(len(points))
}

// bloodPressurePoints uses the mean-pressure proxy (systolic+diastolic)/2
// for readings that carry both values.
func bloodPressurePoints(data *domain.HealthData) []domain.TrendPoint {
	var points []domain.TrendPoint
	for _, v := range data.Vitals {
		if v.SystolicBP != nil && v.DiastolicBP != nil {
			points = append(points, domain.TrendPoint{
				Date:  v.RecordedAt,
				Value: float64(*v.SystolicBP+*v.DiastolicBP) / 2,
			})
		}
	}
	return points
}

func heartRatePoints(data *domain.HealthData) []domain.TrendPoint {
	var points []domain.TrendPoint
	for _, v := range data.Vitals {
		if v.HeartRate != nil {
			points = append(points, domain.TrendPoint{
				Date:  v.RecordedAt,
				Value: float64(*v.HeartRate),
			})
		}
	}
	return points
}

func sleepPoints(data *domain.HealthData) []domain.TrendPoint {
	var points []domain.TrendPoint
	for _, s := range data.Sleep {
		points = append(points, domain.TrendPoint{Date: s.Date, Value: s.DurationHours})
	}
	return points
}

func exercisePoints(data *domain.HealthData) []domain.TrendPoint {
	var points []domain.TrendPoint
	for _, e := range data.Exercise {
		points = append(points, domain.TrendPoint{Date: e.Date, Value: float64(e.DurationMinutes)})
	}
	return points
}

func stressPoints(data *domain.HealthData) []domain.TrendPoint {
	var points []domain.TrendPoint
	for _, s := range data.Stress {
		points = append(points, domain.TrendPoint{Date: s.Date, Value: float64(s.Level)})
	}
	return points
}
