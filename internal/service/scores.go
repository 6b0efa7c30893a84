package service

import (
	"math"
	"time"

	"github.com/pulsewell/health-insights-api/internal/domain"
)

const (
	// NeutralScore is used when a metric has no data in the window.
	NeutralScore = 50
	// NoExerciseScore assumes an inactive user when nothing is logged.
	NoExerciseScore = 30
	// WeeklyExerciseTarget is the recommended activity minutes per week.
	WeeklyExerciseTarget = 150
)

// averageSystolic returns the mean systolic reading and whether any exist.
func averageSystolic(vitals []domain.VitalSignSample) (float64, bool) {
	sum, count := 0.0, 0
	for _, v := range vitals {
		if v.SystolicBP != nil {
			sum += float64(*v.SystolicBP)
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// averageDiastolic returns the mean diastolic reading and whether any exist.
func averageDiastolic(vitals []domain.VitalSignSample) (float64, bool) {
	sum, count := 0.0, 0
	for _, v := range vitals {
		if v.DiastolicBP != nil {
			sum += float64(*v.DiastolicBP)
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// averageHeartRate returns the mean heart rate and whether any readings exist.
func averageHeartRate(vitals []domain.VitalSignSample) (float64, bool) {
	sum, count := 0.0, 0
	for _, v := range vitals {
		if v.HeartRate != nil {
			sum += float64(*v.HeartRate)
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// averageSleepHours returns the mean nightly duration and whether any exist.
func averageSleepHours(sleep []domain.SleepSample) (float64, bool) {
	if len(sleep) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, s := range sleep {
		sum += s.DurationHours
	}
	return sum / float64(len(sleep)), true
}

// weeklyExerciseMinutes normalizes total logged minutes to a weekly rate.
// The covered span is (max date - min date) + 1 day, minimum one day.
func weeklyExerciseMinutes(exercise []domain.ExerciseSample) (float64, bool) {
	if len(exercise) == 0 {
		return 0, false
	}

	total := 0
	minDate, maxDate := exercise[0].Date, exercise[0].Date
	for _, e := range exercise {
		total += e.DurationMinutes
		if e.Date.Before(minDate) {
			minDate = e.Date
		}
		if e.Date.After(maxDate) {
			maxDate = e.Date
		}
	}

	daysCovered := int(maxDate.Sub(minDate).Hours()/24) + 1
	if daysCovered < 1 {
		daysCovered = 1
	}

	return float64(total) / float64(daysCovered) * 7, true
}

// averageStressLevel returns the mean stress level and whether any exist.
func averageStressLevel(stress []domain.StressSample) (float64, bool) {
	if len(stress) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, s := range stress {
		sum += float64(s.Level)
	}
	return sum / float64(len(stress)), true
}

// scoreBloodPressure starts at 100 and independently deducts per systolic
// and diastolic band, clamped to [0,100].
func scoreBloodPressure(systolic, diastolic float64) float64 {
	score := 100.0

	switch {
	case systolic <= 120:
		// no deduction
	case systolic <= 130:
		score -= 10
	case systolic <= 140:
		score -= 30
	case systolic <= 160:
		score -= 60
	default:
		score -= 80
	}

	switch {
	case diastolic <= 80:
		// no deduction
	case diastolic <= 85:
		score -= 10
	case diastolic <= 90:
		score -= 30
	case diastolic <= 100:
		score -= 60
	default:
		score -= 80
	}

	return math.Max(0, math.Min(100, score))
}

// scoreHeartRate bands the distance from the 60-80 bpm ideal window.
func scoreHeartRate(bpm float64) float64 {
	switch {
	case bpm >= 60 && bpm <= 80:
		return 100
	case bpm >= 50 && bpm <= 90:
		return 80
	case bpm >= 40 && bpm <= 100:
		return 60
	case bpm >= 35 && bpm <= 110:
		return 40
	default:
		return 20
	}
}

// scoreSleep bands the distance from the 7-9 hour ideal window.
func scoreSleep(hours float64) float64 {
	switch {
	case hours >= 7 && hours <= 9:
		return 100
	case hours >= 6 && hours <= 10:
		return 80
	case hours >= 5 && hours <= 11:
		return 60
	case hours >= 4 && hours <= 12:
		return 40
	default:
		return 20
	}
}

// scoreExercise thresholds the normalized weekly minutes.
func scoreExercise(weeklyMinutes float64) float64 {
	switch {
	case weeklyMinutes >= 150:
		return 100
	case weeklyMinutes >= 100:
		return 80
	case weeklyMinutes >= 60:
		return 60
	case weeklyMinutes >= 30:
		return 40
	default:
		return 20
	}
}

// scoreStress inversely bands the average 0-10 stress level.
func scoreStress(level float64) float64 {
	switch {
	case level <= 3:
		return 100
	case level <= 5:
		return 70
	case level <= 7:
		return 40
	default:
		return 10
	}
}

// componentScores computes all five component scores for one window,
// applying the neutral defaults for metrics without data.
func componentScores(data *domain.HealthData) map[string]float64 {
	scores := map[string]float64{
		domain.MetricBloodPressure: NeutralScore,
		domain.MetricHeartRate:     NeutralScore,
		domain.MetricSleep:         NeutralScore,
		domain.MetricExercise:      NoExerciseScore,
		domain.MetricStress:        NeutralScore,
	}

	sys, hasSys := averageSystolic(data.Vitals)
	dia, hasDia := averageDiastolic(data.Vitals)
	if hasSys && hasDia {
		scores[domain.MetricBloodPressure] = scoreBloodPressure(sys, dia)
	}

	if hr, ok := averageHeartRate(data.Vitals); ok {
		scores[domain.MetricHeartRate] = scoreHeartRate(hr)
	}

	if hours, ok := averageSleepHours(data.Sleep); ok {
		scores[domain.MetricSleep] = scoreSleep(hours)
	}

	if weekly, ok := weeklyExerciseMinutes(data.Exercise); ok {
		scores[domain.MetricExercise] = scoreExercise(weekly)
	}

	if level, ok := averageStressLevel(data.Stress); ok {
		scores[domain.MetricStress] = scoreStress(level)
	}

	return scores
}

// recentWindow returns a copy of the snapshot filtered to samples on or
// after the cutoff. The input is left untouched.
func recentWindow(data *domain.HealthData, cutoff time.Time) *domain.HealthData {
	recent := &domain.HealthData{}
	for _, v := range data.Vitals {
		if !v.RecordedAt.Before(cutoff) {
			recent.Vitals = append(recent.Vitals, v)
		}
	}
	for _, s := range data.Sleep {
		if !s.Date.Before(cutoff) {
			recent.Sleep = append(recent.Sleep, s)
		}
	}
	for _, e := range data.Exercise {
		if !e.Date.Before(cutoff) {
			recent.Exercise = append(recent.Exercise, e)
		}
	}
	for _, s := range data.Stress {
		if !s.Date.Before(cutoff) {
			recent.Stress = append(recent.Stress, s)
		}
	}
	return recent
}
