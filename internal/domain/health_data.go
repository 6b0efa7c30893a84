package domain

import "time"

// HealthData is the normalized, per-request snapshot of a user's records
// over one analysis window. It is built fresh for each orchestration run,
// never persisted, and treated as immutable by every analyzer reading it.
type HealthData struct {
	Vitals   []VitalSignSample
	Sleep    []SleepSample
	Exercise []ExerciseSample
	Stress   []StressSample
}

// VitalSignSample is one vitals reading in the snapshot.
type VitalSignSample struct {
	SystolicBP  *int
	DiastolicBP *int
	HeartRate   *int
	RecordedAt  time.Time
}

// SleepSample is one night of sleep in the snapshot.
type SleepSample struct {
	Date          time.Time
	DurationHours float64
	Quality       *int
}

// ExerciseSample is one logged exercise session in the snapshot.
type ExerciseSample struct {
	Date            time.Time
	Type            string
	DurationMinutes int
}

// StressSample is one stress self-report (0-10) in the snapshot.
type StressSample struct {
	Date  time.Time
	Level int
}

// TotalDataPoints counts samples across all series; it feeds the
// insufficient-data guard and the response metadata.
func (d *HealthData) TotalDataPoints() int {
	return len(d.Vitals) + len(d.Sleep) + len(d.Exercise) + len(d.Stress)
}
