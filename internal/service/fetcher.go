package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pulsewell/health-insights-api/internal/domain"
	"github.com/pulsewell/health-insights-api/internal/repository"
	"golang.org/x/sync/errgroup"
)

// HealthDataFetcher pulls normalized time-series records for a user over
// a window from the store.
type HealthDataFetcher interface {
	// Fetch builds a fresh HealthData snapshot for [from, to). The
	// snapshot is owned exclusively by the caller.
	Fetch(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domain.HealthData, error)
}

type healthDataFetcher struct {
	recordRepo repository.HealthRecordRepository
}

// NewHealthDataFetcher creates a new HealthDataFetcher.
func NewHealthDataFetcher(recordRepo repository.HealthRecordRepository) HealthDataFetcher {
	return &healthDataFetcher{recordRepo: recordRepo}
}

func (f *healthDataFetcher) Fetch(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domain.HealthData, error) {
	var (
		vitals  []domain.VitalSign
		journal []domain.HealthJournalEntry
	)

	// Vitals and journal are independent tables; read them concurrently.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		vitals, err = f.recordRepo.ListVitalsByRange(gctx, userID, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		journal, err = f.recordRepo.ListJournalByRange(gctx, userID, from, to)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	data := &domain.HealthData{}

	for _, v := range vitals {
		data.Vitals = append(data.Vitals, domain.VitalSignSample{
			SystolicBP:  v.SystolicBP,
			DiastolicBP: v.DiastolicBP,
			HeartRate:   v.HeartRate,
			RecordedAt:  v.RecordedAt,
		})
	}

	// Journal rows carry any subset of sleep, exercise, and stress fields;
	// destructure each row into the per-metric series it contributes to.
	for _, entry := range journal {
		if entry.SleepHours != nil {
			data.Sleep = append(data.Sleep, domain.SleepSample{
				Date:          entry.EntryDate,
				DurationHours: *entry.SleepHours,
				Quality:       entry.SleepQuality,
			})
		}
		if entry.ExerciseMinutes != nil {
			exerciseType := ""
			if entry.ExerciseType != nil {
				exerciseType = *entry.ExerciseType
			}
			data.Exercise = append(data.Exercise, domain.ExerciseSample{
				Date:            entry.EntryDate,
				Type:            exerciseType,
				DurationMinutes: *entry.ExerciseMinutes,
			})
		}
		if entry.StressLevel != nil {
			data.Stress = append(data.Stress, domain.StressSample{
				Date:  entry.EntryDate,
				Level: *entry.StressLevel,
			})
		}
	}

	return data, nil
}
