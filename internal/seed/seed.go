package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/pulsewell/health-insights-api/internal/domain"
	"gorm.io/gorm"
)

const seededDays = 35

// Run seeds the database with sample users, vitals, and journal entries.
// Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.VitalSign{}, &domain.HealthJournalEntry{}, &domain.InsightsCacheRow{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i, user := range users {
		// First user gets healthy numbers, second borderline, third poor,
		// so the insights endpoints have something interesting to say.
		profile := profiles[i%len(profiles)]
		if err := seedRecordsForUser(db, user, profile, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

type profile struct {
	systolicBase int
	diastolicBase int
	heartRateBase int
	sleepBase     float64
	exerciseDays  float32 // probability of an exercise session per day
	stressBase    int
}

var profiles = []profile{
	{systolicBase: 112, diastolicBase: 72, heartRateBase: 64, sleepBase: 7.5, exerciseDays: 0.6, stressBase: 2},
	{systolicBase: 128, diastolicBase: 83, heartRateBase: 78, sleepBase: 6.3, exerciseDays: 0.3, stressBase: 5},
	{systolicBase: 148, diastolicBase: 94, heartRateBase: 92, sleepBase: 5.1, exerciseDays: 0.1, stressBase: 8},
}

func seedRecordsForUser(db *gorm.DB, user domain.User, p profile, rng *rand.Rand) error {
	now := time.Now().UTC()
	exerciseTypes := []string{"walking", "running", "cycling", "swimming", "yoga"}

	for i := 0; i < seededDays; i++ {
		date := now.AddDate(0, 0, -i)
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		morning := day.Add(8 * time.Hour)

		sys := p.systolicBase + rng.Intn(9) - 4
		dia := p.diastolicBase + rng.Intn(7) - 3
		hr := p.heartRateBase + rng.Intn(9) - 4
		vitals := domain.VitalSign{
			UserID:      user.ID,
			SystolicBP:  &sys,
			DiastolicBP: &dia,
			HeartRate:   &hr,
			RecordedAt:  morning,
		}
		if err := db.Where("user_id = ? AND recorded_at = ?", user.ID, morning).FirstOrCreate(&vitals).Error; err != nil {
			return fmt.Errorf("failed to create vitals: %w", err)
		}

		sleep := p.sleepBase + float64(rng.Intn(13)-6)/10
		quality := 4 + rng.Intn(6)
		stress := p.stressBase + rng.Intn(3) - 1
		if stress < 0 {
			stress = 0
		}
		if stress > 10 {
			stress = 10
		}

		entry := domain.HealthJournalEntry{
			UserID:       user.ID,
			EntryDate:    day,
			SleepHours:   &sleep,
			SleepQuality: &quality,
			StressLevel:  &stress,
		}
		if rng.Float32() < p.exerciseDays {
			exerciseType := exerciseTypes[rng.Intn(len(exerciseTypes))]
			minutes := 20 + rng.Intn(41)
			entry.ExerciseType = &exerciseType
			entry.ExerciseMinutes = &minutes
		}

		if err := db.Where("user_id = ? AND entry_date = ?", user.ID, day).FirstOrCreate(&entry).Error; err != nil {
			return fmt.Errorf("failed to create journal entry: %w", err)
		}
	}
	return nil
}
